/* pkg/interaction/interaction.go */

// Package interaction implements the terminal question-and-answer layer:
// prompting on stderr, input hygiene, and the interactive flows that
// build a profile and tune generation options when no flags are given.
//
// Prompts and banners go to stderr so stdout stays clean for generated
// wordlists.
package interaction

const (
	DefaultYesPrompt = "Y/n"
	DefaultNoPrompt  = "y/N"
)
