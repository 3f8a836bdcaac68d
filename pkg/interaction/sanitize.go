// pkg/interaction/sanitize.go

package interaction

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxInputLength caps a single line of user input.
const MaxInputLength = 4096

var (
	// controlCharRegex matches dangerous control characters
	controlCharRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F-\x9F]`)

	// ansiEscapeRegex matches ANSI escape sequences
	ansiEscapeRegex = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]|\x9b[0-9;]*[A-Za-z]`)
)

// InputValidationError reports why a line of input was rejected.
type InputValidationError struct {
	Field  string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid input for %s: %s", e.Field, e.Reason)
}

// sanitizeUserInput strips terminal-hostile bytes from a line of input.
// Profile fields end up inside generated wordlists, so control
// characters and escape sequences must never survive this point.
// Escape sequences go first: stripping the ESC byte alone would leave
// their printable tails behind.
func sanitizeUserInput(input string) string {
	sanitized := ansiEscapeRegex.ReplaceAllString(input, "")
	sanitized = controlCharRegex.ReplaceAllString(sanitized, "")
	sanitized = strings.ReplaceAll(sanitized, "\x00", "")
	sanitized = strings.ReplaceAll(sanitized, "\x9b", "")

	if !utf8.ValidString(sanitized) {
		var result strings.Builder
		for _, r := range sanitized {
			if r != utf8.RuneError {
				result.WriteRune(r)
			}
		}
		sanitized = result.String()
	}

	return strings.TrimSpace(sanitized)
}
