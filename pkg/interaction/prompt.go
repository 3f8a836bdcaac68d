// pkg/interaction/prompt.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// PromptInput asks for user input with an optional default fallback.
// Read errors and empty answers both resolve to the default value.
func PromptInput(ctx context.Context, reader *bufio.Reader, prompt, defaultVal string) string {
	label := prompt
	if defaultVal != "" {
		label = fmt.Sprintf("%s [%s]", prompt, defaultVal)
	}

	input, err := ReadLine(ctx, reader, label)
	if err != nil {
		otelzap.Ctx(ctx).Debug("Failed to read user input, using default", zap.Error(err))
		return defaultVal
	}
	if input == "" {
		return defaultVal
	}
	return input
}

// PromptYesNo asks a yes/no question and returns true/false. Falls back
// to the default on read errors or unrecognized answers.
func PromptYesNo(ctx context.Context, reader *bufio.Reader, prompt string, defaultYes bool) bool {
	defPrompt := DefaultYesPrompt
	if !defaultYes {
		defPrompt = DefaultNoPrompt
	}
	label := fmt.Sprintf("%s [%s]", prompt, defPrompt)

	input, err := ReadLine(ctx, reader, label)
	if err != nil {
		otelzap.Ctx(ctx).Debug("Failed to read yes/no input, using default", zap.Error(err))
		return defaultYes
	}

	if answer, ok := NormalizeYesNoInput(input); ok {
		return answer
	}
	return defaultYes
}

// PromptValidated asks for input until the validator passes. Empty
// answers bypass the validator so optional fields stay skippable.
func PromptValidated(ctx context.Context, reader *bufio.Reader, label string, validator func(string) error) (string, error) {
	logger := otelzap.Ctx(ctx)
	for {
		input, err := ReadLine(ctx, reader, label)
		if err != nil {
			return "", err
		}
		if input == "" {
			return "", nil
		}
		if verr := validator(input); verr != nil {
			logger.Info("terminal prompt: ⚠️  " + verr.Error())
			continue
		}
		return input, nil
	}
}

// NormalizeYesNoInput returns (answer, recognized). It trims whitespace
// and lowercases input before comparison.
func NormalizeYesNoInput(input string) (bool, bool) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}
