// pkg/interaction/reader.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ReadLine prompts the user with a label and returns a sanitized line of
// input. An empty line is a valid answer; callers treat it as "skip".
func ReadLine(ctx context.Context, reader *bufio.Reader, label string) (string, error) {
	logger := otelzap.Ctx(ctx)
	logger.Debug("📝 Prompting user for input", zap.String("label", label))

	// Use os.Stderr for user-facing prompts to preserve stdout for automation
	_, _ = fmt.Fprint(os.Stderr, label+": ")

	text, err := reader.ReadString('\n')
	if err != nil && text == "" {
		logger.Debug("❌ Failed to read user input", zap.Error(err))
		return "", err
	}

	if len(text) > MaxInputLength {
		return "", &InputValidationError{
			Field:  label,
			Reason: fmt.Sprintf("too long (%d bytes, max %d)", len(text), MaxInputLength),
		}
	}

	value := sanitizeUserInput(text)
	logger.Debug("📥 User input received", zap.String("value", value))
	return value, nil
}
