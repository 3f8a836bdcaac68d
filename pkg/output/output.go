// pkg/output/output.go

// Package output delivers finished wordlists to their destinations: a
// file, stdout, or the system clipboard. File and stdout output is
// line-delimited, one candidate per line, optionally preceded by a
// commented header describing the run. Prompts and progress go to
// stderr elsewhere; this package owns what lands on stdout.
package output

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/xdg"
)

// Metadata describes one generation run for the wordlist header.
// A nil *Metadata suppresses the header entirely.
type Metadata struct {
	RunID     string
	Name      string
	BirthDate string
	Total     int
	Generated time.Time
}

// headerRuleWidth is the width of the '#' rule closing the header.
const headerRuleWidth = 50

// Header renders the commented preamble written above the candidate
// list. Lines whose field is empty are omitted, so a sparse profile
// never leaks blank placeholders into the file.
func Header(meta *Metadata) string {
	if meta == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Password candidates generated on %s\n", meta.Generated.Format("2006-01-02"))
	if meta.RunID != "" {
		fmt.Fprintf(&b, "# Run ID: %s\n", meta.RunID)
	}
	if meta.Name != "" {
		fmt.Fprintf(&b, "# Name: %s\n", meta.Name)
	}
	if meta.BirthDate != "" {
		fmt.Fprintf(&b, "# Birth date: %s\n", meta.BirthDate)
	}
	fmt.Fprintf(&b, "# Total candidates: %d\n", meta.Total)
	b.WriteString(strings.Repeat("#", headerRuleWidth))
	b.WriteString("\n\n")
	return b.String()
}

// Write streams the header (when meta is non-nil) followed by one
// candidate per line. Candidates are written in the order given; the
// pipeline has already sorted them.
func Write(w io.Writer, words []string, meta *Metadata) error {
	if meta != nil {
		if _, err := io.WriteString(w, Header(meta)); err != nil {
			return cerr.Wrap(err, "write wordlist header")
		}
	}
	for _, word := range words {
		if _, err := io.WriteString(w, word+"\n"); err != nil {
			return cerr.Wrap(err, "write wordlist")
		}
	}
	return nil
}

// WriteFile writes the wordlist to path, creating parent directories
// as needed. The file is owner read/write only: generated candidates
// are sensitive in the same way a password database is.
func WriteFile(ctx context.Context, path string, words []string, meta *Metadata) error {
	log := otelzap.Ctx(ctx)
	log.Debug("Writing wordlist file",
		zap.String("path", path),
		zap.Int("candidates", len(words)))

	if err := xdg.EnsureDir(path); err != nil {
		return cerr.Wrapf(err, "create directory for %s", path)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, xdg.FilePermOwnerReadWrite)
	if err != nil {
		log.Error("Failed to open wordlist file", zap.String("path", path), zap.Error(err))
		return cerr.Wrapf(err, "open %s", path)
	}

	bw := bufio.NewWriter(f)
	if err := Write(bw, words, meta); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return cerr.Wrapf(err, "flush %s", path)
	}
	if err := f.Close(); err != nil {
		return cerr.Wrapf(err, "close %s", path)
	}

	log.Info("📝 Wordlist written",
		zap.String("path", path),
		zap.Int("candidates", len(words)))
	return nil
}

// WriteStdout writes the wordlist to stdout for piping into other
// tools.
func WriteStdout(words []string, meta *Metadata) error {
	bw := bufio.NewWriter(os.Stdout)
	if err := Write(bw, words, meta); err != nil {
		return err
	}
	return cerr.Wrap(bw.Flush(), "flush stdout")
}

// ClipboardPayload joins candidates into the single string placed on
// the clipboard. No trailing newline: pasting into a password field
// must not submit it.
func ClipboardPayload(words []string) string {
	return strings.Join(words, "\n")
}

// CopyToClipboard places the candidate list on the system clipboard.
// Headless hosts without xclip, xsel or wl-clipboard return an error
// rather than silently dropping the list.
func CopyToClipboard(ctx context.Context, words []string) error {
	log := otelzap.Ctx(ctx)

	if err := clipboard.WriteAll(ClipboardPayload(words)); err != nil {
		log.Error("Failed to copy wordlist to clipboard", zap.Error(err))
		return cerr.Wrap(err, "copy wordlist to clipboard")
	}

	log.Info("📋 Wordlist copied to clipboard", zap.Int("candidates", len(words)))
	return nil
}
