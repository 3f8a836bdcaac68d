// cmd/inspect/templates.go

package inspect

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/output"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_cli"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_err"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_io"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/templates"
)

// InspectTemplatesCmd shows the pattern table the expander will use.
// With --file it loads and validates a custom table first, so it
// doubles as a lint for hand-written tables.
var InspectTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Show the pattern table used for expansion",
	Long: `Show the pattern table used for template expansion.

Without --file the embedded default table is shown. With --file the
given table is loaded and validated first; a table that fails
validation is reported with the reason and nothing is printed.`,
	RunE: pythia_cli.Wrap(runInspectTemplates),
}

func init() {
	InspectTemplatesCmd.Flags().String("file", "", "Validate and show this pattern table instead of the embedded default")
	InspectTemplatesCmd.Flags().Bool("json", false, "Emit the table as JSON")
}

func runInspectTemplates(rc *pythia_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	log := otelzap.Ctx(rc.Ctx)

	path, _ := cmd.Flags().GetString("file")
	asJSON, _ := cmd.Flags().GetBool("json")

	table := templates.DefaultTable()
	source := "embedded default"
	if path != "" {
		t, err := templates.LoadTableFile(path)
		if err != nil {
			log.Error("Pattern table rejected", zap.String("path", path), zap.Error(err))
			return pythia_err.NewValidationError(
				fmt.Sprintf("pattern table %s failed validation: %v", path, err),
				"The version must satisfy "+templates.SupportedVersions,
				"Every {slot} must use a known slot name")
		}
		table = t
		source = path
	}

	if asJSON {
		return output.JSONToStdout(struct {
			Source   string   `json:"source"`
			Version  string   `json:"version"`
			Patterns []string `json:"patterns"`
		}{Source: source, Version: table.Version, Patterns: table.Patterns})
	}

	fmt.Printf("🗂️  Pattern table: %s\n", source)
	fmt.Printf("Version %s (supported %s), %d patterns\n\n",
		table.Version, templates.SupportedVersions, len(table.Patterns))

	tw := output.NewTable(os.Stdout).Headers("#", "PATTERN")
	for i, p := range table.Patterns {
		tw.Row(strconv.Itoa(i+1), p)
	}
	return tw.Render()
}
