// cmd/inspect/inspect.go

package inspect

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_cli"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_io"
)

// InspectCmd groups the read-only subcommands: they show what pythia
// would do without generating anything.
var InspectCmd = &cobra.Command{
	Use:     "inspect",
	Aliases: []string{"show"},
	Short:   "Inspect pythia configuration, pattern templates, and logs",
	Long: `Inspect pythia's effective configuration, the pattern table used for
expansion, and the log files it writes. These commands are read-only.`,
	RunE: pythia_cli.Wrap(func(rc *pythia_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		fmt.Println("⚠️  No subcommand provided. Try `pythia inspect options`.")
		return cmd.Help()
	}),
}

func init() {
	InspectCmd.AddCommand(InspectOptionsCmd)
	InspectCmd.AddCommand(InspectTemplatesCmd)
	InspectCmd.AddCommand(InspectLogsCmd)
}
