// cmd/tui/tui.go

package tui

import (
	"context"
	"os"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_cli"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_err"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_io"
	tuipkg "github.com/CodeMonkeyCybersecurity/pythia/pkg/tui"
)

// TuiCmd opens the full-screen profile form. Engine options resolve
// the same way generate resolves them, and the form's stage toggles
// start from that.
var TuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"form"},
	Short:   "Fill in a profile with a full-screen form",
	Long: `Open a full-screen form for profile entry, with live generation, a
candidate preview, save to file, and clipboard copy. Engine options
come from the config file, PYTHIA_* environment variables, and
--preset, exactly as with generate.`,
	RunE: pythia_cli.Wrap(runTui),
}

func init() {
	TuiCmd.Flags().String("preset", "", "Start from this preset's engine options")
}

func runTui(rc *pythia_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return pythia_err.NewValidationError(
			"the form needs a terminal on stdout",
			"Run pythia tui from an interactive shell",
			"Use pythia generate for scripted runs")
	}

	v, err := cli.NewViper()
	if err != nil {
		return err
	}
	opts := cli.OptionsFromViper(v)
	if name, _ := cmd.Flags().GetString("preset"); name != "" {
		p, err := cli.LoadPreset(v, name)
		if err != nil {
			return err
		}
		p.Apply(&opts, nil)
	}

	sh := pythia_cli.NewSignalHandler(rc.Ctx)
	defer sh.Stop()

	if err := tuipkg.Run(sh.Context(), opts, rc.Log); err != nil {
		if cerr.Is(err, context.Canceled) {
			return pythia_err.NewUserCancelledError("form")
		}
		return err
	}
	return nil
}
