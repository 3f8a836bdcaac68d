// cmd/self/telemetry.go

package self

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_cli"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_err"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_io"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/telemetry"
)

// TelemetryCmd toggles and reports the local telemetry opt-in.
var TelemetryCmd = &cobra.Command{
	Use:   "telemetry [on|off|status]",
	Short: "Manage local telemetry collection",
	Long: `Manage local telemetry collection for pythia usage statistics.

Telemetry is off unless you turn it on. When on, command spans are
appended to a local JSONL file you can read yourself. Nothing is ever
sent anywhere, and profile fields never appear in spans.

Commands:
  on     - Enable telemetry collection
  off    - Disable telemetry collection
  status - Show telemetry state and file locations`,
	Args: cobra.ExactArgs(1),
	RunE: pythia_cli.Wrap(func(rc *pythia_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		log := otelzap.Ctx(rc.Ctx)

		switch args[0] {
		case "on":
			if err := telemetry.Enable(); err != nil {
				log.Error("Failed to enable telemetry", zap.Error(err))
				return err
			}
			log.Info("Telemetry enabled", zap.String("data_file", telemetry.FilePath()))
			fmt.Printf("✓ Telemetry on. Spans append to %s\n", telemetry.FilePath())
		case "off":
			if err := telemetry.Disable(); err != nil {
				log.Error("Failed to disable telemetry", zap.Error(err))
				return err
			}
			log.Info("Telemetry disabled")
			fmt.Println("✓ Telemetry off.")
		case "status":
			showTelemetryStatus()
		default:
			log.Warn("Invalid telemetry argument", zap.String("arg", args[0]))
			return pythia_err.NewValidationError(
				fmt.Sprintf("unknown telemetry action %q", args[0]),
				"Use one of: on, off, status")
		}

		return nil
	}),
}

func showTelemetryStatus() {
	state := "off"
	if telemetry.IsEnabled() {
		state = "on"
	}
	fmt.Printf("Telemetry:    %s\n", state)
	fmt.Printf("Toggle file:  %s\n", telemetry.MarkerPath())
	fmt.Printf("Data file:    %s", telemetry.FilePath())
	if info, err := os.Stat(telemetry.FilePath()); err == nil {
		fmt.Printf(" (%d bytes)", info.Size())
	}
	fmt.Println()
	fmt.Printf("Anonymous ID: %s\n", telemetry.AnonTelemetryID())
}

func init() {
	SelfCmd.AddCommand(TelemetryCmd)
}
