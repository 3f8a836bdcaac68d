// cmd/inspect/logs.go

package inspect

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_cli"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_io"
)

// InspectLogsCmd lists the log files pythia knows about and tails the
// active one. Logs carry run statistics only, never profile content.
var InspectLogsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show pythia log files and recent entries",
	RunE:  pythia_cli.Wrap(runInspectLogs),
}

func init() {
	InspectLogsCmd.Flags().Int("tail", 20, "Entries to show from the active log, 0 to list paths only")
}

func runInspectLogs(rc *pythia_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	log := otelzap.Ctx(rc.Ctx)
	tail, _ := cmd.Flags().GetInt("tail")

	// The active path is whichever candidate the logger bootstrap
	// settled on for this process.
	active, _ := logger.FindWritableLogPath()

	fmt.Println("🔎 Searching for pythia logs:")
	found := false
	for _, path := range logger.PlatformLogPaths() {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		found = true
		marker := "📄"
		if path == active {
			marker = "⭐"
		}
		fmt.Printf("%s %s (%d bytes)\n", marker, path, info.Size())
	}
	if !found {
		fmt.Println("⚠️  No log files found yet. Logs appear once a command runs.")
		return nil
	}

	if tail <= 0 || active == "" {
		return nil
	}

	content, err := logger.TryReadLogFile(active)
	if err != nil {
		log.Warn("Could not read active log", zap.String("path", active), zap.Error(err))
		return nil
	}
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) > tail {
		lines = lines[len(lines)-tail:]
	}

	fmt.Printf("\nLast %d entries from %s:\n", len(lines), active)
	for _, line := range lines {
		fmt.Println(logger.ColorizeLogLine(line))
	}
	return nil
}
