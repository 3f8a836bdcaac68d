/* cmd/root.go */

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	// Subcommands
	"github.com/CodeMonkeyCybersecurity/pythia/cmd/generate"
	"github.com/CodeMonkeyCybersecurity/pythia/cmd/inspect"
	"github.com/CodeMonkeyCybersecurity/pythia/cmd/self"
	"github.com/CodeMonkeyCybersecurity/pythia/cmd/tui"

	// Internal packages
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_cli"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_err"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_io"
)

var helpLogged bool // global guard to log help only once

var debugMode bool

// RootCmd is the base command for pythia.
var RootCmd = &cobra.Command{
	Use:   "pythia",
	Short: "Generate password candidates from a personal profile",
	Long: `Pythia builds deduplicated password-candidate wordlists from a personal
profile: names, dates, pets, keywords and interests, expanded through
templates and bounded mutation stages.

Use it only against accounts you own or are explicitly authorized to assess.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		pythia_err.SetDebugMode(debugMode)
	},
	RunE: pythia_cli.Wrap(func(rc *pythia_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		fmt.Println("⚠️  No subcommand provided. Try `pythia help`.")
		return cmd.Help()
	}),
}

// HelpCmd wraps help so that it can be invoked like a normal command.
var HelpCmd = &cobra.Command{
	Use:   "help",
	Short: "Help about any command",
	Long:  "Displays help for pythia or a specific subcommand.",
	RunE: pythia_cli.Wrap(func(rc *pythia_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		// If no arguments, show root help
		if len(args) == 0 {
			return RootCmd.Help()
		}
		// Otherwise, find the command and show its help.
		c, _, err := RootCmd.Find(args)
		if err != nil || c == nil {
			return fmt.Errorf("command not found: %s", strings.Join(args, " "))
		}
		return c.Help()
	}),
}

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	RootCmd.SetHelpCommand(HelpCmd)
	RootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Verbose error output for bug reports")

	log := logger.L()

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if !helpLogged {
			log.Info("Global help triggered via --help or -h", zap.String("command", cmd.Name()))
			helpLogged = true
			defer log.Info("Global help display complete", zap.String("command", cmd.Name()))
		}
		if err := cmd.Root().Usage(); err != nil {
			log.Warn("Failed to print usage", zap.Error(err))
		}
	})

	for _, subCmd := range []*cobra.Command{
		generate.GenerateCmd,
		inspect.InspectCmd,
		tui.TuiCmd,
		self.SelfCmd,
		VersionCmd,
	} {
		RootCmd.AddCommand(subCmd)
	}
}

// Execute runs the root command and exits with a code matching the
// error class: 0 for success and expected user errors, 2 for bad
// input, 130 for cancellation, 3 for internal bugs, 1 otherwise.
func Execute() {
	defer logger.Sync()

	RegisterCommands()

	if err := RootCmd.Execute(); err != nil {
		code := pythia_err.GetExitCode(err)
		if code == 0 {
			logger.L().Warn("Command completed with expected user error", zap.Error(err))
			os.Exit(0)
		}
		logger.L().Error("Command failed", zap.Error(err), zap.Int("exit_code", code))
		os.Exit(code)
	}
}
