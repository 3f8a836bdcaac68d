// cmd/self/self.go

package self

import (
	"github.com/spf13/cobra"
)

// SelfCmd groups commands that manage the pythia installation itself
// rather than generating wordlists.
var SelfCmd = &cobra.Command{
	Use:   "self",
	Short: "Manage the pythia installation itself",
	Long: `The self command manages pythia's own behavior, such as the local
telemetry opt-in. It never touches wordlists or profiles.`,
}
