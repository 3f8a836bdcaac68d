/* cmd/version.go */

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/shared"
)

// VersionCmd prints the build identity.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s (%s)\n", shared.AppName, shared.Version, runtime.Version())
	},
}
