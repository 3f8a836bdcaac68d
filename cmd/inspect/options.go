// cmd/inspect/options.go

package inspect

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/output"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_cli"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_io"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/wordlist"
)

// InspectOptionsCmd shows the engine options a run would use after the
// config file, environment, and an optional preset are merged.
var InspectOptionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show the effective engine options",
	Long: `Show the engine options a generate run would use, after merging the
config file, PYTHIA_* environment variables, and built-in defaults.
With --preset the named preset is applied on top, the same way
generate --preset does.

The names match the config file keys, so the table can be copied
straight into ` + cli.ConfigPath() + `.`,
	RunE: pythia_cli.Wrap(runInspectOptions),
}

func init() {
	InspectOptionsCmd.Flags().String("preset", "", "Show options with this preset applied")
	InspectOptionsCmd.Flags().Bool("json", false, "Emit options as JSON")
}

// effectiveOptions mirrors wordlist.Options under the config file key
// names, so --json output pastes into pythia.yaml unchanged.
type effectiveOptions struct {
	MinLength    int      `json:"min-length"`
	MaxLength    int      `json:"max-length"`
	Max          int      `json:"max"`
	Numbers      bool     `json:"numbers"`
	Specials     bool     `json:"specials"`
	Combine      bool     `json:"combine"`
	LeetLevel    int      `json:"leet-level"`
	SpecialChars string   `json:"special-chars"`
	Separators   []string `json:"separators"`
	Seed         int64    `json:"seed"`
	PerSourceCap int      `json:"per-source-cap"`
	NumberCap    int      `json:"number-cap"`
	SpecialCap   int      `json:"special-cap"`
	LeetCap      int      `json:"leet-cap"`
	CombineCap   int      `json:"combine-cap"`
	ConfigFile   string   `json:"config-file,omitempty"`
	Presets      []string `json:"presets,omitempty"`
}

func runInspectOptions(rc *pythia_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

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

	if asJSON {
		return output.JSONToStdout(effectiveOptions{
			MinLength:    opts.MinLength,
			MaxLength:    opts.MaxLength,
			Max:          opts.MaxOutput,
			Numbers:      opts.EnableNumbers,
			Specials:     opts.EnableSpecials,
			Combine:      opts.EnableCombine,
			LeetLevel:    opts.LeetLevel,
			SpecialChars: opts.SpecialChars,
			Separators:   opts.Separators,
			Seed:         opts.Seed,
			PerSourceCap: opts.PerSourceCap,
			NumberCap:    opts.NumberCap,
			SpecialCap:   opts.SpecialCap,
			LeetCap:      opts.LeetCap,
			CombineCap:   opts.CombineCap,
			ConfigFile:   v.ConfigFileUsed(),
			Presets:      cli.PresetNames(v),
		})
	}

	if cfg := v.ConfigFileUsed(); cfg != "" {
		fmt.Printf("🗂️  Config file: %s\n", cfg)
	} else {
		fmt.Printf("🗂️  Config file: none (looked for %s)\n", cli.ConfigPath())
	}
	if names := cli.PresetNames(v); len(names) > 0 {
		fmt.Printf("📋 Presets: %s\n", strings.Join(names, ", "))
	}
	fmt.Println()

	tw := output.NewTable(os.Stdout).Headers("OPTION", "VALUE")
	for _, row := range optionRows(opts) {
		tw.Row(row[0], row[1])
	}
	return tw.Render()
}

func optionRows(opts wordlist.Options) [][2]string {
	quoted := make([]string, len(opts.Separators))
	for i, s := range opts.Separators {
		quoted[i] = strconv.Quote(s)
	}
	return [][2]string{
		{"min-length", strconv.Itoa(opts.MinLength)},
		{"max-length", strconv.Itoa(opts.MaxLength)},
		{"max", strconv.Itoa(opts.MaxOutput)},
		{"numbers", strconv.FormatBool(opts.EnableNumbers)},
		{"specials", strconv.FormatBool(opts.EnableSpecials)},
		{"combine", strconv.FormatBool(opts.EnableCombine)},
		{"leet-level", strconv.Itoa(opts.LeetLevel)},
		{"special-chars", opts.SpecialChars},
		{"separators", strings.Join(quoted, " ")},
		{"seed", strconv.FormatInt(opts.Seed, 10)},
		{"per-source-cap", strconv.Itoa(opts.PerSourceCap)},
		{"number-cap", strconv.Itoa(opts.NumberCap)},
		{"special-cap", strconv.Itoa(opts.SpecialCap)},
		{"leet-cap", strconv.Itoa(opts.LeetCap)},
		{"combine-cap", strconv.Itoa(opts.CombineCap)},
	}
}
