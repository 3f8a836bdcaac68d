// pkg/cli/cli.go

// Package cli wires cobra flags, the optional pythia.yaml config file,
// and PYTHIA_* environment variables into one viper view. Precedence,
// highest first: explicit flag, preset, environment, config file,
// built-in default.
package cli

import (
	"path/filepath"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/wordlist"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/xdg"
)

// ConfigPath returns the config file viper looks for.
func ConfigPath() string {
	return xdg.XDGConfigPath(shared.AppName, "pythia.yaml")
}

// NewViper returns a viper seeded with the engine defaults, the config
// file when present, and PYTHIA_* environment binding. A missing
// config file is not an error.
func NewViper() (*viper.Viper, error) {
	v := viper.New()

	setEngineDefaults(v)

	v.SetConfigName("pythia")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Dir(ConfigPath()))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !cerr.As(err, &notFound) {
			return nil, cerr.Wrapf(err, "read config %s", ConfigPath())
		}
	}

	v.SetEnvPrefix(strings.ToUpper(shared.AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v, nil
}

// setEngineDefaults seeds viper with the engine's built-in defaults so
// every option has a value even before flags are bound.
func setEngineDefaults(v *viper.Viper) {
	d := wordlist.Default()
	v.SetDefault("min-length", d.MinLength)
	v.SetDefault("max-length", d.MaxLength)
	v.SetDefault("max", d.MaxOutput)
	v.SetDefault("numbers", d.EnableNumbers)
	v.SetDefault("specials", d.EnableSpecials)
	v.SetDefault("combine", d.EnableCombine)
	v.SetDefault("leet", d.LeetLevel > 0)
	v.SetDefault("leet-level", d.LeetLevel)
	v.SetDefault("special-chars", d.SpecialChars)
	v.SetDefault("separators", d.Separators)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("per-source-cap", d.PerSourceCap)
	v.SetDefault("number-cap", d.NumberCap)
	v.SetDefault("special-cap", d.SpecialCap)
	v.SetDefault("leet-cap", d.LeetCap)
	v.SetDefault("combine-cap", d.CombineCap)
}

// OptionsFromViper reads the effective engine settings out of v: flag,
// then environment, then config file, then built-in default.
func OptionsFromViper(v *viper.Viper) wordlist.Options {
	opts := wordlist.Default()
	opts.MinLength = v.GetInt("min-length")
	opts.MaxLength = v.GetInt("max-length")
	opts.MaxOutput = v.GetInt("max")
	opts.EnableNumbers = v.GetBool("numbers")
	opts.EnableSpecials = v.GetBool("specials")
	opts.EnableCombine = v.GetBool("combine")
	opts.LeetLevel = v.GetInt("leet-level")
	if !v.GetBool("leet") {
		opts.LeetLevel = 0
	}
	opts.SpecialChars = v.GetString("special-chars")
	opts.Separators = v.GetStringSlice("separators")
	opts.Seed = v.GetInt64("seed")
	opts.PerSourceCap = v.GetInt("per-source-cap")
	opts.NumberCap = v.GetInt("number-cap")
	opts.SpecialCap = v.GetInt("special-cap")
	opts.LeetCap = v.GetInt("leet-cap")
	opts.CombineCap = v.GetInt("combine-cap")
	return opts
}

// BindFlags binds every flag of cmd to v, aggregating all failures.
func BindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var result error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			result = multierror.Append(result, err)
		}
	})
	return result
}
