// pkg/cli/presets.go

package cli

import (
	"sort"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_err"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/wordlist"
)

// Preset is a named bundle of engine settings from the config file's
// presets: section. Pointer fields distinguish "not set" from zero.
type Preset struct {
	MinLength    *int      `mapstructure:"min-length"`
	MaxLength    *int      `mapstructure:"max-length"`
	MaxOutput    *int      `mapstructure:"max"`
	Numbers      *bool     `mapstructure:"numbers"`
	Specials     *bool     `mapstructure:"specials"`
	Combine      *bool     `mapstructure:"combine"`
	LeetLevel    *int      `mapstructure:"leet-level"`
	SpecialChars *string   `mapstructure:"special-chars"`
	Separators   *[]string `mapstructure:"separators"`
	Seed         *int64    `mapstructure:"seed"`
	NumberCap    *int      `mapstructure:"number-cap"`
	SpecialCap   *int      `mapstructure:"special-cap"`
	LeetCap      *int      `mapstructure:"leet-cap"`
	CombineCap   *int      `mapstructure:"combine-cap"`
	PerSourceCap *int      `mapstructure:"per-source-cap"`
}

// PresetNames lists the presets the config file defines, sorted.
func PresetNames(v *viper.Viper) []string {
	defined := v.GetStringMap("presets")
	if len(defined) == 0 {
		return nil
	}
	names := make([]string, 0, len(defined))
	for name := range defined {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadPreset reads one named preset. An unknown name is a validation
// error listing what the config file actually defines.
func LoadPreset(v *viper.Viper, name string) (Preset, error) {
	sub := v.Sub("presets." + name)
	if sub == nil {
		names := PresetNames(v)
		if len(names) == 0 {
			return Preset{}, pythia_err.NewValidationError(
				"unknown preset "+name,
				"No presets are defined in "+ConfigPath(),
				"Add a presets: section with named engine settings")
		}
		return Preset{}, pythia_err.NewValidationError(
			"unknown preset "+name,
			"Available presets: "+strings.Join(names, ", "))
	}

	var p Preset
	if err := sub.Unmarshal(&p); err != nil {
		return Preset{}, cerr.Wrapf(err, "decode preset %q", name)
	}
	return p, nil
}

// Apply overlays the preset onto opts. Settings the user pinned with
// an explicit flag win; changed reports whether a flag was set.
func (p Preset) Apply(opts *wordlist.Options, changed func(name string) bool) {
	if changed == nil {
		changed = func(string) bool { return false }
	}
	if p.MinLength != nil && !changed("min-length") {
		opts.MinLength = *p.MinLength
	}
	if p.MaxLength != nil && !changed("max-length") {
		opts.MaxLength = *p.MaxLength
	}
	if p.MaxOutput != nil && !changed("max") {
		opts.MaxOutput = *p.MaxOutput
	}
	if p.Numbers != nil && !changed("numbers") {
		opts.EnableNumbers = *p.Numbers
	}
	if p.Specials != nil && !changed("specials") {
		opts.EnableSpecials = *p.Specials
	}
	if p.Combine != nil && !changed("combine") {
		opts.EnableCombine = *p.Combine
	}
	if p.LeetLevel != nil && !changed("leet-level") && !changed("leet") {
		opts.LeetLevel = *p.LeetLevel
	}
	if p.SpecialChars != nil && !changed("special-chars") {
		opts.SpecialChars = *p.SpecialChars
	}
	if p.Separators != nil && !changed("separators") {
		opts.Separators = *p.Separators
	}
	if p.Seed != nil && !changed("seed") {
		opts.Seed = *p.Seed
	}
	if p.NumberCap != nil && !changed("number-cap") {
		opts.NumberCap = *p.NumberCap
	}
	if p.SpecialCap != nil && !changed("special-cap") {
		opts.SpecialCap = *p.SpecialCap
	}
	if p.LeetCap != nil && !changed("leet-cap") {
		opts.LeetCap = *p.LeetCap
	}
	if p.CombineCap != nil && !changed("combine-cap") {
		opts.CombineCap = *p.CombineCap
	}
	if p.PerSourceCap != nil && !changed("per-source-cap") {
		opts.PerSourceCap = *p.PerSourceCap
	}
}
