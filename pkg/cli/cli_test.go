// pkg/cli/cli_test.go

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_err"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/wordlist"
)

// writeConfig points XDG_CONFIG_HOME at a temp dir holding the given
// pythia.yaml content.
func writeConfig(t *testing.T, content string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, "pythia")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pythia.yaml"), []byte(content), 0600))
}

func TestNewViperDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	v, err := NewViper()
	require.NoError(t, err)

	d := wordlist.Default()
	assert.Equal(t, d.MinLength, v.GetInt("min-length"))
	assert.Equal(t, d.MaxOutput, v.GetInt("max"))
	assert.Equal(t, d.EnableNumbers, v.GetBool("numbers"))
	assert.Equal(t, d.SpecialChars, v.GetString("special-chars"))
}

func TestNewViperReadsConfigFile(t *testing.T) {
	writeConfig(t, "min-length: 8\nmax: 1000\n")

	v, err := NewViper()
	require.NoError(t, err)

	assert.Equal(t, 8, v.GetInt("min-length"))
	assert.Equal(t, 1000, v.GetInt("max"))
	assert.Equal(t, wordlist.Default().MaxLength, v.GetInt("max-length"),
		"untouched keys keep their defaults")
}

func TestNewViperEnvOverridesConfig(t *testing.T) {
	writeConfig(t, "min-length: 8\n")
	t.Setenv("PYTHIA_MIN_LENGTH", "9")

	v, err := NewViper()
	require.NoError(t, err)

	assert.Equal(t, 9, v.GetInt("min-length"))
}

func TestNewViperRejectsMalformedConfig(t *testing.T) {
	writeConfig(t, "min-length: [unclosed\n")

	_, err := NewViper()
	assert.Error(t, err)
}

func TestBindFlags(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Int("min-length", 6, "")
	cmd.Flags().Bool("numbers", true, "")
	require.NoError(t, cmd.Flags().Set("min-length", "12"))

	v, err := NewViper()
	require.NoError(t, err)
	require.NoError(t, BindFlags(cmd, v))

	assert.Equal(t, 12, v.GetInt("min-length"))
	assert.True(t, v.GetBool("numbers"))
}

func TestFlagOverridesEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PYTHIA_MIN_LENGTH", "9")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Int("min-length", 6, "")
	require.NoError(t, cmd.Flags().Set("min-length", "12"))

	v, err := NewViper()
	require.NoError(t, err)
	require.NoError(t, BindFlags(cmd, v))

	assert.Equal(t, 12, v.GetInt("min-length"))
}

const presetConfig = `
min-length: 7
presets:
  quick:
    min-length: 6
    max-length: 12
    leet-level: 0
    combine: false
    max: 500
  thorough:
    leet-level: 3
    leet-cap: 400
`

func TestPresetNames(t *testing.T) {
	t.Run("sorted names", func(t *testing.T) {
		writeConfig(t, presetConfig)
		v, err := NewViper()
		require.NoError(t, err)

		assert.Equal(t, []string{"quick", "thorough"}, PresetNames(v))
	})

	t.Run("no presets section", func(t *testing.T) {
		writeConfig(t, "min-length: 8\n")
		v, err := NewViper()
		require.NoError(t, err)

		assert.Nil(t, PresetNames(v))
	})
}

func TestLoadPreset(t *testing.T) {
	t.Run("decodes fields", func(t *testing.T) {
		writeConfig(t, presetConfig)
		v, err := NewViper()
		require.NoError(t, err)

		p, err := LoadPreset(v, "quick")
		require.NoError(t, err)

		require.NotNil(t, p.MinLength)
		assert.Equal(t, 6, *p.MinLength)
		require.NotNil(t, p.Combine)
		assert.False(t, *p.Combine)
		assert.Nil(t, p.Numbers, "unset fields stay nil")
	})

	t.Run("unknown preset lists alternatives", func(t *testing.T) {
		writeConfig(t, presetConfig)
		v, err := NewViper()
		require.NoError(t, err)

		_, err = LoadPreset(v, "nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quick")
		assert.Equal(t, 2, pythia_err.GetExitCode(err))
	})

	t.Run("unknown preset with none defined", func(t *testing.T) {
		writeConfig(t, "min-length: 8\n")
		v, err := NewViper()
		require.NoError(t, err)

		_, err = LoadPreset(v, "quick")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "No presets are defined")
	})
}

func TestPresetApply(t *testing.T) {
	six := 6
	twelve := 12
	off := false

	t.Run("overlays unset flags", func(t *testing.T) {
		opts := wordlist.Default()
		p := Preset{MinLength: &six, MaxLength: &twelve, Combine: &off}

		p.Apply(&opts, nil)

		assert.Equal(t, 6, opts.MinLength)
		assert.Equal(t, 12, opts.MaxLength)
		assert.False(t, opts.EnableCombine)
		assert.True(t, opts.EnableNumbers, "fields the preset omits are untouched")
	})

	t.Run("explicit flags win", func(t *testing.T) {
		opts := wordlist.Default()
		opts.MinLength = 10
		p := Preset{MinLength: &six, MaxLength: &twelve}

		p.Apply(&opts, func(name string) bool { return name == "min-length" })

		assert.Equal(t, 10, opts.MinLength)
		assert.Equal(t, 12, opts.MaxLength)
	})

	t.Run("either leet flag pins the level", func(t *testing.T) {
		opts := wordlist.Default()
		zero := 0
		p := Preset{LeetLevel: &zero}

		p.Apply(&opts, func(name string) bool { return name == "leet" })

		assert.Equal(t, wordlist.Default().LeetLevel, opts.LeetLevel)
	})
}

func TestOptionsFromViper(t *testing.T) {
	t.Run("defaults round trip", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		v, err := NewViper()
		require.NoError(t, err)

		assert.Equal(t, wordlist.Default(), OptionsFromViper(v))
	})

	t.Run("config values flow through", func(t *testing.T) {
		writeConfig(t, "min-length: 10\nseed: 42\nseparators: [\"_\", \".\"]\n")

		v, err := NewViper()
		require.NoError(t, err)

		opts := OptionsFromViper(v)
		assert.Equal(t, 10, opts.MinLength)
		assert.Equal(t, int64(42), opts.Seed)
		assert.Equal(t, []string{"_", "."}, opts.Separators)
	})

	t.Run("leet off zeroes the level", func(t *testing.T) {
		writeConfig(t, "leet: false\nleet-level: 3\n")

		v, err := NewViper()
		require.NoError(t, err)

		assert.Equal(t, 0, OptionsFromViper(v).LeetLevel)
	})
}
