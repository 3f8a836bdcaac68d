// pkg/wordlist/options_test.go

package wordlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptionsValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	opts := Default()
	opts.MinLength = 30 // exceeds MaxLength 20
	opts.MaxOutput = -1
	opts.LeetLevel = 9
	opts.NumberCap = -5

	err := opts.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "min length 30 exceeds max length 20")
	assert.Contains(t, msg, "MaxOutput")
	assert.Contains(t, msg, "LeetLevel")
	assert.Contains(t, msg, "NumberCap")
}

func TestValidateLengthBand(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"defaults pass", func(o *Options) {}, false},
		{"equal min and max", func(o *Options) { o.MinLength, o.MaxLength = 8, 8 }, false},
		{"inverted band", func(o *Options) { o.MinLength, o.MaxLength = 9, 8 }, true},
		{"zero min", func(o *Options) { o.MinLength = 0 }, true},
		{"zero output", func(o *Options) { o.MaxOutput = 0 }, true},
		{"leet level four", func(o *Options) { o.LeetLevel = 4 }, false},
		{"leet level five", func(o *Options) { o.LeetLevel = 5 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Default()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLeetBudgetCrossField(t *testing.T) {
	opts := Default()
	opts.LeetLevel = 4
	opts.LeetComboBudget = 0

	err := opts.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "combination budget")
}
