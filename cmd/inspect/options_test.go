// cmd/inspect/options_test.go

package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/wordlist"
)

func TestOptionRows(t *testing.T) {
	opts := wordlist.Default()
	opts.Separators = []string{"", "-", "_"}

	rows := optionRows(opts)
	require.Len(t, rows, 15)

	byName := make(map[string]string, len(rows))
	for _, row := range rows {
		byName[row[0]] = row[1]
	}

	assert.Equal(t, "6", byName["min-length"])
	assert.Equal(t, "true", byName["numbers"])
	assert.Equal(t, opts.SpecialChars, byName["special-chars"])
	assert.Equal(t, `"" "-" "_"`, byName["separators"],
		"the empty separator must stay visible")
	assert.Equal(t, "0", byName["seed"])
}
