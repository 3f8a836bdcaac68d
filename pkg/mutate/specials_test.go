// pkg/mutate/specials_test.go

package mutate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/candidate"
)

func TestSpecialsInsertionPoints(t *testing.T) {
	set := candidate.NewSetFrom("sarahjones")
	added := Specials(set, "!", 10)

	assert.Positive(t, added)
	assert.True(t, set.Contains("sarahjones!"))
	assert.True(t, set.Contains("!sarahjones"))
	assert.True(t, set.Contains("!sarahjones!"))
	assert.True(t, set.Contains("sarah!jones"), "midpoint variant for words past the threshold")
}

func TestSpecialsShortWordSkipsMidpoint(t *testing.T) {
	set := candidate.NewSetFrom("sarah")
	Specials(set, "!", 10)

	assert.True(t, set.Contains("sarah!"))
	assert.True(t, set.Contains("!sarah"))
	assert.True(t, set.Contains("!sarah!"))
	assert.False(t, set.Contains("sa!rah"))
}

func TestSpecialsEmptySymbolSetIsNoOp(t *testing.T) {
	set := candidate.NewSetFrom("sarah")
	added := Specials(set, "", 10)

	assert.Zero(t, added)
	assert.Equal(t, 1, set.Len())
}

func TestSpecialsEverySymbol(t *testing.T) {
	set := candidate.NewSetFrom("sarah")
	Specials(set, "!@", 10)

	assert.True(t, set.Contains("sarah@"))
	assert.True(t, set.Contains("@sarah@"))
	assert.True(t, set.Contains("sarah!"))
}

func TestSpecialsHonorsPrefixCap(t *testing.T) {
	set := candidate.NewSetFrom("aaa", "zz")
	Specials(set, "!", 1)

	assert.True(t, set.Contains("zz!"))
	assert.False(t, set.Contains("aaa!"))
}
