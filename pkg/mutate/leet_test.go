// pkg/mutate/leet_test.go

package mutate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/candidate"
)

func leetCfg(level int) LeetConfig {
	return LeetConfig{
		Level:           level,
		PrefixCap:       50,
		ExhaustiveLimit: 3,
		ComboBudget:     1000,
	}
}

func TestLeetDisabled(t *testing.T) {
	set := candidate.NewSetFrom("sarah")
	assert.Zero(t, Leet(set, leetCfg(0), nil))
	assert.Equal(t, 1, set.Len())
}

func TestLeetLevelOneCanonical(t *testing.T) {
	set := candidate.NewSetFrom("sarah")
	added := Leet(set, leetCfg(1), nil)

	require.Equal(t, 1, added)
	assert.True(t, set.Contains("54r4h"), "all mapped letters swapped at once")
	assert.False(t, set.Contains("s4r4h"), "per-class variants belong to level 2")
}

func TestLeetLevelOneDeterministicWithoutRNG(t *testing.T) {
	a := candidate.NewSetFrom("sarah", "tiger")
	b := candidate.NewSetFrom("sarah", "tiger")

	Leet(a, leetCfg(1), nil)
	Leet(b, leetCfg(1), nil)
	assert.Equal(t, a.Sorted(), b.Sorted())
}

func TestLeetLevelTwoPerClassVariants(t *testing.T) {
	set := candidate.NewSetFrom("sarah")
	Leet(set, leetCfg(2), nil)

	assert.True(t, set.Contains("54r4h"))
	assert.True(t, set.Contains("s4r4h"), "class a, first substitution")
	assert.True(t, set.Contains("s@r@h"), "class a, second substitution")
	assert.True(t, set.Contains("5arah"), "class s, first substitution")
	assert.True(t, set.Contains("$arah"), "class s, second substitution")
}

func TestLeetLevelThreeExhaustsSmallWords(t *testing.T) {
	// "tea" has three substitutable positions, at the limit.
	set := candidate.NewSetFrom("tea")
	Leet(set, leetCfg(3), nil)

	assert.True(t, set.Contains("734"))
	assert.True(t, set.Contains("73@"))
	assert.True(t, set.Contains("te4"))
	assert.True(t, set.Contains("7ea"))
}

func TestLeetLevelThreeSamplesLongWords(t *testing.T) {
	// Far more than ExhaustiveLimit substitutable positions.
	word := "assassination"

	a := candidate.NewSetFrom(word)
	b := candidate.NewSetFrom(word)
	Leet(a, leetCfg(3), rand.New(rand.NewSource(42)))
	Leet(b, leetCfg(3), rand.New(rand.NewSource(42)))

	assert.Greater(t, a.Len(), 20, "sampled combinations beyond the deterministic variants")
	assert.Equal(t, a.Sorted(), b.Sorted(), "same seed, same samples")
}

func TestLeetLevelThreeWithoutRNGStaysDeterministic(t *testing.T) {
	set := candidate.NewSetFrom("assassination")
	added := Leet(set, leetCfg(3), nil)

	// Levels 1 and 2 still contribute; the sampled tail is skipped.
	assert.Positive(t, added)
	assert.True(t, set.Contains("4554551n4710n"))
}

func TestLeetLevelFourBudget(t *testing.T) {
	cfg := leetCfg(4)
	cfg.ComboBudget = 4

	// "aa" yields a 9-way product (a/4/@ per position), past the
	// budget of 4, so the stage samples instead.
	a := candidate.NewSetFrom("aa")
	b := candidate.NewSetFrom("aa")
	Leet(a, cfg, rand.New(rand.NewSource(7)))
	Leet(b, cfg, rand.New(rand.NewSource(7)))
	assert.Equal(t, a.Sorted(), b.Sorted())

	cfg.ComboBudget = 1000
	full := candidate.NewSetFrom("aa")
	Leet(full, cfg, nil)
	for _, want := range []string{"44", "4@", "@4", "@@", "a4", "@a"} {
		assert.True(t, full.Contains(want), "missing %q", want)
	}
}

func TestLeetBannedSymbols(t *testing.T) {
	cfg := leetCfg(2)
	cfg.Banned = map[rune]bool{'@': true, '!': true, '$': true}

	set := candidate.NewSetFrom("sarah")
	Leet(set, cfg, nil)

	assert.True(t, set.Contains("s4r4h"))
	assert.True(t, set.Contains("5arah"))
	assert.False(t, set.Contains("s@r@h"), "banned symbol must not appear")
	assert.False(t, set.Contains("$arah"))
}

func TestLeetHonorsPrefixCap(t *testing.T) {
	cfg := leetCfg(1)
	cfg.PrefixCap = 1

	set := candidate.NewSetFrom("sss", "aa")
	Leet(set, cfg, nil)

	assert.True(t, set.Contains("44"), "prefix member mutated")
	assert.False(t, set.Contains("555"), "member past the cap untouched")
}
