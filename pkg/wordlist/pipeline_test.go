// pkg/wordlist/pipeline_test.go

package wordlist

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/candidate"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/profile"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fullProfile() profile.Profile {
	return profile.Profile{
		FirstName:  "Sarah",
		LastName:   "Jones",
		Nickname:   "Sari",
		PetName:    "Biscuit",
		SpouseName: "Alex",
		ChildNames: []string{"Mia"},
		BirthDate:  "15/06/1990",
		Keywords:   []string{"cricket"},
		Phone:      "0412345678",
		Zip:        "2000",
		Interests:  map[string]string{"team": "chelsea"},
	}
}

func mustGenerate(t *testing.T, prof profile.Profile, opts Options) *Result {
	t.Helper()
	p, err := New(opts, zaptest.NewLogger(t))
	require.NoError(t, err)
	res, err := p.Generate(context.Background(), prof)
	require.NoError(t, err)
	return res
}

func TestGenerateDeterministic(t *testing.T) {
	opts := Default()
	opts.Seed = 7

	a := mustGenerate(t, fullProfile(), opts)
	b := mustGenerate(t, fullProfile(), opts)

	assert.Equal(t, a.Candidates, b.Candidates)
	assert.Equal(t, a.Stats.PoolSize, b.Stats.PoolSize)
	assert.Equal(t, a.Stats.Rejects, b.Stats.Rejects)
}

func TestGenerateDifferentSeedsDiverge(t *testing.T) {
	optsA := Default()
	optsA.Seed = 1
	optsB := Default()
	optsB.Seed = 2

	a := mustGenerate(t, fullProfile(), optsA)
	b := mustGenerate(t, fullProfile(), optsB)

	// Same pool, different special binding and sample selection.
	assert.NotEqual(t, a.Candidates, b.Candidates)
}

func TestGenerateBoundsAndUniqueness(t *testing.T) {
	opts := Default()
	res := mustGenerate(t, fullProfile(), opts)

	require.NotEmpty(t, res.Candidates)
	assert.LessOrEqual(t, len(res.Candidates), opts.MaxOutput)

	seen := make(map[string]bool, len(res.Candidates))
	for _, c := range res.Candidates {
		assert.GreaterOrEqual(t, len(c), opts.MinLength, "too short: %q", c)
		assert.LessOrEqual(t, len(c), opts.MaxLength, "too long: %q", c)
		assert.False(t, seen[c], "duplicate %q", c)
		seen[c] = true
	}
}

func TestGenerateOrdering(t *testing.T) {
	res := mustGenerate(t, fullProfile(), Default())

	assert.True(t, sort.SliceIsSorted(res.Candidates, func(i, j int) bool {
		return candidate.Less(res.Candidates[i], res.Candidates[j])
	}), "candidates must be ordered by length then lexicographically")
}

func TestGeneratePoolAccounting(t *testing.T) {
	res := mustGenerate(t, fullProfile(), Default())
	s := res.Stats

	total := s.Seeds + s.Expanded + s.Numbers + s.Specials + s.Leet + s.Combined
	assert.Equal(t, total, s.PoolSize, "pool must equal seeds plus per-stage additions")
	assert.Equal(t, s.PoolSize-s.Rejects.Total(), s.Kept)
}

func TestGenerateEmptyProfile(t *testing.T) {
	res := mustGenerate(t, profile.Profile{}, Default())

	assert.Empty(t, res.Candidates)
	assert.Zero(t, res.Stats.Seeds)
}

func TestGenerateDisabledStagesAddNothing(t *testing.T) {
	opts := Default()
	opts.EnableNumbers = false
	opts.EnableSpecials = false
	opts.EnableCombine = false
	opts.LeetLevel = 0

	res := mustGenerate(t, fullProfile(), opts)

	assert.Zero(t, res.Stats.Numbers)
	assert.Zero(t, res.Stats.Specials)
	assert.Zero(t, res.Stats.Leet)
	assert.Zero(t, res.Stats.Combined)
	assert.Equal(t, res.Stats.Seeds+res.Stats.Expanded, res.Stats.PoolSize)
}

func TestGenerateSpecialsGate(t *testing.T) {
	opts := Default()
	opts.EnableSpecials = false
	opts.LeetLevel = 2 // levels past 1 would otherwise introduce '@', '!', '$'

	res := mustGenerate(t, fullProfile(), opts)

	require.NotEmpty(t, res.Candidates)
	for _, c := range res.Candidates {
		assert.False(t, strings.ContainsAny(c, opts.SpecialChars),
			"special %q leaked into %q with specials disabled", opts.SpecialChars, c)
	}
}

func TestGenerateSpecialsGateAdmitsProfileSymbols(t *testing.T) {
	opts := Default()
	opts.EnableSpecials = false

	prof := fullProfile()
	prof.Keywords = append(prof.Keywords, "p@ss")

	res := mustGenerate(t, prof, opts)

	var sawAt bool
	for _, c := range res.Candidates {
		if strings.ContainsRune(c, '@') {
			sawAt = true
		}
		assert.NotContains(t, c, "!", "non-profile symbol must stay banned")
	}
	assert.True(t, sawAt, "symbols present in the profile itself survive the gate")
}

func TestGenerateSamplesOversizedPool(t *testing.T) {
	opts := Default()
	opts.MaxOutput = 50

	res := mustGenerate(t, fullProfile(), opts)

	assert.Len(t, res.Candidates, 50)
	assert.True(t, res.Stats.Sampled)
	assert.Greater(t, res.Stats.Kept, 50, "the filtered pool should exceed the output bound")
}

func TestGenerateCancelledContext(t *testing.T) {
	p, err := New(Default(), zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := p.Generate(ctx, fullProfile())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestGenerateInvalidOptions(t *testing.T) {
	opts := Default()
	opts.MinLength = 30 // past MaxLength
	opts.MaxOutput = 0

	_, err := New(opts, zaptest.NewLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min length 30 exceeds max length 20")
	assert.Contains(t, err.Error(), "MaxOutput")
}

func TestRunFutureDeliversResult(t *testing.T) {
	opts := Default()
	opts.Seed = 3

	p, err := New(opts, zaptest.NewLogger(t))
	require.NoError(t, err)

	run := p.Start(context.Background(), fullProfile())
	res, err := run.Wait()
	require.NoError(t, err)
	assert.True(t, run.IsComplete())

	select {
	case <-run.Done():
	default:
		t.Fatal("Done must be closed after Wait returns")
	}

	direct := mustGenerate(t, fullProfile(), opts)
	assert.Equal(t, direct.Candidates, res.Candidates)
}

func BenchmarkGenerate(b *testing.B) {
	prof := fullProfile()
	prof.Keywords = append(prof.Keywords, strings.Repeat("k", 100))

	p, err := New(Default(), zap.NewNop())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Generate(context.Background(), prof); err != nil {
			b.Fatal(err)
		}
	}
}
