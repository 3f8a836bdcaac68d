// pkg/sampler/sampler.go

// Package sampler shrinks an oversized candidate pool to the requested
// output size without flattening its character. Plain truncation of a
// sorted pool keeps only the shortest candidates; stratified sampling
// reserves quotas for short, special-bearing, and letter-digit
// candidates before filling the rest uniformly.
package sampler

import (
	"math/rand"
	"strings"
	"unicode"
)

// DefaultShortLen is the byte length at or below which a candidate
// counts as short.
const DefaultShortLen = 8

// Quotas are the pool fractions reserved per stratum. They should sum
// to at most 1; the remainder is drawn uniformly from all leftovers.
type Quotas struct {
	Short   float64
	Special float64
	Mixed   float64
}

// Config bounds a sampling pass.
type Config struct {
	// Max is the output size. Pools at or below Max pass through
	// untouched.
	Max int

	// ShortLen is the short-stratum length threshold. Zero means
	// DefaultShortLen.
	ShortLen int

	// Quotas are the reserved per-stratum fractions. A zero value
	// means Default().Quotas.
	Quotas Quotas

	// Specials defines which characters count as special. When
	// empty, anything that is neither letter nor digit qualifies.
	Specials string
}

// Default returns the standard sampling configuration for the given
// output size: a quarter of the output reserved for each stratum, the
// final quarter uniform.
func Default(max int) Config {
	return Config{
		Max:      max,
		ShortLen: DefaultShortLen,
		Quotas:   Quotas{Short: 0.25, Special: 0.25, Mixed: 0.25},
	}
}

type stratum int

const (
	stratumShort stratum = iota
	stratumSpecial
	stratumMixed
	stratumRest
)

// Sample returns at most cfg.Max words. When the pool already fits it
// is returned unchanged. Otherwise each stratum contributes up to its
// quota, drawn without replacement, and the remaining slots are filled
// uniformly from every word not yet chosen. Output preserves input
// order; the same rng seed reproduces the same selection. A nil rng
// falls back to a fixed seed.
func Sample(words []string, cfg Config, rng *rand.Rand) []string {
	if cfg.Max <= 0 || len(words) <= cfg.Max {
		return words
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	shortLen := cfg.ShortLen
	if shortLen <= 0 {
		shortLen = DefaultShortLen
	}
	quotas := cfg.Quotas
	if quotas == (Quotas{}) {
		quotas = Default(cfg.Max).Quotas
	}

	// Each word lands in exactly one stratum, first match wins:
	// short beats special beats mixed.
	strata := map[stratum][]int{}
	for i, w := range words {
		s := classify(w, shortLen, cfg.Specials)
		strata[s] = append(strata[s], i)
	}

	chosen := make([]bool, len(words))
	remaining := cfg.Max

	take := func(pool []int, want int) {
		if want > len(pool) {
			want = len(pool)
		}
		if want > remaining {
			want = remaining
		}
		for _, idx := range drawFrom(pool, want, rng) {
			chosen[idx] = true
		}
		remaining -= want
	}

	take(strata[stratumShort], int(quotas.Short*float64(cfg.Max)))
	take(strata[stratumSpecial], int(quotas.Special*float64(cfg.Max)))
	take(strata[stratumMixed], int(quotas.Mixed*float64(cfg.Max)))

	// Uniform fill from everything still unchosen.
	if remaining > 0 {
		leftovers := make([]int, 0, len(words))
		for i := range words {
			if !chosen[i] {
				leftovers = append(leftovers, i)
			}
		}
		take(leftovers, remaining)
	}

	out := make([]string, 0, cfg.Max)
	for i, w := range words {
		if chosen[i] {
			out = append(out, w)
		}
	}
	return out
}

// drawFrom picks k distinct entries by partial Fisher-Yates. The pool
// slice is reordered in place.
func drawFrom(pool []int, k int, rng *rand.Rand) []int {
	if k >= len(pool) {
		return pool
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

func classify(w string, shortLen int, specials string) stratum {
	if len(w) <= shortLen {
		return stratumShort
	}
	if containsSpecial(w, specials) {
		return stratumSpecial
	}
	if hasLetter(w) && hasDigit(w) {
		return stratumMixed
	}
	return stratumRest
}

func containsSpecial(w, specials string) bool {
	if specials != "" {
		return strings.ContainsAny(w, specials)
	}
	for _, c := range w {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			return true
		}
	}
	return false
}

func hasLetter(w string) bool {
	for _, c := range w {
		if unicode.IsLetter(c) {
			return true
		}
	}
	return false
}

func hasDigit(w string) bool {
	return strings.ContainsAny(w, "0123456789")
}
