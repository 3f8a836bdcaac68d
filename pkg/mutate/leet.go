// pkg/mutate/leet.go

package mutate

import (
	"math/rand"
	"sort"
	"strings"
	"unicode"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/candidate"
)

// leetMap is the substitution table, keyed by lower-case letter. The
// first entry per letter is the canonical substitution used at level 1.
var leetMap = map[rune][]string{
	'a': {"4", "@"},
	'b': {"8"},
	'e': {"3"},
	'g': {"9"},
	'i': {"1", "!"},
	'l': {"1"},
	'o': {"0"},
	's': {"5", "$"},
	't': {"7"},
}

// LeetConfig bounds the leet stage.
type LeetConfig struct {
	// Level selects aggressiveness, 1 through 4. Zero or below
	// disables the stage.
	Level int

	// PrefixCap bounds how many existing candidates are mutated.
	PrefixCap int

	// ExhaustiveLimit is the maximum number of substitutable
	// positions for which level 3 still enumerates the full
	// cross product.
	ExhaustiveLimit int

	// ComboBudget caps the level 4 cross product; words whose
	// product exceeds it get ComboBudget sampled combinations
	// instead. It is also the sample count for level 3 words past
	// ExhaustiveLimit.
	ComboBudget int

	// Banned removes substitutions that would introduce one of
	// these symbols, so the stage stays digit-only when special
	// characters are switched off.
	Banned map[rune]bool
}

// Leet augments a bounded prefix of the set with leet-speak variants.
// Levels 1 and 2 are fully deterministic; levels 3 and 4 enumerate
// substitution combinations exhaustively below their ceilings and fall
// back to rng-sampled combinations above them. Returns the count of
// newly added members.
func Leet(set *candidate.Set, cfg LeetConfig, rng *rand.Rand) int {
	if cfg.Level <= 0 {
		return 0
	}
	subs := effectiveLeetMap(cfg.Banned)
	if len(subs) == 0 {
		return 0
	}
	words := set.Prefix(cfg.PrefixCap)
	added := 0
	for _, w := range words {
		for _, v := range leetVariants(w, cfg, subs, rng) {
			if set.Add(v) {
				added++
			}
		}
	}
	return added
}

// leetVariants generates the variants for one word at the given level.
func leetVariants(w string, cfg LeetConfig, subs map[rune][]string, rng *rand.Rand) []string {
	// Level 1: every mapped letter swapped for its canonical
	// substitution at once. "sarah" -> "54r4h".
	out := []string{substituteAll(w, subs)}

	if cfg.Level >= 2 {
		out = append(out, perClassVariants(w, subs)...)
	}

	switch {
	case cfg.Level == 3:
		opts, substitutable := positionOptions(w, subs)
		if substitutable == 0 {
			break
		}
		if substitutable <= cfg.ExhaustiveLimit {
			out = append(out, crossProduct(opts)...)
		} else {
			out = append(out, sampleCombos(opts, cfg.ComboBudget, rng)...)
		}
	case cfg.Level >= 4:
		opts, substitutable := positionOptions(w, subs)
		if substitutable == 0 {
			break
		}
		if productSize(opts, cfg.ComboBudget) <= cfg.ComboBudget {
			out = append(out, crossProduct(opts)...)
		} else {
			out = append(out, sampleCombos(opts, cfg.ComboBudget, rng)...)
		}
	}
	return out
}

// substituteAll replaces every mapped letter with its first
// substitution, both cases.
func substituteAll(w string, subs map[rune][]string) string {
	var b strings.Builder
	b.Grow(len(w))
	for _, r := range w {
		if opts, ok := subs[unicode.ToLower(r)]; ok {
			b.WriteString(opts[0])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// perClassVariants replaces one letter class at a time, trying up to
// the first two substitutions for that class.
func perClassVariants(w string, subs map[rune][]string) []string {
	classes := make([]rune, 0, len(subs))
	for c := range subs {
		if strings.ContainsRune(strings.ToLower(w), c) {
			classes = append(classes, c)
		}
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })

	var out []string
	for _, c := range classes {
		opts := subs[c]
		if len(opts) > 2 {
			opts = opts[:2]
		}
		for _, sub := range opts {
			v := strings.ReplaceAll(w, string(c), sub)
			v = strings.ReplaceAll(v, string(unicode.ToUpper(c)), sub)
			out = append(out, v)
		}
	}
	return out
}

// positionOptions maps each rune of the word to its substitution
// choices. Mapped positions offer the original rune plus every
// substitution; unmapped positions offer only themselves. The second
// return is the count of mapped positions.
func positionOptions(w string, subs map[rune][]string) ([][]string, int) {
	runes := []rune(w)
	opts := make([][]string, len(runes))
	substitutable := 0
	for i, r := range runes {
		if s, ok := subs[unicode.ToLower(r)]; ok {
			choices := make([]string, 0, len(s)+1)
			choices = append(choices, string(r))
			choices = append(choices, s...)
			opts[i] = choices
			substitutable++
		} else {
			opts[i] = []string{string(r)}
		}
	}
	return opts, substitutable
}

// productSize returns the total combination count, saturating at
// limit+1 so callers can compare without overflow.
func productSize(opts [][]string, limit int) int {
	total := 1
	for _, o := range opts {
		total *= len(o)
		if total > limit {
			return limit + 1
		}
	}
	return total
}

// crossProduct enumerates every combination, odometer style.
func crossProduct(opts [][]string) []string {
	if len(opts) == 0 {
		return nil
	}
	idx := make([]int, len(opts))
	var out []string
	for {
		var b strings.Builder
		for i, o := range opts {
			b.WriteString(o[idx[i]])
		}
		out = append(out, b.String())

		i := len(idx) - 1
		for i >= 0 {
			idx[i]++
			if idx[i] < len(opts[i]) {
				break
			}
			idx[i] = 0
			i--
		}
		if i < 0 {
			return out
		}
	}
}

// sampleCombos draws n random combinations. Duplicates are possible
// and harmless since results land in a set.
func sampleCombos(opts [][]string, n int, rng *rand.Rand) []string {
	if rng == nil || n <= 0 {
		return nil
	}
	out := make([]string, 0, n)
	for k := 0; k < n; k++ {
		var b strings.Builder
		for _, o := range opts {
			b.WriteString(o[rng.Intn(len(o))])
		}
		out = append(out, b.String())
	}
	return out
}

// effectiveLeetMap filters substitutions that would introduce a banned
// symbol, dropping letter classes left without any substitution.
func effectiveLeetMap(banned map[rune]bool) map[rune][]string {
	if len(banned) == 0 {
		return leetMap
	}
	m := make(map[rune][]string, len(leetMap))
	for c, opts := range leetMap {
		kept := make([]string, 0, len(opts))
		for _, s := range opts {
			if len(s) == 1 && banned[rune(s[0])] {
				continue
			}
			kept = append(kept, s)
		}
		if len(kept) > 0 {
			m[c] = kept
		}
	}
	return m
}
