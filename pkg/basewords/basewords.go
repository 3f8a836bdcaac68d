// pkg/basewords/basewords.go

// Package basewords derives the seed vocabulary a run combines and
// mutates: for every usable profile field it emits a bounded list of
// shape variants plus a few fixed decorations.
package basewords

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/profile"
)

// DefaultPerSourceCap bounds how many variants one field may
// contribute, so a single long field cannot dominate later stages.
const DefaultPerSourceCap = 20

var (
	decorSuffixes = []string{"1", "123", "y", "ie"}
	decorPrefixes = []string{"my", "super"}
	honorifics    = []string{"ji", "bhai", "babu", "kumar", "singh"}

	titleCaser = cases.Title(language.English, cases.NoLower)
)

// Extract builds the seed vocabulary from a normalized profile. The
// result is deduplicated and ordered by source: names first, then
// family, keywords, interests, and finally date- and number-derived
// digit strings. Order is deterministic for a given profile.
func Extract(n profile.Normalized, perSourceCap int) []string {
	if perSourceCap <= 0 {
		perSourceCap = DefaultPerSourceCap
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(words []string) {
		for _, w := range words {
			if w == "" {
				continue
			}
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}

	for _, w := range textSources(n) {
		add(wordVariants(w, perSourceCap))
	}
	add(dateSeeds(n.Birth))
	for _, d := range n.Other {
		add(dateSeeds(d))
	}
	add(numberSeeds(n))

	return out
}

// textSources lists the free-text fields in a fixed order. Interest
// values follow their category keys sorted so map order cannot leak.
func textSources(n profile.Normalized) []string {
	var src []string
	for _, w := range []string{n.First, n.Last, n.Nick, n.Maiden, n.Pet, n.Spouse} {
		if w != "" {
			src = append(src, w)
		}
	}
	src = append(src, n.Children...)
	src = append(src, n.Keywords...)
	for _, cat := range sortedKeys(n.Interests) {
		src = append(src, n.Interests[cat])
	}
	return src
}

// wordVariants emits the shape variants for one word in a fixed order,
// truncated at limit.
func wordVariants(w string, limit int) []string {
	runes := []rune(w)
	variants := []string{
		w,
		titleCaser.String(w),
		strings.ToUpper(w),
		string(runes[0]),
	}

	if stripped := stripVowels(w); stripped != "" && stripped != w {
		variants = append(variants, stripped)
	}
	if len(w) >= 3 {
		variants = append(variants, reverse(w))
	}
	if len(w) <= 8 {
		variants = append(variants, w+w)
	}

	for _, s := range decorSuffixes {
		variants = append(variants, w+s)
	}
	for _, h := range honorifics {
		variants = append(variants, w+h)
	}
	for _, p := range decorPrefixes {
		variants = append(variants, p+w)
	}

	if len(variants) > limit {
		variants = variants[:limit]
	}
	return variants
}

// dateSeeds turns date components into the digit strings people reuse
// in passwords.
func dateSeeds(d profile.DateComponents) []string {
	if d.IsZero() {
		return nil
	}
	var seeds []string
	if d.Day != "" && d.Month != "" {
		seeds = append(seeds, d.Day+d.Month, d.Month+d.Day)
		if d.YearShort != "" {
			seeds = append(seeds, d.Day+d.Month+d.YearShort)
		}
	}
	if d.Year != "" {
		seeds = append(seeds, d.Year, d.YearShort)
	}
	return seeds
}

func numberSeeds(n profile.Normalized) []string {
	var seeds []string
	if n.Phone != "" {
		seeds = append(seeds, n.Phone)
		if len(n.Phone) >= 4 {
			seeds = append(seeds, n.Phone[len(n.Phone)-4:])
		}
	}
	if n.Zip != "" {
		seeds = append(seeds, n.Zip)
	}
	return seeds
}

func stripVowels(w string) string {
	var b strings.Builder
	for _, r := range w {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func reverse(w string) string {
	runes := []rune(w)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
