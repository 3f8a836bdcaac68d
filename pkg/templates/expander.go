// pkg/templates/expander.go

package templates

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Soft pre-filter band applied at expansion time. Deliberately wider
// than most final length configs; the end filter owns the hard bounds.
const (
	DefaultBandMin = 6
	DefaultBandMax = 20
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// ExpandConfig tunes one expansion pass.
type ExpandConfig struct {
	BandMin int
	BandMax int

	// Banned lists characters the expansion may not introduce. It is
	// populated with the configured special set when special
	// augmentation is disabled; characters that appeared verbatim in
	// profile input are exempted by the caller before the pass.
	Banned map[rune]bool
}

// Expand substitutes bindings into every pattern of the table and
// returns the accepted candidates. A pattern referencing an unbound
// slot is skipped without error. Accepted candidates also contribute
// title-case and capitalized variants.
func Expand(t Table, b Bindings, cfg ExpandConfig) []string {
	if cfg.BandMin <= 0 {
		cfg.BandMin = DefaultBandMin
	}
	if cfg.BandMax <= 0 {
		cfg.BandMax = DefaultBandMax
	}

	var out []string
	accept := func(v string) {
		if len(v) < cfg.BandMin || len(v) > cfg.BandMax {
			return
		}
		if containsBanned(v, cfg.Banned) {
			return
		}
		out = append(out, v)
	}

	for _, pattern := range t.Patterns {
		expanded, ok := expandPattern(pattern, b)
		if !ok {
			continue
		}
		accept(expanded)
		accept(titleCaser.String(expanded))
		accept(capitalizeFirst(expanded))
	}
	return out
}

// expandPattern substitutes one pattern. ok is false when any
// referenced slot is unbound or the pattern itself is malformed; both
// mean "skip this pattern", never an error.
func expandPattern(pattern string, b Bindings) (string, bool) {
	var sb strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '{' {
			if c == '}' {
				return "", false
			}
			sb.WriteByte(c)
			continue
		}
		end := strings.IndexByte(pattern[i+1:], '}')
		if end < 0 {
			return "", false
		}
		slot, known := ParseSlot(pattern[i+1 : i+1+end])
		if !known {
			return "", false
		}
		value, bound := b[slot]
		if !bound {
			return "", false
		}
		sb.WriteString(value)
		i += end + 1
	}
	return sb.String(), true
}

func containsBanned(v string, banned map[rune]bool) bool {
	if len(banned) == 0 {
		return false
	}
	for _, r := range v {
		if banned[r] {
			return true
		}
	}
	return false
}

func capitalizeFirst(v string) string {
	for i, r := range v {
		return string(unicode.ToUpper(r)) + v[i+len(string(r)):]
	}
	return v
}
