// pkg/mutate/specials.go

package mutate

import "github.com/CodeMonkeyCybersecurity/pythia/pkg/candidate"

// midpointLen is the length above which a midpoint insertion variant
// is generated in addition to the edge insertions.
const midpointLen = 8

// Specials augments a bounded prefix of the set with special-character
// variants: each configured symbol is inserted at the start, the end,
// both ends, and, for candidates longer than midpointLen, the middle.
// An empty symbol set makes the stage a no-op. Returns the count of
// newly added members.
func Specials(set *candidate.Set, symbols string, prefixCap int) int {
	if symbols == "" {
		return 0
	}
	words := set.Prefix(prefixCap)
	added := 0

	for _, w := range words {
		for _, sym := range symbols {
			s := string(sym)
			if set.Add(w + s) {
				added++
			}
			if set.Add(s + w) {
				added++
			}
			if set.Add(s + w + s) {
				added++
			}
			if len(w) > midpointLen {
				head, tail := splitRunes(w)
				if set.Add(head + s + tail) {
					added++
				}
			}
		}
	}
	return added
}
