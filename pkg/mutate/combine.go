// pkg/mutate/combine.go

package mutate

import "github.com/CodeMonkeyCybersecurity/pythia/pkg/candidate"

// DefaultSeparators joins combined word pairs. The empty separator
// comes first so plain concatenations always survive a truncated list.
var DefaultSeparators = []string{"", ".", "_", "-", "@", "#", "&"}

// Combine augments the set with pairwise joins of the seed vocabulary.
// Every ordered pair of distinct seeds, bounded by prefixCap, is joined
// with every separator. Returns the count of newly added members.
func Combine(set *candidate.Set, seeds []string, separators []string, prefixCap int) int {
	if len(seeds) > prefixCap {
		seeds = seeds[:prefixCap]
	}
	if len(separators) == 0 {
		separators = []string{""}
	}
	added := 0
	for i, a := range seeds {
		for j, b := range seeds {
			if i == j {
				continue
			}
			for _, sep := range separators {
				if set.Add(a + sep + b) {
					added++
				}
			}
		}
	}
	return added
}
