// pkg/mutate/numbers.go

package mutate

import (
	"strings"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/candidate"
)

// Numbers augments a bounded prefix of the set with numeric variants.
// For each candidate it appends every entry of the common number and
// year tables, prepends a short table of leading digits, and, when the
// candidate already ends in a digit run, replaces that run with each
// table entry. Returns the count of newly added members.
func Numbers(set *candidate.Set, prefixCap int) int {
	words := set.Prefix(prefixCap)
	added := 0

	tables := make([]string, 0, len(commonNumbers)+len(commonYears))
	tables = append(tables, commonNumbers...)
	tables = append(tables, commonYears...)

	for _, w := range words {
		run := trailingDigits(w)
		stem := strings.TrimSuffix(w, run)

		for _, num := range tables {
			if set.Add(w + num) {
				added++
			}
			// Swap an existing trailing run for the table entry:
			// "sarah1987" also yields "sarah2024", "sarah123", ...
			if run != "" && stem != "" {
				if set.Add(stem + num) {
					added++
				}
			}
		}
		for _, num := range prependNumbers {
			if set.Add(num + w) {
				added++
			}
		}
	}
	return added
}
