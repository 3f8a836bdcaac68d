// pkg/mutate/mutate.go

// Package mutate implements the four augmentation stages of the
// generation pipeline: numeric, special-character, leet substitution,
// and pairwise combination. Every stage reads a bounded, deterministic
// prefix of the accumulated candidate set and unions its results back;
// stages never remove members.
package mutate

// commonNumbers are digit strings people actually append, roughly
// ordered by breach-corpus frequency.
var commonNumbers = []string{
	"123", "1234", "12345", "123456",
	"321", "4321",
	"111", "777", "007",
	"69", "420", "786", "143",
	"01", "02", "03", "10",
	"99", "00", "100",
}

// commonYears are plausible password years, recent first.
var commonYears = []string{
	"2025", "2024", "2023", "2022", "2021", "2020",
	"2019", "2018", "2015", "2010", "2005", "2000",
	"1995", "1990", "1985", "1980",
	"25", "24", "23", "22", "21", "20",
}

// prependNumbers is the short table used for prefix augmentation; the
// full tables above only ever append.
var prependNumbers = []string{"1", "123", "007", "786"}

// trailingDigits returns the run of digits a string ends with, or "".
func trailingDigits(s string) string {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	return s[i:]
}

// splitRunes is a rune-safe midpoint split.
func splitRunes(s string) (string, string) {
	runes := []rune(s)
	mid := len(runes) / 2
	return string(runes[:mid]), string(runes[mid:])
}
