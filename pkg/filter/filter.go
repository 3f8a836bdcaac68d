// pkg/filter/filter.go

// Package filter applies the single post-mutation quality gate. Every
// candidate is checked against the rule set exactly once, after all
// mutation stages have run; rejected candidates are tallied per rule so
// callers can report why the pool shrank.
package filter

import (
	"strings"
	"unicode"
)

// Reason identifies the rule a rejected candidate broke.
type Reason string

const (
	ReasonTooShort         Reason = "too_short"
	ReasonTooLong          Reason = "too_long"
	ReasonNoAlpha          Reason = "no_alpha"
	ReasonSpecialRun       Reason = "special_run"
	ReasonDigitRun         Reason = "digit_run"
	ReasonClassCounts      Reason = "class_counts"
	ReasonSequentialDigits Reason = "sequential_digits"
	ReasonCharRepeat       Reason = "char_repeat"
)

// RejectCounts tallies rejections by rule.
type RejectCounts map[Reason]int

// Total sums all rejections.
func (rc RejectCounts) Total() int {
	n := 0
	for _, v := range rc {
		n += v
	}
	return n
}

// Rules is the candidate quality gate. Zero values disable the
// optional rules; use Default for the standard gate.
type Rules struct {
	MinLength int
	MaxLength int

	// RequireAlpha rejects candidates without a single letter.
	RequireAlpha bool

	// MaxSpecialRun is the longest allowed run of consecutive
	// special characters. Zero disables the rule.
	MaxSpecialRun int

	// MaxDigitRun is the longest allowed run of consecutive digits.
	// Zero disables the rule.
	MaxDigitRun int

	// Minimum per-class character counts. Zero means no minimum.
	MinLower    int
	MinUpper    int
	MinDigits   int
	MinSpecials int

	// BanSequentialDigits rejects any three consecutively ascending
	// or descending digits, "123" and "987" alike.
	BanSequentialDigits bool

	// MaxRepeat is the highest total occurrence count allowed for
	// any single character. Zero disables the rule.
	MaxRepeat int

	// Specials defines which characters count as special. When
	// empty, anything that is neither letter nor digit qualifies.
	Specials string
}

// Default returns the standard gate: 6 to 20 characters, at least one
// letter, no runs of three or more specials, no runs of six or more
// digits.
func Default() Rules {
	return Rules{
		MinLength:     6,
		MaxLength:     20,
		RequireAlpha:  true,
		MaxSpecialRun: 2,
		MaxDigitRun:   5,
	}
}

// Apply keeps the words that pass every rule, preserving input order,
// and tallies the first violated rule of each rejected word.
func (r Rules) Apply(words []string) ([]string, RejectCounts) {
	kept := make([]string, 0, len(words))
	rejects := make(RejectCounts)
	for _, w := range words {
		if reason := r.Violation(w); reason != "" {
			rejects[reason]++
			continue
		}
		kept = append(kept, w)
	}
	return kept, rejects
}

// Violation returns the first rule the word breaks, or "" when the
// word passes. Rules are checked in a fixed order so tallies stay
// comparable across runs.
func (r Rules) Violation(word string) Reason {
	if len(word) < r.MinLength {
		return ReasonTooShort
	}
	if r.MaxLength > 0 && len(word) > r.MaxLength {
		return ReasonTooLong
	}

	var lower, upper, digits, specials int
	var specialRun, digitRun int
	maxSpecialRun, maxDigitRun := 0, 0
	repeats := make(map[rune]int)
	maxRepeat := 0

	for _, c := range word {
		switch {
		case unicode.IsLower(c):
			lower++
		case unicode.IsUpper(c):
			upper++
		case unicode.IsDigit(c):
			digits++
		}
		if r.isSpecial(c) {
			specials++
			specialRun++
		} else {
			specialRun = 0
		}
		if specialRun > maxSpecialRun {
			maxSpecialRun = specialRun
		}

		if c >= '0' && c <= '9' {
			digitRun++
		} else {
			digitRun = 0
		}
		if digitRun > maxDigitRun {
			maxDigitRun = digitRun
		}

		repeats[c]++
		if repeats[c] > maxRepeat {
			maxRepeat = repeats[c]
		}
	}

	if r.RequireAlpha && lower+upper == 0 {
		return ReasonNoAlpha
	}
	if r.MaxSpecialRun > 0 && maxSpecialRun > r.MaxSpecialRun {
		return ReasonSpecialRun
	}
	if r.MaxDigitRun > 0 && maxDigitRun > r.MaxDigitRun {
		return ReasonDigitRun
	}
	if lower < r.MinLower || upper < r.MinUpper || digits < r.MinDigits || specials < r.MinSpecials {
		return ReasonClassCounts
	}
	if r.BanSequentialDigits && hasSequentialDigits(word) {
		return ReasonSequentialDigits
	}
	if r.MaxRepeat > 0 && maxRepeat > r.MaxRepeat {
		return ReasonCharRepeat
	}
	return ""
}

func (r Rules) isSpecial(c rune) bool {
	if r.Specials != "" {
		return strings.ContainsRune(r.Specials, c)
	}
	return !unicode.IsLetter(c) && !unicode.IsDigit(c)
}

// hasSequentialDigits reports whether the word contains three
// consecutive digits that ascend or descend by one.
func hasSequentialDigits(word string) bool {
	for i := 0; i+2 < len(word); i++ {
		a, b, c := word[i], word[i+1], word[i+2]
		if a < '0' || a > '9' || b < '0' || b > '9' || c < '0' || c > '9' {
			continue
		}
		if b == a+1 && c == b+1 {
			return true
		}
		if b == a-1 && c == b-1 {
			return true
		}
	}
	return false
}
