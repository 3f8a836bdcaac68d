// pkg/filter/filter_test.go

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViolationDefaultRules(t *testing.T) {
	rules := Default()

	tests := []struct {
		name string
		word string
		want Reason
	}{
		{"passes", "sarah1987", ""},
		{"passes with specials", "sarah!87", ""},
		{"too short", "sar87", ReasonTooShort},
		{"too long", "sarahjonessarahjones1", ReasonTooLong},
		{"exactly min length", "sarah8", ""},
		{"exactly max length", "sarahjones1987sarah!", ""},
		{"digits only", "19871987", ReasonNoAlpha},
		{"specials only counted as no alpha", "!!__--..", ReasonNoAlpha},
		{"triple special run", "sarah!!!", ReasonSpecialRun},
		{"double special run allowed", "sarah!!x", ""},
		{"six digit run", "sarah123656", ReasonDigitRun},
		{"five digit run allowed", "sarah12365", ""},
		{"digits split by letter pass", "sa121x212", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Violation(tt.word))
		})
	}
}

func TestViolationClassMinimums(t *testing.T) {
	rules := Default()
	rules.MinUpper = 1
	rules.MinDigits = 2
	rules.MinSpecials = 1

	assert.Equal(t, Reason(""), rules.Violation("Sarah87!"))
	assert.Equal(t, ReasonClassCounts, rules.Violation("sarah87!"), "missing upper")
	assert.Equal(t, ReasonClassCounts, rules.Violation("Sarah8!x"), "one digit short")
	assert.Equal(t, ReasonClassCounts, rules.Violation("Sarah870"), "missing special")
}

func TestViolationSequentialDigits(t *testing.T) {
	rules := Default()
	rules.BanSequentialDigits = true

	assert.Equal(t, ReasonSequentialDigits, rules.Violation("sarah123"))
	assert.Equal(t, ReasonSequentialDigits, rules.Violation("sarah987"), "descending counts too")
	assert.Equal(t, Reason(""), rules.Violation("sarah135"))
	assert.Equal(t, Reason(""), rules.Violation("sarah12x34"), "letters break the run")
}

func TestViolationCharRepeat(t *testing.T) {
	rules := Default()
	rules.MaxRepeat = 3

	assert.Equal(t, Reason(""), rules.Violation("banana88"), "three of a kind is fine")
	assert.Equal(t, ReasonCharRepeat, rules.Violation("bananana8"), "four total occurrences")
	assert.Equal(t, ReasonCharRepeat, rules.Violation("aXaXaXaX"), "repeats need not be adjacent")
}

func TestViolationConfiguredSpecialSet(t *testing.T) {
	rules := Default()
	rules.Specials = "!@"

	// '#' is outside the configured set, so it forms no special run.
	assert.Equal(t, Reason(""), rules.Violation("sarah###"))
	assert.Equal(t, ReasonSpecialRun, rules.Violation("sarah!!!"))
}

func TestApplyKeepsOrderAndCounts(t *testing.T) {
	rules := Default()
	words := []string{
		"sarah1987", // keep
		"sar",       // too short
		"19871987",  // no alpha
		"jones!x",   // keep
		"a!!!bcde",  // special run
		"xy",        // too short
	}

	kept, rejects := rules.Apply(words)

	assert.Equal(t, []string{"sarah1987", "jones!x"}, kept)
	assert.Equal(t, 2, rejects[ReasonTooShort])
	assert.Equal(t, 1, rejects[ReasonNoAlpha])
	assert.Equal(t, 1, rejects[ReasonSpecialRun])
	assert.Equal(t, 4, rejects.Total())
}

func TestApplyEmptyInput(t *testing.T) {
	kept, rejects := Default().Apply(nil)
	assert.Empty(t, kept)
	assert.Zero(t, rejects.Total())
}

func TestViolationFirstRuleWins(t *testing.T) {
	// Breaks length, alpha, and digit-run rules at once; the tally
	// must attribute it to the first check only.
	rules := Default()
	_, rejects := rules.Apply([]string{"123456789012345678901"})

	assert.Equal(t, 1, rejects[ReasonTooLong])
	assert.Zero(t, rejects[ReasonNoAlpha])
	assert.Zero(t, rejects[ReasonDigitRun])
}
