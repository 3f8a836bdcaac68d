// pkg/templates/expander_test.go

package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/profile"
)

func bindingsFor(t *testing.T, p profile.Profile, special string) Bindings {
	t.Helper()
	return Bind(profile.Normalize(p), special)
}

func TestExpandBasicPattern(t *testing.T) {
	b := bindingsFor(t, profile.Profile{
		FirstName: "john",
		LastName:  "doe",
		BirthDate: "15/06/1990",
	}, "")
	table := Table{Version: "1.0.0", Patterns: []string{"{first}{last}{year}"}}

	got := Expand(table, b, ExpandConfig{})

	assert.Contains(t, got, "johndoe1990")
	assert.Contains(t, got, "Johndoe1990")
}

func TestExpandSkipsUnboundSlots(t *testing.T) {
	b := bindingsFor(t, profile.Profile{FirstName: "john"}, "")
	table := Table{Version: "1.0.0", Patterns: []string{
		"{spouse_initial}{first}{year}",
		"{first}haslongenough",
	}}

	got := Expand(table, b, ExpandConfig{})

	require.NotEmpty(t, got)
	for _, c := range got {
		assert.NotContains(t, c, "spouse")
	}
	assert.Contains(t, got, "johnhaslongenough")
}

func TestExpandLengthBand(t *testing.T) {
	b := bindingsFor(t, profile.Profile{FirstName: "jo", LastName: "li"}, "")
	table := Table{Version: "1.0.0", Patterns: []string{"{first}{last}"}}

	got := Expand(table, b, ExpandConfig{BandMin: 6, BandMax: 20})
	assert.Empty(t, got, "joli is below the band")

	got = Expand(table, b, ExpandConfig{BandMin: 4, BandMax: 20})
	assert.Contains(t, got, "joli")
}

func TestExpandSpecialBoundOncePerRun(t *testing.T) {
	b := bindingsFor(t, profile.Profile{
		FirstName: "john",
		LastName:  "doe",
		BirthDate: "15/06/1990",
	}, "!")
	table := Table{Version: "1.0.0", Patterns: []string{
		"{first}{special}{last}{year}",
		"{first}{last}{special}{year}",
	}}

	got := Expand(table, b, ExpandConfig{})

	assert.Contains(t, got, "john!doe1990")
	assert.Contains(t, got, "johndoe!1990")
	for _, c := range got {
		assert.NotContains(t, c, "@", "only the bound special may appear")
	}
}

func TestExpandEmptySpecialStillExpands(t *testing.T) {
	b := bindingsFor(t, profile.Profile{
		FirstName: "john",
		LastName:  "doe",
		BirthDate: "15/06/1990",
	}, "")
	table := Table{Version: "1.0.0", Patterns: []string{"{first}{special}{last}{year}"}}

	got := Expand(table, b, ExpandConfig{})

	assert.Contains(t, got, "johndoe1990")
}

func TestExpandBannedCharacters(t *testing.T) {
	b := bindingsFor(t, profile.Profile{
		FirstName: "john",
		LastName:  "doe",
		BirthDate: "15/06/1990",
	}, "")
	table := Table{Version: "1.0.0", Patterns: []string{
		"{first}.{last}{year_short}",
		"{first}{last}{year}",
	}}

	got := Expand(table, b, ExpandConfig{Banned: map[rune]bool{'.': true}})

	assert.NotContains(t, got, "john.doe90")
	assert.Contains(t, got, "johndoe1990")
}

func TestBindOmitsEmptyFields(t *testing.T) {
	b := bindingsFor(t, profile.Profile{FirstName: "john"}, "")

	_, hasLast := b[SlotLast]
	assert.False(t, hasLast)
	assert.Equal(t, "john", b[SlotFirst])
	assert.Equal(t, "j", b[SlotFirstInitial])

	// special is always bound, even when empty
	_, hasSpecial := b[SlotSpecial]
	assert.True(t, hasSpecial)
}

func TestBindPluralFieldsTakeFirstValue(t *testing.T) {
	b := bindingsFor(t, profile.Profile{
		ChildNames: []string{"mia", "leo"},
		Keywords:   []string{"chelsea", "gaming"},
	}, "")

	assert.Equal(t, "mia", b[SlotChild])
	assert.Equal(t, "chelsea", b[SlotKeyword])
}

func TestBindInterestSlots(t *testing.T) {
	b := bindingsFor(t, profile.Profile{
		Interests: map[string]string{"team": "csk", "carbrand": "tesla"},
	}, "")

	assert.Equal(t, "csk", b[SlotTeam])
	_, hasJob := b[SlotJob]
	assert.False(t, hasJob)
}

func TestExpandDefaultTableAgainstFullProfile(t *testing.T) {
	b := bindingsFor(t, profile.Profile{
		FirstName:  "manan",
		LastName:   "kamboj",
		Nickname:   "mk",
		BirthDate:  "07092010",
		PetName:    "rex",
		SpouseName: "priya",
		ChildNames: []string{"arjun"},
		Keywords:   []string{"cricket"},
		Phone:      "9876543210",
	}, "@")

	got := Expand(DefaultTable(), b, ExpandConfig{})

	require.NotEmpty(t, got)
	assert.Contains(t, got, "manankamboj2010")
	assert.Contains(t, got, "kambojmanan2010")
	assert.Contains(t, got, "manan@kamboj2010")
	assert.Contains(t, got, "cricket2010")
	for _, c := range got {
		assert.GreaterOrEqual(t, len(c), DefaultBandMin)
		assert.LessOrEqual(t, len(c), DefaultBandMax)
	}
}
