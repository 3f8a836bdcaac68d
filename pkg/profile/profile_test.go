// pkg/profile/profile_test.go

package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	p := Profile{
		FirstName:  "  John ",
		LastName:   "DOE",
		Nickname:   "",
		PetName:    "Rex",
		ChildNames: []string{" Mia ", "", "Leo"},
		Keywords:   []string{"Chelsea", "  "},
		BirthDate:  "15/06/1990",
		OtherDates: []string{"07092010", "not a date"},
		Phone:      "+61 412-345-678",
		Zip:        "2000 ",
		Interests:  map[string]string{"Team": "Chelsea FC", "": "ignored", "food": ""},
	}

	n := Normalize(p)

	assert.Equal(t, "john", n.First)
	assert.Equal(t, "doe", n.Last)
	assert.Empty(t, n.Nick)
	assert.Equal(t, "rex", n.Pet)
	assert.Equal(t, []string{"mia", "leo"}, n.Children)
	assert.Equal(t, []string{"chelsea"}, n.Keywords)
	assert.Equal(t, "61412345678", n.Phone)
	assert.Equal(t, "2000", n.Zip)

	assert.Equal(t, DateComponents{Day: "15", Month: "06", Year: "1990", YearShort: "90"}, n.Birth)
	require.Len(t, n.Other, 1)
	assert.Equal(t, "2010", n.Other[0].Year)

	assert.Equal(t, map[string]string{"team": "chelsea fc"}, n.Interests)
}

func TestNormalizeEmptyProfile(t *testing.T) {
	n := Normalize(Profile{})

	assert.Empty(t, n.First)
	assert.Empty(t, n.Children)
	assert.Empty(t, n.Other)
	assert.True(t, n.Birth.IsZero())
}

func TestNormalizeRecordsRawSpecials(t *testing.T) {
	p := Profile{
		FirstName: "o'brien",
		Keywords:  []string{"p@ss"},
	}

	n := Normalize(p)

	assert.True(t, n.RawSpecials['\''])
	assert.True(t, n.RawSpecials['@'])
	assert.False(t, n.RawSpecials['!'])
}

func TestProfileIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		p    Profile
		want bool
	}{
		{"zero value", Profile{}, true},
		{"whitespace only", Profile{FirstName: "   ", ChildNames: []string{" "}}, true},
		{"first name set", Profile{FirstName: "john"}, false},
		{"only a keyword", Profile{Keywords: []string{"chelsea"}}, false},
		{"only an interest", Profile{Interests: map[string]string{"team": "csk"}}, false},
		{"only a date", Profile{BirthDate: "1990"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.IsEmpty())
		})
	}
}
