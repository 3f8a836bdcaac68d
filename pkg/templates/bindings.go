// pkg/templates/bindings.go

package templates

import (
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/profile"
)

// Bindings maps slots to the values of one run. A profile field that is
// absent or empty produces no key at all; patterns referencing a
// missing key are skipped, never partially expanded.
type Bindings map[Slot]string

// interestSlots are the interest categories with a matching pattern
// slot. Other categories still reach the seed vocabulary, just not the
// pattern table.
var interestSlots = []Slot{SlotFestival, SlotTeam, SlotJob, SlotCity, SlotColor}

// Bind builds the bindings for one run. The special character is chosen
// once per run by the caller and stays fixed across every pattern that
// references {special}; it binds "" when special augmentation is off,
// so those patterns still expand without the character. This mirrors
// how plural fields bind: the first child and the first keyword take
// the singular slot, the rest participate through the seed vocabulary.
func Bind(n profile.Normalized, special string) Bindings {
	b := make(Bindings)
	set := func(s Slot, v string) {
		if v != "" {
			b[s] = v
		}
	}

	set(SlotFirst, n.First)
	set(SlotFirstInitial, initial(n.First))
	set(SlotLast, n.Last)
	set(SlotLastInitial, initial(n.Last))
	set(SlotNick, n.Nick)
	set(SlotMaiden, n.Maiden)
	set(SlotPet, n.Pet)
	set(SlotSpouseInit, initial(n.Spouse))
	if len(n.Children) > 0 {
		set(SlotChild, n.Children[0])
	}
	if len(n.Keywords) > 0 {
		set(SlotKeyword, n.Keywords[0])
	}

	set(SlotYear, n.Birth.Year)
	set(SlotYearShort, n.Birth.YearShort)
	set(SlotBirthDay, n.Birth.Day)
	set(SlotBirthMonth, n.Birth.Month)
	set(SlotDay, n.Birth.Day)
	set(SlotMonth, n.Birth.Month)

	set(SlotPhone, n.Phone)
	if len(n.Phone) >= 4 {
		set(SlotPhoneTail, n.Phone[len(n.Phone)-4:])
	}
	set(SlotZip, n.Zip)

	for _, s := range interestSlots {
		set(s, n.Interests[string(s)])
	}

	b[SlotSpecial] = special
	return b
}

func initial(w string) string {
	for _, r := range w {
		return string(r)
	}
	return ""
}
