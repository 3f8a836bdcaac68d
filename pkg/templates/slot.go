// pkg/templates/slot.go

// Package templates expands a data-driven pattern table against
// profile-derived slot bindings to produce first-generation password
// candidates.
package templates

// Slot names a variable a pattern may reference, e.g. {first} or
// {year}. Slots are a closed set; tables referencing unknown names are
// rejected at load time.
type Slot string

const (
	SlotFirst        Slot = "first"
	SlotFirstInitial Slot = "first_initial"
	SlotLast         Slot = "last"
	SlotLastInitial  Slot = "last_initial"
	SlotNick         Slot = "nick"
	SlotMaiden       Slot = "maiden"
	SlotPet          Slot = "pet_name"
	SlotSpouseInit   Slot = "spouse_initial"
	SlotChild        Slot = "child_name"
	SlotKeyword      Slot = "keyword"

	SlotYear       Slot = "year"
	SlotYearShort  Slot = "year_short"
	SlotBirthDay   Slot = "birth_day"
	SlotBirthMonth Slot = "birth_month"
	SlotDay        Slot = "day"
	SlotMonth      Slot = "month"

	SlotPhone     Slot = "phone"
	SlotPhoneTail Slot = "phone_last4"
	SlotZip       Slot = "zip"

	SlotSpecial Slot = "special"

	SlotFestival Slot = "festival"
	SlotTeam     Slot = "team"
	SlotJob      Slot = "job"
	SlotCity     Slot = "city"
	SlotColor    Slot = "color"
)

var knownSlots = map[Slot]struct{}{
	SlotFirst: {}, SlotFirstInitial: {}, SlotLast: {}, SlotLastInitial: {},
	SlotNick: {}, SlotMaiden: {}, SlotPet: {}, SlotSpouseInit: {},
	SlotChild: {}, SlotKeyword: {},
	SlotYear: {}, SlotYearShort: {}, SlotBirthDay: {}, SlotBirthMonth: {},
	SlotDay: {}, SlotMonth: {},
	SlotPhone: {}, SlotPhoneTail: {}, SlotZip: {},
	SlotSpecial: {},
	SlotFestival: {}, SlotTeam: {}, SlotJob: {}, SlotCity: {}, SlotColor: {},
}

// ParseSlot maps a placeholder name to its Slot, reporting whether the
// name is known.
func ParseSlot(name string) (Slot, bool) {
	s := Slot(name)
	_, ok := knownSlots[s]
	return s, ok
}
