// pkg/tui/form.go

package tui

import (
	"strings"
	"time"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/output"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/profile"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/wordlist"
)

var fieldLabels = [fieldCount]string{
	fieldFirst:      "First name",
	fieldLast:       "Last name",
	fieldNickname:   "Nickname",
	fieldMaiden:     "Maiden name",
	fieldSpouse:     "Partner",
	fieldChildren:   "Children",
	fieldPet:        "Pet",
	fieldBirthDate:  "Birth date",
	fieldOtherDates: "Other dates",
	fieldPhone:      "Phone",
	fieldZip:        "Postcode",
	fieldKeywords:   "Keywords",
	fieldInterests:  "Interests",
	fieldOutput:     "Output file",
}

var fieldPlaceholders = [fieldCount]string{
	fieldFirst:      "Sarah",
	fieldLast:       "Jones",
	fieldNickname:   "Sari",
	fieldMaiden:     "",
	fieldSpouse:     "Alex",
	fieldChildren:   "comma separated",
	fieldPet:        "Biscuit",
	fieldBirthDate:  "DDMMYYYY",
	fieldOtherDates: "DDMMYYYY, comma separated",
	fieldPhone:      "0412345678",
	fieldZip:        "2000",
	fieldKeywords:   "comma separated",
	fieldInterests:  "team=chelsea, festival=diwali",
	fieldOutput:     defaultOutputPath,
}

// formGroups drives the grouped rendering of the text inputs.
var formGroups = []struct {
	title  string
	fields []fieldID
}{
	{"Identity", []fieldID{fieldFirst, fieldLast, fieldNickname, fieldMaiden}},
	{"Family", []fieldID{fieldSpouse, fieldChildren, fieldPet}},
	{"Dates", []fieldID{fieldBirthDate, fieldOtherDates}},
	{"Numbers", []fieldID{fieldPhone, fieldZip}},
	{"Keywords", []fieldID{fieldKeywords, fieldInterests}},
	{"Output", []fieldID{fieldOutput}},
}

// val returns the trimmed value of one input.
func (m Model) val(id fieldID) string {
	return strings.TrimSpace(m.inputs[id].Value())
}

// profileFromForm assembles the Profile the pipeline consumes. Empty
// fields stay empty; the engine treats them as absent.
func (m Model) profileFromForm() profile.Profile {
	return profile.Profile{
		FirstName:  m.val(fieldFirst),
		LastName:   m.val(fieldLast),
		Nickname:   m.val(fieldNickname),
		MaidenName: m.val(fieldMaiden),
		SpouseName: m.val(fieldSpouse),
		ChildNames: splitCSV(m.val(fieldChildren)),
		PetName:    m.val(fieldPet),
		BirthDate:  m.val(fieldBirthDate),
		OtherDates: splitCSV(m.val(fieldOtherDates)),
		Phone:      m.val(fieldPhone),
		Zip:        m.val(fieldZip),
		Keywords:   splitCSV(m.val(fieldKeywords)),
		Interests:  parseInterests(m.val(fieldInterests)),
	}
}

// optionsFromForm overlays the stage toggles onto the base options.
func (m Model) optionsFromForm() wordlist.Options {
	opts := m.opts
	opts.EnableNumbers = m.optNumbers
	opts.EnableSpecials = m.optSpecials
	opts.EnableCombine = m.optCombine
	opts.LeetLevel = m.leetLevel
	return opts
}

// metadata builds the wordlist header for the save action.
func (m Model) metadata() *output.Metadata {
	name := strings.TrimSpace(m.val(fieldFirst) + " " + m.val(fieldLast))
	return &output.Metadata{
		RunID:     m.res.Stats.RunID,
		Name:      name,
		BirthDate: m.val(fieldBirthDate),
		Total:     len(m.res.Candidates),
		Generated: time.Now(),
	}
}

// splitCSV splits a comma separated entry, trimming each piece and
// dropping empties. A blank entry yields nil.
func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseInterests reads comma separated category=value pairs. Pairs
// missing either half are skipped.
func parseInterests(s string) map[string]string {
	pairs := splitCSV(s)
	if len(pairs) == 0 {
		return nil
	}
	interests := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if !ok || k == "" || v == "" {
			continue
		}
		interests[k] = v
	}
	if len(interests) == 0 {
		return nil
	}
	return interests
}
