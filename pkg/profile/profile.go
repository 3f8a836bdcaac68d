// pkg/profile/profile.go

// Package profile defines the personal profile a wordlist run starts
// from and normalizes its raw fields into the form the generation
// pipeline consumes.
package profile

import "strings"

// Profile carries the raw, collaborator-supplied facts about a target
// identity. Every field is optional; an entirely empty Profile is valid
// and produces an empty wordlist. Built once per run, never mutated.
type Profile struct {
	FirstName  string
	LastName   string
	Nickname   string
	MaidenName string
	PetName    string
	SpouseName string
	ChildNames []string

	BirthDate  string
	OtherDates []string

	Keywords []string

	Phone string
	Zip   string

	// Interests maps a category to a value, e.g. "team" -> "chelsea",
	// "festival" -> "diwali". Categories with no matching template slot
	// still feed the seed vocabulary.
	Interests map[string]string
}

// IsEmpty reports whether no field carries usable content.
func (p Profile) IsEmpty() bool {
	if strings.TrimSpace(p.FirstName) != "" ||
		strings.TrimSpace(p.LastName) != "" ||
		strings.TrimSpace(p.Nickname) != "" ||
		strings.TrimSpace(p.MaidenName) != "" ||
		strings.TrimSpace(p.PetName) != "" ||
		strings.TrimSpace(p.SpouseName) != "" ||
		strings.TrimSpace(p.BirthDate) != "" ||
		strings.TrimSpace(p.Phone) != "" ||
		strings.TrimSpace(p.Zip) != "" {
		return false
	}
	for _, c := range p.ChildNames {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	for _, d := range p.OtherDates {
		if strings.TrimSpace(d) != "" {
			return false
		}
	}
	for _, k := range p.Keywords {
		if strings.TrimSpace(k) != "" {
			return false
		}
	}
	for _, v := range p.Interests {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Normalized is the cleaned view of a Profile: text fields trimmed and
// lower-cased, numeric identifiers reduced to digits, dates parsed.
// Fields that clean down to nothing are empty strings and bind no
// template slot.
type Normalized struct {
	First  string
	Last   string
	Nick   string
	Maiden string
	Pet    string
	Spouse string

	Children []string
	Keywords []string

	Birth DateComponents
	Other []DateComponents

	Phone string
	Zip   string

	Interests map[string]string

	// RawSpecials records which special characters appeared verbatim in
	// any input field, so downstream gating never strips user-supplied
	// punctuation out of the vocabulary.
	RawSpecials map[rune]bool
}

// Normalize cleans every Profile field. It never fails: garbage in a
// field degrades to that field being absent.
func Normalize(p Profile) Normalized {
	n := Normalized{
		First:     cleanWord(p.FirstName),
		Last:      cleanWord(p.LastName),
		Nick:      cleanWord(p.Nickname),
		Maiden:    cleanWord(p.MaidenName),
		Pet:       cleanWord(p.PetName),
		Spouse:    cleanWord(p.SpouseName),
		Phone:     digitsOnly(p.Phone),
		Zip:       digitsOnly(p.Zip),
		Birth:     ParseDate(p.BirthDate),
		Interests: make(map[string]string),
	}

	for _, c := range p.ChildNames {
		if w := cleanWord(c); w != "" {
			n.Children = append(n.Children, w)
		}
	}
	for _, k := range p.Keywords {
		if w := cleanWord(k); w != "" {
			n.Keywords = append(n.Keywords, w)
		}
	}
	for _, d := range p.OtherDates {
		if dc := ParseDate(d); !dc.IsZero() {
			n.Other = append(n.Other, dc)
		}
	}
	for cat, val := range p.Interests {
		c, v := cleanWord(cat), cleanWord(val)
		if c != "" && v != "" {
			n.Interests[c] = v
		}
	}

	n.RawSpecials = collectSpecials(p)
	return n
}

// cleanWord trims and lower-cases a free-text field.
func cleanWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func collectSpecials(p Profile) map[rune]bool {
	seen := make(map[rune]bool)
	scan := func(s string) {
		for _, r := range s {
			if !isLetterOrDigit(r) && r != ' ' {
				seen[r] = true
			}
		}
	}
	scan(p.FirstName)
	scan(p.LastName)
	scan(p.Nickname)
	scan(p.MaidenName)
	scan(p.PetName)
	scan(p.SpouseName)
	for _, c := range p.ChildNames {
		scan(c)
	}
	for _, k := range p.Keywords {
		scan(k)
	}
	for _, v := range p.Interests {
		scan(v)
	}
	return seen
}

func isLetterOrDigit(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
