// pkg/candidate/set.go

// Package candidate provides the deduplicated container that password
// candidates accumulate in as they move through the generation pipeline.
package candidate

import "sort"

// Set is a grow-only collection of unique candidate strings. The empty
// string is never a member; adding it is a no-op.
type Set struct {
	members map[string]struct{}
}

func NewSet() *Set {
	return &Set{members: make(map[string]struct{})}
}

// NewSetFrom builds a Set seeded with the given values.
func NewSetFrom(values ...string) *Set {
	s := NewSet()
	s.AddAll(values)
	return s
}

// Add inserts v and reports whether it was newly added.
func (s *Set) Add(v string) bool {
	if v == "" {
		return false
	}
	if _, ok := s.members[v]; ok {
		return false
	}
	s.members[v] = struct{}{}
	return true
}

// AddAll inserts every value and returns the number newly added.
func (s *Set) AddAll(values []string) int {
	added := 0
	for _, v := range values {
		if s.Add(v) {
			added++
		}
	}
	return added
}

func (s *Set) Contains(v string) bool {
	_, ok := s.members[v]
	return ok
}

func (s *Set) Len() int {
	return len(s.members)
}

// Sorted returns all members ordered by length, then lexicographically.
// Map iteration order must never leak into pipeline output, so every
// accessor that feeds another stage goes through this ordering.
func (s *Set) Sorted() []string {
	out := make([]string, 0, len(s.members))
	for v := range s.members {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// Prefix returns up to n members in sorted order. Mutation stages use
// this to take a stable, bounded slice of the set as their working input.
func (s *Set) Prefix(n int) []string {
	sorted := s.Sorted()
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// Less orders candidates by ascending length, then lexicographically.
func Less(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
