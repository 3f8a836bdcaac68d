// pkg/wordlist/stats.go

package wordlist

import (
	"time"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/filter"
)

// Stats describes one generation run.
type Stats struct {
	RunID string

	// Seeds is the base-word vocabulary size.
	Seeds int

	// Newly added candidates per stage.
	Expanded int
	Numbers  int
	Specials int
	Leet     int
	Combined int

	// PoolSize is the deduplicated pool entering the filter, Kept
	// the survivor count leaving it.
	PoolSize int
	Kept     int

	// Rejects tallies filter rejections by rule.
	Rejects filter.RejectCounts

	// Sampled reports whether the pool exceeded MaxOutput and was
	// stratified-sampled down to it.
	Sampled bool

	Duration time.Duration
}

// Result is a completed generation.
type Result struct {
	// Candidates is ordered by ascending length, ties broken
	// lexicographically.
	Candidates []string

	Stats Stats
}
