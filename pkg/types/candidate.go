// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Candidate is a proposed destination produced by the candidate-generation
// stage. ID is the join key used by every validator and by the aggregator.
type Candidate struct {
	// ID is the stable candidate identifier ("C1", "C2", ...), assigned
	// once when the candidate set is produced and never recomputed.
	ID string `json:"candidate_id" yaml:"candidate_id"`

	// Name is the destination, usually "City, Country".
	Name string `json:"name" yaml:"name"`

	// WhyFit lists reasons the destination matches the profile.
	WhyFit []string `json:"why_fit" yaml:"why_fit"`

	// WatchOut lists caveats the traveler should know about.
	WatchOut []string `json:"watch_out" yaml:"watch_out"`

	// BestLengthDays is the suggested length of stay.
	BestLengthDays int `json:"best_length_days" yaml:"best_length_days"`
}

// CandidateID returns the identifier for the candidate at the given
// zero-based generation index: "C1" for index 0.
func CandidateID(index int) string {
	return fmt.Sprintf("C%d", index+1)
}

// AssignCandidateIDs numbers candidates in generation order. It must be
// called exactly once, immediately after the candidate set is produced;
// the slice must not be reordered or deduplicated afterward, or the IDs
// referenced by validator results silently stop matching. If the upstream
// generator ever reorders its own output between runs, identifier
// stability across runs breaks with it.
func AssignCandidateIDs(candidates []Candidate) []Candidate {
	for i := range candidates {
		candidates[i].ID = CandidateID(i)
	}
	return candidates
}
