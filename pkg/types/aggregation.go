// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultDisclaimer is the aggregation disclaimer substituted when the
// generator omits one.
const DefaultDisclaimer = "실시간 데이터가 아님을 명시"

// RankedCandidate is one candidate's position in the aggregated ranking.
type RankedCandidate struct {
	CandidateID string  `json:"candidate_id" yaml:"candidate_id"`
	Name        string  `json:"name" yaml:"name"`
	TotalScore  float64 `json:"total_score" yaml:"total_score"`

	// Summary explains the ranking position in one or two sentences.
	Summary string `json:"summary" yaml:"summary"`

	Strengths []string `json:"strengths" yaml:"strengths"`
	Risks     []string `json:"risks" yaml:"risks"`
	Watchouts []string `json:"watchouts" yaml:"watchouts"`
}

// FinalChoice is the designated top pick with its justification.
type FinalChoice struct {
	CandidateID string `json:"candidate_id" yaml:"candidate_id"`
	Name        string `json:"name" yaml:"name"`

	// Why lists the top reasons this candidate won.
	Why []string `json:"why" yaml:"why"`

	// WhatToConfirm lists open confirmations needed before booking.
	WhatToConfirm []string `json:"what_to_confirm" yaml:"what_to_confirm"`
}

// AggregationResult merges all validator results into one ranked
// recommendation. It is built once per request from the full validator
// result set and never partially updated.
type AggregationResult struct {
	// RankedCandidates is ordered by descending total score.
	RankedCandidates []RankedCandidate `json:"ranked_candidates" yaml:"ranked_candidates"`

	// FinalChoice is the top-ranked candidate.
	FinalChoice FinalChoice `json:"final_choice" yaml:"final_choice"`

	// Disclaimer notes that the recommendation is not based on
	// real-time data. Always present.
	Disclaimer string `json:"disclaimer" yaml:"disclaimer"`
}
