// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Pace describes the traveler's preferred daily tempo.
type Pace string

const (
	PaceSlow   Pace = "slow"
	PaceMedium Pace = "medium"
	PaceFast   Pace = "fast"
)

// Constraints holds the hard limits extracted from a travel request.
type Constraints struct {
	// Season is the travel period ("초가을", "late autumn", ...).
	Season string `json:"season" yaml:"season"`

	// Budget is the stated budget phrase ("150만원", "under $1000", ...).
	Budget string `json:"budget" yaml:"budget"`

	// Companions describes who is traveling ("혼자", "가족", ...).
	Companions string `json:"companions" yaml:"companions"`

	// Pace is slow, medium, or fast.
	Pace Pace `json:"pace" yaml:"pace"`

	// DurationDays is the trip length in days.
	DurationDays int `json:"duration_days" yaml:"duration_days"`

	// DomesticOrInternational is "domestic", "international", or "either".
	DomesticOrInternational string `json:"domestic_or_international" yaml:"domestic_or_international"`
}

// TravelerProfile is the structured form of a free-text travel request.
// It is extracted once per request and immutable afterward; every
// downstream stage consumes it read-only.
type TravelerProfile struct {
	// Tags are free-form descriptors of the request ("카페", "힐링", ...).
	Tags []string `json:"tags" yaml:"tags"`

	// TopPriorities lists what matters most to the traveler, ordered.
	TopPriorities []string `json:"top_priorities" yaml:"top_priorities"`

	// Constraints holds the extracted hard limits.
	Constraints Constraints `json:"constraints" yaml:"constraints"`

	// Avoid lists things the traveler wants to stay away from.
	Avoid []string `json:"avoid" yaml:"avoid"`

	// NotesForRecommender carries free-text guidance for later stages.
	NotesForRecommender string `json:"notes_for_recommender" yaml:"notes_for_recommender"`
}
