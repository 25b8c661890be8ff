// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ClarifyResult is the clarify pipeline's payload: questions back to the
// user instead of a recommendation.
type ClarifyResult struct {
	// Questions are 3-5 clarifying questions in Korean.
	Questions []string `json:"questions" yaml:"questions"`

	// Context explains why the questions are needed.
	Context string `json:"context" yaml:"context"`
}

// CandidatesResult is the candidates-only pipeline's payload.
type CandidatesResult struct {
	Profile    TravelerProfile `json:"profile" yaml:"profile"`
	Candidates []Candidate     `json:"candidates" yaml:"candidates"`
}

// ItineraryDay is one day of a proposed schedule.
type ItineraryDay struct {
	Day       int    `json:"day" yaml:"day"`
	Morning   string `json:"morning" yaml:"morning"`
	Afternoon string `json:"afternoon" yaml:"afternoon"`
	Evening   string `json:"evening" yaml:"evening"`
}

// ItineraryResult is the itinerary-only pipeline's payload: a schedule for
// a destination the user already chose.
type ItineraryResult struct {
	Destination    string         `json:"destination" yaml:"destination"`
	DurationDays   int            `json:"duration_days" yaml:"duration_days"`
	BestAreaToStay string         `json:"best_area_to_stay" yaml:"best_area_to_stay"`
	BudgetTip      string         `json:"budget_tip" yaml:"budget_tip"`
	Itinerary      []ItineraryDay `json:"itinerary" yaml:"itinerary"`
	Tips           []string       `json:"tips" yaml:"tips"`
}

// Winner is the destination the final synthesis settled on.
type Winner struct {
	Name           string   `json:"name" yaml:"name"`
	Why            []string `json:"why" yaml:"why"`
	BestAreaToStay string   `json:"best_area_to_stay" yaml:"best_area_to_stay"`
	BudgetTip      string   `json:"budget_tip" yaml:"budget_tip"`
}

// ValidationSummary condenses the validator insights carried into the
// final plan.
type ValidationSummary struct {
	KeyStrengths []string `json:"key_strengths" yaml:"key_strengths"`
	KeyRisks     []string `json:"key_risks" yaml:"key_risks"`
	Watchouts    []string `json:"watchouts" yaml:"watchouts"`
}

// FinalPlan is the full pipeline's synthesis output: the winning
// destination with a concrete schedule.
type FinalPlan struct {
	Winner            Winner            `json:"winner" yaml:"winner"`
	Itinerary         []ItineraryDay    `json:"itinerary" yaml:"itinerary"`
	ValidationSummary ValidationSummary `json:"validation_summary" yaml:"validation_summary"`
}

// FullResult bundles every stage output of the full pipeline.
type FullResult struct {
	Profile          TravelerProfile   `json:"profile" yaml:"profile"`
	Candidates       []Candidate       `json:"candidates" yaml:"candidates"`
	ValidatorResults []ValidatorResult `json:"validators_results" yaml:"validators_results"`
	Aggregation      AggregationResult `json:"aggregation" yaml:"aggregation"`
	Final            FinalPlan         `json:"final" yaml:"final"`
}
