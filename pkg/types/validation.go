// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ValidatorKind names one of the five independent check kinds.
type ValidatorKind string

const (
	ValidatorBudgetFit         ValidatorKind = "budget_fit"
	ValidatorVibeFit           ValidatorKind = "vibe_fit"
	ValidatorTransitComplexity ValidatorKind = "transit_complexity"
	ValidatorSafetyRisk        ValidatorKind = "safety_risk"
	ValidatorSeasonality       ValidatorKind = "seasonality_weather"
)

// AllValidatorKinds lists the five kinds in their fixed execution order.
func AllValidatorKinds() []ValidatorKind {
	return []ValidatorKind{
		ValidatorBudgetFit,
		ValidatorVibeFit,
		ValidatorTransitComplexity,
		ValidatorSafetyRisk,
		ValidatorSeasonality,
	}
}

// Verdict is a validator's categorical judgment for one candidate.
type Verdict string

const (
	VerdictPass Verdict = "pass"
	VerdictWarn Verdict = "warn"
	VerdictFail Verdict = "fail"

	// VerdictUnknown is the insufficient-evidence sentinel. It is
	// score-independent and used only by validators that support it.
	VerdictUnknown Verdict = "unknown"
)

// Score-to-verdict thresholds. These are enforced in code at the validator
// boundary rather than trusted to the generator's rubric.
const (
	PassThreshold = 0.7
	WarnThreshold = 0.4
)

// VerdictForScore maps a score to its verdict under the fixed thresholds:
// pass at 0.7 and above, warn at 0.4 up to 0.7, fail below 0.4.
func VerdictForScore(score float64) Verdict {
	switch {
	case score >= PassThreshold:
		return VerdictPass
	case score >= WarnThreshold:
		return VerdictWarn
	default:
		return VerdictFail
	}
}

// DisclaimerNotRealtime must appear in every validator result's assumptions.
const DisclaimerNotRealtime = "실시간 데이터 아님"

// Citation is one search hit a web-grounded validator based its judgment on.
type Citation struct {
	Title   string `json:"title" yaml:"title"`
	URL     string `json:"url" yaml:"url"`
	Snippet string `json:"snippet" yaml:"snippet"`
}

// ValidatorResult is the judgment of one validator kind for one candidate.
// After the validation engine completes, exactly one result exists per
// (candidate, validator kind) pair; failures are represented by degraded
// results, never by missing pairs.
type ValidatorResult struct {
	// Validator is the check kind that produced this result.
	Validator ValidatorKind `json:"validator" yaml:"validator"`

	// CandidateID joins the result to the candidate set ("C1", "C2", ...).
	CandidateID string `json:"candidate_id" yaml:"candidate_id"`

	// Score is the validator's judgment, 0.0 (worst) to 1.0 (best).
	Score float64 `json:"score" yaml:"score"`

	// Verdict is pass, warn, fail, or unknown, consistent with Score
	// under the fixed thresholds (unknown excepted).
	Verdict Verdict `json:"verdict" yaml:"verdict"`

	// Reasons explains the judgment. Non-empty on degraded results,
	// where it carries the failure cause.
	Reasons []string `json:"reasons" yaml:"reasons"`

	// Citations lists the search hits behind a web-grounded judgment.
	Citations []Citation `json:"citations,omitempty" yaml:"citations,omitempty"`

	// Assumptions discloses what the judgment presumes. Always includes
	// the not-real-time disclaimer.
	Assumptions []string `json:"assumptions" yaml:"assumptions"`

	// QuestionsToUser lists follow-ups that would sharpen the judgment.
	QuestionsToUser []string `json:"questions_to_user" yaml:"questions_to_user"`
}
