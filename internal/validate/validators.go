// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate runs the candidates-by-validators judgment grid. Five
// check kinds score each candidate independently; two of them can ground
// their judgment in web search results when a search index is configured.
// Every failure inside the grid degrades to a well-formed low-score result
// so downstream aggregation never special-cases errors.
package validate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pdiddy/trip-planner/internal/llm"
	"github.com/pdiddy/trip-planner/pkg/types"
)

// validatorSpec binds a check kind to its prompt identities and degradation
// behavior. Seasonality supports the insufficient-evidence verdict; the
// other kinds degrade to fail.
type validatorSpec struct {
	kind            types.ValidatorKind
	prompt          llm.PromptID
	webPrompt       llm.PromptID
	scope           types.SearchScope
	supportsUnknown bool
}

var validatorSpecs = map[types.ValidatorKind]validatorSpec{
	types.ValidatorBudgetFit: {
		kind:   types.ValidatorBudgetFit,
		prompt: llm.PromptValidatorBudgetFit,
	},
	types.ValidatorVibeFit: {
		kind:   types.ValidatorVibeFit,
		prompt: llm.PromptValidatorVibeFit,
	},
	types.ValidatorTransitComplexity: {
		kind:   types.ValidatorTransitComplexity,
		prompt: llm.PromptValidatorTransit,
	},
	types.ValidatorSafetyRisk: {
		kind:      types.ValidatorSafetyRisk,
		prompt:    llm.PromptValidatorSafety,
		webPrompt: llm.PromptValidatorSafetyWeb,
		scope:     types.ScopeSafety,
	},
	types.ValidatorSeasonality: {
		kind:            types.ValidatorSeasonality,
		prompt:          llm.PromptValidatorSeason,
		webPrompt:       llm.PromptValidatorSeasonWeb,
		scope:           types.ScopeWeather,
		supportsUnknown: true,
	},
}

// unknownSeason substitutes for a profile that never stated a travel period.
const unknownSeason = "알 수 없음"

func marshalVar(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

func seasonOf(profile types.TravelerProfile) string {
	if profile.Constraints.Season == "" {
		return unknownSeason
	}
	return profile.Constraints.Season
}

// runLLMValidator executes one ungrounded validator unit: a single
// generator call followed by boundary normalization.
func runLLMValidator(ctx context.Context, gen llm.Generator, spec validatorSpec, profile types.TravelerProfile, candidate types.Candidate) types.ValidatorResult {
	vars := map[string]string{
		"profile":      marshalVar(profile),
		"candidate":    marshalVar(candidate),
		"candidate_id": candidate.ID,
	}
	if spec.kind == types.ValidatorSeasonality {
		vars["season"] = seasonOf(profile)
	}

	raw, err := gen.Invoke(ctx, spec.prompt, vars)
	if err != nil {
		return degraded(spec, candidate.ID, err, false)
	}

	var result types.ValidatorResult
	if err := llm.DecodeInto(raw, &result); err != nil {
		return degraded(spec, candidate.ID, err, false)
	}

	return normalize(result, spec, candidate.ID, nil)
}

// normalize backfills required fields and enforces the score thresholds at
// the boundary so downstream code can trust the result shape. For kinds
// that support the unknown verdict it is kept as-is; every other verdict is
// recomputed from the score. When hits are supplied and the generator
// omitted or emptied citations, the top 3 hits are substituted.
func normalize(result types.ValidatorResult, spec validatorSpec, candidateID string, hits []types.SearchHit) types.ValidatorResult {
	result.Validator = spec.kind
	result.CandidateID = candidateID

	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 1 {
		result.Score = 1
	}
	if !(spec.supportsUnknown && result.Verdict == types.VerdictUnknown) {
		result.Verdict = types.VerdictForScore(result.Score)
	}

	if len(result.Reasons) == 0 {
		result.Reasons = []string{"검증 실패"}
	}
	result.Assumptions = ensureDisclaimer(result.Assumptions)
	if result.QuestionsToUser == nil {
		result.QuestionsToUser = []string{}
	}

	if len(result.Citations) == 0 && len(hits) > 0 {
		result.Citations = citationsFromHits(hits, 3)
	}

	return result
}

func ensureDisclaimer(assumptions []string) []string {
	for _, a := range assumptions {
		if a == types.DisclaimerNotRealtime {
			return assumptions
		}
	}
	return append(assumptions, types.DisclaimerNotRealtime)
}

func citationsFromHits(hits []types.SearchHit, max int) []types.Citation {
	if len(hits) > max {
		hits = hits[:max]
	}
	citations := make([]types.Citation, len(hits))
	for i, hit := range hits {
		citations[i] = types.Citation{
			Title:   hit.Title,
			URL:     hit.URL,
			Snippet: hit.Snippet,
		}
	}
	return citations
}

// degraded is the well-formed substitute for a failed validator unit. It
// has the same shape as a healthy result, so aggregation and display need
// no special-casing; the failure cause rides in the reasons.
func degraded(spec validatorSpec, candidateID string, err error, searchFailed bool) types.ValidatorResult {
	verdict := types.VerdictFail
	if spec.supportsUnknown {
		verdict = types.VerdictUnknown
	}
	assumptions := []string{types.DisclaimerNotRealtime}
	if searchFailed {
		assumptions = []string{"검색 실패", types.DisclaimerNotRealtime}
	}
	return types.ValidatorResult{
		Validator:       spec.kind,
		CandidateID:     candidateID,
		Score:           0.0,
		Verdict:         verdict,
		Reasons:         []string{fmt.Sprintf("검증 실패: %v", err)},
		Citations:       []types.Citation{},
		Assumptions:     assumptions,
		QuestionsToUser: []string{},
	}
}
