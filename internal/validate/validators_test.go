// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/pdiddy/trip-planner/internal/llm"
	"github.com/pdiddy/trip-planner/pkg/types"
)

func TestNormalizeEnforcesThresholds(t *testing.T) {
	budget := validatorSpecs[types.ValidatorBudgetFit]
	season := validatorSpecs[types.ValidatorSeasonality]

	tests := []struct {
		name    string
		spec    validatorSpec
		score   float64
		verdict types.Verdict
		want    types.Verdict
	}{
		{"pass boundary", budget, 0.7, types.VerdictFail, types.VerdictPass},
		{"warn boundary", budget, 0.4, types.VerdictPass, types.VerdictWarn},
		{"fail below warn", budget, 0.39, types.VerdictPass, types.VerdictFail},
		{"generator drift corrected", budget, 0.9, types.VerdictWarn, types.VerdictPass},
		{"unknown kept for seasonality", season, 0.9, types.VerdictUnknown, types.VerdictUnknown},
		{"unknown rejected for budget", budget, 0.9, types.VerdictUnknown, types.VerdictPass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := types.ValidatorResult{Score: tt.score, Verdict: tt.verdict, Reasons: []string{"r"}}
			got := normalize(in, tt.spec, "C1", nil)
			if got.Verdict != tt.want {
				t.Errorf("verdict = %s, want %s", got.Verdict, tt.want)
			}
		})
	}
}

func TestNormalizeClampsScore(t *testing.T) {
	spec := validatorSpecs[types.ValidatorVibeFit]

	got := normalize(types.ValidatorResult{Score: 1.7}, spec, "C1", nil)
	if got.Score != 1.0 {
		t.Errorf("score = %v, want 1.0", got.Score)
	}
	got = normalize(types.ValidatorResult{Score: -0.2}, spec, "C1", nil)
	if got.Score != 0.0 {
		t.Errorf("score = %v, want 0.0", got.Score)
	}
}

func TestNormalizeBackfillsRequiredFields(t *testing.T) {
	spec := validatorSpecs[types.ValidatorTransitComplexity]

	got := normalize(types.ValidatorResult{Score: 0.8}, spec, "C3", nil)

	if got.Validator != types.ValidatorTransitComplexity {
		t.Errorf("validator = %s", got.Validator)
	}
	if got.CandidateID != "C3" {
		t.Errorf("candidate_id = %s, want C3", got.CandidateID)
	}
	if len(got.Reasons) == 0 {
		t.Error("reasons should be backfilled")
	}
	if got.QuestionsToUser == nil {
		t.Error("questions_to_user should be empty, not nil")
	}
	found := false
	for _, a := range got.Assumptions {
		if a == types.DisclaimerNotRealtime {
			found = true
		}
	}
	if !found {
		t.Errorf("assumptions missing the disclaimer: %v", got.Assumptions)
	}
}

func TestNormalizeKeepsExistingDisclaimer(t *testing.T) {
	spec := validatorSpecs[types.ValidatorBudgetFit]
	in := types.ValidatorResult{
		Score:       0.8,
		Reasons:     []string{"r"},
		Assumptions: []string{types.DisclaimerNotRealtime, "환율 변동 미반영"},
	}

	got := normalize(in, spec, "C1", nil)

	count := 0
	for _, a := range got.Assumptions {
		if a == types.DisclaimerNotRealtime {
			count++
		}
	}
	if count != 1 {
		t.Errorf("disclaimer appears %d times, want 1", count)
	}
}

func TestNormalizeBackfillsCitations(t *testing.T) {
	spec := validatorSpecs[types.ValidatorSafetyRisk]
	hits := []types.SearchHit{
		{Title: "a", URL: "https://a", Snippet: "sa"},
		{Title: "b", URL: "https://b", Snippet: "sb"},
		{Title: "c", URL: "https://c", Snippet: "sc"},
		{Title: "d", URL: "https://d", Snippet: "sd"},
	}

	got := normalize(types.ValidatorResult{Score: 0.8, Reasons: []string{"r"}}, spec, "C1", hits)

	if len(got.Citations) != 3 {
		t.Fatalf("got %d citations, want 3", len(got.Citations))
	}
	if got.Citations[0].URL != "https://a" || got.Citations[2].URL != "https://c" {
		t.Errorf("citations should be the top hits in order: %v", got.Citations)
	}

	// Generator-provided citations are kept as-is.
	in := types.ValidatorResult{
		Score:     0.8,
		Reasons:   []string{"r"},
		Citations: []types.Citation{{Title: "own", URL: "https://own"}},
	}
	got = normalize(in, spec, "C1", hits)
	if len(got.Citations) != 1 || got.Citations[0].URL != "https://own" {
		t.Errorf("generator citations should survive: %v", got.Citations)
	}
}

func TestDegradedShape(t *testing.T) {
	err := fmt.Errorf("timeout")

	got := degraded(validatorSpecs[types.ValidatorBudgetFit], "C2", err, false)
	if got.Verdict != types.VerdictFail {
		t.Errorf("verdict = %s, want fail", got.Verdict)
	}
	if got.Score != 0.0 {
		t.Errorf("score = %v, want 0", got.Score)
	}
	if !strings.Contains(got.Reasons[0], "timeout") {
		t.Errorf("reasons should carry the cause: %v", got.Reasons)
	}

	got = degraded(validatorSpecs[types.ValidatorSeasonality], "C2", err, true)
	if got.Verdict != types.VerdictUnknown {
		t.Errorf("verdict = %s, want unknown", got.Verdict)
	}
	if got.Assumptions[0] != "검색 실패" {
		t.Errorf("assumptions should flag the search failure: %v", got.Assumptions)
	}
}

func TestRunLLMValidatorUnparseableOutput(t *testing.T) {
	gen := &fakeGenerator{
		invoke: func(llm.PromptID, map[string]string) (json.RawMessage, error) {
			return json.RawMessage(`{"score":`), nil
		},
	}
	candidate := types.Candidate{ID: "C1", Name: "전주"}

	got := runLLMValidator(context.Background(), gen, validatorSpecs[types.ValidatorBudgetFit], testProfile(), candidate)

	if got.Verdict != types.VerdictFail || got.Score != 0.0 {
		t.Errorf("got verdict %s score %v, want degraded fail/0", got.Verdict, got.Score)
	}
	if got.CandidateID != "C1" {
		t.Errorf("candidate_id = %s, want C1", got.CandidateID)
	}
}

func TestRunLLMValidatorPassesSeason(t *testing.T) {
	var sawSeason string
	gen := &fakeGenerator{
		invoke: func(_ llm.PromptID, vars map[string]string) (json.RawMessage, error) {
			sawSeason = vars["season"]
			return json.RawMessage(healthyResult), nil
		},
	}
	candidate := types.Candidate{ID: "C1", Name: "전주"}

	runLLMValidator(context.Background(), gen, validatorSpecs[types.ValidatorSeasonality], testProfile(), candidate)
	if sawSeason != "초가을" {
		t.Errorf("season = %q, want 초가을", sawSeason)
	}

	profile := types.TravelerProfile{}
	runLLMValidator(context.Background(), gen, validatorSpecs[types.ValidatorSeasonality], profile, candidate)
	if sawSeason != unknownSeason {
		t.Errorf("season = %q, want %q", sawSeason, unknownSeason)
	}
}
