// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/pdiddy/trip-planner/internal/llm"
	"github.com/pdiddy/trip-planner/pkg/types"
)

// scriptedGenerator answers each prompt identity with a canned response.
// Unscripted validator prompts fall back to a healthy judgment.
type scriptedGenerator struct {
	responses map[llm.PromptID]string
	errors    map[llm.PromptID]error

	mu      sync.Mutex
	invoked []llm.PromptID
}

func (g *scriptedGenerator) Invoke(_ context.Context, id llm.PromptID, _ map[string]string) (json.RawMessage, error) {
	g.mu.Lock()
	g.invoked = append(g.invoked, id)
	g.mu.Unlock()

	if err, ok := g.errors[id]; ok {
		return nil, err
	}
	if raw, ok := g.responses[id]; ok {
		return json.RawMessage(raw), nil
	}
	if strings.HasPrefix(string(id), "validator_") {
		return json.RawMessage(`{"score":0.8,"verdict":"pass","reasons":["적합"],"assumptions":["실시간 데이터 아님"],"questions_to_user":[]}`), nil
	}
	return nil, fmt.Errorf("no scripted response for prompt %s", id)
}

func (g *scriptedGenerator) invokedCount(id llm.PromptID) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, p := range g.invoked {
		if p == id {
			n++
		}
	}
	return n
}

const profileResponse = `{
	"tags": ["카페", "힐링"],
	"top_priorities": ["조용한 분위기"],
	"constraints": {"season":"초가을","budget":"150만원","companions":"혼자","pace":"slow","duration_days":4,"domestic_or_international":"either"},
	"avoid": ["번잡한 곳"],
	"notes_for_recommender": ""
}`

const candidatesResponse2 = `{"candidates":[
	{"name":"전주","why_fit":["한옥 카페"],"watch_out":[],"best_length_days":3},
	{"name":"교토","why_fit":["정원 산책"],"watch_out":["가을 혼잡"],"best_length_days":4}
]}`

const aggregateResponse = `{
	"ranked_candidates":[{"candidate_id":"C2","name":"교토","total_score":0.8,"summary":"s","strengths":[],"risks":[],"watchouts":[]}],
	"final_choice":{"candidate_id":"C2","name":"교토","why":["계절 적합"],"what_to_confirm":[]},
	"disclaimer":"실시간 데이터가 아님을 명시"
}`

const finalResponse = `{
	"winner":{"name":"교토","why":["계절 적합"],"best_area_to_stay":"기온","budget_tip":"버스 패스"},
	"itinerary":[{"day":1,"morning":"도착","afternoon":"산책","evening":"저녁"}],
	"validation_summary":{"key_strengths":["날씨"],"key_risks":[],"watchouts":["혼잡"]}
}`

func newTestPlanner(gen llm.Generator) *Planner {
	return New(gen, nil, types.PipelineConfig{}, nil)
}

func TestRunClarifyRoute(t *testing.T) {
	gen := &scriptedGenerator{responses: map[llm.PromptID]string{
		llm.PromptClarify: `{"questions":["며칠 일정이신가요?","예산은 어느 정도인가요?","누구와 가시나요?"],"context":"조건이 부족합니다"}`,
	}}

	got, err := newTestPlanner(gen).Run(context.Background(), "서울")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got.Route != types.RouteClarify {
		t.Fatalf("route = %s, want clarify", got.Route)
	}
	clarify, ok := got.Data.(types.ClarifyResult)
	if !ok {
		t.Fatalf("data is %T, want ClarifyResult", got.Data)
	}
	if len(clarify.Questions) != 3 {
		t.Errorf("got %d questions, want 3", len(clarify.Questions))
	}
	if got.RouterReason == "" {
		t.Error("router reason should be set")
	}
}

func TestRunCandidatesOnlyRoute(t *testing.T) {
	gen := &scriptedGenerator{responses: map[llm.PromptID]string{
		llm.PromptProfile:    profileResponse,
		llm.PromptCandidates: candidatesResponse2,
	}}

	got, err := newTestPlanner(gen).Run(context.Background(), "여행지 후보만 알려줘, 3박4일 혼자 150만원")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got.Route != types.RouteCandidatesOnly {
		t.Fatalf("route = %s, want candidates_only", got.Route)
	}
	result, ok := got.Data.(types.CandidatesResult)
	if !ok {
		t.Fatalf("data is %T, want CandidatesResult", got.Data)
	}
	if len(result.Candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(result.Candidates))
	}
	if result.Candidates[0].ID != "C1" || result.Candidates[1].ID != "C2" {
		t.Errorf("candidate IDs = %s, %s; want C1, C2", result.Candidates[0].ID, result.Candidates[1].ID)
	}

	// Candidates-only never validates or aggregates.
	if n := gen.invokedCount(llm.PromptAggregate); n != 0 {
		t.Errorf("aggregate invoked %d times, want 0", n)
	}
}

func TestRunItineraryOnlyRoute(t *testing.T) {
	gen := &scriptedGenerator{responses: map[llm.PromptID]string{
		llm.PromptItinerary: `{"destination":"도쿄","duration_days":4,"best_area_to_stay":"신주쿠","budget_tip":"지하철 패스","itinerary":[{"day":1,"morning":"도착","afternoon":"산책","evening":"저녁"}],"tips":["팁"]}`,
	}}

	got, err := newTestPlanner(gen).Run(context.Background(), "도쿄 3박4일 혼자 카페 투어 일정 짜줘")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got.Route != types.RouteItineraryOnly {
		t.Fatalf("route = %s, want itinerary_only", got.Route)
	}
	result, ok := got.Data.(types.ItineraryResult)
	if !ok {
		t.Fatalf("data is %T, want ItineraryResult", got.Data)
	}
	if result.Destination != "도쿄" {
		t.Errorf("destination = %q, want 도쿄", result.Destination)
	}
}

func TestRunFullRoute(t *testing.T) {
	gen := &scriptedGenerator{responses: map[llm.PromptID]string{
		llm.PromptProfile:    profileResponse,
		llm.PromptCandidates: candidatesResponse2,
		llm.PromptAggregate:  aggregateResponse,
		llm.PromptFinal:      finalResponse,
	}}

	got, err := newTestPlanner(gen).Run(context.Background(), "3박4일 혼자 150만원 카페 투어")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got.Route != types.RouteFull {
		t.Fatalf("route = %s, want full", got.Route)
	}
	result, ok := got.Data.(types.FullResult)
	if !ok {
		t.Fatalf("data is %T, want FullResult", got.Data)
	}

	if len(result.Candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(result.Candidates))
	}
	// 2 candidates x 5 validators.
	if len(result.ValidatorResults) != 10 {
		t.Errorf("got %d validator results, want 10", len(result.ValidatorResults))
	}
	for _, r := range result.ValidatorResults {
		if r.CandidateID != "C1" && r.CandidateID != "C2" {
			t.Errorf("validator result references unknown candidate %q", r.CandidateID)
		}
	}
	if result.Aggregation.FinalChoice.CandidateID != "C2" {
		t.Errorf("final choice = %s, want C2", result.Aggregation.FinalChoice.CandidateID)
	}
	if result.Final.Winner.Name != "교토" {
		t.Errorf("winner = %q, want 교토", result.Final.Winner.Name)
	}
}

func TestRunFullProfileFailurePropagates(t *testing.T) {
	gen := &scriptedGenerator{errors: map[llm.PromptID]error{
		llm.PromptProfile: &llm.TransportError{Err: fmt.Errorf("unavailable")},
	}}

	_, err := newTestPlanner(gen).Run(context.Background(), "3박4일 혼자 150만원 카페 투어")
	if err == nil {
		t.Fatal("profile extraction failure should surface to the caller")
	}
	if !strings.Contains(err.Error(), "extracting profile") {
		t.Errorf("error should name the failed stage: %v", err)
	}
}

func TestRunFullSurvivesAggregatorFailure(t *testing.T) {
	// The aggregator absorbs its own failure into a degraded result; the
	// pipeline keeps going to final synthesis.
	gen := &scriptedGenerator{
		responses: map[llm.PromptID]string{
			llm.PromptProfile:    profileResponse,
			llm.PromptCandidates: candidatesResponse2,
			llm.PromptFinal:      finalResponse,
		},
		errors: map[llm.PromptID]error{
			llm.PromptAggregate: fmt.Errorf("boom"),
		},
	}

	got, err := newTestPlanner(gen).Run(context.Background(), "3박4일 혼자 150만원 카페 투어")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	result := got.Data.(types.FullResult)
	if result.Aggregation.FinalChoice.CandidateID != "C1" {
		t.Errorf("degraded aggregation should force C1, got %s", result.Aggregation.FinalChoice.CandidateID)
	}
}

func TestGenerateCandidatesRejectsEmptySet(t *testing.T) {
	gen := &scriptedGenerator{responses: map[llm.PromptID]string{
		llm.PromptProfile:    profileResponse,
		llm.PromptCandidates: `{"candidates":[]}`,
	}}

	_, err := newTestPlanner(gen).Run(context.Background(), "3박4일 혼자 150만원 카페 투어")
	if err == nil {
		t.Fatal("empty candidate set should be an error")
	}
}

func TestClarifyDefaultsMissingFields(t *testing.T) {
	gen := &scriptedGenerator{responses: map[llm.PromptID]string{
		llm.PromptClarify: `{"questions":["어디로 가고 싶으세요?"],"context":"c"}`,
	}}

	got, err := newTestPlanner(gen).Clarify(context.Background(), "음", nil)
	if err != nil {
		t.Fatalf("Clarify: %v", err)
	}
	if len(got.Questions) != 1 {
		t.Errorf("got %d questions, want 1", len(got.Questions))
	}
}
