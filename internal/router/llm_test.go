// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/pdiddy/trip-planner/internal/llm"
	"github.com/pdiddy/trip-planner/pkg/types"
)

// mockGenerator returns a canned response or error for every prompt.
type mockGenerator struct {
	raw   string
	err   error
	calls int
}

func (m *mockGenerator) Invoke(_ context.Context, _ llm.PromptID, _ map[string]string) (json.RawMessage, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return json.RawMessage(m.raw), nil
}

func TestClassifyWithFallbackPrefersRules(t *testing.T) {
	gen := &mockGenerator{raw: `{"route":"full"}`}

	got := ClassifyWithFallback(context.Background(), gen, "서울", 0)

	if got.RouterType != types.RouterRule {
		t.Errorf("router_type = %s, want rule", got.RouterType)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times, want 0", gen.calls)
	}
}

func TestClassifyWithFallbackConsultsLLM(t *testing.T) {
	gen := &mockGenerator{raw: `{"route":"candidates_only","reason":"후보 요청","confidence":0.8}`}

	// A threshold above every rule confidence forces the fallback.
	got := ClassifyWithFallback(context.Background(), gen, "서울", 0.99)

	if gen.calls != 1 {
		t.Fatalf("generator called %d times, want 1", gen.calls)
	}
	if got.Route != types.RouteCandidatesOnly {
		t.Errorf("route = %s, want candidates_only", got.Route)
	}
	if got.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", got.Confidence)
	}
	if got.RouterType != types.RouterLLM {
		t.Errorf("router_type = %s, want llm", got.RouterType)
	}
}

func TestClassifyLLMInvalidRouteSubstitutesFull(t *testing.T) {
	gen := &mockGenerator{raw: `{"route":"teleport","confidence":0.9}`}

	got := ClassifyLLM(context.Background(), gen, "어디로든 떠나고 싶다")

	if got.Route != types.RouteFull {
		t.Errorf("route = %s, want full", got.Route)
	}
}

func TestClassifyLLMGeneratorFailure(t *testing.T) {
	gen := &mockGenerator{err: &llm.TransportError{Err: fmt.Errorf("rate limited")}}

	got := ClassifyLLM(context.Background(), gen, "어디로든")

	if got.Route != types.RouteClarify {
		t.Errorf("route = %s, want clarify", got.Route)
	}
	if got.Confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5", got.Confidence)
	}
	if !strings.Contains(got.Reason, "rate limited") {
		t.Errorf("reason should carry the failure cause: %q", got.Reason)
	}
	if got.RouterType != types.RouterLLM {
		t.Errorf("router_type = %s, want llm", got.RouterType)
	}
}

func TestClassifyLLMUnparseableOutput(t *testing.T) {
	gen := &mockGenerator{raw: `{"route":`}

	got := ClassifyLLM(context.Background(), gen, "어디로든")

	if got.Route != types.RouteClarify {
		t.Errorf("route = %s, want clarify", got.Route)
	}
}

func TestClassifyLLMDefaults(t *testing.T) {
	gen := &mockGenerator{raw: `{"route":"clarify"}`}

	got := ClassifyLLM(context.Background(), gen, "음")

	if got.Reason == "" {
		t.Error("reason should have a default")
	}
	if got.Confidence != 0.7 {
		t.Errorf("confidence = %v, want default 0.7", got.Confidence)
	}
	if got.MissingFields == nil {
		t.Error("missing_fields should be empty, not nil")
	}
}
