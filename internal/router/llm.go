// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package router

import (
	"context"
	"fmt"

	"github.com/pdiddy/trip-planner/internal/llm"
	"github.com/pdiddy/trip-planner/pkg/types"
)

// DefaultFallbackThreshold is the rule confidence below which the
// generator-backed router is consulted.
const DefaultFallbackThreshold = 0.7

// llmRouteResponse is the classification schema the generator returns.
type llmRouteResponse struct {
	Route         string   `json:"route"`
	Reason        string   `json:"reason"`
	MissingFields []string `json:"missing_fields"`
	Confidence    float64  `json:"confidence"`
}

// ClassifyWithFallback routes a request by rules first, deferring to the
// generator only when rule confidence is below threshold (0 means the
// default 0.7). The fallback never fails: a generator error yields the
// conservative clarify route, since asking the user for more input is
// always safe.
func ClassifyWithFallback(ctx context.Context, gen llm.Generator, text string, threshold float64) types.RouteDecision {
	if threshold <= 0 {
		threshold = DefaultFallbackThreshold
	}

	decision := Classify(text)
	if decision.Confidence >= threshold {
		return decision
	}
	return ClassifyLLM(ctx, gen, text)
}

// ClassifyLLM asks the structured generator to route the request. The
// returned route is validated against the four known values, substituting
// full when the generator invents one.
func ClassifyLLM(ctx context.Context, gen llm.Generator, text string) types.RouteDecision {
	raw, err := gen.Invoke(ctx, llm.PromptRouter, map[string]string{"user_input": text})
	if err != nil {
		return clarifyFallback(err)
	}

	var resp llmRouteResponse
	if err := llm.DecodeInto(raw, &resp); err != nil {
		return clarifyFallback(err)
	}

	route := types.Route(resp.Route)
	if !types.ValidRoute(route) {
		route = types.RouteFull
	}

	reason := resp.Reason
	if reason == "" {
		reason = "LLM 라우팅 결과"
	}
	confidence := resp.Confidence
	if confidence == 0 {
		confidence = 0.7
	}
	missing := resp.MissingFields
	if missing == nil {
		missing = []string{}
	}

	return types.RouteDecision{
		Route:         route,
		Reason:        reason,
		Confidence:    confidence,
		MissingFields: missing,
		RouterType:    types.RouterLLM,
	}
}

// clarifyFallback is the conservative decision when the generator itself
// fails: ask the user for more input.
func clarifyFallback(err error) types.RouteDecision {
	return types.RouteDecision{
		Route:         types.RouteClarify,
		Reason:        fmt.Sprintf("LLM 라우팅 실패, clarify로 fallback: %v", err),
		Confidence:    0.5,
		MissingFields: []string{},
		RouterType:    types.RouterLLM,
	}
}
