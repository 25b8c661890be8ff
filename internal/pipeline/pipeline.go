// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline composes the routed travel-planning flows. A request is
// classified once, then dispatched to exactly one pipeline; data flows
// strictly forward and no stage is revisited. Only the full pipeline runs
// the validation grid and the aggregator.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/trip-planner/internal/aggregate"
	"github.com/pdiddy/trip-planner/internal/llm"
	"github.com/pdiddy/trip-planner/internal/router"
	"github.com/pdiddy/trip-planner/internal/validate"
	"github.com/pdiddy/trip-planner/pkg/types"
)

// Planner routes travel requests and runs the selected pipeline.
type Planner struct {
	gen       llm.Generator
	engine    *validate.Engine
	threshold float64
	w         io.Writer
}

// New builds a planner. search may be nil to disable web grounding;
// diagnostics go to w (pass nil to discard).
func New(gen llm.Generator, search validate.Searcher, cfg types.PipelineConfig, w io.Writer) *Planner {
	if w == nil {
		w = io.Discard
	}
	return &Planner{
		gen:       gen,
		engine:    validate.NewEngine(gen, search, cfg.Validation),
		threshold: cfg.Router.FallbackThreshold,
		w:         w,
	}
}

// Route classifies a request without running any pipeline.
func (p *Planner) Route(ctx context.Context, text string) types.RouteDecision {
	return router.ClassifyWithFallback(ctx, p.gen, text, p.threshold)
}

// Run classifies the request and executes the selected pipeline. Failures
// the pipelines do not absorb internally (profile extraction, candidate
// generation, final synthesis) surface as errors; the caller owns
// user-facing messaging for those.
func (p *Planner) Run(ctx context.Context, text string) (types.RouteResult, error) {
	decision := p.Route(ctx, text)
	fmt.Fprintf(p.w, "route %s via %s (confidence %.2f): %s\n",
		decision.Route, decision.RouterType, decision.Confidence, decision.Reason)

	var (
		data any
		err  error
	)
	switch decision.Route {
	case types.RouteClarify:
		data, err = p.Clarify(ctx, text, decision.MissingFields)
	case types.RouteCandidatesOnly:
		data, err = p.CandidatesOnly(ctx, text)
	case types.RouteItineraryOnly:
		data, err = p.ItineraryOnly(ctx, text)
	default:
		data, err = p.Full(ctx, text)
	}
	if err != nil {
		return types.RouteResult{}, fmt.Errorf("%s pipeline: %w", decision.Route, err)
	}

	return types.RouteResult{
		Route:        decision.Route,
		RouterReason: decision.Reason,
		Data:         data,
	}, nil
}

// Clarify asks the generator for follow-up questions covering the missing
// request fields instead of producing a recommendation.
func (p *Planner) Clarify(ctx context.Context, text string, missingFields []string) (types.ClarifyResult, error) {
	fields := strings.Join(missingFields, ", ")
	if fields == "" {
		fields = "추가 정보"
	}

	raw, err := p.gen.Invoke(ctx, llm.PromptClarify, map[string]string{
		"user_input":     text,
		"missing_fields": fields,
	})
	if err != nil {
		return types.ClarifyResult{}, err
	}

	var result types.ClarifyResult
	if err := llm.DecodeInto(raw, &result); err != nil {
		return types.ClarifyResult{}, err
	}
	return result, nil
}

// CandidatesOnly extracts the profile and generates candidates, skipping
// validation and aggregation.
func (p *Planner) CandidatesOnly(ctx context.Context, text string) (types.CandidatesResult, error) {
	profile, err := p.extractProfile(ctx, text)
	if err != nil {
		return types.CandidatesResult{}, err
	}
	candidates, err := p.generateCandidates(ctx, profile)
	if err != nil {
		return types.CandidatesResult{}, err
	}
	return types.CandidatesResult{Profile: profile, Candidates: candidates}, nil
}

// ItineraryOnly builds a day-by-day schedule for a destination the user
// already named; the generator extracts the destination from the request.
func (p *Planner) ItineraryOnly(ctx context.Context, text string) (types.ItineraryResult, error) {
	raw, err := p.gen.Invoke(ctx, llm.PromptItinerary, map[string]string{"user_input": text})
	if err != nil {
		return types.ItineraryResult{}, err
	}

	var result types.ItineraryResult
	if err := llm.DecodeInto(raw, &result); err != nil {
		return types.ItineraryResult{}, err
	}
	return result, nil
}

// Full runs the five-stage pipeline: profile extraction, candidate
// generation, the validation grid, aggregation, and final synthesis. The
// final synthesis sees only the profile and the aggregation, not the raw
// candidates or validator detail.
func (p *Planner) Full(ctx context.Context, text string) (types.FullResult, error) {
	profile, err := p.extractProfile(ctx, text)
	if err != nil {
		return types.FullResult{}, fmt.Errorf("extracting profile: %w", err)
	}

	candidates, err := p.generateCandidates(ctx, profile)
	if err != nil {
		return types.FullResult{}, fmt.Errorf("generating candidates: %w", err)
	}
	fmt.Fprintf(p.w, "validating %d candidates\n", len(candidates))

	results := p.engine.ValidateAll(ctx, profile, candidates)
	aggregation := aggregate.Run(ctx, p.gen, profile, candidates, results)

	final, err := p.synthesizeFinal(ctx, profile, aggregation)
	if err != nil {
		return types.FullResult{}, fmt.Errorf("final synthesis: %w", err)
	}

	return types.FullResult{
		Profile:          profile,
		Candidates:       candidates,
		ValidatorResults: results,
		Aggregation:      aggregation,
		Final:            final,
	}, nil
}

func (p *Planner) extractProfile(ctx context.Context, text string) (types.TravelerProfile, error) {
	raw, err := p.gen.Invoke(ctx, llm.PromptProfile, map[string]string{"user_input": text})
	if err != nil {
		return types.TravelerProfile{}, err
	}

	var profile types.TravelerProfile
	if err := llm.DecodeInto(raw, &profile); err != nil {
		return types.TravelerProfile{}, err
	}
	return profile, nil
}

type candidatesResponse struct {
	Candidates []types.Candidate `json:"candidates"`
}

// generateCandidates produces the candidate set and assigns identifiers
// immediately, in generation order. Nothing downstream reorders or
// renumbers the set; the identifiers are the join key for every validator
// result and the aggregation.
func (p *Planner) generateCandidates(ctx context.Context, profile types.TravelerProfile) ([]types.Candidate, error) {
	raw, err := p.gen.Invoke(ctx, llm.PromptCandidates, map[string]string{
		"profile": marshalVar(profile),
	})
	if err != nil {
		return nil, err
	}

	var resp candidatesResponse
	if err := llm.DecodeInto(raw, &resp); err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("generator returned no candidates")
	}
	return types.AssignCandidateIDs(resp.Candidates), nil
}

func (p *Planner) synthesizeFinal(ctx context.Context, profile types.TravelerProfile, aggregation types.AggregationResult) (types.FinalPlan, error) {
	raw, err := p.gen.Invoke(ctx, llm.PromptFinal, map[string]string{
		"profile":     marshalVar(profile),
		"aggregation": marshalVar(aggregation),
	})
	if err != nil {
		return types.FinalPlan{}, err
	}

	var plan types.FinalPlan
	if err := llm.DecodeInto(raw, &plan); err != nil {
		return types.FinalPlan{}, err
	}
	return plan, nil
}

func marshalVar(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
