// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate merges the full validator result set into one ranked
// recommendation. It never propagates a failure to its caller: when the
// generator call fails, the first candidate becomes a forced default
// choice with the failure surfaced in the summary.
package aggregate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pdiddy/trip-planner/internal/llm"
	"github.com/pdiddy/trip-planner/pkg/types"
)

func marshalVar(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(b)
}

// Run asks the generator to rank the candidates from the serialized
// validator results, then backfills the three required top-level fields.
// The candidates slice must carry the identifiers the validator results
// were joined on.
func Run(ctx context.Context, gen llm.Generator, profile types.TravelerProfile, candidates []types.Candidate, results []types.ValidatorResult) types.AggregationResult {
	raw, err := gen.Invoke(ctx, llm.PromptAggregate, map[string]string{
		"profile":            marshalVar(profile),
		"candidates":         marshalVar(candidates),
		"validators_results": marshalVar(results),
	})
	if err != nil {
		return fallback(candidates, err)
	}

	var agg types.AggregationResult
	if err := llm.DecodeInto(raw, &agg); err != nil {
		return fallback(candidates, err)
	}

	if agg.RankedCandidates == nil {
		agg.RankedCandidates = []types.RankedCandidate{}
	}
	if agg.Disclaimer == "" {
		agg.Disclaimer = types.DefaultDisclaimer
	}
	return agg
}

// fallback builds the synthetic degraded aggregation: the first candidate
// is named as a forced default choice and the failure cause is surfaced.
func fallback(candidates []types.Candidate, err error) types.AggregationResult {
	id, name := "C1", "Unknown"
	if len(candidates) > 0 {
		id, name = candidates[0].ID, candidates[0].Name
	}
	return types.AggregationResult{
		RankedCandidates: []types.RankedCandidate{
			{
				CandidateID: id,
				Name:        name,
				TotalScore:  0.5,
				Summary:     fmt.Sprintf("Aggregation failed: %v", err),
				Strengths:   []string{},
				Risks:       []string{"집계 실패"},
				Watchouts:   []string{},
			},
		},
		FinalChoice: types.FinalChoice{
			CandidateID:   id,
			Name:          name,
			Why:           []string{"집계 실패로 인한 기본 선택"},
			WhatToConfirm: []string{},
		},
		Disclaimer: types.DefaultDisclaimer,
	}
}
