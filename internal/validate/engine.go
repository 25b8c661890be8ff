// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"context"
	"fmt"
	"sync"

	"github.com/pdiddy/trip-planner/internal/llm"
	"github.com/pdiddy/trip-planner/pkg/types"
)

// DefaultMaxConcurrency bounds the validator grid when the config does not.
const DefaultMaxConcurrency = 5

// Engine fans a candidate set out to every validator kind under a bounded
// concurrency permit and waits for the whole grid to settle.
type Engine struct {
	gen     llm.Generator
	search  Searcher
	permits int
}

// NewEngine builds a validation engine. search may be nil, in which case
// every validator runs its ungrounded variant.
func NewEngine(gen llm.Generator, search Searcher, cfg types.ValidationConfig) *Engine {
	permits := cfg.MaxConcurrency
	if permits <= 0 {
		permits = DefaultMaxConcurrency
	}
	return &Engine{gen: gen, search: search, permits: permits}
}

// ValidateAll runs every validator kind against every candidate and returns
// exactly len(candidates) × 5 results, one per pair, grouped by candidate
// in the fixed validator order. The grid blocks until every unit settles;
// individual failures degrade in place and never abort the grid.
//
// Variant selection happens once, here, before the grid is built: the
// safety and seasonality validators run their web-grounded variants only
// when a usable search index is configured for them.
func (e *Engine) ValidateAll(ctx context.Context, profile types.TravelerProfile, candidates []types.Candidate) []types.ValidatorResult {
	kinds := types.AllValidatorKinds()
	useWeb := e.selectWebVariants()

	results := make([]types.ValidatorResult, len(candidates)*len(kinds))
	permit := make(chan struct{}, e.permits)
	var wg sync.WaitGroup

	for ci, candidate := range candidates {
		for ki, kind := range kinds {
			wg.Add(1)
			go func(slot int, kind types.ValidatorKind, candidate types.Candidate) {
				defer wg.Done()
				permit <- struct{}{}
				defer func() { <-permit }()
				results[slot] = e.runUnit(ctx, kind, useWeb[kind], profile, candidate)
			}(ci*len(kinds)+ki, kind, candidate)
		}
	}
	wg.Wait()

	return results
}

// selectWebVariants decides per kind whether the grounded variant runs.
// Safety accepts either index since it can fall back to the weather scope.
func (e *Engine) selectWebVariants() map[types.ValidatorKind]bool {
	if e.search == nil {
		return map[types.ValidatorKind]bool{}
	}
	weather := e.search.Configured(types.ScopeWeather)
	safety := e.search.Configured(types.ScopeSafety)
	return map[types.ValidatorKind]bool{
		types.ValidatorSafetyRisk:  safety || weather,
		types.ValidatorSeasonality: weather,
	}
}

// runUnit executes one (candidate, validator) cell. A panic inside a
// validator is confined to its cell and converted to a degraded result.
func (e *Engine) runUnit(ctx context.Context, kind types.ValidatorKind, web bool, profile types.TravelerProfile, candidate types.Candidate) (result types.ValidatorResult) {
	spec := validatorSpecs[kind]
	defer func() {
		if r := recover(); r != nil {
			result = degraded(spec, candidate.ID, fmt.Errorf("panic: %v", r), web)
		}
	}()

	if web {
		return runWebValidator(ctx, e.gen, e.search, spec, profile, candidate)
	}
	return runLLMValidator(ctx, e.gen, spec, profile, candidate)
}
