// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/trip-planner/internal/llm"
	"github.com/pdiddy/trip-planner/pkg/types"
)

// Searcher is the search capability the web-grounded validators consume.
// Implementations never return errors: a failed search is an empty slice.
type Searcher interface {
	Search(ctx context.Context, query string, scope types.SearchScope, maxResults int) []types.SearchHit
	Configured(scope types.SearchScope) bool
}

// hitsPerQuery and maxUniqueHits bound the evidence passed to the
// generator: 3 hits per query, top 5 unique across all queries.
const (
	hitsPerQuery  = 3
	maxUniqueHits = 5
)

// noResultsMarker tells the generator explicitly that search came up empty,
// so it discloses the evidence gap instead of fabricating grounding.
const noResultsMarker = "검색 결과가 없습니다."

// safetyQueries derives the safety search queries from the candidate and
// the traveler's companions. Solo travelers get a solo-specific query.
func safetyQueries(profile types.TravelerProfile, candidate types.Candidate) []string {
	companions := strings.ToLower(profile.Constraints.Companions)
	queries := []string{
		fmt.Sprintf("%s safety travel advisory", candidate.Name),
		fmt.Sprintf("%s crime rate tourist safety", candidate.Name),
	}
	if strings.Contains(companions, "혼자") || strings.Contains(companions, "solo") {
		queries = append(queries, fmt.Sprintf("%s solo traveler safety", candidate.Name))
	} else {
		queries = append(queries, fmt.Sprintf("%s tourist safety precautions", candidate.Name))
	}
	return queries
}

// seasonQueries derives the weather and crowd-level queries for the
// candidate and travel period.
func seasonQueries(candidate types.Candidate, season string) []string {
	return []string{
		fmt.Sprintf("%s %s weather climate", candidate.Name, season),
		fmt.Sprintf("%s %s tourist season crowd level", candidate.Name, season),
		fmt.Sprintf("%s best time to visit %s", candidate.Name, season),
	}
}

// collectHits runs every query against the scope, deduplicates by URL in
// first-seen order, and keeps the top unique hits.
func collectHits(ctx context.Context, search Searcher, queries []string, scope types.SearchScope) []types.SearchHit {
	seen := make(map[string]bool)
	var unique []types.SearchHit
	for _, query := range queries {
		for _, hit := range search.Search(ctx, query, scope, hitsPerQuery) {
			if seen[hit.URL] {
				continue
			}
			seen[hit.URL] = true
			unique = append(unique, hit)
		}
	}
	if len(unique) > maxUniqueHits {
		unique = unique[:maxUniqueHits]
	}
	return unique
}

// formatHits renders hits as a numbered evidence list for the generator.
func formatHits(hits []types.SearchHit) string {
	if len(hits) == 0 {
		return noResultsMarker
	}
	var b strings.Builder
	for i, hit := range hits {
		fmt.Fprintf(&b, "\n[%d] %s\nURL: %s\n%s\n", i+1, hit.Title, hit.URL, hit.Snippet)
	}
	return b.String()
}

// runWebValidator executes one web-grounded unit: search, then a grounded
// generator call, then normalization with citation backfill. The safety
// validator falls back to the weather index when the safety index is
// unconfigured; scope selection itself happens in the engine, which only
// chooses the web variant when some usable index exists.
func runWebValidator(ctx context.Context, gen llm.Generator, search Searcher, spec validatorSpec, profile types.TravelerProfile, candidate types.Candidate) types.ValidatorResult {
	scope := spec.scope
	if !search.Configured(scope) && spec.kind == types.ValidatorSafetyRisk {
		scope = types.ScopeWeather
	}

	var queries []string
	switch spec.kind {
	case types.ValidatorSafetyRisk:
		queries = safetyQueries(profile, candidate)
	default:
		queries = seasonQueries(candidate, seasonOf(profile))
	}

	hits := collectHits(ctx, search, queries, scope)

	vars := map[string]string{
		"profile":        marshalVar(profile),
		"candidate":      marshalVar(candidate),
		"candidate_id":   candidate.ID,
		"search_results": formatHits(hits),
	}
	if spec.kind == types.ValidatorSeasonality {
		vars["season"] = seasonOf(profile)
	}

	raw, err := gen.Invoke(ctx, spec.webPrompt, vars)
	if err != nil {
		return degraded(spec, candidate.ID, err, true)
	}

	var result types.ValidatorResult
	if err := llm.DecodeInto(raw, &result); err != nil {
		return degraded(spec, candidate.ID, err, true)
	}

	return normalize(result, spec, candidate.ID, hits)
}
