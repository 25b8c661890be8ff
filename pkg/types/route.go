// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the trip-planner pipeline.
package types

// Route identifies which pipeline handles a request.
type Route string

const (
	// RouteFull runs the complete recommendation pipeline:
	// profile → candidates → validation → aggregation → itinerary.
	RouteFull Route = "full"

	// RouteClarify asks the user follow-up questions instead of recommending.
	RouteClarify Route = "clarify"

	// RouteCandidatesOnly stops after generating destination candidates.
	RouteCandidatesOnly Route = "candidates_only"

	// RouteItineraryOnly builds a schedule for an already-chosen destination.
	RouteItineraryOnly Route = "itinerary_only"
)

// ValidRoute reports whether r is one of the four known routes.
func ValidRoute(r Route) bool {
	switch r {
	case RouteFull, RouteClarify, RouteCandidatesOnly, RouteItineraryOnly:
		return true
	}
	return false
}

// RouterType records which stage produced a RouteDecision.
type RouterType string

const (
	// RouterRule is the deterministic keyword/pattern stage.
	RouterRule RouterType = "rule"

	// RouterLLM is the generator-backed fallback stage.
	RouterLLM RouterType = "llm"
)

// RouteDecision is the outcome of classifying a free-text travel request.
// It is computed once per request and read-only afterward.
type RouteDecision struct {
	// Route is the selected pipeline.
	Route Route `json:"route" yaml:"route"`

	// Reason is a human-readable explanation for the selection.
	Reason string `json:"reason" yaml:"reason"`

	// Confidence is the router's confidence in the selection, 0.0-1.0.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// MissingFields lists the request fields that need clarification
	// (populated only for the clarify route).
	MissingFields []string `json:"missing_fields" yaml:"missing_fields"`

	// RouterType identifies which router stage made the decision.
	RouterType RouterType `json:"router_type" yaml:"router_type"`
}

// RouteResult is the standardized payload returned after executing the
// selected pipeline. Data holds the route-specific result structure.
type RouteResult struct {
	Route        Route  `json:"route" yaml:"route"`
	RouterReason string `json:"router_reason" yaml:"router_reason"`
	Data         any    `json:"data" yaml:"data"`
}
