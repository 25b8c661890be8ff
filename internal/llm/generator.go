// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm provides the structured generator: prompt-identified LLM
// calls that return schema-shaped JSON. Callers never see prompt text;
// they name a prompt, bind variables, and decode the returned object.
package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pdiddy/trip-planner/pkg/types"
)

// PromptID names a registered prompt template.
type PromptID string

const (
	PromptProfile    PromptID = "profile"
	PromptCandidates PromptID = "candidates"
	PromptClarify    PromptID = "clarify"
	PromptItinerary  PromptID = "itinerary"
	PromptFinal      PromptID = "final"
	PromptAggregate  PromptID = "aggregate"
	PromptRouter     PromptID = "router"

	PromptValidatorBudgetFit   PromptID = "validator_budget_fit"
	PromptValidatorVibeFit     PromptID = "validator_vibe_fit"
	PromptValidatorTransit     PromptID = "validator_transit_complexity"
	PromptValidatorSafety      PromptID = "validator_safety_risk"
	PromptValidatorSafetyWeb   PromptID = "validator_safety_risk_web"
	PromptValidatorSeason      PromptID = "validator_seasonality_weather"
	PromptValidatorSeasonWeb   PromptID = "validator_seasonality_weather_web"
)

// Generator produces a parsed structured object for a prompt identity and
// its input variables. Implementations are stateless and reentrant; a
// single Generator is shared by every pipeline stage.
type Generator interface {
	Invoke(ctx context.Context, id PromptID, vars map[string]string) (json.RawMessage, error)
}

// TransportError wraps an API or network failure from the backing model.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("generator transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports that the model's output was not the expected JSON.
type ParseError struct {
	Output string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generator output parse: %v", e.Err)
	}
	return "generator output parse: response is not valid JSON"
}

func (e *ParseError) Unwrap() error { return e.Err }

// New builds a Generator for the configured provider.
func New(ctx context.Context, cfg types.GeneratorConfig) (Generator, error) {
	switch cfg.Provider {
	case types.ProviderOpenAI, "":
		return NewOpenAI(cfg), nil
	case types.ProviderGemini:
		return NewGemini(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", cfg.Provider)
	}
}

// DecodeInto unmarshals a generator response into out, converting decode
// failures into a ParseError so callers keep a single error taxonomy.
func DecodeInto(raw json.RawMessage, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return &ParseError{Output: string(raw), Err: err}
	}
	return nil
}
