// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pdiddy/trip-planner/pkg/types"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiGenerator implements Generator over Google's Gemini API with a
// forced application/json response.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGemini builds a Gemini-backed generator from config.
func NewGemini(ctx context.Context, cfg types.GeneratorConfig) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// Invoke renders the prompt, performs a single generation, and returns the
// response body as validated JSON. No retry on failure.
func (g *GeminiGenerator) Invoke(ctx context.Context, id PromptID, vars map[string]string) (json.RawMessage, error) {
	system, user, err := Render(id, vars)
	if err != nil {
		return nil, err
	}

	m := g.client.GenerativeModel(g.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	resp, err := m.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, &ParseError{Output: ""}
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, &ParseError{Output: fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])}
	}

	return extractJSON(string(text))
}

// Close releases the underlying API client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}
