// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"encoding/json"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pdiddy/trip-planner/pkg/types"
)

const defaultOpenAIModel = openai.GPT4oMini

// chatClient is the slice of the OpenAI client the generator uses.
// Tests substitute a fake.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIGenerator implements Generator over the OpenAI chat API with JSON
// response format.
type OpenAIGenerator struct {
	client chatClient
	model  string
}

// NewOpenAI builds an OpenAI-backed generator from config.
func NewOpenAI(cfg types.GeneratorConfig) *OpenAIGenerator {
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIGenerator{
		client: openai.NewClient(cfg.APIKey),
		model:  model,
	}
}

// Invoke renders the prompt, performs a single chat completion, and returns
// the response body as validated JSON. There is no retry; the first failure
// is the caller's to absorb.
func (g *OpenAIGenerator) Invoke(ctx context.Context, id PromptID, vars map[string]string) (json.RawMessage, error) {
	system, user, err := Render(id, vars)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ParseError{Output: ""}
	}

	return extractJSON(resp.Choices[0].Message.Content)
}
