// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "trip-planner/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// GeneratorProvider identifies the structured-generator backend.
type GeneratorProvider string

const (
	ProviderOpenAI GeneratorProvider = "openai"
	ProviderGemini GeneratorProvider = "gemini"
)

// GeneratorConfig holds settings for the structured generator.
type GeneratorConfig struct {
	// Provider selects the backend: openai or gemini.
	Provider GeneratorProvider `json:"provider" yaml:"provider"`

	// Model is the model identifier (e.g. "gpt-4o-mini", "gemini-1.5-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the provider.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// SearchConfig holds settings for the web search provider.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the Google Custom Search API key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// CXWeather is the weather-scoped search engine identifier.
	CXWeather string `json:"cx_weather,omitempty" yaml:"cx_weather,omitempty"`

	// CXSafety is the safety-scoped search engine identifier.
	CXSafety string `json:"cx_safety,omitempty" yaml:"cx_safety,omitempty"`

	// MaxResults caps hits per query (Google's hard limit is 10).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// RouterConfig holds settings for request routing.
type RouterConfig struct {
	// FallbackThreshold is the rule-router confidence below which the
	// generator-backed fallback router is consulted (default 0.7).
	FallbackThreshold float64 `json:"fallback_threshold" yaml:"fallback_threshold"`
}

// ValidationConfig holds settings for the parallel validation engine.
type ValidationConfig struct {
	// MaxConcurrency bounds the number of validator calls in flight
	// (default 5).
	MaxConcurrency int `json:"max_concurrency" yaml:"max_concurrency"`
}

// ServerConfig holds settings for the HTTP surface.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`
}

// PipelineConfig groups all component configurations. It is resolved once
// at startup and passed down immutably; no component reads the process
// environment at call sites.
type PipelineConfig struct {
	Generator  GeneratorConfig  `json:"generator" yaml:"generator"`
	Search     SearchConfig     `json:"search" yaml:"search"`
	Router     RouterConfig     `json:"router" yaml:"router"`
	Validation ValidationConfig `json:"validation" yaml:"validation"`
	Server     ServerConfig     `json:"server" yaml:"server"`
}
