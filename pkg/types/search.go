// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SearchScope selects which domain-scoped search index a query runs against.
type SearchScope string

const (
	// ScopeWeather is the weather/seasonality index.
	ScopeWeather SearchScope = "weather"

	// ScopeSafety is the travel-safety index.
	ScopeSafety SearchScope = "safety"
)

// SearchHit is one web search result. Hits are consumed only by the
// web-grounded validators and are not persisted.
type SearchHit struct {
	// Title is the result title.
	Title string `json:"title" yaml:"title"`

	// URL is the result link.
	URL string `json:"url" yaml:"url"`

	// Snippet is the result excerpt.
	Snippet string `json:"snippet" yaml:"snippet"`

	// DisplayURL is the shortened display form of the link, if provided.
	DisplayURL string `json:"display_url,omitempty" yaml:"display_url,omitempty"`
}
