// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cse queries Google Custom Search through domain-scoped indexes.
// The client never fails upward: any transport, auth, quota, or decoding
// problem yields an empty hit list, and the web-grounded validators treat
// missing evidence as a disclosed assumption rather than an error.
package cse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pdiddy/trip-planner/internal/httputil"
	"github.com/pdiddy/trip-planner/pkg/types"
)

// apiBase is the Google Custom Search JSON API endpoint. Declared as a
// var so tests can substitute an httptest server.
var apiBase = "https://www.googleapis.com/customsearch/v1"

// googleMaxResults is the API's hard per-request cap.
const googleMaxResults = 10

// defaultMaxResults is used when neither the call nor the config caps hits.
const defaultMaxResults = 5

// Client is a Google Custom Search client with one index per search scope.
type Client struct {
	httpClient *http.Client
	apiKey     string
	indexes    map[types.SearchScope]string
	maxResults int
	warn       io.Writer
}

// NewClient builds a search client from config. Warnings about failed
// searches go to w (commonly os.Stderr); pass nil to discard them.
func NewClient(cfg types.SearchConfig, w io.Writer) *Client {
	if w == nil {
		w = io.Discard
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 || maxResults > googleMaxResults {
		maxResults = defaultMaxResults
	}
	return &Client{
		httpClient: httputil.NewClient(cfg.HTTPConfig),
		apiKey:     cfg.APIKey,
		indexes: map[types.SearchScope]string{
			types.ScopeWeather: cfg.CXWeather,
			types.ScopeSafety:  cfg.CXSafety,
		},
		maxResults: maxResults,
		warn:       w,
	}
}

// Configured reports whether the API key and the scope's index identifier
// are both present. Callers check this before choosing a web-grounded
// validator variant; the client itself also refuses unconfigured scopes.
func (c *Client) Configured(scope types.SearchScope) bool {
	return c.apiKey != "" && c.indexes[scope] != ""
}

// Search runs one query against the scope's index and returns up to
// maxResults hits (capped at Google's limit of 10; 0 means the client
// default). It never returns an error: every failure mode produces an
// empty slice and a warning line.
func (c *Client) Search(ctx context.Context, query string, scope types.SearchScope, maxResults int) []types.SearchHit {
	if !c.Configured(scope) {
		fmt.Fprintf(c.warn, "warning: search scope %s not configured\n", scope)
		return nil
	}
	if maxResults <= 0 {
		maxResults = c.maxResults
	}
	if maxResults > googleMaxResults {
		maxResults = googleMaxResults
	}

	params := url.Values{
		"key":  {c.apiKey},
		"cx":   {c.indexes[scope]},
		"q":    {query},
		"num":  {fmt.Sprintf("%d", maxResults)},
		"safe": {"active"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"?"+params.Encode(), nil)
	if err != nil {
		fmt.Fprintf(c.warn, "warning: search %s: building request: %v\n", scope, err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		fmt.Fprintf(c.warn, "warning: search %s %q: %v\n", scope, query, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(c.warn, "warning: search %s %q: HTTP %d\n", scope, query, resp.StatusCode)
		return nil
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		fmt.Fprintf(c.warn, "warning: search %s %q: parsing response: %v\n", scope, query, err)
		return nil
	}

	hits := make([]types.SearchHit, 0, len(body.Items))
	for i, item := range body.Items {
		if i >= maxResults {
			break
		}
		hits = append(hits, types.SearchHit{
			Title:      item.Title,
			URL:        item.Link,
			Snippet:    item.Snippet,
			DisplayURL: item.DisplayLink,
		})
	}
	return hits
}

// Google Custom Search JSON API structures.
type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	DisplayLink string `json:"displayLink"`
}
