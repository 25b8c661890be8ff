// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"net/http"

	"github.com/pdiddy/trip-planner/pkg/types"
)

// DefaultUserAgent is sent when the configuration does not name one.
const DefaultUserAgent = "trip-planner/0.1"

// NewClient builds an http.Client from shared HTTP settings. Every request
// through the client carries the configured User-Agent unless the caller
// already set one. There is no retry layer: search and generation failures
// are absorbed into degraded results at their boundaries, not retried.
func NewClient(cfg types.HTTPConfig) *http.Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &userAgentTransport{
			agent: ua,
			next:  http.DefaultTransport,
		},
	}
}

// userAgentTransport stamps a User-Agent header on outgoing requests.
type userAgentTransport struct {
	agent string
	next  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		clone := req.Clone(req.Context())
		clone.Header.Set("User-Agent", t.agent)
		req = clone
	}
	return t.next.RoundTrip(req)
}
