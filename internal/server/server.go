// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the planner over HTTP.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pdiddy/trip-planner/internal/pipeline"
)

// requestIDHeader carries the per-request correlation identifier.
const requestIDHeader = "X-Request-ID"

// Server wraps the planner with a gin HTTP surface.
type Server struct {
	planner *pipeline.Planner
	engine  *gin.Engine
}

// planRequest is the body of the route and plan endpoints.
type planRequest struct {
	Text string `json:"text" binding:"required"`
}

// New builds the HTTP server around a planner.
func New(planner *pipeline.Planner) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), requestID())

	s := &Server{planner: planner, engine: engine}

	engine.GET("/healthz", s.healthz)
	v1 := engine.Group("/v1")
	v1.POST("/route", s.route)
	v1.POST("/plan", s.plan)

	return s
}

// Handler returns the underlying handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// requestID propagates a caller-supplied correlation ID or mints one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// route classifies the request without running a pipeline.
func (s *Server) route(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.planner.Route(c.Request.Context(), req.Text))
}

// plan runs the routed pipeline end to end. Pipeline-level failures map to
// 502: the upstream generator, not this service, failed.
func (s *Server) plan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.planner.Run(c.Request.Context(), req.Text)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
