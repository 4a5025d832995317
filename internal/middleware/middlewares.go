package middleware

import (
	"github.com/jdnielss/socialmedia-api/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares is a container that groups all middleware components used
// by the HTTP server, so router setup receives one wired object.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, request logging, recovery, secure headers, and the global
	// error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped
	// logger (request_id, method, path, ip, trace metadata).
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware and helpers to attach
	// custom attributes and notice errors on transactions.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs all middleware components from the
// application container.
//
// When New Relic is not configured, nrApp is nil and the tracing
// middleware degrades into a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
