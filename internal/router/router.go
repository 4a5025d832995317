// Package router initializes the HTTP router (using Echo).
//
// It registers the middleware stack and defines the API routes,
// mapping each path to its handler.
package router

import (
	"github.com/jdnielss/socialmedia-api/internal/handler"
	"github.com/jdnielss/socialmedia-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance with the full middleware stack, the
// global error handler, and all routes registered.
//
// Middleware order matters: recovery first, then request IDs so the
// New Relic and logger layers can pick them up, tracing before the
// context enhancer so trace ids reach the request logger.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(m.Global.Recover())
	r.Use(m.Global.Secure())
	r.Use(middleware.RequestID())
	r.Use(m.Tracing.NewRelicMiddleware())
	r.Use(m.ContextEnhancer.EnhanceContext())
	r.Use(m.Tracing.EnhanceTracing())
	r.Use(m.Global.CORS())
	r.Use(m.Global.RequestLogger())

	registerRoutes(r, h)
	registerSystemRoutes(r, h)

	return r
}
