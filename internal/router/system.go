package router

import (
	"github.com/jdnielss/socialmedia-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// business surface.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by orchestrators/monitors).
	r.GET("/status", h.Health.CheckHealth)
}
