package router

import (
	"github.com/jdnielss/socialmedia-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerRoutes maps the API surface onto the handlers.
func registerRoutes(r *echo.Echo, h *handler.Handlers) {
	// Accounts.
	r.POST("/register", h.Account.Register())
	r.POST("/login", h.Account.Login())

	// Messages.
	r.POST("/messages", h.Message.Create())
	r.GET("/messages", h.Message.GetAll())
	r.GET("/messages/:message_id", h.Message.GetByID())
	r.PATCH("/messages/:message_id", h.Message.Update())
	r.DELETE("/messages/:message_id", h.Message.Delete())
	r.GET("/accounts/:account_id/messages", h.Message.GetByAccount())
}
