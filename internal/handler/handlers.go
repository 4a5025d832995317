package handler

import (
	"github.com/jdnielss/socialmedia-api/internal/server"
	"github.com/jdnielss/socialmedia-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup receives one wired object.
type Handlers struct {
	Account *AccountHandler // account registration and login
	Message *MessageHandler // message CRUD
	Health  *HealthHandler  // service health endpoint
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Account: NewAccountHandler(s, services.Account),
		Message: NewMessageHandler(s, services.Message),
		Health:  NewHealthHandler(s),
	}
}
