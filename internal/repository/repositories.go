package repository

import (
	"github.com/jdnielss/socialmedia-api/internal/server"
)

// Repositories is the container for all repository instances. It is
// built once at startup and handed to the service layer.
type Repositories struct {
	Account *AccountRepository
	Message *MessageRepository
}

// NewRepositories constructs the repository container from the
// application container (the pgx pool lives on s.DB).
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Account: NewAccountRepository(s),
		Message: NewMessageRepository(s),
	}
}
