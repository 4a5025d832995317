package service

import (
	"github.com/jdnielss/socialmedia-api/internal/repository"
	"github.com/jdnielss/socialmedia-api/internal/server"
)

// Services is the container for all business-rule services.
type Services struct {
	Account *AccountService
	Message *MessageService
}

// NewServices constructs the service container over the repository
// container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	accountService := NewAccountService(repos.Account)
	messageService := NewMessageService(repos.Message, repos.Account)

	return &Services{
		Account: accountService,
		Message: messageService,
	}, nil
}
