package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/jdnielss/socialmedia-api/internal/errs"
	"github.com/jdnielss/socialmedia-api/internal/model"
)

// MinPasswordLength is the minimum accepted password length, in runes.
const MinPasswordLength = 4

// AccountStore is the persistence surface AccountService needs.
// *repository.AccountRepository satisfies it.
type AccountStore interface {
	Insert(ctx context.Context, username, password string) (*model.Account, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	GetByCredentials(ctx context.Context, username, password string) (*model.Account, error)
	GetByID(ctx context.Context, id int) (*model.Account, error)
}

// AccountService enforces the account business rules.
type AccountService struct {
	accounts AccountStore
}

// NewAccountService constructs an AccountService.
func NewAccountService(accounts AccountStore) *AccountService {
	return &AccountService{accounts: accounts}
}

// Register creates a new account.
//
// Rules, checked in order:
//   - username must not be blank (after trimming)
//   - password must be at least MinPasswordLength runes
//   - username must not already be registered
//
// On success the stored account is returned with its generated id.
func (s *AccountService) Register(ctx context.Context, username, password string) (*model.Account, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errs.NewBadRequestError("registration failed", nil, []errs.FieldError{
			{Field: "username", Error: "must not be blank"},
		})
	}

	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, errs.NewBadRequestError("registration failed", nil, []errs.FieldError{
			{Field: "password", Error: "must be at least 4 characters"},
		})
	}

	exists, err := s.accounts.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		code := "ACCOUNT_ALREADY_EXISTS"
		return nil, errs.NewBadRequestError("registration failed: username taken", &code, nil)
	}

	return s.accounts.Insert(ctx, username, password)
}

// Login looks up the account matching the exact username AND password
// pair. It performs no input pre-checks: the lookup alone decides, so
// any account that registration accepted can log in with the same
// credentials. A (nil, nil) return means authentication failure.
func (s *AccountService) Login(ctx context.Context, username, password string) (*model.Account, error) {
	return s.accounts.GetByCredentials(ctx, username, password)
}
