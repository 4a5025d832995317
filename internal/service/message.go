package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/jdnielss/socialmedia-api/internal/errs"
	"github.com/jdnielss/socialmedia-api/internal/model"
)

// MaxMessageLength is the exclusive upper bound on message text length,
// in runes: created messages must be strictly shorter.
const MaxMessageLength = 255

// MessageStore is the persistence surface MessageService needs.
// *repository.MessageRepository satisfies it.
type MessageStore interface {
	Insert(ctx context.Context, m model.Message) (*model.Message, error)
	GetAll(ctx context.Context) ([]model.Message, error)
	GetByID(ctx context.Context, id int) (*model.Message, error)
	DeleteByID(ctx context.Context, id int) (*model.Message, error)
	UpdateTextByID(ctx context.Context, id int, text string) (*model.Message, error)
	GetByAccountID(ctx context.Context, accountID int) ([]model.Message, error)
}

// MessageService enforces the message business rules. It also needs the
// account store for the author referential check.
type MessageService struct {
	messages MessageStore
	accounts AccountStore
}

// NewMessageService constructs a MessageService.
func NewMessageService(messages MessageStore, accounts AccountStore) *MessageService {
	return &MessageService{
		messages: messages,
		accounts: accounts,
	}
}

// Create persists a new message.
//
// Rules:
//   - message_text must not be blank after trimming (internal
//     whitespace is fine)
//   - message_text must be shorter than MaxMessageLength
//   - posted_by must reference an existing account
//
// The client-supplied timestamp passes through verbatim.
func (s *MessageService) Create(ctx context.Context, m model.Message) (*model.Message, error) {
	if strings.TrimSpace(m.MessageText) == "" {
		return nil, errs.NewBadRequestError("message rejected", nil, []errs.FieldError{
			{Field: "message_text", Error: "must not be blank"},
		})
	}
	if utf8.RuneCountInString(m.MessageText) >= MaxMessageLength {
		return nil, errs.NewBadRequestError("message rejected", nil, []errs.FieldError{
			{Field: "message_text", Error: "must be under 255 characters"},
		})
	}

	account, err := s.accounts.GetByID(ctx, m.PostedBy)
	if err != nil {
		return nil, err
	}
	if account == nil {
		code := "ACCOUNT_NOT_FOUND"
		return nil, errs.NewBadRequestError("message rejected: author does not exist", &code, nil)
	}

	return s.messages.Insert(ctx, m)
}

// GetAll returns every message, unordered beyond natural storage order.
func (s *MessageService) GetAll(ctx context.Context) ([]model.Message, error) {
	return s.messages.GetAll(ctx)
}

// GetByID returns the message, or (nil, nil) when absent.
func (s *MessageService) GetByID(ctx context.Context, id int) (*model.Message, error) {
	return s.messages.GetByID(ctx, id)
}

// DeleteByID deletes the message if present and returns the
// pre-deletion snapshot. A (nil, nil) return means no such message
// existed; repeated calls after the first land there, so deletion is
// idempotent-safe.
func (s *MessageService) DeleteByID(ctx context.Context, id int) (*model.Message, error) {
	return s.messages.DeleteByID(ctx, id)
}

// UpdateTextByID replaces a message's text.
//
// Rules: newText must not be blank after trimming and must not exceed
// MaxMessageLength. A (nil, nil) return means no message with that id
// existed (the update affected zero rows).
func (s *MessageService) UpdateTextByID(ctx context.Context, id int, newText string) (*model.Message, error) {
	if strings.TrimSpace(newText) == "" {
		return nil, errs.NewBadRequestError("message update rejected", nil, []errs.FieldError{
			{Field: "message_text", Error: "must not be blank"},
		})
	}
	if utf8.RuneCountInString(newText) > MaxMessageLength {
		return nil, errs.NewBadRequestError("message update rejected", nil, []errs.FieldError{
			{Field: "message_text", Error: "must not exceed 255 characters"},
		})
	}

	return s.messages.UpdateTextByID(ctx, id, newText)
}

// GetByAccountID returns all messages posted by the given account, an
// empty slice when there are none. Never absence: an unknown account id
// simply has no messages.
func (s *MessageService) GetByAccountID(ctx context.Context, accountID int) ([]model.Message, error) {
	return s.messages.GetByAccountID(ctx, accountID)
}
