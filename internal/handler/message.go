package handler

import (
	"net/http"

	"github.com/jdnielss/socialmedia-api/internal/errs"
	"github.com/jdnielss/socialmedia-api/internal/model"
	"github.com/jdnielss/socialmedia-api/internal/server"
	"github.com/jdnielss/socialmedia-api/internal/service"
	"github.com/labstack/echo/v4"
)

// createMessageRequest is the payload for POST /messages. Any supplied
// message_id is ignored; the store generates one.
type createMessageRequest struct {
	PostedBy        int    `json:"posted_by"`
	MessageText     string `json:"message_text" validate:"required,max=254"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

func (r *createMessageRequest) Validate() error {
	return validate.Struct(r)
}

// messageIDRequest binds the {message_id} path parameter.
type messageIDRequest struct {
	MessageID int `param:"message_id"`
}

func (r *messageIDRequest) Validate() error {
	return nil
}

// updateMessageRequest is the payload for PATCH /messages/{message_id}.
type updateMessageRequest struct {
	MessageID   int    `param:"message_id"`
	MessageText string `json:"message_text" validate:"required,max=255"`
}

func (r *updateMessageRequest) Validate() error {
	return validate.Struct(r)
}

// accountMessagesRequest binds the {account_id} path parameter.
type accountMessagesRequest struct {
	AccountID int `param:"account_id"`
}

func (r *accountMessagesRequest) Validate() error {
	return nil
}

// listMessagesRequest is the empty payload for GET /messages.
type listMessagesRequest struct{}

func (r *listMessagesRequest) Validate() error {
	return nil
}

// MessageHandler serves the message endpoints.
type MessageHandler struct {
	Handler
	service *service.MessageService
}

// NewMessageHandler constructs a MessageHandler.
func NewMessageHandler(s *server.Server, svc *service.MessageService) *MessageHandler {
	return &MessageHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

// Create handles POST /messages: 200 with the created message, 400 with
// an empty body on rule violations, 500 on storage faults.
func (h *MessageHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusOK, func() *createMessageRequest {
		return &createMessageRequest{}
	})
}

func (h *MessageHandler) create(c echo.Context, req *createMessageRequest) (*model.Message, error) {
	return h.service.Create(c.Request().Context(), model.Message{
		PostedBy:        req.PostedBy,
		MessageText:     req.MessageText,
		TimePostedEpoch: req.TimePostedEpoch,
	})
}

// GetAll handles GET /messages: 200 with the array of all messages.
func (h *MessageHandler) GetAll() echo.HandlerFunc {
	return Handle(h.Handler, h.getAll, http.StatusOK, func() *listMessagesRequest {
		return &listMessagesRequest{}
	})
}

func (h *MessageHandler) getAll(c echo.Context, _ *listMessagesRequest) ([]model.Message, error) {
	return h.service.GetAll(c.Request().Context())
}

// GetByID handles GET /messages/{message_id}: 200 with the message, or
// 200 with an empty body when no such message exists.
func (h *MessageHandler) GetByID() echo.HandlerFunc {
	return HandleOptional(h.Handler, h.getByID, http.StatusOK, func() *messageIDRequest {
		return &messageIDRequest{}
	})
}

func (h *MessageHandler) getByID(c echo.Context, req *messageIDRequest) (*model.Message, error) {
	return h.service.GetByID(c.Request().Context(), req.MessageID)
}

// Delete handles DELETE /messages/{message_id}: 200 with the deleted
// message, or 200 with an empty body when it never existed.
func (h *MessageHandler) Delete() echo.HandlerFunc {
	return HandleOptional(h.Handler, h.delete, http.StatusOK, func() *messageIDRequest {
		return &messageIDRequest{}
	})
}

func (h *MessageHandler) delete(c echo.Context, req *messageIDRequest) (*model.Message, error) {
	return h.service.DeleteByID(c.Request().Context(), req.MessageID)
}

// Update handles PATCH /messages/{message_id}: 200 with the updated
// message, 400 with an empty body on rule violations or when the
// message does not exist.
func (h *MessageHandler) Update() echo.HandlerFunc {
	return Handle(h.Handler, h.update, http.StatusOK, func() *updateMessageRequest {
		return &updateMessageRequest{}
	})
}

func (h *MessageHandler) update(c echo.Context, req *updateMessageRequest) (*model.Message, error) {
	message, err := h.service.UpdateTextByID(c.Request().Context(), req.MessageID, req.MessageText)
	if err != nil {
		return nil, err
	}
	if message == nil {
		code := "MESSAGE_NOT_FOUND"
		return nil, errs.NewBadRequestError("message update rejected: no such message", &code, nil)
	}
	return message, nil
}

// GetByAccount handles GET /accounts/{account_id}/messages: 200 with
// the array (possibly empty) of the account's messages.
func (h *MessageHandler) GetByAccount() echo.HandlerFunc {
	return Handle(h.Handler, h.getByAccount, http.StatusOK, func() *accountMessagesRequest {
		return &accountMessagesRequest{}
	})
}

func (h *MessageHandler) getByAccount(c echo.Context, req *accountMessagesRequest) ([]model.Message, error) {
	return h.service.GetByAccountID(c.Request().Context(), req.AccountID)
}
