package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jdnielss/socialmedia-api/internal/errs"
	"github.com/jdnielss/socialmedia-api/internal/model"
	"github.com/jdnielss/socialmedia-api/internal/server"
	"github.com/jdnielss/socialmedia-api/internal/service"
	"github.com/labstack/echo/v4"
)

// validate is the shared validator instance for request payloads.
var validate = validator.New()

// registerRequest is the payload for POST /register.
//
// The password length bound is duplicated as a validator tag so obvious
// garbage is rejected before the service runs; the service remains the
// authority on the full rule set.
type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password" validate:"min=4"`
}

func (r *registerRequest) Validate() error {
	return validate.Struct(r)
}

// loginRequest is the payload for POST /login. It carries no validation
// tags: login delegates entirely to the credential lookup.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *loginRequest) Validate() error {
	return nil
}

// AccountHandler serves the account endpoints.
type AccountHandler struct {
	Handler
	service *service.AccountService
}

// NewAccountHandler constructs an AccountHandler.
func NewAccountHandler(s *server.Server, svc *service.AccountService) *AccountHandler {
	return &AccountHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

// Register handles POST /register: 200 with the created account on
// success, 400 with an empty body on any rule violation.
func (h *AccountHandler) Register() echo.HandlerFunc {
	return Handle(h.Handler, h.register, http.StatusOK, func() *registerRequest {
		return &registerRequest{}
	})
}

func (h *AccountHandler) register(c echo.Context, req *registerRequest) (*model.Account, error) {
	return h.service.Register(c.Request().Context(), req.Username, req.Password)
}

// Login handles POST /login: 200 with the account on a credential
// match, 401 with an empty body otherwise.
func (h *AccountHandler) Login() echo.HandlerFunc {
	return Handle(h.Handler, h.login, http.StatusOK, func() *loginRequest {
		return &loginRequest{}
	})
}

func (h *AccountHandler) login(c echo.Context, req *loginRequest) (*model.Account, error) {
	account, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errs.NewUnauthorizedError("invalid credentials")
	}
	return account, nil
}
