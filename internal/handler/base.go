package handler

import (
	"reflect"
	"time"

	"github.com/jdnielss/socialmedia-api/internal/middleware"
	"github.com/jdnielss/socialmedia-api/internal/server"
	"github.com/jdnielss/socialmedia-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to reach the server
// container (config, logger, db).
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. The struct only contains a
// pointer, so copying it is cheap.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// HandlerFunc is a typed endpoint function that receives a bound and
// validated request payload and returns a response or an error.
//
// Req must satisfy validation.Validatable and is a pointer type so
// Echo's Bind can populate it.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler defines how a successful handler result is written to
// the HTTP response.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result interface{}) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string
}

// JSONResponseHandler writes JSON responses with a fixed status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// OptionalJSONResponseHandler writes JSON for present results and an
// empty body (same status) for absent ones.
//
// This carries the API's lookup contract: GET/DELETE by id answer 200
// with an empty body when no record matches, not 404.
type OptionalJSONResponseHandler struct {
	status int
}

func (h OptionalJSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	if isAbsent(result) {
		return c.NoContent(h.status)
	}
	return c.JSON(h.status, result)
}

func (h OptionalJSONResponseHandler) GetOperation() string {
	return "handler_optional"
}

// isAbsent reports whether a handler result is a nil entity. The result
// arrives as interface{} wrapping a typed nil pointer, so a plain nil
// comparison is not enough.
func isAbsent(result interface{}) bool {
	if result == nil {
		return true
	}
	v := reflect.ValueOf(result)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map:
		return v.IsNil()
	}
	return false
}

// handleRequest is the shared execution pipeline for all handlers.
//
// It centralizes request binding + validation, structured logging with
// request context, New Relic error reporting, timing, and response
// writing.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	route := c.Path()

	// The New Relic transaction is set by the nrecho middleware; nil
	// when the agent is disabled.
	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()

	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
		}

		// The global error handler formats the response.
		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
	}

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Warn().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
	}

	logger.Debug().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler with validation, error handling,
// logging, and tracing, returning an echo.HandlerFunc for route
// registration.
//
// newReq builds a fresh request payload per invocation so concurrent
// requests never bind into shared state.
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newReq(), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleOptional is Handle for routes whose result may legitimately be
// absent; absent results are written as an empty body with the same
// status.
func HandleOptional[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newReq(), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, OptionalJSONResponseHandler{status: status})
	}
}
