package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jdnielss/socialmedia-api/internal/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testValidate = validator.New()

type samplePayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"min=4"`
}

func (p *samplePayload) Validate() error {
	return testValidate.Struct(p)
}

func newContext(t *testing.T, body string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(t, `{"username":"alice","password":"password1"}`)

	var payload samplePayload
	require.NoError(t, BindAndValidate(c, &payload))
	assert.Equal(t, "alice", payload.Username)
	assert.Equal(t, "password1", payload.Password)
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := newContext(t, `{"username":`)

	var payload samplePayload
	err := BindAndValidate(c, &payload)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Contains(t, httpErr.Message, "malformed request payload")
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := newContext(t, `{"username":"","password":"pw"}`)

	var payload samplePayload
	err := BindAndValidate(c, &payload)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 2)
	assert.Equal(t, errs.FieldError{Field: "username", Error: "is required"}, httpErr.Errors[0])
	assert.Equal(t, errs.FieldError{Field: "password", Error: "must be at least 4 characters"}, httpErr.Errors[1])
}

func TestExtractValidationErrorCustomErrors(t *testing.T) {
	custom := CustomValidationErrors{
		{Field: "message_text", Message: "must not be blank"},
	}

	msg, fieldErrors := extractValidationError(custom)

	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "message_text", fieldErrors[0].Field)
	assert.Equal(t, "must not be blank", fieldErrors[0].Error)
}

func TestExtractValidationErrorUnknownShape(t *testing.T) {
	msg, fieldErrors := extractValidationError(assert.AnError)

	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, assert.AnError.Error(), fieldErrors[0].Error)
}
