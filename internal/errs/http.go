package errs

import "strings"

// FieldError represents a single field-level validation failure.
//
// These never reach the client; they are attached to HTTPError so the
// request log records which field was rejected and why.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the application error type for request failures.
//
// Fields:
//   - Code: machine-friendly code (e.g. "BAD_REQUEST", "USERNAME_TAKEN").
//   - Message: human-readable description, for logs.
//   - Status: HTTP status code the boundary layer answers with.
//   - Errors: optional field-level validation failures, for logs.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Error satisfies the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also a *HTTPError.
//
// It matches on type only, not on Code or Status, so
// errors.Is(err, &HTTPError{}) answers "is this an application error".
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores converts a string into
// UPPER_CASE_WITH_UNDERSCORES format, e.g. "Bad Request" -> "BAD_REQUEST".
// Used to derive stable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
