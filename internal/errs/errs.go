// Package errs defines the application error types.
//
// Handlers and services signal failures with *HTTPError values carrying
// the status code to answer with. Per the API contract, error responses
// have empty bodies; Code, Message, and field errors exist for
// server-side logs only.
package errs
