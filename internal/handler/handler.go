// Package handler is the first entry point for business logic after
// the router.
//
// It parses requests, handles input validation using the validation
// package, and calls the appropriate service. It owns the translation
// of service results into the status/body contract of each route,
// including the 200-with-empty-body convention for absent records.
package handler
