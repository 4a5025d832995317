// Package middleware holds the Echo middleware stack: CORS, request
// logging, panic recovery, request IDs, the request-scoped logger, New
// Relic tracing, and the global error handler.
package middleware
