// Package sqlerr classifies database driver errors.
//
// It parses SQLSTATE codes from the Postgres driver and converts them
// into application errors (e.g. a unique violation on account.username
// becomes a Bad Request instead of an opaque driver failure).
package sqlerr
