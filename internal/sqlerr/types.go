package sqlerr

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code is a friendly category for a database error, derived from the
// Postgres SQLSTATE code.
type Code int

const (
	// Other covers every SQLSTATE not mapped explicitly.
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
	ConnectionFailure
)

// String returns the category name for logs.
func (c Code) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case NotNullViolation:
		return "not_null_violation"
	case CheckViolation:
		return "check_violation"
	case ConnectionFailure:
		return "connection_failure"
	default:
		return "other"
	}
}

// Severity mirrors the Postgres error severity field.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
)

// MapCode maps a SQLSTATE code to a Code category.
//
// SQLSTATE class 23 is integrity constraint violation; class 08 is
// connection exception.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	}
	if len(sqlstate) >= 2 && sqlstate[:2] == "08" {
		return ConnectionFailure
	}
	return Other
}

// MapSeverity maps the Postgres severity string to a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityUnknown
	}
}

// Error is the normalized form of a Postgres server error.
//
// It keeps the original SQLSTATE alongside the mapped Code so callers
// can switch on categories without losing the raw detail.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr *pgconn.PgError
}

func (e *Error) Error() string {
	if e.TableName != "" {
		return fmt.Sprintf("%s on table:%s: %s", e.Code, e.TableName, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the original driver error for errors.As chains.
func (e *Error) Unwrap() error {
	if e.driverErr != nil {
		return e.driverErr
	}
	return nil
}
