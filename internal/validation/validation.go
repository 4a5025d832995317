// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules (like required
// fields or length bounds) defined in struct tags and extracts
// validation errors into field-level form for logging.
package validation
