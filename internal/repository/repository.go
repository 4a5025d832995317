// Package repository handles all interactions with the database.
//
// It contains the raw SQL statements and the row mapping for the
// account and message tables, abstracting SQL away from the service
// layer.
//
// Conventions:
//   - every statement uses bound parameters, never string concatenation
//   - inserts return the fully populated entity via RETURNING
//   - "no matching row" is reported as (nil, nil), not an error; a
//     non-nil error always means a storage fault
package repository
