// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives bound
// request data from the handler, enforces the business rules (blank and
// length checks, referential checks), and calls store methods to
// interact with the data.
//
// Absence semantics: a (nil, nil) return means "no matching record",
// which the handler layer maps onto the route's status contract. A
// non-nil error is either a rule violation (*errs.HTTPError) or a
// storage fault.
package service
