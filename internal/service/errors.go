package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// status codes; anything else is treated as an internal error.
var (
	// ErrInvalidID marks a malformed identifier supplied by the client.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrNotFound marks a missing primary entity.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a uniqueness violation (duplicate name etc.).
	ErrConflict = errors.New("already exists")

	// ErrDependencyNotFound marks a broken required link: a recipe whose
	// product cannot be resolved aborts recipe creation with this error.
	ErrDependencyNotFound = errors.New("linked product not found")

	// ErrAggregation marks a storage failure during the all-recipes cost
	// report. The report is all-or-nothing; no partial results.
	ErrAggregation = errors.New("cost aggregation failed")
)
