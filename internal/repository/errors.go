package repository

import "errors"

// Store fault taxonomy. The postgres layer maps driver errors onto
// these sentinels so callers can branch with errors.Is without
// knowing the backend.
var (
	// ErrNotFound is returned when a referenced item, record or user
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable is returned on connection-level faults. The
	// core does not retry; reconnection belongs to the pool.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrConstraint is returned when a uniqueness constraint rejects a
	// write even after conflict handling.
	ErrConstraint = errors.New("constraint violation")
)
