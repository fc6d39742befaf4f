package dao

import "errors"

var (
	// ErrConstraintViolation is returned when a write would break one of the
	// store's rules: a duplicate username or ID, or a saved query whose owner
	// does not exist.
	ErrConstraintViolation = errors.New("the change conflicts with data already in the store")

	// ErrNotFound is returned when no record has the requested key.
	ErrNotFound = errors.New("no record with that key exists")
)
