package repositories

import "errors"

// Sentinel errors returned by repositories. Callers match with errors.Is so
// a legitimately empty result is always distinguishable from a failure.
var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrCategoryNotFound is returned when a category name does not resolve
	// to a row; the triggering write is not attempted.
	ErrCategoryNotFound = errors.New("category not found")
)
