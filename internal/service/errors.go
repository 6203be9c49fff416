package service

import "errors"

// Sentinel errors surfaced to handlers. Storage failures are wrapped and
// passed through so the caller decides what to do with them.
var (
	// ErrNotFound means the recipe or tag is absent, or trashed when an
	// active one was required.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateTag means another tag already uses the name, compared
	// case-insensitively.
	ErrDuplicateTag = errors.New("tag name already in use")

	// ErrInvalidRating means a rating outside [1,5] was supplied.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
