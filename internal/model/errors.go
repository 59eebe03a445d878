package model

import (
	"errors"
	"strings"
)

var (
	// ErrDuplicateEmail is returned when a write collides with the unique
	// email constraint in the store.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrUserNotFound is returned when an update references an id that
	// does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrOrdersUnavailable is returned when the peer order service cannot
	// be reached or returns an unusable response.
	ErrOrdersUnavailable = errors.New("order service unavailable")
)

// ValidationError carries every field violation found in an edit request,
// in declaration order. Callers see the full list at once.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}
