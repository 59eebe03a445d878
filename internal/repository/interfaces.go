// Package repository provides the persistent user store.
package repository

import (
	"context"

	"github.com/shopnet/user-service/internal/model"
)

// UserRepository is the storage contract for user records. Absence is a
// valid outcome everywhere: FindByID and DeleteByID report misses through
// their boolean result, never through an error.
type UserRepository interface {
	// Create persists user and assigns its generated ID in place.
	// Returns model.ErrDuplicateEmail when the email is already taken.
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, bool, error)
	FindAll(ctx context.Context) ([]model.User, error)
	// Update replaces name/email/registration date of an existing row.
	// Returns (false, nil) when no row with user.ID exists, and
	// model.ErrDuplicateEmail on an email collision.
	Update(ctx context.Context, user *model.User) (bool, error)
	// DeleteByID removes a row and reports whether one existed.
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
