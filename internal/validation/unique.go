package validation

import (
	"context"
	"fmt"

	"scribe/internal/models"
)

// UsernameLookup is the slice of the user repository the uniqueness check needs.
type UsernameLookup interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UsernameUniqueness rejects usernames that are already taken.
//
// The check is advisory: two concurrent creates can both pass it before
// either insert lands. The unique index on users.username is the actual
// enforcement; the repository translates its violation into a Conflict.
// This pre-check only exists to give a clean error message in the common case.
type UsernameUniqueness struct {
	users UsernameLookup
}

// NewUsernameUniqueness returns a uniqueness check backed by the given lookup.
func NewUsernameUniqueness(users UsernameLookup) *UsernameUniqueness {
	return &UsernameUniqueness{users: users}
}

// Validate returns a Conflict error when a user with the username already exists.
func (v *UsernameUniqueness) Validate(ctx context.Context, username string) error {
	user, err := v.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user != nil {
		return models.NewConflictError(fmt.Sprintf("User %s already exists. Choose another name.", username))
	}
	return nil
}
