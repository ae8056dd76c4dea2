// Package users declares the user store contract and its Postgres
// implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/forumauth/internal/server/entities"
)

// Repository persists registered users and serves credential lookups.
type Repository interface {
	// VerifyAvailableUsername fails with an invariant error when the
	// username is already taken.
	VerifyAvailableUsername(ctx context.Context, username string) error

	// AddUser inserts a new user with a freshly generated id and returns the
	// registered user. The password must already be hashed by the caller.
	AddUser(ctx context.Context, user *entities.RegisterUser) (*entities.RegisteredUser, error)

	// GetUserPassword returns the stored password hash, or a not-found error
	// when no such user exists.
	GetUserPassword(ctx context.Context, username string) (string, error)
}
