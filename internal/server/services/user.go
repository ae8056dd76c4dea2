// Package services contains the use cases of the authentication API. Each
// service is a stateless coordinator over injected collaborators; validation
// runs before any I/O and every use case performs at most one mutating store
// call, so no compensation logic exists.
package services

import (
	"context"

	"github.com/dmitrijs2005/forumauth/internal/server/entities"
	"github.com/dmitrijs2005/forumauth/internal/server/repositories/users"
	"github.com/dmitrijs2005/forumauth/internal/server/security"
)

// UserService handles user registration.
type UserService struct {
	users        users.Repository
	passwordHash security.PasswordHash
}

func NewUserService(users users.Repository, passwordHash security.PasswordHash) *UserService {
	return &UserService{users: users, passwordHash: passwordHash}
}

// AddUser validates the payload, checks username availability, hashes the
// password, and persists the user.
func (s *UserService) AddUser(ctx context.Context, payload map[string]any) (*entities.RegisteredUser, error) {
	registerUser, err := entities.NewRegisterUser(payload)
	if err != nil {
		return nil, err
	}

	if err := s.users.VerifyAvailableUsername(ctx, registerUser.Username); err != nil {
		return nil, err
	}

	hashed, err := s.passwordHash.Hash(registerUser.Password)
	if err != nil {
		return nil, err
	}
	registerUser.Password = hashed

	return s.users.AddUser(ctx, registerUser)
}
