package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/forumauth/internal/server/entities"
)

// --- hand-written fakes shared by the service tests ---

type fakeUsersRepo struct {
	verifyErr error

	addOut *entities.RegisteredUser
	addErr error
	added  []*entities.RegisterUser

	passwordOut string
	passwordErr error
}

func (f *fakeUsersRepo) VerifyAvailableUsername(ctx context.Context, username string) error {
	return f.verifyErr
}

func (f *fakeUsersRepo) AddUser(ctx context.Context, user *entities.RegisterUser) (*entities.RegisteredUser, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.added = append(f.added, user)
	return f.addOut, nil
}

func (f *fakeUsersRepo) GetUserPassword(ctx context.Context, username string) (string, error) {
	if f.passwordErr != nil {
		return "", f.passwordErr
	}
	return f.passwordOut, nil
}

type fakeAuthRepo struct {
	addErr    error
	verifyErr error
	deleteErr error

	addedTokens   []string
	deletedTokens []string
}

func (f *fakeAuthRepo) AddToken(ctx context.Context, token string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.addedTokens = append(f.addedTokens, token)
	return nil
}

func (f *fakeAuthRepo) VerifyToken(ctx context.Context, token string) error {
	return f.verifyErr
}

func (f *fakeAuthRepo) DeleteToken(ctx context.Context, token string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedTokens = append(f.deletedTokens, token)
	return nil
}

type fakePasswordHash struct {
	hashOut    string
	hashErr    error
	compareErr error
}

func (f *fakePasswordHash) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return f.hashOut, nil
}

func (f *fakePasswordHash) Compare(password, hashed string) error {
	return f.compareErr
}

type fakeTokenManager struct {
	accessOut  string
	accessErr  error
	refreshOut string
	refreshErr error
	verifyOut  string
	verifyErr  error

	accessCalls  int
	refreshCalls int
}

func (f *fakeTokenManager) GenerateAccessToken(username string) (string, error) {
	f.accessCalls++
	if f.accessErr != nil {
		return "", f.accessErr
	}
	return f.accessOut, nil
}

func (f *fakeTokenManager) GenerateRefreshToken(username string) (string, error) {
	f.refreshCalls++
	if f.refreshErr != nil {
		return "", f.refreshErr
	}
	return f.refreshOut, nil
}

func (f *fakeTokenManager) VerifyRefreshToken(token string) (string, error) {
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	return f.verifyOut, nil
}

var errBoom = errors.New("boom")
