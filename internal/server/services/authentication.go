package services

import (
	"context"

	"github.com/dmitrijs2005/forumauth/internal/server/entities"
	"github.com/dmitrijs2005/forumauth/internal/server/repositories/authentications"
	"github.com/dmitrijs2005/forumauth/internal/server/repositories/users"
	"github.com/dmitrijs2005/forumauth/internal/server/security"
)

// TokenPair bundles a short-lived access token and a revocable refresh token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthenticationService handles login, refresh, and logout.
type AuthenticationService struct {
	users           users.Repository
	authentications authentications.Repository
	passwordHash    security.PasswordHash
	tokenManager    security.TokenManager
}

func NewAuthenticationService(
	users users.Repository,
	authentications authentications.Repository,
	passwordHash security.PasswordHash,
	tokenManager security.TokenManager,
) *AuthenticationService {
	return &AuthenticationService{
		users:           users,
		authentications: authentications,
		passwordHash:    passwordHash,
		tokenManager:    tokenManager,
	}
}

// Login verifies the credentials and mints a token pair. Tokens are only
// generated after the password check succeeds; the refresh token is persisted
// after generation, so a failed insert leaves a signed but unregistered token
// that subsequent store lookups reject.
func (s *AuthenticationService) Login(ctx context.Context, payload map[string]any) (*TokenPair, error) {
	login, err := entities.NewUserLogin(payload)
	if err != nil {
		return nil, err
	}

	hashed, err := s.users.GetUserPassword(ctx, login.Username)
	if err != nil {
		return nil, err
	}

	if err := s.passwordHash.Compare(login.Password, hashed); err != nil {
		return nil, err
	}

	accessToken, err := s.tokenManager.GenerateAccessToken(login.Username)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokenManager.GenerateRefreshToken(login.Username)
	if err != nil {
		return nil, err
	}

	if err := s.authentications.AddToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh exchanges a refresh token for a new access token. Both checks must
// pass: presence in the store (revocation) and signature validity
// (authenticity).
func (s *AuthenticationService) Refresh(ctx context.Context, payload map[string]any) (string, error) {
	refreshToken, err := entities.NewRefreshTokenPayload(payload)
	if err != nil {
		return "", err
	}

	if err := s.authentications.VerifyToken(ctx, refreshToken); err != nil {
		return "", err
	}

	username, err := s.tokenManager.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	return s.tokenManager.GenerateAccessToken(username)
}

// Logout revokes a refresh token. No cryptographic check: possession of the
// exact stored string is the proof, and deletion grants no new privilege.
func (s *AuthenticationService) Logout(ctx context.Context, payload map[string]any) error {
	refreshToken, err := entities.NewRefreshTokenPayload(payload)
	if err != nil {
		return err
	}

	if err := s.authentications.VerifyToken(ctx, refreshToken); err != nil {
		return err
	}

	return s.authentications.DeleteToken(ctx, refreshToken)
}
