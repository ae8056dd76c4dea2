package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/forumauth/internal/server/exceptions"
)

// TokenManager issues the access/refresh token pair and verifies refresh
// tokens cryptographically. Verification proves authenticity and integrity
// only; revocation is the refresh-token store's concern.
type TokenManager interface {
	GenerateAccessToken(username string) (string, error)
	GenerateRefreshToken(username string) (string, error)
	VerifyRefreshToken(token string) (string, error)
}

// Claims embeds the username next to the registered JWT claims.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// JwtTokenManager signs tokens with HS256. Access and refresh tokens use
// independent secret keys so their rotation and expiry policies stay
// independent even though the claim shape is identical.
type JwtTokenManager struct {
	accessKey       []byte
	refreshKey      []byte
	accessValidity  time.Duration
	refreshValidity time.Duration
}

func NewJwtTokenManager(accessKey, refreshKey []byte, accessValidity, refreshValidity time.Duration) *JwtTokenManager {
	return &JwtTokenManager{
		accessKey:       accessKey,
		refreshKey:      refreshKey,
		accessValidity:  accessValidity,
		refreshValidity: refreshValidity,
	}
}

func (m *JwtTokenManager) GenerateAccessToken(username string) (string, error) {
	return m.generate(username, m.accessKey, m.accessValidity)
}

func (m *JwtTokenManager) GenerateRefreshToken(username string) (string, error) {
	return m.generate(username, m.refreshKey, m.refreshValidity)
}

// VerifyRefreshToken checks the signature against the refresh key and returns
// the embedded username. Every failure mode (empty input, malformed token,
// wrong signature, expired) collapses into the same invariant error so the
// response never leaks cryptographic detail.
func (m *JwtTokenManager) VerifyRefreshToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", exceptions.NewInvariantError("refresh token tidak valid")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.refreshKey, nil
	})
	if err != nil || !token.Valid {
		return "", exceptions.NewInvariantError("refresh token tidak valid")
	}

	return claims.Username, nil
}

func (m *JwtTokenManager) generate(username string, key []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		Username: username,
	})

	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
