package security

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/forumauth/internal/server/exceptions"
)

func newTestTokenManager(t *testing.T) *JwtTokenManager {
	t.Helper()
	return NewJwtTokenManager([]byte("access-secret"), []byte("refresh-secret"), time.Hour, 2*time.Hour)
}

func assertInvalidRefreshToken(t *testing.T, err error) {
	t.Helper()

	var clientErr *exceptions.ClientError
	if !errors.As(err, &clientErr) {
		t.Fatalf("expected *ClientError, got %T (%v)", err, err)
	}
	if clientErr.Message != "refresh token tidak valid" {
		t.Fatalf("message mismatch: got %q", clientErr.Message)
	}
}

func TestVerifyRefreshToken_RoundTrip(t *testing.T) {
	t.Parallel()

	m := newTestTokenManager(t)

	token, err := m.GenerateRefreshToken("dicoding")
	if err != nil {
		t.Fatalf("GenerateRefreshToken error: %v", err)
	}

	username, err := m.VerifyRefreshToken(token)
	if err != nil {
		t.Fatalf("VerifyRefreshToken error: %v", err)
	}
	if username != "dicoding" {
		t.Fatalf("username mismatch: got %q", username)
	}
}

func TestVerifyRefreshToken_RejectsAccessToken(t *testing.T) {
	t.Parallel()

	// Access and refresh tokens share a claim shape but not a key, so an
	// access token must never pass refresh verification.
	m := newTestTokenManager(t)

	token, err := m.GenerateAccessToken("dicoding")
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	_, err = m.VerifyRefreshToken(token)
	assertInvalidRefreshToken(t, err)
}

func TestVerifyRefreshToken_WrongKey(t *testing.T) {
	t.Parallel()

	other := NewJwtTokenManager([]byte("access-secret"), []byte("another-refresh-secret"), time.Hour, time.Hour)
	token, err := other.GenerateRefreshToken("dicoding")
	if err != nil {
		t.Fatalf("GenerateRefreshToken error: %v", err)
	}

	_, err = newTestTokenManager(t).VerifyRefreshToken(token)
	assertInvalidRefreshToken(t, err)
}

func TestVerifyRefreshToken_Malformed(t *testing.T) {
	t.Parallel()

	m := newTestTokenManager(t)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := m.VerifyRefreshToken(token)
		assertInvalidRefreshToken(t, err)
	}
}

func TestVerifyRefreshToken_Expired(t *testing.T) {
	t.Parallel()

	m := NewJwtTokenManager([]byte("access-secret"), []byte("refresh-secret"), time.Hour, -time.Second)

	token, err := m.GenerateRefreshToken("dicoding")
	if err != nil {
		t.Fatalf("GenerateRefreshToken error: %v", err)
	}

	_, err = m.VerifyRefreshToken(token)
	assertInvalidRefreshToken(t, err)
}

func TestGenerateTokens_Differ(t *testing.T) {
	t.Parallel()

	m := newTestTokenManager(t)

	access, err := m.GenerateAccessToken("dicoding")
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}
	refresh, err := m.GenerateRefreshToken("dicoding")
	if err != nil {
		t.Fatalf("GenerateRefreshToken error: %v", err)
	}

	if access == refresh {
		t.Fatalf("access and refresh tokens should not be identical")
	}
}
