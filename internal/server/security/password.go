// Package security wraps the cryptographic collaborators of the
// authentication use cases: the bcrypt password hasher and the JWT token
// manager.
package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/forumauth/internal/server/exceptions"
)

// PasswordHash hashes plaintext passwords and verifies candidates against
// stored hashes. Compare fails with an AuthenticationError on mismatch; a
// nil return is the only success signal.
type PasswordHash interface {
	Hash(password string) (string, error)
	Compare(password, hashed string) error
}

// BcryptPasswordHash implements PasswordHash with bcrypt. The work factor is
// configurable; each Hash call salts independently, so two hashes of the same
// plaintext differ while Compare stays correct for both.
type BcryptPasswordHash struct {
	cost int
}

func NewBcryptPasswordHash(cost int) *BcryptPasswordHash {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHash{cost: cost}
}

func (b *BcryptPasswordHash) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hashed), nil
}

func (b *BcryptPasswordHash) Compare(password, hashed string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)); err != nil {
		return exceptions.NewAuthenticationError("password yang anda berikan salah")
	}
	return nil
}
