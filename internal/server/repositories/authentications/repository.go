// Package authentications declares the refresh-token store contract and its
// Postgres implementation. The store is a revocation ledger: a refresh token
// is usable only while it is both cryptographically valid and present here.
package authentications

import "context"

// Repository persists issued refresh tokens.
type Repository interface {
	// AddToken inserts the token unconditionally; the caller guarantees
	// uniqueness through signing.
	AddToken(ctx context.Context, token string) error

	// VerifyToken fails with an invariant error when no exact row matches.
	VerifyToken(ctx context.Context, token string) error

	// DeleteToken removes the matching row. Deleting an absent token is not
	// an error.
	DeleteToken(ctx context.Context, token string) error
}
