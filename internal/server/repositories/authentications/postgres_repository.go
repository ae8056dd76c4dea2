package authentications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/forumauth/internal/server/exceptions"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) AddToken(ctx context.Context, token string) error {
	query :=
		`INSERT INTO authentications (token)
         VALUES ($1)
		 `

	_, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) VerifyToken(ctx context.Context, token string) error {
	query := `SELECT token FROM authentications WHERE token = $1`

	var stored string
	err := r.db.QueryRowContext(ctx, query, token).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return exceptions.NewInvariantError("refresh token tidak ditemukan di database")
	}
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) DeleteToken(ctx context.Context, token string) error {
	query := `DELETE FROM authentications WHERE token = $1`

	_, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}
