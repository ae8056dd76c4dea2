package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/forumauth/internal/server/entities"
	"github.com/dmitrijs2005/forumauth/internal/server/exceptions"
)

// IDGenerator produces the random part of a user id. Injectable so tests can
// pin the generated id.
type IDGenerator func() string

type PostgresRepository struct {
	db    *sql.DB
	newID IDGenerator
}

func NewPostgresRepository(db *sql.DB, newID IDGenerator) *PostgresRepository {
	return &PostgresRepository{db: db, newID: newID}
}

func (r *PostgresRepository) VerifyAvailableUsername(ctx context.Context, username string) error {
	query := `SELECT id FROM users WHERE username = $1`

	var id string
	err := r.db.QueryRowContext(ctx, query, username).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return exceptions.NewInvariantError("username tidak tersedia")
}

func (r *PostgresRepository) AddUser(ctx context.Context, user *entities.RegisterUser) (*entities.RegisteredUser, error) {
	id := "user-" + r.newID()

	query :=
		`INSERT INTO users (id, username, password, fullname)
         VALUES ($1, $2, $3, $4)
		 RETURNING id, username, fullname
		 `

	registered := &entities.RegisteredUser{}
	err := r.db.QueryRowContext(ctx, query,
		id, user.Username, user.Password, user.Fullname).
		Scan(&registered.ID, &registered.Username, &registered.Fullname)

	if err != nil {
		// Two concurrent registrations can both pass the availability check;
		// the unique constraint is the authoritative guard and maps to the
		// same client error.
		if isUniqueViolation(err) {
			return nil, exceptions.NewInvariantError("username tidak tersedia")
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return registered, nil
}

func (r *PostgresRepository) GetUserPassword(ctx context.Context, username string) (string, error) {
	query := `SELECT password FROM users WHERE username = $1`

	var password string
	err := r.db.QueryRowContext(ctx, query, username).Scan(&password)
	if errors.Is(err, sql.ErrNoRows) {
		return "", exceptions.NewNotFoundError("user tidak ditemukan")
	}
	if err != nil {
		return "", fmt.Errorf("error performing sql request: %w", err)
	}

	return password, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
