package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// uniqueViolation is the PostgreSQL error code for constraint conflicts.
const uniqueViolation = "23505"

// PostgresDirectory persists accounts in the auth_users table. Company rows
// are provisioned by the schema's registration trigger, not here.
type PostgresDirectory struct {
	pool *pgxpool.Pool
}

func NewPostgresDirectory(pool *pgxpool.Pool) *PostgresDirectory {
	return &PostgresDirectory{pool: pool}
}

func (d *PostgresDirectory) CreateUser(ctx context.Context, req NewUser) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	const q = `
		INSERT INTO auth_users (id, email, password_hash, fantasy_name, corporate_name, cnpj)
		VALUES ($1, $2, $3, $4, $5, $6)`

	u := User{ID: uuid.New(), Email: normalizeEmail(req.Email), Metadata: req.Metadata}
	_, err = d.pool.Exec(ctx, q, u.ID, u.Email, string(hash),
		req.Metadata.FantasyName, req.Metadata.CorporateName, req.Metadata.CNPJ)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "cnpj") {
				return nil, ErrCNPJTaken
			}
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (d *PostgresDirectory) FindByEmail(ctx context.Context, email string) (*User, error) {
	const q = `
		SELECT id, email, fantasy_name, corporate_name, cnpj
		FROM auth_users
		WHERE email = $1`

	var u User
	err := d.pool.QueryRow(ctx, q, normalizeEmail(email)).Scan(
		&u.ID, &u.Email, &u.Metadata.FantasyName, &u.Metadata.CorporateName, &u.Metadata.CNPJ)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select user by email: %w", err)
	}
	return &u, nil
}
