package store

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dealergate/internal/company/models"
)

// PostgresTermStore reads terms from the company_terms table.
type PostgresTermStore struct {
	pool *pgxpool.Pool
}

func NewPostgresTermStore(pool *pgxpool.Pool) *PostgresTermStore {
	return &PostgresTermStore{pool: pool}
}

func (s *PostgresTermStore) ActiveTerm(ctx context.Context) (*models.Term, error) {
	const q = `
		SELECT hash, version, text, effective_from
		FROM company_terms
		WHERE is_active
		ORDER BY effective_from DESC
		LIMIT 1`

	var term models.Term
	err := s.pool.QueryRow(ctx, q).Scan(&term.Hash, &term.Version, &term.Text, &term.EffectiveFrom)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select active term: %w", err)
	}
	return &term, nil
}

// PostgresCompanyStore reads tenant rows and invokes the onboarding
// procedure.
type PostgresCompanyStore struct {
	pool *pgxpool.Pool
}

func NewPostgresCompanyStore(pool *pgxpool.Pool) *PostgresCompanyStore {
	return &PostgresCompanyStore{pool: pool}
}

func (s *PostgresCompanyStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Company, error) {
	const q = `SELECT id FROM companies WHERE owner_id = $1`

	company := models.Company{OwnerID: ownerID}
	err := s.pool.QueryRow(ctx, q, ownerID).Scan(&company.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select company by owner: %w", err)
	}
	return &company, nil
}

func (s *PostgresCompanyStore) RunOnboardingTx(ctx context.Context, payload models.OnboardingPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal onboarding payload: %w", err)
	}
	if _, err := s.pool.Exec(ctx, `SELECT onboarding_company_transaction($1::jsonb)`, raw); err != nil {
		return fmt.Errorf("onboarding transaction: %w", err)
	}
	return nil
}
