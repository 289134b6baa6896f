// Package store defines the persistence capabilities the company service
// needs. Stores are interface-driven so the in-memory and PostgreSQL
// implementations stay swappable without touching business code.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"dealergate/internal/company/models"
)

// ErrNotFound keeps store-level 404s consistent across implementations.
var ErrNotFound = errors.New("store: record not found")

// TermStore reads the currently active service terms.
type TermStore interface {
	// ActiveTerm returns the active term with the most recent effective
	// date, or ErrNotFound when no term is active.
	ActiveTerm(ctx context.Context) (*models.Term, error)
}

// CompanyStore reads tenant records and invokes the onboarding transaction.
type CompanyStore interface {
	// FindByOwner resolves the company provisioned for an owner at
	// registration time.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Company, error)
	// RunOnboardingTx forwards the payload to the store-side transactional
	// procedure. Partial application is the store's responsibility.
	RunOnboardingTx(ctx context.Context, payload models.OnboardingPayload) error
}
