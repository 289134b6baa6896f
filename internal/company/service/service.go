// Package service holds the company onboarding orchestrators: the ordered
// validation pipelines behind register-company and onboarding-company.
package service

import (
	"context"
	"log/slog"

	"dealergate/internal/account"
	"dealergate/internal/company/store"
	"dealergate/internal/platform/metrics"
	"dealergate/internal/registry"
)

// Registry is the lookup capability the registration pipeline depends on.
type Registry interface {
	Lookup(ctx context.Context, cnpj string) registry.Result
}

// Service orchestrates company registration and onboarding.
type Service struct {
	registry  Registry
	accounts  account.Directory
	companies store.CompanyStore
	terms     store.TermStore
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

func New(
	reg Registry,
	accounts account.Directory,
	companies store.CompanyStore,
	terms store.TermStore,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		registry:  reg,
		accounts:  accounts,
		companies: companies,
		terms:     terms,
		logger:    logger,
		metrics:   m,
	}
}
