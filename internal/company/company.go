package company

import (
	"log/slog"

	"dealergate/internal/account"
	"dealergate/internal/company/handler"
	"dealergate/internal/company/service"
	"dealergate/internal/company/store"
	"dealergate/internal/platform/metrics"
	"dealergate/internal/platform/middleware"
)

// Service orchestrates company registration and onboarding.
type Service = service.Service

// Handler wires HTTP endpoints to the company service.
type Handler = handler.Handler

// NewService constructs the company service with required dependencies.
func NewService(
	reg service.Registry,
	accounts account.Directory,
	companies store.CompanyStore,
	terms store.TermStore,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	return service.New(reg, accounts, companies, terms, logger, m)
}

// NewHandler constructs the HTTP handler for the onboarding routes.
func NewHandler(s *Service, verifier middleware.TokenVerifier, wrapper *middleware.Wrapper, logger *slog.Logger) *Handler {
	return handler.New(s, verifier, wrapper, logger)
}
