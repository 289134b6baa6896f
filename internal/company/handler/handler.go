// Package handler wires the onboarding endpoints to the company service.
// Handlers stay thin: decode the form, call the service, render success. All
// failure rendering happens at the middleware boundary.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"dealergate/internal/company/models"
	"dealergate/internal/platform/middleware"
)

// Service defines the operations the handlers delegate to.
type Service interface {
	RegisterCompany(ctx context.Context, form models.RegistrationForm) (*models.Registration, error)
	CompleteOnboarding(ctx context.Context, ownerID uuid.UUID, form models.OnboardingForm) error
	CurrentTerm(ctx context.Context) (*models.Term, error)
}

// Handler handles the company onboarding endpoints.
type Handler struct {
	svc      Service
	verifier middleware.TokenVerifier
	wrapper  *middleware.Wrapper
	logger   *slog.Logger
}

func New(svc Service, verifier middleware.TokenVerifier, wrapper *middleware.Wrapper, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, verifier: verifier, wrapper: wrapper, logger: logger}
}

// Register mounts the onboarding routes on the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Handle("/functions/v1/register-company", h.wrapper.Public(h.handleRegisterCompany))
	r.Handle("/functions/v1/onboarding-company", h.wrapper.Authenticated(h.verifier, h.handleOnboardingCompany))
	r.Handle("/functions/v1/get-current-term", h.wrapper.Authenticated(h.verifier, h.handleCurrentTerm))
}

type registerResponse struct {
	Success   bool      `json:"success"`
	UserID    uuid.UUID `json:"user_id"`
	CompanyID uuid.UUID `json:"company_id"`
}

func (h *Handler) handleRegisterCompany(w http.ResponseWriter, r *http.Request) error {
	var form models.RegistrationForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.logger.WarnContext(r.Context(), "invalid registration body", "error", err)
		return fmt.Errorf("decode registration body: %w", err)
	}

	reg, err := h.svc.RegisterCompany(r.Context(), form)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, registerResponse{
		Success:   true,
		UserID:    reg.UserID,
		CompanyID: reg.CompanyID,
	})
}

func (h *Handler) handleOnboardingCompany(w http.ResponseWriter, r *http.Request) error {
	ownerID, err := uuid.Parse(middleware.GetUserID(r.Context()))
	if err != nil {
		// Should never happen behind the auth gate.
		return fmt.Errorf("owner id missing from context: %w", err)
	}

	var form models.OnboardingForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.logger.WarnContext(r.Context(), "invalid onboarding body", "error", err)
		return fmt.Errorf("decode onboarding body: %w", err)
	}

	if err := h.svc.CompleteOnboarding(r.Context(), ownerID, form); err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) handleCurrentTerm(w http.ResponseWriter, r *http.Request) error {
	term, err := h.svc.CurrentTerm(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, term)
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
