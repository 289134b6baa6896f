// Package middleware wraps the business handlers with the transport-level
// gates every onboarding endpoint shares: CORS preflight, the POST-only rule,
// optional bearer authentication, and the single boundary that maps typed
// form failures to wire responses.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"dealergate/internal/formerror"
	"dealergate/internal/platform/metrics"
)

// Endpoint is a business handler. A returned error must be a
// *formerror.Builder (aggregated presence errors) or *formerror.Failure;
// anything else renders as the generic unexpected failure.
type Endpoint func(w http.ResponseWriter, r *http.Request) error

// Wrapper builds http.HandlerFuncs around endpoints.
type Wrapper struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewWrapper(logger *slog.Logger, m *metrics.Metrics) *Wrapper {
	return &Wrapper{logger: logger, metrics: m}
}

// Public wraps an endpoint that needs no authentication.
func (wp *Wrapper) Public(e Endpoint) http.HandlerFunc {
	return wp.wrap(e, nil)
}

// Authenticated wraps an endpoint behind the bearer-token gate.
func (wp *Wrapper) Authenticated(verifier TokenVerifier, e Endpoint) http.HandlerFunc {
	return wp.wrap(e, verifier)
}

func (wp *Wrapper) wrap(e Endpoint, verifier TokenVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Allow-Origin goes on every response, success or failure.
		if origin := r.Header.Get("Origin"); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		// Preflight never reaches auth or business logic.
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, apikey")
			w.Header().Set("Access-Control-Max-Age", "86400")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		if verifier != nil {
			ctx, err := authenticate(r, verifier)
			if err != nil {
				wp.logger.WarnContext(r.Context(), "unauthorized request", "path", r.URL.Path, "error", err)
				wp.metrics.IncrementFailure(formerror.NotAuthenticated.Code)
				formerror.NewBuilder().
					Add("", formerror.NotAuthenticated).
					Write(w, http.StatusUnauthorized)
				return
			}
			r = r.WithContext(ctx)
		}

		if err := e(w, r); err != nil {
			wp.writeFailure(w, r, err)
		}
	}
}

// writeFailure is the single catch point. Exactly one taxonomy error is
// emitted per failure; only the aggregating presence pass produces more.
func (wp *Wrapper) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	var missing *formerror.Builder
	if errors.As(err, &missing) {
		for _, fe := range missing.Errors() {
			wp.metrics.IncrementFailure(fe.Code)
		}
		missing.Write(w, http.StatusBadRequest)
		return
	}

	var failure *formerror.Failure
	if errors.As(err, &failure) {
		if failure.Cause != nil {
			wp.logger.ErrorContext(ctx, "request failed",
				"path", r.URL.Path,
				"code", failure.Entry.Code,
				"error", failure.Cause,
			)
		}
		wp.metrics.IncrementFailure(failure.Entry.Code)
		formerror.NewBuilder().
			Add(failure.Field, failure.Entry).
			Write(w, failure.Status)
		return
	}

	// Unknown error: never leak it to the response body.
	wp.logger.ErrorContext(ctx, "unexpected error", "path", r.URL.Path, "error", err)
	wp.metrics.IncrementFailure(formerror.UnexpectedError.Code)
	formerror.NewBuilder().
		Add("", formerror.UnexpectedError).
		Write(w, http.StatusInternalServerError)
}
