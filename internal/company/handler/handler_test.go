package handler

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealergate/internal/account"
	"dealergate/internal/company/models"
	"dealergate/internal/company/service"
	"dealergate/internal/company/store"
	"dealergate/internal/platform/middleware"
	"dealergate/internal/registry"
	"dealergate/pkg/testutil"
)

const termHash = "term-hash-v2"

type stubRegistry struct {
	result registry.Result
}

func (s *stubRegistry) Lookup(_ context.Context, _ string) registry.Result {
	return s.result
}

type fixture struct {
	router    http.Handler
	companies *store.MemoryCompanyStore
	terms     *store.MemoryTermStore
	accounts  *account.MemoryDirectory
	tokens    *account.TokenService
	registry  *stubRegistry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		companies: store.NewMemoryCompanyStore(),
		registry: &stubRegistry{result: registry.Result{
			Valid:     true,
			Active:    true,
			LegalName: "Auto Peças Ltda",
			TradeName: "Auto Peças",
		}},
		tokens: account.NewTokenService("test-key", "dealergate"),
	}
	f.accounts = account.NewMemoryDirectory(func(ctx context.Context, u *account.User) error {
		_, err := f.companies.CreateForOwner(ctx, u.ID)
		return err
	})
	f.terms = store.NewMemoryTermStore(models.Term{
		Hash:          termHash,
		Version:       "2",
		Text:          "Termos de uso.",
		EffectiveFrom: time.Now(),
	})

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc := service.New(f.registry, f.accounts, f.companies, f.terms, logger, nil)
	h := New(svc, f.tokens, middleware.NewWrapper(logger, nil), logger)

	r := chi.NewRouter()
	h.Register(r)
	f.router = r
	return f
}

func (f *fixture) authHeader(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := f.tokens.Issue(userID, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func validRegistration() models.RegistrationForm {
	return models.RegistrationForm{
		FantasyName:   "Auto Peças",
		CorporateName: "Auto Peças Ltda",
		CNPJ:          "45.111.010/0001-99",
		Email:         "owner@example.com",
		Password:      "s3cret-pass",
	}
}

func validOnboarding() models.OnboardingForm {
	return models.OnboardingForm{
		CEP:            "01310-100",
		Address:        "Av. Paulista",
		Number:         "1000",
		City:           "São Paulo",
		State:          "SP",
		Plan:           "anual",
		CardHolderName: "Maria Silva",
		CardHolderCpf:  "12345678909",
		CardNumber:     "4111111111111111",
		CardExpiry:     "12/27",
		CardCvv:        "123",
		Signature:      "Maria Silva",
		SignatureCpf:   "12345678909",
		TermHash:       termHash,
	}
}

func TestPreflightShortCircuits(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{
		"/functions/v1/register-company",
		"/functions/v1/onboarding-company",
		"/functions/v1/get-current-term",
	} {
		// No body: preflight must succeed before any parsing happens.
		req := testutil.NewJSONRequest(t, http.MethodOptions, path, nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := testutil.DoRequest(f.router, req)

		assert.Equal(t, http.StatusNoContent, rec.Code, path)
		assert.Empty(t, rec.Body.Bytes(), path)
		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"), path)
		assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"), path)
	}
}

func TestNonPostMethodIsRejected(t *testing.T) {
	f := newFixture(t)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/functions/v1/register-company", validRegistration())
	rec := testutil.DoRequest(f.router, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRegisterCompanySuccess(t *testing.T) {
	f := newFixture(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/functions/v1/register-company", validRegistration())
	rec := testutil.DoRequest(f.router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	resp := testutil.UnmarshalResponse[struct {
		Success   bool      `json:"success"`
		UserID    uuid.UUID `json:"user_id"`
		CompanyID uuid.UUID `json:"company_id"`
	}](t, rec)
	assert.True(t, resp.Success)
	assert.NotEqual(t, uuid.Nil, resp.UserID)
	assert.NotEqual(t, uuid.Nil, resp.CompanyID)
}

func TestRegisterCompanyMissingFields(t *testing.T) {
	f := newFixture(t)

	form := validRegistration()
	form.CNPJ = ""
	form.Password = ""
	req := testutil.NewJSONRequest(t, http.MethodPost, "/functions/v1/register-company", form)
	rec := testutil.DoRequest(f.router, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errs := testutil.FormErrors(t, rec)
	require.Len(t, errs, 2)
	assert.Equal(t, "CNPJ_REQUIRED", errs[0].Code)
	assert.Equal(t, "PASSWORD_REQUIRED", errs[1].Code)
}

func TestRegisterCompanyInactiveCnpj(t *testing.T) {
	f := newFixture(t)
	f.registry.result = registry.Result{Valid: true, ErrKind: registry.ErrNotActive}

	req := testutil.NewJSONRequest(t, http.MethodPost, "/functions/v1/register-company", validRegistration())
	rec := testutil.DoRequest(f.router, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	testutil.AssertSingleFormError(t, rec, "cnpj", "CNPJ_NOT_ACTIVE")
}

func TestRegisterCompanyMalformedBody(t *testing.T) {
	f := newFixture(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/functions/v1/register-company", nil)
	rec := testutil.DoRequest(f.router, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	testutil.AssertSingleFormError(t, rec, "", "UNEXPECTED_ERROR")
}

func TestOnboardingRequiresAuthentication(t *testing.T) {
	f := newFixture(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/functions/v1/onboarding-company", validOnboarding())
	rec := testutil.DoRequest(f.router, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	testutil.AssertSingleFormError(t, rec, "", "NOT_AUTHENTICATED")
	assert.Empty(t, f.companies.OnboardingRuns(), "business handler must not run unauthenticated")
}

func TestOnboardingRejectsInvalidToken(t *testing.T) {
	f := newFixture(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/functions/v1/onboarding-company", validOnboarding())
	req.Header.Set("Authorization", "Bearer garbage")
	rec := testutil.DoRequest(f.router, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	testutil.AssertSingleFormError(t, rec, "", "NOT_AUTHENTICATED")
}

func TestOnboardingStaleTermHash(t *testing.T) {
	f := newFixture(t)

	form := validOnboarding()
	form.TermHash = "stale"
	req := testutil.NewJSONRequest(t, http.MethodPost, "/functions/v1/onboarding-company", form)
	req.Header.Set("Authorization", f.authHeader(t, uuid.New()))
	rec := testutil.DoRequest(f.router, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	testutil.AssertSingleFormError(t, rec, "termHash", "TERM_OUTDATED")
	assert.Empty(t, f.companies.OnboardingRuns())
}

func TestOnboardingSuccess(t *testing.T) {
	f := newFixture(t)
	ownerID := uuid.New()

	req := testutil.NewJSONRequest(t, http.MethodPost, "/functions/v1/onboarding-company", validOnboarding())
	req.Header.Set("Authorization", f.authHeader(t, ownerID))
	rec := testutil.DoRequest(f.router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := testutil.UnmarshalResponse[map[string]bool](t, rec)
	assert.True(t, (*resp)["success"])

	runs := f.companies.OnboardingRuns()
	require.Len(t, runs, 1)
	assert.Equal(t, ownerID.String(), runs[0].OwnerID)
}

func TestGetCurrentTerm(t *testing.T) {
	f := newFixture(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/functions/v1/get-current-term", nil)
	req.Header.Set("Authorization", f.authHeader(t, uuid.New()))
	rec := testutil.DoRequest(f.router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	term := testutil.UnmarshalResponse[models.Term](t, rec)
	assert.Equal(t, termHash, term.Hash)
	assert.Equal(t, "2", term.Version)
}

func TestGetCurrentTermWithoutActiveTerm(t *testing.T) {
	f := newFixture(t)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc := service.New(f.registry, f.accounts, f.companies, store.NewMemoryTermStore(), logger, nil)
	h := New(svc, f.tokens, middleware.NewWrapper(logger, nil), logger)
	r := chi.NewRouter()
	h.Register(r)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/functions/v1/get-current-term", nil)
	req.Header.Set("Authorization", f.authHeader(t, uuid.New()))
	rec := testutil.DoRequest(r, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	testutil.AssertSingleFormError(t, rec, "", "TERM_NOT_FOUND")
}
