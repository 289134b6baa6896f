package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"dealergate/internal/account"
	"dealergate/internal/company/models"
	"dealergate/internal/formerror"
	"dealergate/internal/registry"
)

// RegisterCompany runs the registration pipeline: aggregate presence checks,
// registry verification, name matching, email uniqueness, then account and
// tenant creation. Presence is the only aggregating stage; everything after
// it fails fast with a single typed failure.
func (s *Service) RegisterCompany(ctx context.Context, form models.RegistrationForm) (*models.Registration, error) {
	if missing := requireRegistrationFields(form); missing.HasErrors() {
		return nil, missing
	}

	if err := s.verifyAgainstRegistry(ctx, form); err != nil {
		return nil, err
	}

	if err := s.checkEmailAvailable(ctx, form.Email); err != nil {
		return nil, err
	}

	user, err := s.accounts.CreateUser(ctx, account.NewUser{
		Email:    form.Email,
		Password: form.Password,
		Metadata: account.Metadata{
			FantasyName:   form.FantasyName,
			CorporateName: form.CorporateName,
			CNPJ:          form.CNPJ,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrEmailTaken):
			return nil, formerror.NewField("email", formerror.EmailAlreadyRegistered)
		case errors.Is(err, account.ErrCNPJTaken):
			// A racing registration lost to the store constraint.
			return nil, formerror.NewField("cnpj", formerror.CompanyAlreadyExists).WithStatus(http.StatusConflict)
		default:
			return nil, formerror.NewField("", formerror.AuthCreateError).WithCause(err)
		}
	}

	company, err := s.companies.FindByOwner(ctx, user.ID)
	if err != nil {
		return nil, formerror.NewField("", formerror.CompanyCreateError).WithCause(err)
	}

	s.metrics.IncrementRegistered()
	s.logger.InfoContext(ctx, "company registered",
		"user_id", user.ID,
		"company_id", company.ID,
	)
	return &models.Registration{UserID: user.ID, CompanyID: company.ID}, nil
}

// requireRegistrationFields aggregates every missing field so the tenant
// sees them all at once. Order matters for the response.
func requireRegistrationFields(form models.RegistrationForm) *formerror.Builder {
	missing := formerror.NewBuilder()
	if form.FantasyName == "" {
		missing.Add("fantasyName", formerror.FantasyNameRequired)
	}
	if form.CorporateName == "" {
		missing.Add("corporateName", formerror.CorporateNameRequired)
	}
	if form.CNPJ == "" {
		missing.Add("cnpj", formerror.CnpjRequired)
	}
	if form.Email == "" {
		missing.Add("email", formerror.EmailRequired)
	}
	if form.Password == "" {
		missing.Add("password", formerror.PasswordRequired)
	}
	return missing
}

func (s *Service) verifyAgainstRegistry(ctx context.Context, form models.RegistrationForm) error {
	start := time.Now()
	result := s.registry.Lookup(ctx, form.CNPJ)
	s.metrics.ObserveLookup(time.Since(start).Seconds())

	switch result.ErrKind {
	case registry.ErrNotFound:
		return formerror.NewField("cnpj", formerror.CnpjNotFound)
	case registry.ErrNetwork:
		return formerror.NewUpstream(formerror.CnpjRestError)
	}
	if !result.Active {
		return formerror.NewField("cnpj", formerror.CnpjNotActive)
	}

	if !namesMatch(form.CorporateName, result.LegalName) {
		return formerror.NewField("corporateName", formerror.CorporateNameMismatch)
	}
	if !namesMatch(form.FantasyName, result.TradeName) {
		return formerror.NewField("fantasyName", formerror.FantasyNameMismatch)
	}

	if !result.HasDealerActivity() {
		// Not blocking today; kept visible for support triage.
		s.logger.WarnContext(ctx, "registration without dealer CNAE", "cnpj", form.CNPJ)
	}
	return nil
}

func (s *Service) checkEmailAvailable(ctx context.Context, email string) error {
	_, err := s.accounts.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, account.ErrNotFound):
		return nil
	case err != nil:
		return formerror.NewUpstream(formerror.EmailCheckError).WithCause(err)
	default:
		return formerror.NewField("email", formerror.EmailAlreadyRegistered)
	}
}

// namesMatch compares the submitted name against the registry's record,
// ignoring case and surrounding whitespace. An absent registry name compares
// as empty.
func namesMatch(submitted, registered string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(registered))
}
