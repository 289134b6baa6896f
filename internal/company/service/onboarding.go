package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"dealergate/internal/company/models"
	"dealergate/internal/company/store"
	"dealergate/internal/formerror"
)

// CompleteOnboarding validates the onboarding form for an authenticated
// owner, checks the submitted terms hash against the active term, and
// forwards the normalized payload to the store-side transaction.
func (s *Service) CompleteOnboarding(ctx context.Context, ownerID uuid.UUID, form models.OnboardingForm) error {
	if missing := requireOnboardingFields(form); missing.HasErrors() {
		return missing
	}

	term, err := s.terms.ActiveTerm(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return formerror.NewUpstream(formerror.TermNotFound).WithStatus(http.StatusBadRequest)
		}
		return formerror.NewInternal(err)
	}

	// 409, not 400: the client's view of the terms is stale rather than
	// wrong, and it should re-fetch and re-confirm.
	if form.TermHash != term.Hash {
		return formerror.NewField("termHash", formerror.TermOutdated).WithStatus(http.StatusConflict)
	}

	if err := s.companies.RunOnboardingTx(ctx, onboardingPayload(ownerID, form)); err != nil {
		return formerror.NewField("", formerror.OnboardingSaveError).WithStatus(http.StatusInternalServerError).WithCause(err)
	}

	s.metrics.IncrementOnboarded()
	s.logger.InfoContext(ctx, "onboarding completed", "owner_id", ownerID)
	return nil
}

// CurrentTerm returns the active term for authenticated clients to display
// and hash-confirm.
func (s *Service) CurrentTerm(ctx context.Context) (*models.Term, error) {
	term, err := s.terms.ActiveTerm(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, formerror.NewUpstream(formerror.TermNotFound).WithStatus(http.StatusNotFound)
		}
		return nil, formerror.NewInternal(err)
	}
	return term, nil
}

func requireOnboardingFields(form models.OnboardingForm) *formerror.Builder {
	missing := formerror.NewBuilder()
	if form.CEP == "" {
		missing.Add("cep", formerror.CepRequired)
	}
	if form.Address == "" {
		missing.Add("address", formerror.AddressRequired)
	}
	if form.Number == "" {
		missing.Add("number", formerror.NumberRequired)
	}
	if form.City == "" {
		missing.Add("city", formerror.CityRequired)
	}
	if form.State == "" {
		missing.Add("state", formerror.StateRequired)
	}
	if form.Plan == "" {
		missing.Add("plan", formerror.PlanRequired)
	}
	if form.CardHolderName == "" {
		missing.Add("cardHolderName", formerror.CardHolderNameRequired)
	}
	if form.CardHolderCpf == "" {
		missing.Add("cardHolderCpf", formerror.CardHolderCpfRequired)
	}
	if form.CardNumber == "" {
		missing.Add("cardNumber", formerror.CardNumberRequired)
	}
	if form.CardExpiry == "" {
		missing.Add("cardExpiry", formerror.CardExpiryRequired)
	}
	if form.CardCvv == "" {
		missing.Add("cardCvv", formerror.CardCvvRequired)
	}
	if form.Signature == "" {
		missing.Add("signature", formerror.SignatureRequired)
	}
	if form.SignatureCpf == "" {
		missing.Add("signatureCpf", formerror.SignatureCpfRequired)
	}
	if form.TermHash == "" {
		missing.Add("termHash", formerror.TermHashRequired)
	}
	return missing
}

func onboardingPayload(ownerID uuid.UUID, form models.OnboardingForm) models.OnboardingPayload {
	var complement *string
	if form.Complement != "" {
		complement = &form.Complement
	}
	return models.OnboardingPayload{
		OwnerID:                 ownerID.String(),
		LegalRepresentativeName: form.Signature,
		LegalRepresentativeCpf:  form.SignatureCpf,
		CEP:                     form.CEP,
		Address:                 form.Address,
		Number:                  form.Number,
		Complement:              complement,
		City:                    form.City,
		State:                   form.State,
		Plan:                    form.Plan,
		CardHolderName:          form.CardHolderName,
		CardHolderCpf:           form.CardHolderCpf,
		CardNumber:              form.CardNumber,
		CardExpiry:              form.CardExpiry,
		CardCvv:                 form.CardCvv,
		Signature:               form.Signature,
		SignatureCpf:            form.SignatureCpf,
		TermHash:                form.TermHash,
	}
}
