// Package models holds the request-scoped forms and store records the
// company onboarding pipeline works with.
package models

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationForm is the body of the register-company endpoint. All fields
// are required.
type RegistrationForm struct {
	FantasyName   string `json:"fantasyName"`
	CorporateName string `json:"corporateName"`
	CNPJ          string `json:"cnpj"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

// OnboardingForm is the body of the onboarding-company endpoint. Everything
// but the complement is required. Only the card's last digits survive the
// transactional write; the rest of the card data is forwarded opaquely.
type OnboardingForm struct {
	CEP            string `json:"cep"`
	Address        string `json:"address"`
	Number         string `json:"number"`
	Complement     string `json:"complement,omitempty"`
	City           string `json:"city"`
	State          string `json:"state"`
	Plan           string `json:"plan"`
	CardHolderName string `json:"cardHolderName"`
	CardHolderCpf  string `json:"cardHolderCpf"`
	CardNumber     string `json:"cardNumber"`
	CardExpiry     string `json:"cardExpiry"`
	CardCvv        string `json:"cardCvv"`
	Signature      string `json:"signature"`
	SignatureCpf   string `json:"signatureCpf"`
	TermHash       string `json:"termHash"`
}

// Term is one version of the service terms. Exactly one active term is
// current at any time, selected by the most recent effective date.
type Term struct {
	Hash          string    `json:"hash"`
	Version       string    `json:"version"`
	Text          string    `json:"text"`
	EffectiveFrom time.Time `json:"effective_from"`
}

// Company is the tenant record created for a registered owner.
type Company struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
}

// Registration is the successful outcome of register-company.
type Registration struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
}

// OnboardingPayload is the named payload contract of the
// onboarding_company_transaction store procedure. The multi-part write behind
// it is atomic and opaque to this service.
type OnboardingPayload struct {
	OwnerID                 string  `json:"owner_id"`
	LegalRepresentativeName string  `json:"legalRepresentativeName"`
	LegalRepresentativeCpf  string  `json:"legalRepresentativeCpf"`
	CEP                     string  `json:"cep"`
	Address                 string  `json:"address"`
	Number                  string  `json:"number"`
	Complement              *string `json:"complement"`
	City                    string  `json:"city"`
	State                   string  `json:"state"`
	Plan                    string  `json:"plan"`
	CardHolderName          string  `json:"cardHolderName"`
	CardHolderCpf           string  `json:"cardHolderCpf"`
	CardNumber              string  `json:"cardNumber"`
	CardExpiry              string  `json:"cardExpiry"`
	CardCvv                 string  `json:"cardCvv"`
	Signature               string  `json:"signature"`
	SignatureCpf            string  `json:"signatureCpf"`
	TermHash                string  `json:"termHash"`
}
