// Package formerror defines the closed error catalogue shared by every
// onboarding endpoint, the typed failures raised during validation, and the
// builder that renders them into the formErrors wire envelope.
package formerror

// Entry is one (code, description) pair from the catalogue. Codes are unique
// and stable; clients key translations off them, so a code is never reused
// with a different meaning.
type Entry struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Catalogue of every error the onboarding endpoints can emit. Descriptions
// are the user-facing pt-BR texts; clients may replace them via the code.
var (
	FantasyNameRequired    = Entry{Code: "FANTASY_NAME_REQUIRED", Description: "Nome fantasia é obrigatório."}
	CorporateNameRequired  = Entry{Code: "CORPORATE_NAME_REQUIRED", Description: "Razão social é obrigatória."}
	CnpjRequired           = Entry{Code: "CNPJ_REQUIRED", Description: "CNPJ é obrigatório."}
	EmailRequired          = Entry{Code: "EMAIL_REQUIRED", Description: "E-mail é obrigatório."}
	PasswordRequired       = Entry{Code: "PASSWORD_REQUIRED", Description: "Senha é obrigatória."}
	CnpjRestError          = Entry{Code: "CNPJ_REST_ERROR", Description: "Erro no serviço que consulta o CNPJ."}
	CnpjNotFound           = Entry{Code: "CNPJ_NOT_FOUND", Description: "CNPJ inválido ou não encontrado na Receita Federal."}
	CnpjNotActive          = Entry{Code: "CNPJ_NOT_ACTIVE", Description: "CNPJ não está ativo."}
	CorporateNameMismatch  = Entry{Code: "CORPORATE_NAME_MISMATCH", Description: "A razão social não confere com o registrado na Receita Federal."}
	FantasyNameMismatch    = Entry{Code: "FANTASY_NAME_MISMATCH", Description: "O nome fantasia não confere com o registrado na Receita Federal."}
	EmailCheckError        = Entry{Code: "EMAIL_CHECK_ERROR", Description: "Erro ao verificar e-mail."}
	EmailAlreadyRegistered = Entry{Code: "EMAIL_ALREADY_REGISTERED", Description: "E-mail já cadastrado."}
	AuthCreateError        = Entry{Code: "AUTH_CREATE_ERROR", Description: "Erro ao criar usuário."}
	CompanyCreateError     = Entry{Code: "COMPANY_CREATE_ERROR", Description: "Erro ao criar empresa."}
	CompanyAlreadyExists   = Entry{Code: "COMPANY_ALREADY_EXISTS", Description: "Empresa já está cadastrada."}
	UnexpectedError        = Entry{Code: "UNEXPECTED_ERROR", Description: "Erro inesperado."}
	OnboardingSaveError    = Entry{Code: "ONBOARDING_SAVE_ERROR", Description: "Erro ao tentar salvar dados do onboarding."}
	NotAuthenticated       = Entry{Code: "NOT_AUTHENTICATED", Description: "Usuário não autenticado."}
	TermNotFound           = Entry{Code: "TERM_NOT_FOUND", Description: "Termo vigente não encontrado."}
	TermOutdated           = Entry{Code: "TERM_OUTDATED", Description: "O termo foi atualizado. Recarregue a tela para aceitar o termo vigente."}

	CepRequired            = Entry{Code: "CEP_REQUIRED", Description: "CEP é obrigatório."}
	AddressRequired        = Entry{Code: "ADDRESS_REQUIRED", Description: "Endereço é obrigatório."}
	NumberRequired         = Entry{Code: "NUMBER_REQUIRED", Description: "Número é obrigatório."}
	CityRequired           = Entry{Code: "CITY_REQUIRED", Description: "Cidade é obrigatória."}
	StateRequired          = Entry{Code: "STATE_REQUIRED", Description: "Estado é obrigatório."}
	PlanRequired           = Entry{Code: "PLAN_REQUIRED", Description: "Plano é obrigatório."}
	CardHolderNameRequired = Entry{Code: "CARD_HOLDER_NAME_REQUIRED", Description: "Nome do titular do cartão é obrigatório."}
	CardHolderCpfRequired  = Entry{Code: "CARD_HOLDER_CPF_REQUIRED", Description: "CPF do titular do cartão é obrigatório."}
	CardNumberRequired     = Entry{Code: "CARD_NUMBER_REQUIRED", Description: "Número do cartão é obrigatório."}
	CardExpiryRequired     = Entry{Code: "CARD_EXPIRY_REQUIRED", Description: "Validade do cartão é obrigatória."}
	CardCvvRequired        = Entry{Code: "CARD_CVV_REQUIRED", Description: "CVV do cartão é obrigatório."}
	SignatureRequired      = Entry{Code: "SIGNATURE_REQUIRED", Description: "Assinatura é obrigatória."}
	SignatureCpfRequired   = Entry{Code: "SIGNATURE_CPF_REQUIRED", Description: "CPF da assinatura é obrigatório."}
	TermHashRequired       = Entry{Code: "TERM_HASH_REQUIRED", Description: "Hash do termo é obrigatório."}
)
