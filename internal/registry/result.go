// Package registry looks up CNPJ registrations against a BrasilAPI-compatible
// federal registry endpoint and normalizes every outcome, including transport
// failures, into a closed Result type.
package registry

import "strings"

// ErrKind classifies why a lookup did not yield an active registration.
type ErrKind string

const (
	ErrNone      ErrKind = ""
	ErrNotFound  ErrKind = "NOT_FOUND"
	ErrNotActive ErrKind = "NOT_ACTIVE"
	ErrNetwork   ErrKind = "NETWORK"
)

// Activity is one CNAE activity code attached to a registration.
type Activity struct {
	Code    string `json:"code"`
	Primary bool   `json:"primary"`
}

// Result is the normalized outcome of one registry lookup.
//
// Invariants: !Valid implies ErrKind is NOT_FOUND or NETWORK; Valid and
// !Active implies NOT_ACTIVE; ErrKind empty iff Valid and Active.
type Result struct {
	Valid      bool       `json:"valid"`
	Active     bool       `json:"active"`
	LegalName  string     `json:"legal_name"`
	TradeName  string     `json:"trade_name"`
	Activities []Activity `json:"activities"`
	ErrKind    ErrKind    `json:"err_kind"`
}

// CNAE prefix for motor vehicle dealing, the activity RENAVE integrations
// require.
const dealerCNAEPrefix = "45111"

// HasDealerActivity reports whether any CNAE marks the company as a vehicle
// dealer.
func (r Result) HasDealerActivity() bool {
	for _, a := range r.Activities {
		if strings.HasPrefix(a.Code, dealerCNAEPrefix) {
			return true
		}
	}
	return false
}
