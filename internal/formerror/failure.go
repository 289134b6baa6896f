package formerror

import (
	"fmt"
	"net/http"
)

// Kind discriminates the closed set of failure carriers.
type Kind int

const (
	// KindField tags a failure caused by a single form field.
	KindField Kind = iota + 1
	// KindUpstream tags a failure of an external collaborator (registry,
	// store). The tenant did nothing wrong, so these never carry a field.
	KindUpstream
	// KindInternal tags the catch-all for unclassified errors.
	KindInternal
)

// Failure is a typed validation or upstream failure. It carries exactly one
// catalogue entry and the HTTP status the middleware boundary should render.
// The cause stays internal for logging and is never serialized.
type Failure struct {
	Kind   Kind
	Entry  Entry
	Field  string // empty means form-level
	Status int
	Cause  error
}

func (f *Failure) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("%s: %v", f.Entry.Code, f.Cause)
	}
	return f.Entry.Code
}

func (f *Failure) Unwrap() error { return f.Cause }

// NewField raises a field-tagged failure at the default 400 status.
func NewField(field string, entry Entry) *Failure {
	return &Failure{Kind: KindField, Entry: entry, Field: field, Status: http.StatusBadRequest}
}

// NewUpstream raises a form-level failure for an external collaborator at
// the default 500 status.
func NewUpstream(entry Entry) *Failure {
	return &Failure{Kind: KindUpstream, Entry: entry, Status: http.StatusInternalServerError}
}

// NewInternal wraps an unclassified error as the generic unexpected failure.
func NewInternal(cause error) *Failure {
	return &Failure{Kind: KindInternal, Entry: UnexpectedError, Status: http.StatusInternalServerError, Cause: cause}
}

// WithStatus overrides the default HTTP status.
func (f *Failure) WithStatus(status int) *Failure {
	f.Status = status
	return f
}

// WithCause attaches the root cause for diagnostic logging.
func (f *Failure) WithCause(err error) *Failure {
	f.Cause = err
	return f
}
