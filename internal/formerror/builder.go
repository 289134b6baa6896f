package formerror

import (
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
)

// FieldError is one rendered entry of the formErrors envelope. A nil field
// denotes a form-level error.
type FieldError struct {
	Field       *string `json:"field"`
	Description string  `json:"description"`
	Code        string  `json:"code"`
}

// Builder accumulates field-tagged errors in order and renders them as the
// formErrors response body. The zero value is ready to use. It implements
// error so the aggregating presence pass can return it straight through the
// middleware boundary.
type Builder struct {
	errs []FieldError
}

func NewBuilder() *Builder { return &Builder{} }

// Add appends one error and returns the builder for chaining. Entries are
// never deduplicated; callers own the ordering.
func (b *Builder) Add(field string, entry Entry) *Builder {
	var f *string
	if field != "" {
		f = &field
	}
	b.errs = append(b.errs, FieldError{Field: f, Description: entry.Description, Code: entry.Code})
	return b
}

// HasErrors reports whether any error was accumulated.
func (b *Builder) HasErrors() bool { return len(b.errs) > 0 }

// Errors exposes the accumulated entries, mostly for tests and logging.
func (b *Builder) Errors() []FieldError { return b.errs }

func (b *Builder) Error() string {
	return fmt.Sprintf("%d form error(s)", len(b.errs))
}

// Write renders {"formErrors":[...]} with the given status. Headers already
// set on the writer (CORS origin, request id) are preserved.
func (b *Builder) Write(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string][]FieldError{"formErrors": b.errs})
}
