// Package testutil provides common test utilities for handler and
// integration tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FormError mirrors one entry of the formErrors envelope.
type FormError struct {
	Field       *string `json:"field"`
	Description string  `json:"description"`
	Code        string  `json:"code"`
}

// FormErrorResponse is the failure envelope every endpoint renders.
type FormErrorResponse struct {
	FormErrors []FormError `json:"formErrors"`
}

// NewJSONRequest creates an HTTP request with a JSON-marshaled body.
func NewJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DoRequest executes a request against a handler and returns the recorder.
func DoRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// UnmarshalResponse unmarshals the response body into the target struct.
func UnmarshalResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) *T {
	t.Helper()
	var result T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result), "failed to unmarshal response")
	return &result
}

// FormErrors decodes the failure envelope from a response.
func FormErrors(t *testing.T, rr *httptest.ResponseRecorder) []FormError {
	t.Helper()
	resp := UnmarshalResponse[FormErrorResponse](t, rr)
	return resp.FormErrors
}

// AssertSingleFormError asserts the response carries exactly one error with
// the given field and code. Use an empty field for form-level errors.
func AssertSingleFormError(t *testing.T, rr *httptest.ResponseRecorder, field, code string) {
	t.Helper()
	errs := FormErrors(t, rr)
	require.Len(t, errs, 1, "expected exactly one form error")
	assert.Equal(t, code, errs[0].Code)
	if field == "" {
		assert.Nil(t, errs[0].Field)
	} else {
		require.NotNil(t, errs[0].Field)
		assert.Equal(t, field, *errs[0].Field)
	}
}
