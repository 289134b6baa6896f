package formerror

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderAccumulatesInOrder(t *testing.T) {
	b := NewBuilder().
		Add("fantasyName", FantasyNameRequired).
		Add("email", EmailRequired)

	require.True(t, b.HasErrors())
	errs := b.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "FANTASY_NAME_REQUIRED", errs[0].Code)
	assert.Equal(t, "EMAIL_REQUIRED", errs[1].Code)
}

func TestBuilderDoesNotDeduplicate(t *testing.T) {
	b := NewBuilder().
		Add("email", EmailRequired).
		Add("email", EmailRequired)

	assert.Len(t, b.Errors(), 2)
}

func TestBuilderEmptyHasNoErrors(t *testing.T) {
	assert.False(t, NewBuilder().HasErrors())
}

func TestBuilderFormLevelFieldIsNull(t *testing.T) {
	b := NewBuilder().Add("", UnexpectedError)

	rec := httptest.NewRecorder()
	b.Write(rec, 500)

	var resp struct {
		FormErrors []struct {
			Field       *string `json:"field"`
			Description string  `json:"description"`
			Code        string  `json:"code"`
		} `json:"formErrors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.FormErrors, 1)
	assert.Nil(t, resp.FormErrors[0].Field)
	assert.Equal(t, "UNEXPECTED_ERROR", resp.FormErrors[0].Code)
	assert.Equal(t, UnexpectedError.Description, resp.FormErrors[0].Description)
}

func TestBuilderWriteSetsStatusAndContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.Header().Set("Access-Control-Allow-Origin", "https://app.example.com")

	NewBuilder().Add("cnpj", CnpjNotFound).Write(rec, 400)

	assert.Equal(t, 400, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	// Pre-set headers survive rendering.
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
