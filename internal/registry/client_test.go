package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const activeBody = `{
	"razao_social": "AUTO PECAS LTDA",
	"nome_fantasia": "Auto Peças",
	"descricao_situacao_cadastral": "ATIVA",
	"cnae_fiscal": 4511101,
	"cnaes_secundarios": [{"codigo": 4512901}]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, nil)
}

func TestLookupActiveRegistration(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(activeBody))
	})

	result := c.Lookup(context.Background(), "45.111.010/0001-99")

	assert.True(t, result.Valid)
	assert.True(t, result.Active)
	assert.Equal(t, ErrNone, result.ErrKind)
	assert.Equal(t, "AUTO PECAS LTDA", result.LegalName)
	assert.Equal(t, "Auto Peças", result.TradeName)
	require.Len(t, result.Activities, 2)
	assert.Equal(t, Activity{Code: "4511101", Primary: true}, result.Activities[0])
	assert.Equal(t, Activity{Code: "4512901", Primary: false}, result.Activities[1])
}

func TestLookupStripsNonDigits(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(activeBody))
	})

	c.Lookup(context.Background(), "45.111.010/0001-99")

	assert.Equal(t, "/api/cnpj/v1/45111010000199", gotPath)
}

func TestLookupInactiveRegistration(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"razao_social": "EMPRESA BAIXADA LTDA",
			"descricao_situacao_cadastral": "BAIXADA",
			"cnae_fiscal": 4511101
		}`))
	})

	result := c.Lookup(context.Background(), "45111010000199")

	assert.True(t, result.Valid)
	assert.False(t, result.Active)
	assert.Equal(t, ErrNotActive, result.ErrKind)
	assert.Equal(t, "EMPRESA BAIXADA LTDA", result.LegalName)
}

func TestLookupNotFoundOnNonSuccessStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"CNPJ não encontrado"}`, http.StatusNotFound)
	})

	result := c.Lookup(context.Background(), "00000000000000")

	assert.False(t, result.Valid)
	assert.False(t, result.Active)
	assert.Equal(t, ErrNotFound, result.ErrKind)
}

func TestLookupMalformedBodyIsNetworkFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	})

	result := c.Lookup(context.Background(), "45111010000199")

	assert.False(t, result.Valid)
	assert.Equal(t, ErrNetwork, result.ErrKind)
}

func TestLookupTransportFailureIsNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections
	c := NewClient(srv.URL, nil)

	result := c.Lookup(context.Background(), "45111010000199")

	assert.Equal(t, ErrNetwork, result.ErrKind)
}

func TestHasDealerActivity(t *testing.T) {
	dealer := Result{Activities: []Activity{{Code: "4511101", Primary: true}}}
	assert.True(t, dealer.HasDealerActivity())

	bakery := Result{Activities: []Activity{{Code: "1091101", Primary: true}}}
	assert.False(t, bakery.HasDealerActivity())

	assert.False(t, Result{}.HasDealerActivity())
}
