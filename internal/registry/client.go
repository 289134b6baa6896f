package registry

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// activeStatus is the literal the registry uses for an active registration.
const activeStatus = "ATIVA"

// DefaultBaseURL points at the public BrasilAPI deployment.
const DefaultBaseURL = "https://brasilapi.com.br"

// Client performs a single lookup per call. No retries; callers decide how to
// surface a NETWORK outcome.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		logger:     logger,
	}
}

// cnpjResponse is the subset of the registry payload the pipeline needs.
// Anything unparseable is treated as a network failure, never propagated.
type cnpjResponse struct {
	LegalName        string      `json:"razao_social"`
	TradeName        string      `json:"nome_fantasia"`
	RegistrationText string      `json:"descricao_situacao_cadastral"`
	PrimaryCNAE      json.Number `json:"cnae_fiscal"`
	SecondaryCNAEs   []struct {
		Code json.Number `json:"codigo"`
	} `json:"cnaes_secundarios"`
}

// Lookup resolves a CNPJ to its registration data. All non-digit characters
// are stripped from the input before calling out. Transport and decode
// failures come back as an ErrNetwork result, never as an error.
func (c *Client) Lookup(ctx context.Context, cnpj string) Result {
	digits := stripNonDigits(cnpj)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/cnpj/v1/%s", c.baseURL, digits), nil)
	if err != nil {
		return c.networkFailure(ctx, digits, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.networkFailure(ctx, digits, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{ErrKind: ErrNotFound}
	}

	var body cnpjResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return c.networkFailure(ctx, digits, err)
	}

	result := Result{
		Valid:      true,
		LegalName:  body.LegalName,
		TradeName:  body.TradeName,
		Activities: parseActivities(body),
	}
	if body.RegistrationText != activeStatus {
		result.ErrKind = ErrNotActive
		return result
	}
	result.Active = true
	return result
}

func (c *Client) networkFailure(ctx context.Context, digits string, err error) Result {
	if c.logger != nil {
		c.logger.WarnContext(ctx, "cnpj lookup failed", "cnpj", digits, "error", err)
	}
	return Result{ErrKind: ErrNetwork}
}

func parseActivities(body cnpjResponse) []Activity {
	var activities []Activity
	if code := body.PrimaryCNAE.String(); code != "" {
		activities = append(activities, Activity{Code: code, Primary: true})
	}
	for _, c := range body.SecondaryCNAEs {
		if code := c.Code.String(); code != "" {
			activities = append(activities, Activity{Code: code})
		}
	}
	return activities
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
