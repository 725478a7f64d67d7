package authorizer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/RichardVsc/project/internal/domain"
)

// authorizationResponse espelha o corpo do serviço autorizador:
// {"status": "...", "data": {"authorization": true}}
type authorizationResponse struct {
	Data struct {
		Authorization bool `json:"authorization"`
	} `json:"data"`
}

// Client consulta o autorizador externo via GET síncrono.
// Timeout limitado: autorização lenta não pode segurar a request inteira.
// Sem retry aqui; a política de retry pertence ao chamador.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// EnsureAuthorized distingue negação (rejeição de negócio) de indisponibilidade
// (falha de infraestrutura): status não-2xx, corpo malformado ou timeout são
// falha, nunca negação.
func (c *Client) EnsureAuthorized(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return unavailable(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return unavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return unavailable(fmt.Errorf("authorization service returned status %d", resp.StatusCode))
	}

	var body authorizationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return unavailable(fmt.Errorf("malformed authorization response: %w", err))
	}

	if !body.Data.Authorization {
		return domain.ErrAuthorizationDenied
	}

	return nil
}

func unavailable(cause error) error {
	return fmt.Errorf("%w: %v", domain.ErrAuthorizationUnavailable, cause)
}
