package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// notifyRequest é o payload aceito pelo serviço externo de notificação.
type notifyRequest struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}

// Client faz a entrega síncrona de uma notificação (POST).
// Uma chamada por tentativa; o retry mora no job do worker.
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

// Send considera sucesso apenas resposta 2xx.
func (c *Client) Send(ctx context.Context, recipientID int64, message string) error {
	payload, err := json.Marshal(notifyRequest{
		UserID:  recipientID,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call notification service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}

	return nil
}
