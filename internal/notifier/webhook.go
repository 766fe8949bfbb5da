package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/camontes/resinabot/internal/constants"
	"github.com/camontes/resinabot/internal/keyring"
)

// WebhookPayload is the body POSTed to the gateway's direct-message
// endpoint.
type WebhookPayload struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

// Webhook delivers messages through the chat gateway's DM webhook.
type Webhook struct {
	url    string
	token  string
	client *http.Client
}

// NewWebhook builds a webhook notifier. If token is empty the OS
// keyring is consulted; a missing keyring entry leaves the notifier
// unauthenticated, which the gateway may or may not accept.
func NewWebhook(url, token string) *Webhook {
	if token == "" {
		if stored, err := keyring.GetGatewayToken(); err == nil {
			token = stored
		}
	}
	return &Webhook{
		url:    url,
		token:  token,
		client: &http.Client{Timeout: constants.DefaultWebhookTimeout},
	}
}

func (w *Webhook) Send(owner, text string) error {
	body, err := json.Marshal(WebhookPayload{UserID: owner, Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if w.token != "" {
		req.Header.Set("Authorization", "Bearer "+w.token)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Bound the read; the body is only for the error message.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("gateway rejected notification: %s: %s", resp.Status, snippet)
	}
	return nil
}
