package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anumohan208/Confidence/internal/message"
)

// ListMessages fetches the inbound contact messages. Read-only; there
// is no pagination on this endpoint.
func (c *Client) ListMessages(ctx context.Context) ([]message.Message, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/contact"), nil)
	if err != nil {
		return nil, fmt.Errorf("listMessages: http.NewRequestWithContext: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listMessages: %w", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, fmt.Errorf("listMessages: %w", statusError(resp, http.MethodGet, "/contact"))
	}

	var msgs []message.Message
	if err := json.NewDecoder(resp.Body).Decode(&msgs); err != nil {
		return nil, fmt.Errorf("listMessages: json.Decode: %w", err)
	}
	return msgs, nil
}

// SendEmail dispatches one email through the backend. The backend only
// signals success with HTTP 200 exactly; any other code, 2xx included,
// is a failure.
func (c *Client) SendEmail(ctx context.Context, to, subject, body string) error {
	b, err := json.Marshal(map[string]string{
		"to":      to,
		"subject": subject,
		"message": body,
	})
	if err != nil {
		return fmt.Errorf("sendEmail: json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/send-email"), bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("sendEmail: http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("sendEmail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sendEmail: %w", statusError(resp, http.MethodPost, "/send-email"))
	}
	return nil
}
