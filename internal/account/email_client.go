package account

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// HTTPEmailSender hands messages to the email delivery service.
type HTTPEmailSender struct {
	baseURL string
	subject string
	client  *http.Client
}

func NewHTTPEmailSender(baseURL, subject string, client *http.Client) *HTTPEmailSender {
	return &HTTPEmailSender{
		baseURL: baseURL,
		subject: subject,
		client:  client,
	}
}

func (s *HTTPEmailSender) Send(ctx context.Context, recipient, body string) error {
	payload := map[string]string{
		"to":      recipient,
		"subject": s.subject,
		"body":    body,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/send", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email to %s: %w", recipient, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("email service returned status %d", resp.StatusCode)
	}

	return nil
}

var _ EmailSender = (*HTTPEmailSender)(nil)
