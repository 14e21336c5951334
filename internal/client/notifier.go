package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MailServiceClient dispatches outbound customer email through the mail
// service collaborator.
type MailServiceClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewMailServiceClient(baseURL string, httpClient *http.Client) *MailServiceClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &MailServiceClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type sendMailRequest struct {
	MailID      string `json:"mail_id"`
	Subject     string `json:"subject"`
	MailContent string `json:"mail_content"`
}

func (c *MailServiceClient) SendMail(ctx context.Context, recipient, subject, body string) error {
	payload, err := json.Marshal(sendMailRequest{
		MailID:      recipient,
		Subject:     subject,
		MailContent: body,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send-mail", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mail service call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail service returned status %d: %s", resp.StatusCode, responseBody)
	}

	return nil
}
