package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ReasoningHTTPClient talks to the remote reasoning backend over its
// completion endpoint. The backend replies with free text; all structure
// extraction happens in the core services, not here.
type ReasoningHTTPClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewReasoningHTTPClient(baseURL, model string, httpClient *http.Client) *ReasoningHTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ReasoningHTTPClient{
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
	}
}

type completionRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type completionResponse struct {
	Response string `json:"response"`
}

func (c *ReasoningHTTPClient) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(completionRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reasoning backend call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("reasoning backend returned status %d: %s", resp.StatusCode, body)
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	return completion.Response, nil
}
