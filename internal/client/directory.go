package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"coverly.com/claimflow/internal/core/domain"
)

// DirectoryHTTPClient checks sender registration against the user directory
// service. A 404 or an absent success status means unregistered; that is a
// normal answer, not an error.
type DirectoryHTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewDirectoryHTTPClient(baseURL string, httpClient *http.Client) *DirectoryHTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &DirectoryHTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type userLookupResponse struct {
	Status  string               `json:"status"`
	Message string               `json:"message"`
	User    *domain.PolicyHolder `json:"user"`
}

// LookupUser returns the policyholder for the address, or (nil, nil) when the
// address is not registered. Transport failures surface as errors so the
// caller can log them, but registration stays fail-closed either way.
func (c *DirectoryHTTPClient) LookupUser(ctx context.Context, email string) (*domain.PolicyHolder, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/user/"+url.PathEscape(email), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build user lookup request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user lookup call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user lookup returned status %d", resp.StatusCode)
	}

	var lookup userLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		return nil, fmt.Errorf("failed to decode user lookup response: %w", err)
	}

	if lookup.Status != "success" || lookup.User == nil {
		return nil, nil
	}

	return lookup.User, nil
}
