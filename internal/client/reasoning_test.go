package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete_ReturnsResponseText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "nova-pro", req.Model)
		assert.Equal(t, "classify this", req.Prompt)
		assert.False(t, req.Stream)

		_, _ = w.Write([]byte(`{"response": "FULFILLMENT_STATUS: COMPLETED"}`))
	}))
	defer server.Close()

	text, err := NewReasoningHTTPClient(server.URL, "nova-pro", server.Client()).Complete(context.Background(), "classify this")

	require.NoError(t, err)
	assert.Equal(t, "FULFILLMENT_STATUS: COMPLETED", text)
}

func TestComplete_NonOKStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("model loading"))
	}))
	defer server.Close()

	_, err := NewReasoningHTTPClient(server.URL, "nova-pro", server.Client()).Complete(context.Background(), "classify this")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestComplete_MalformedJSONIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := NewReasoningHTTPClient(server.URL, "nova-pro", server.Client()).Complete(context.Background(), "classify this")

	assert.Error(t, err)
}
