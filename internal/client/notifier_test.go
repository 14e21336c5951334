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

func TestSendMail_PostsPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send-mail", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req sendMailRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "jane@example.com", req.MailID)
		assert.Equal(t, "Insurance Claim - Registration Required", req.Subject)
		assert.Equal(t, "Dear Customer, ...", req.MailContent)
	}))
	defer server.Close()

	err := NewMailServiceClient(server.URL, server.Client()).
		SendMail(context.Background(), "jane@example.com", "Insurance Claim - Registration Required", "Dear Customer, ...")

	assert.NoError(t, err)
}

func TestSendMail_NonOKStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := NewMailServiceClient(server.URL, server.Client()).
		SendMail(context.Background(), "jane@example.com", "subject", "body")

	assert.Error(t, err)
}
