package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupUser_Registered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/jane@example.com", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"message": "User found",
			"user": {"_id": "651f", "mail_id": "jane@example.com", "name": "Jane", "policy_type": "auto", "policy_issued_date": "2024-01-15"}
		}`))
	}))
	defer server.Close()

	holder, err := NewDirectoryHTTPClient(server.URL, server.Client()).LookupUser(context.Background(), "jane@example.com")

	require.NoError(t, err)
	require.NotNil(t, holder)
	assert.Equal(t, "jane@example.com", holder.MailID)
	assert.Equal(t, "auto", holder.PolicyType)
}

func TestLookupUser_NotFoundIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	holder, err := NewDirectoryHTTPClient(server.URL, server.Client()).LookupUser(context.Background(), "stranger@example.com")

	assert.NoError(t, err)
	assert.Nil(t, holder)
}

func TestLookupUser_NonSuccessStatusMeansUnregistered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "error", "message": "lookup degraded"}`))
	}))
	defer server.Close()

	holder, err := NewDirectoryHTTPClient(server.URL, server.Client()).LookupUser(context.Background(), "jane@example.com")

	assert.NoError(t, err)
	assert.Nil(t, holder)
}

func TestLookupUser_ServerErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	holder, err := NewDirectoryHTTPClient(server.URL, server.Client()).LookupUser(context.Background(), "jane@example.com")

	assert.Error(t, err)
	assert.Nil(t, holder)
}
