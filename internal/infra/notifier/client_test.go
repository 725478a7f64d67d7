package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RichardVsc/project/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_Success(t *testing.T) {
	var received notifyRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, time.Second)
	err := client.Send(context.Background(), 42, domain.TransferReceivedMessage)

	require.NoError(t, err)
	assert.Equal(t, int64(42), received.UserID)
	assert.Equal(t, domain.TransferReceivedMessage, received.Message)
}

func TestSend_ServerErrorFailsAttempt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, time.Second)
	err := client.Send(context.Background(), 42, domain.TransferReceivedMessage)

	assert.Error(t, err)
}

func TestSend_UnreachableService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, time.Second)
	err := client.Send(context.Background(), 42, domain.TransferReceivedMessage)

	assert.Error(t, err)
}
