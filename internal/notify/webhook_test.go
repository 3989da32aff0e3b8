package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookNotifier_SendAlert(t *testing.T) {
	t.Parallel()

	var received webhookAlert

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "secret", r.Header.Get("X-Auth"))

		err := json.NewDecoder(r.Body).Decode(&received)
		assert.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, map[string]string{"X-Auth": "secret"})
	alert := testAlert(58)
	err := n.SendAlert(context.Background(), &alert)
	require.NoError(t, err)

	assert.Equal(t, "hero-ring", received.Tracked)
	assert.Equal(t, 58, received.Score)
	assert.Equal(t, "D", received.Grade)
	assert.Equal(t, 70, received.Threshold)
	assert.Len(t, received.TopIssues, 2)
}

func TestWebhookNotifier_SendBatchAlert(t *testing.T) {
	t.Parallel()

	var received webhookBatch

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewDecoder(r.Body).Decode(&received)
		assert.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	alerts := []AlertPayload{testAlert(55), testAlert(61)}

	n := NewWebhookNotifier(srv.URL, nil)
	err := n.SendBatchAlert(context.Background(), alerts, "hero-ring")
	require.NoError(t, err)

	assert.Equal(t, "hero-ring", received.Tracked)
	assert.Equal(t, 2, received.Count)
	assert.Len(t, received.Alerts, 2)
}

func TestWebhookNotifier_ErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, nil)
	alert := testAlert(55)
	err := n.SendAlert(context.Background(), &alert)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webhook returned 502")
}

// compile-time interface checks.
var (
	_ Notifier = (*DiscordNotifier)(nil)
	_ Notifier = (*WebhookNotifier)(nil)
)
