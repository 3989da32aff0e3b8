package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// WebhookNotifier implements Notifier by POSTing alert JSON to a
// configured URL with optional static headers.
type WebhookNotifier struct {
	url     string
	headers map[string]string
	client  *http.Client
}

// NewWebhookNotifier creates a generic webhook notifier.
func NewWebhookNotifier(url string, headers map[string]string, opts ...WebhookOption) *WebhookNotifier {
	w := &WebhookNotifier{
		url:     url,
		headers: headers,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WebhookOption configures a WebhookNotifier.
type WebhookOption func(*WebhookNotifier)

// WithWebhookHTTPClient sets a custom HTTP client.
func WithWebhookHTTPClient(c *http.Client) WebhookOption {
	return func(w *WebhookNotifier) {
		w.client = c
	}
}

// webhookAlert is the JSON body for a single alert.
type webhookAlert struct {
	Tracked      string   `json:"tracked"`
	ListingTitle string   `json:"listing_title"`
	ListingURL   string   `json:"listing_url,omitempty"`
	Score        int      `json:"score"`
	Grade        string   `json:"grade"`
	Threshold    int      `json:"threshold"`
	TopIssues    []string `json:"top_issues,omitempty"`
}

// webhookBatch is the JSON body for a batch of alerts.
type webhookBatch struct {
	Tracked string         `json:"tracked"`
	Count   int            `json:"count"`
	Alerts  []webhookAlert `json:"alerts"`
}

// SendAlert posts a single alert to the webhook URL.
func (w *WebhookNotifier) SendAlert(ctx context.Context, alert *AlertPayload) error {
	return w.post(ctx, toWebhookAlert(alert))
}

// SendBatchAlert posts a batch of alerts as one request.
func (w *WebhookNotifier) SendBatchAlert(
	ctx context.Context,
	alerts []AlertPayload,
	trackedName string,
) error {
	batch := webhookBatch{
		Tracked: trackedName,
		Count:   len(alerts),
		Alerts:  make([]webhookAlert, 0, len(alerts)),
	}
	for i := range alerts {
		batch.Alerts = append(batch.Alerts, toWebhookAlert(&alerts[i]))
	}
	return w.post(ctx, batch)
}

func toWebhookAlert(a *AlertPayload) webhookAlert {
	return webhookAlert{
		Tracked:      a.TrackedName,
		ListingTitle: a.ListingTitle,
		ListingURL:   a.ListingURL,
		Score:        a.Score,
		Grade:        a.Grade,
		Threshold:    a.Threshold,
		TopIssues:    a.TopIssues,
	}
}

func (w *WebhookNotifier) post(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range w.headers {
		req.Header.Set(k, v)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %d", resp.StatusCode)
	}

	return nil
}
