// Package notify defines the notification interface and implementations
// for grade-drop alert delivery.
package notify

import (
	"context"
)

// AlertPayload contains the data needed to send a grade-drop notification.
type AlertPayload struct {
	TrackedName  string
	ListingTitle string
	ListingURL   string
	ImageURL     string
	Score        int
	Grade        string
	Threshold    int
	TopIssues    []string
}

// Notifier defines the interface for sending grade-drop notifications.
type Notifier interface {
	SendAlert(ctx context.Context, alert *AlertPayload) error
	SendBatchAlert(ctx context.Context, alerts []AlertPayload, trackedName string) error
}
