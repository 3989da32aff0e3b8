package client

import (
	"context"
	"time"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

// QuotaResponse reports the Etsy API quota status.
type QuotaResponse struct {
	DailyLimit int64     `json:"daily_limit"`
	DailyUsed  int64     `json:"daily_used"`
	Remaining  int64     `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
}

// RefreshResponse summarizes a tracked-listing refresh cycle.
type RefreshResponse struct {
	Refreshed     int `json:"refreshed"`
	Failed        int `json:"failed"`
	AlertsCreated int `json:"alerts_created"`
	Skipped       int `json:"skipped"`
}

// GetSystemState returns aggregate counts describing the system.
func (c *Client) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	var state domain.SystemState
	if err := c.get(ctx, "/api/v1/system/state", &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// GetQuota returns the current Etsy API quota status.
func (c *Client) GetQuota(ctx context.Context) (*QuotaResponse, error) {
	var quota QuotaResponse
	if err := c.get(ctx, "/api/v1/quota", &quota); err != nil {
		return nil, err
	}
	return &quota, nil
}

// Refresh triggers a tracked-listing refresh cycle.
func (c *Client) Refresh(ctx context.Context) (*RefreshResponse, error) {
	var resp RefreshResponse
	if err := c.post(ctx, "/api/v1/refresh", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Rescore re-grades every stored listing from its persisted snapshot.
func (c *Client) Rescore(ctx context.Context) (int, error) {
	var resp struct {
		Rescored int `json:"rescored"`
	}
	if err := c.post(ctx, "/api/v1/rescore", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Rescored, nil
}
