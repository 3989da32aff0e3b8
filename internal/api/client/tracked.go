package client

import (
	"context"
	"fmt"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

// trackedRequest contains only the fields the API accepts for create/update.
type trackedRequest struct {
	EtsyListingID  string `json:"etsy_listing_id,omitempty"`
	Name           string `json:"name,omitempty"`
	ScoreThreshold int    `json:"score_threshold,omitempty"`
}

// ListTracked returns all tracked listings.
func (c *Client) ListTracked(ctx context.Context, enabledOnly bool) ([]domain.TrackedListing, error) {
	path := "/api/v1/tracked"
	if enabledOnly {
		path += "?enabled=true"
	}

	var tracked []domain.TrackedListing
	if err := c.get(ctx, path, &tracked); err != nil {
		return nil, err
	}
	return tracked, nil
}

// GetTracked returns a single tracked listing by ID.
func (c *Client) GetTracked(ctx context.Context, id string) (*domain.TrackedListing, error) {
	var t domain.TrackedListing
	if err := c.get(ctx, "/api/v1/tracked/"+id, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTracked starts tracking an Etsy listing.
func (c *Client) CreateTracked(
	ctx context.Context,
	t *domain.TrackedListing,
) (*domain.TrackedListing, error) {
	var created domain.TrackedListing
	req := trackedRequest{
		EtsyListingID:  t.EtsyListingID,
		Name:           t.Name,
		ScoreThreshold: t.ScoreThreshold,
	}
	if err := c.post(ctx, "/api/v1/tracked", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTracked updates a tracked listing's name and threshold.
func (c *Client) UpdateTracked(
	ctx context.Context,
	t *domain.TrackedListing,
) (*domain.TrackedListing, error) {
	var updated domain.TrackedListing
	req := trackedRequest{
		Name:           t.Name,
		ScoreThreshold: t.ScoreThreshold,
	}
	if err := c.put(ctx, "/api/v1/tracked/"+t.ID, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetTrackedEnabled enables or disables periodic re-grading.
func (c *Client) SetTrackedEnabled(ctx context.Context, id string, enabled bool) error {
	body := map[string]bool{"enabled": enabled}
	return c.put(ctx, fmt.Sprintf("/api/v1/tracked/%s/enabled", id), body, nil)
}

// DeleteTracked stops tracking a listing.
func (c *Client) DeleteTracked(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/tracked/"+id, nil)
}

// GetAlertHistory returns alerts fired for a tracked listing, newest first.
func (c *Client) GetAlertHistory(ctx context.Context, id string, limit int) ([]domain.Alert, error) {
	path := fmt.Sprintf("/api/v1/tracked/%s/alerts", id)
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}

	var alerts []domain.Alert
	if err := c.get(ctx, path, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}
