package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

// ListingsResponse wraps a paginated listings response.
type ListingsResponse struct {
	Listings []domain.ListingData `json:"listings"`
	Total    int                  `json:"total"`
	Limit    int                  `json:"limit"`
	Offset   int                  `json:"offset"`
}

// ListListingsParams defines query parameters for listing queries.
type ListListingsParams struct {
	ShopID   string
	Category string
	MinScore int
	MaxScore int
	Ungraded bool
	Limit    int
	Offset   int
	OrderBy  string
}

// ListListings returns listings matching the given parameters.
func (c *Client) ListListings(
	ctx context.Context,
	params *ListListingsParams,
) (*ListingsResponse, error) {
	q := url.Values{}
	if params.ShopID != "" {
		q.Set("shop_id", params.ShopID)
	}
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	if params.MinScore > 0 {
		q.Set("min_score", strconv.Itoa(params.MinScore))
	}
	if params.MaxScore > 0 {
		q.Set("max_score", strconv.Itoa(params.MaxScore))
	}
	if params.Ungraded {
		q.Set("ungraded", "true")
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListingsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetListing returns a single listing by ID.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.ListingData, error) {
	var l domain.ListingData
	if err := c.get(ctx, fmt.Sprintf("/api/v1/listings/%s", id), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// GetGradeHistory returns a listing's grade records, newest first.
func (c *Client) GetGradeHistory(
	ctx context.Context,
	id string,
	limit int,
) ([]domain.GradeRecord, error) {
	path := fmt.Sprintf("/api/v1/listings/%s/grades", id)
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var records []domain.GradeRecord
	if err := c.get(ctx, path, &records); err != nil {
		return nil, err
	}
	return records, nil
}
