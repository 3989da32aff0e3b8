package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

// ShopSearchResponse wraps a paginated shop search response.
type ShopSearchResponse struct {
	Shops   []domain.ShopMetrics `json:"shops"`
	Total   int                  `json:"total"`
	Limit   int                  `json:"limit"`
	Offset  int                  `json:"offset"`
	HasMore bool                 `json:"has_more"`
}

// GetShopHealth returns a shop's overall health score.
func (c *Client) GetShopHealth(ctx context.Context, shopID string) (*domain.ShopHealth, error) {
	var health domain.ShopHealth
	if err := c.get(ctx, fmt.Sprintf("/api/v1/shops/%s/health", shopID), &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// CompareShop positions a shop against category benchmarks and optional
// competitors.
func (c *Client) CompareShop(
	ctx context.Context,
	shopID string,
	competitorIDs []string,
) (*domain.ShopComparison, error) {
	body := map[string]any{}
	if len(competitorIDs) > 0 {
		body["competitor_ids"] = competitorIDs
	}

	var cmp domain.ShopComparison
	if err := c.post(ctx, fmt.Sprintf("/api/v1/shops/%s/compare", shopID), body, &cmp); err != nil {
		return nil, err
	}
	return &cmp, nil
}

// SuggestPrice returns a smart price suggestion for a listing.
func (c *Client) SuggestPrice(
	ctx context.Context,
	etsyListingID string,
) (*domain.PriceSuggestion, error) {
	var s domain.PriceSuggestion
	if err := c.get(ctx, "/api/v1/pricing/"+etsyListingID, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SearchShops searches Etsy shops by name.
func (c *Client) SearchShops(
	ctx context.Context,
	query string,
	limit, offset int,
) (*ShopSearchResponse, error) {
	q := url.Values{}
	q.Set("query", query)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}

	var resp ShopSearchResponse
	if err := c.get(ctx, "/api/v1/shops/search?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
