// Package etsy provides an Etsy Open API v3 client abstracted behind
// interfaces for testability. It is the only boundary through which
// listing and shop snapshots enter the system; the grading core never
// imports it.
package etsy

import (
	"context"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

// SearchShopsRequest defines the parameters for a shop search.
type SearchShopsRequest struct {
	Query  string
	Limit  int
	Offset int
}

// SearchShopsResponse holds the results of a shop search.
type SearchShopsResponse struct {
	Shops   []domain.ShopMetrics
	Total   int
	Offset  int
	Limit   int
	HasMore bool
}

// EtsyClient defines the interface for fetching listing and shop
// snapshots from the Etsy API.
type EtsyClient interface {
	GetListing(ctx context.Context, listingID string) (*domain.ListingData, error)
	GetShop(ctx context.Context, shopID string) (*domain.ShopMetrics, error)
	ListShopListings(ctx context.Context, shopID string, limit int) ([]domain.ListingData, error)
	SearchShops(ctx context.Context, req SearchShopsRequest) (*SearchShopsResponse, error)
}

// TokenProvider defines the interface for obtaining OAuth2 tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
