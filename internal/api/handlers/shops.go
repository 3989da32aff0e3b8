package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sellersage/listing-grader/internal/etsy"
	domain "github.com/sellersage/listing-grader/pkg/types"
)

// ShopAnalyzer defines the engine operations the shop endpoints depend on.
type ShopAnalyzer interface {
	ShopHealth(ctx context.Context, shopID string) (*domain.ShopHealth, error)
	CompareShop(ctx context.Context, shopID string, competitorIDs []string) (*domain.ShopComparison, error)
	SuggestPrice(ctx context.Context, etsyListingID string) (*domain.PriceSuggestion, error)
}

// ShopSearcher searches shops on the Etsy API.
type ShopSearcher interface {
	SearchShops(ctx context.Context, req etsy.SearchShopsRequest) (*etsy.SearchShopsResponse, error)
}

// ShopsHandler handles shop analysis endpoints.
type ShopsHandler struct {
	engine   ShopAnalyzer
	searcher ShopSearcher
}

// NewShopsHandler creates a new ShopsHandler.
func NewShopsHandler(eng ShopAnalyzer, searcher ShopSearcher) *ShopsHandler {
	return &ShopsHandler{engine: eng, searcher: searcher}
}

// --- Input/Output types ---

// ShopHealthInput identifies the shop to score.
type ShopHealthInput struct {
	ShopID string `path:"shop_id" doc:"Etsy shop ID"`
}

// ShopHealthOutput is the shop health response.
type ShopHealthOutput struct {
	Body domain.ShopHealth
}

// CompareShopInput is the shop comparison request.
type CompareShopInput struct {
	ShopID string `path:"shop_id" doc:"Etsy shop ID"`
	Body   struct {
		CompetitorIDs []string `json:"competitor_ids,omitempty" doc:"Competitor shop IDs to average against" maxItems:"20"`
	}
}

// CompareShopOutput is the shop comparison response.
type CompareShopOutput struct {
	Body domain.ShopComparison
}

// SuggestPriceInput identifies the listing to price.
type SuggestPriceInput struct {
	EtsyListingID string `path:"etsy_listing_id" doc:"Etsy listing ID"`
}

// SuggestPriceOutput is the smart pricing response.
type SuggestPriceOutput struct {
	Body domain.PriceSuggestion
}

// SearchShopsInput is the shop search query.
type SearchShopsInput struct {
	Query  string `query:"query"  doc:"Shop name search query" required:"true"`
	Limit  int    `query:"limit"  doc:"Number of results (default 25)" minimum:"1" maximum:"100"`
	Offset int    `query:"offset" doc:"Pagination offset" minimum:"0"`
}

// SearchShopsOutput is the shop search response.
type SearchShopsOutput struct {
	Body struct {
		Shops   []domain.ShopMetrics `json:"shops"`
		Total   int                  `json:"total"`
		Limit   int                  `json:"limit"`
		Offset  int                  `json:"offset"`
		HasMore bool                 `json:"has_more"`
	}
}

// --- Handlers ---

// GetShopHealth scores a shop's overall health from its live Etsy data.
func (h *ShopsHandler) GetShopHealth(
	ctx context.Context,
	input *ShopHealthInput,
) (*ShopHealthOutput, error) {
	health, err := h.engine.ShopHealth(ctx, input.ShopID)
	if err != nil {
		if errors.Is(err, etsy.ErrNotFound) {
			return nil, huma.Error404NotFound("shop not found")
		}
		return nil, huma.Error502BadGateway("shop health failed: " + err.Error())
	}

	return &ShopHealthOutput{Body: *health}, nil
}

// CompareShop ranks a shop against category benchmarks and optional
// competitors.
func (h *ShopsHandler) CompareShop(
	ctx context.Context,
	input *CompareShopInput,
) (*CompareShopOutput, error) {
	cmp, err := h.engine.CompareShop(ctx, input.ShopID, input.Body.CompetitorIDs)
	if err != nil {
		if errors.Is(err, etsy.ErrNotFound) {
			return nil, huma.Error404NotFound("shop not found")
		}
		return nil, huma.Error502BadGateway("shop comparison failed: " + err.Error())
	}

	return &CompareShopOutput{Body: *cmp}, nil
}

// SuggestPrice runs the smart pricing engine for one listing.
func (h *ShopsHandler) SuggestPrice(
	ctx context.Context,
	input *SuggestPriceInput,
) (*SuggestPriceOutput, error) {
	s, err := h.engine.SuggestPrice(ctx, input.EtsyListingID)
	if err != nil {
		if errors.Is(err, etsy.ErrNotFound) {
			return nil, huma.Error404NotFound("etsy listing not found")
		}
		return nil, huma.Error502BadGateway("price suggestion failed: " + err.Error())
	}

	return &SuggestPriceOutput{Body: *s}, nil
}

// SearchShops proxies a shop name search to the Etsy API.
func (h *ShopsHandler) SearchShops(
	ctx context.Context,
	input *SearchShopsInput,
) (*SearchShopsOutput, error) {
	result, err := h.searcher.SearchShops(ctx, etsy.SearchShopsRequest{
		Query:  input.Query,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, huma.Error502BadGateway("shop search failed: " + err.Error())
	}

	resp := &SearchShopsOutput{}
	resp.Body.Shops = result.Shops
	if resp.Body.Shops == nil {
		resp.Body.Shops = []domain.ShopMetrics{}
	}
	resp.Body.Total = result.Total
	resp.Body.Limit = result.Limit
	resp.Body.Offset = result.Offset
	resp.Body.HasMore = result.HasMore

	return resp, nil
}

// RegisterShopRoutes registers shop analysis endpoints with the Huma API.
func RegisterShopRoutes(api huma.API, h *ShopsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-shop-health",
		Method:      http.MethodGet,
		Path:        "/api/v1/shops/{shop_id}/health",
		Summary:     "Get shop health",
		Description: "Scores a shop's overall health from sales, conversion, reviews, " +
			"listing volume, and the average SEO score of a listing sample.",
		Tags:   []string{"shops"},
		Errors: []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.GetShopHealth)

	huma.Register(api, huma.Operation{
		OperationID: "compare-shop",
		Method:      http.MethodPost,
		Path:        "/api/v1/shops/{shop_id}/compare",
		Summary:     "Compare a shop against benchmarks and competitors",
		Description: "Positions a shop's metrics as percentiles within its category " +
			"benchmarks and surfaces gaps versus competitor averages.",
		Tags:   []string{"shops"},
		Errors: []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.CompareShop)

	huma.Register(api, huma.Operation{
		OperationID: "suggest-price",
		Method:      http.MethodGet,
		Path:        "/api/v1/pricing/{etsy_listing_id}",
		Summary:     "Get a smart price suggestion",
		Description: "Suggests a psychologically rounded price positioned within the " +
			"listing's category benchmark band.",
		Tags:   []string{"pricing"},
		Errors: []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.SuggestPrice)

	huma.Register(api, huma.Operation{
		OperationID: "search-shops",
		Method:      http.MethodGet,
		Path:        "/api/v1/shops/search",
		Summary:     "Search Etsy shops",
		Description: "Proxies a shop name search to the Etsy API.",
		Tags:        []string{"shops"},
		Errors:      []int{http.StatusBadGateway},
	}, h.SearchShops)
}
