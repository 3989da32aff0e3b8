package etsy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sellersage/listing-grader/internal/metrics"
	domain "github.com/sellersage/listing-grader/pkg/types"
)

const defaultBaseURL = "https://openapi.etsy.com/v3/application"

// APIError is a typed Etsy API failure carrying the HTTP status.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("etsy API error (status %d): %s", e.Status, e.Body)
}

// ErrNotFound is returned when the requested listing or shop does not exist.
var ErrNotFound = errors.New("etsy resource not found")

// OpenAPIClient implements EtsyClient against the Etsy Open API v3.
type OpenAPIClient struct {
	tokens      TokenProvider
	apiKey      string
	baseURL     string
	client      *http.Client
	rateLimiter *RateLimiter
}

// ClientOption configures the OpenAPIClient.
type ClientOption func(*OpenAPIClient)

// WithBaseURL overrides the default Open API endpoint.
func WithBaseURL(u string) ClientOption {
	return func(c *OpenAPIClient) {
		c.baseURL = u
	}
}

// WithClientHTTPClient overrides the default HTTP client.
func WithClientHTTPClient(hc *http.Client) ClientOption {
	return func(c *OpenAPIClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and
// daily API call limits. When set, every request goes through Wait() first.
func WithRateLimiter(r *RateLimiter) ClientOption {
	return func(c *OpenAPIClient) {
		c.rateLimiter = r
	}
}

// NewOpenAPIClient creates a new Etsy Open API client. The tokens
// provider may be nil for public endpoints, which authenticate with the
// API key header alone.
func NewOpenAPIClient(apiKey string, tokens TokenProvider, opts ...ClientOption) *OpenAPIClient {
	c := &OpenAPIClient{
		tokens:  tokens,
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetListing fetches a single listing snapshot, including images and
// review statistics.
func (c *OpenAPIClient) GetListing(
	ctx context.Context,
	listingID string,
) (*domain.ListingData, error) {
	var listing apiListing
	path := "/listings/" + listingID
	q := url.Values{"includes": {"Images,Shop"}}
	if err := c.get(ctx, path, q, &listing); err != nil {
		return nil, fmt.Errorf("fetching listing %s: %w", listingID, err)
	}

	data := toListingData(&listing)

	// Reviews arrive from a separate endpoint; a failure here degrades
	// the engagement dimension instead of failing the fetch.
	var reviews apiReviews
	if err := c.get(ctx, path+"/reviews", url.Values{"limit": {"100"}}, &reviews); err == nil {
		data.Reviews = reviewStats(&reviews)
	}

	return &data, nil
}

// GetShop fetches shop-level metrics.
func (c *OpenAPIClient) GetShop(
	ctx context.Context,
	shopID string,
) (*domain.ShopMetrics, error) {
	var shop apiShop
	if err := c.get(ctx, "/shops/"+shopID, nil, &shop); err != nil {
		return nil, fmt.Errorf("fetching shop %s: %w", shopID, err)
	}

	m := toShopMetrics(&shop)
	return &m, nil
}

// ListShopListings fetches active listings for a shop.
func (c *OpenAPIClient) ListShopListings(
	ctx context.Context,
	shopID string,
	limit int,
) ([]domain.ListingData, error) {
	if limit <= 0 {
		limit = 25
	}

	var resp listingsResponse
	q := url.Values{
		"limit":    {strconv.Itoa(limit)},
		"includes": {"Images"},
	}
	if err := c.get(ctx, "/shops/"+shopID+"/listings/active", q, &resp); err != nil {
		return nil, fmt.Errorf("fetching shop %s listings: %w", shopID, err)
	}

	return toListings(resp.Results), nil
}

// SearchShops searches shops by name.
func (c *OpenAPIClient) SearchShops(
	ctx context.Context,
	req SearchShopsRequest,
) (*SearchShopsResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 25
	}

	q := url.Values{
		"shop_name": {req.Query},
		"limit":     {strconv.Itoa(limit)},
	}
	if req.Offset > 0 {
		q.Set("offset", strconv.Itoa(req.Offset))
	}

	var resp shopsResponse
	if err := c.get(ctx, "/shops", q, &resp); err != nil {
		return nil, fmt.Errorf("searching shops: %w", err)
	}

	shops := make([]domain.ShopMetrics, 0, len(resp.Results))
	for i := range resp.Results {
		shops = append(shops, toShopMetrics(&resp.Results[i]))
	}

	return &SearchShopsResponse{
		Shops:   shops,
		Total:   resp.Count,
		Offset:  req.Offset,
		Limit:   limit,
		HasMore: req.Offset+len(shops) < resp.Count,
	}, nil
}

func (c *OpenAPIClient) get(
	ctx context.Context,
	path string,
	query url.Values,
	dst any,
) error {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.EtsyDailyLimitHits.Inc()
			}
			return fmt.Errorf("rate limit: %w", err)
		}
		metrics.EtsyAPICallsTotal.Inc()
		metrics.EtsyDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("getting auth token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.EtsyAPIErrorsTotal.Inc()
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		metrics.EtsyAPIErrorsTotal.Inc()
		return &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}

	return nil
}

// reviewStats summarizes a reviews page into count and average rating.
func reviewStats(r *apiReviews) domain.ReviewStats {
	stats := domain.ReviewStats{Count: r.Count}
	if len(r.Results) == 0 {
		return stats
	}

	var sum int
	for _, rev := range r.Results {
		sum += rev.Rating
	}
	stats.Average = float64(sum) / float64(len(r.Results))
	return stats
}
