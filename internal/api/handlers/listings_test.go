package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sellersage/listing-grader/internal/api/handlers"
	"github.com/sellersage/listing-grader/internal/store"
	storeMocks "github.com/sellersage/listing-grader/internal/store/mocks"
	domain "github.com/sellersage/listing-grader/pkg/types"
)

func sampleListing(id, etsyID string) domain.ListingData {
	score := 72
	return domain.ListingData{
		ID:            id,
		EtsyListingID: etsyID,
		ShopID:        "shop-1",
		Title:         "Handmade silver ring with moonstone",
		Tags:          []string{"silver ring", "moonstone"},
		Price:         45.99,
		Currency:      "USD",
		Category:      domain.CategoryJewelry,
		Score:         &score,
	}
}

func TestListListings_Success(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().
		ListListings(mock.Anything, mock.MatchedBy(func(q *store.ListingQuery) bool {
			return q.ShopID == nil && q.Category == nil && !q.Ungraded
		})).
		Return([]domain.ListingData{sampleListing("l1", "100001")}, 1, nil).
		Once()

	h := handlers.NewListingsHandler(mockStore)

	_, api := humatest.New(t)
	handlers.RegisterListingRoutes(api, h)

	resp := api.Get("/api/v1/listings")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"etsy_listing_id":"100001"`)
	assert.Contains(t, resp.Body.String(), `"total":1`)
}

func TestListListings_Filters(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().
		ListListings(mock.Anything, mock.MatchedBy(func(q *store.ListingQuery) bool {
			return q.ShopID != nil && *q.ShopID == "shop-1" &&
				q.Category != nil && *q.Category == "jewelry" &&
				q.MinScore != nil && *q.MinScore == 50 &&
				q.Limit == 10 && q.Offset == 20 &&
				q.OrderBy == "score"
		})).
		Return(nil, 0, nil).
		Once()

	h := handlers.NewListingsHandler(mockStore)

	_, api := humatest.New(t)
	handlers.RegisterListingRoutes(api, h)

	resp := api.Get("/api/v1/listings?shop_id=shop-1&category=jewelry&min_score=50&limit=10&offset=20&order_by=score")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"listings":[]`)
}

func TestListListings_InvalidCategory(t *testing.T) {
	t.Parallel()

	h := handlers.NewListingsHandler(storeMocks.NewMockStore(t))

	_, api := humatest.New(t)
	handlers.RegisterListingRoutes(api, h)

	resp := api.Get("/api/v1/listings?category=furniture")
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestListListings_StoreError(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().
		ListListings(mock.Anything, mock.Anything).
		Return(nil, 0, errors.New("db down")).
		Once()

	h := handlers.NewListingsHandler(mockStore)

	_, api := humatest.New(t)
	handlers.RegisterListingRoutes(api, h)

	resp := api.Get("/api/v1/listings")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "listing query failed")
}

func TestGetListing_Success(t *testing.T) {
	t.Parallel()

	listing := sampleListing("l1", "100001")
	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().
		GetListingByID(mock.Anything, "l1").
		Return(&listing, nil).
		Once()

	h := handlers.NewListingsHandler(mockStore)

	_, api := humatest.New(t)
	handlers.RegisterListingRoutes(api, h)

	resp := api.Get("/api/v1/listings/l1")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"score":72`)
}

func TestGetListing_NotFound(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().
		GetListingByID(mock.Anything, "missing").
		Return(nil, errors.New("no rows")).
		Once()

	h := handlers.NewListingsHandler(mockStore)

	_, api := humatest.New(t)
	handlers.RegisterListingRoutes(api, h)

	resp := api.Get("/api/v1/listings/missing")
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetGradeHistory_DefaultLimit(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().
		ListGradeRecords(mock.Anything, "l1", 20).
		Return([]domain.GradeRecord{
			{ID: "gr-1", ListingID: "l1", Score: 72, Overall: "B"},
		}, nil).
		Once()

	h := handlers.NewListingsHandler(mockStore)

	_, api := humatest.New(t)
	handlers.RegisterListingRoutes(api, h)

	resp := api.Get("/api/v1/listings/l1/grades")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"score":72`)
}

func TestGetGradeHistory_Empty(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().
		ListGradeRecords(mock.Anything, "l1", 5).
		Return(nil, nil).
		Once()

	h := handlers.NewListingsHandler(mockStore)

	_, api := humatest.New(t)
	handlers.RegisterListingRoutes(api, h)

	resp := api.Get("/api/v1/listings/l1/grades?limit=5")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "[]")
}
