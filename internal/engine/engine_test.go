package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sellersage/listing-grader/internal/etsy"
	etsyMocks "github.com/sellersage/listing-grader/internal/etsy/mocks"
	notifyMocks "github.com/sellersage/listing-grader/internal/notify/mocks"
	"github.com/sellersage/listing-grader/internal/store"
	storeMocks "github.com/sellersage/listing-grader/internal/store/mocks"
	"github.com/sellersage/listing-grader/pkg/grader"
	"github.com/sellersage/listing-grader/pkg/shop"
	domain "github.com/sellersage/listing-grader/pkg/types"
)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testGrader(t *testing.T) *grader.Grader {
	t.Helper()
	g, err := grader.New(grader.DefaultWeights())
	require.NoError(t, err)
	return g
}

func newTestEngine(
	t *testing.T,
	s *storeMocks.MockStore,
	ec *etsyMocks.MockEtsyClient,
	n *notifyMocks.MockNotifier,
	opts ...EngineOption,
) *Engine {
	t.Helper()
	opts = append([]EngineOption{
		WithLogger(quietLogger()),
		WithStaggerOffset(0),
	}, opts...)
	eng, err := NewEngine(s, ec, testGrader(t), n, opts...)
	require.NoError(t, err)
	return eng
}

// sparseListing returns a listing guaranteed to score well below any
// reasonable alert threshold.
func sparseListing(etsyID string) *domain.ListingData {
	return &domain.ListingData{
		EtsyListingID: etsyID,
		ShopID:        "shop-1",
		Title:         "ring",
		Price:         10,
		Currency:      "USD",
		Category:      domain.CategoryJewelry,
	}
}

// expectPersistGrade wires the store calls gradeAndPersist makes for a
// listing whose upsert assigns the given internal ID.
func expectPersistGrade(ms *storeMocks.MockStore, id string) {
	ms.EXPECT().
		UpsertListing(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, l *domain.ListingData) error {
			l.ID = id
			return nil
		}).Once()
	ms.EXPECT().UpdateScore(mock.Anything, id, mock.AnythingOfType("int"), mock.Anything).
		Return(nil).Once()
	ms.EXPECT().InsertGradeRecord(mock.Anything, mock.MatchedBy(func(r *domain.GradeRecord) bool {
		return r.ListingID == id
	})).Return(nil).Once()
	ms.EXPECT().ListGradeRecords(mock.Anything, id, defaultHistoryLimit).
		Return([]domain.GradeRecord{{ID: "gr-1", ListingID: id}}, nil).Once()
}

func TestNewEngine_Defaults(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := etsyMocks.NewMockEtsyClient(t)
	mn := notifyMocks.NewMockNotifier(t)

	eng, err := NewEngine(ms, me, testGrader(t), mn)
	require.NoError(t, err)

	assert.Equal(t, defaultMaxCallsPerCycle, eng.maxCallsPerCycle)
	assert.Equal(t, 30*time.Second, eng.staggerOffset)
	assert.Equal(t, 24*time.Hour, eng.alertCooldown)
	assert.NotNil(t, eng.log)
	assert.NotNil(t, eng.health)
	assert.NotNil(t, eng.comparator)
	assert.NotNil(t, eng.pricer)
}

func TestNewEngine_WithOptions(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := etsyMocks.NewMockEtsyClient(t)
	mn := notifyMocks.NewMockNotifier(t)

	l := quietLogger()
	c := shop.NewComparator(shop.DefaultBenchmarks())
	eng, err := NewEngine(ms, me, testGrader(t), mn,
		WithLogger(l),
		WithComparator(c),
		WithStaggerOffset(5*time.Second),
		WithMaxCallsPerCycle(10),
		WithAlertCooldown(6*time.Hour, true),
	)
	require.NoError(t, err)

	assert.Same(t, l, eng.log)
	assert.Same(t, c, eng.comparator)
	assert.Equal(t, 5*time.Second, eng.staggerOffset)
	assert.Equal(t, 10, eng.maxCallsPerCycle)
	assert.Equal(t, 6*time.Hour, eng.alertCooldown)
	assert.True(t, eng.reAlertsEnabled)
}

func TestGradeSnapshot(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := etsyMocks.NewMockEtsyClient(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(t, ms, me, mn)

	grade := eng.GradeSnapshot(sparseListing("100"))
	require.NotNil(t, grade)
	assert.GreaterOrEqual(t, grade.Score, 0)
	assert.LessOrEqual(t, grade.Score, 100)
	assert.NotEmpty(t, grade.Issues)
	assert.Empty(t, grade.History, "no persistence means no history")
}

func TestGradeListingByID_Success(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := etsyMocks.NewMockEtsyClient(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(t, ms, me, mn)

	me.EXPECT().GetListing(mock.Anything, "100").Return(sparseListing("100"), nil).Once()
	expectPersistGrade(ms, "l1")

	grade, err := eng.GradeListingByID(context.Background(), "100")
	require.NoError(t, err)
	assert.NotEmpty(t, grade.Overall)
	require.Len(t, grade.History, 1)
	assert.Equal(t, "gr-1", grade.History[0].ID)
}

func TestGradeListingByID_FetchError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := etsyMocks.NewMockEtsyClient(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(t, ms, me, mn)

	me.EXPECT().GetListing(mock.Anything, "100").Return(nil, errors.New("etsy 503")).Once()

	_, err := eng.GradeListingByID(context.Background(), "100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching listing 100")
}

func TestGradeListingByID_UpsertError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := etsyMocks.NewMockEtsyClient(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(t, ms, me, mn)

	me.EXPECT().GetListing(mock.Anything, "100").Return(sparseListing("100"), nil).Once()
	ms.EXPECT().UpsertListing(mock.Anything, mock.Anything).Return(errors.New("db error")).Once()

	_, err := eng.GradeListingByID(context.Background(), "100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upserting listing 100")
}

func TestGradeListingByID_HistoryErrorDegrades(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := etsyMocks.NewMockEtsyClient(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(t, ms, me, mn)

	me.EXPECT().GetListing(mock.Anything, "100").Return(sparseListing("100"), nil).Once()
	ms.EXPECT().
		UpsertListing(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, l *domain.ListingData) error {
			l.ID = "l1"
			return nil
		}).Once()
	ms.EXPECT().UpdateScore(mock.Anything, "l1", mock.AnythingOfType("int"), mock.Anything).
		Return(nil).Once()
	ms.EXPECT().InsertGradeRecord(mock.Anything, mock.Anything).Return(nil).Once()
	ms.EXPECT().ListGradeRecords(mock.Anything, "l1", defaultHistoryLimit).
		Return(nil, errors.New("db error")).Once()

	grade, err := eng.GradeListingByID(context.Background(), "100")
	require.NoError(t, err, "history failure must not fail the grade")
	assert.Empty(t, grade.History)
}

func TestBulkGrade_PartialFailure(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := etsyMocks.NewMockEtsyClient(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(t, ms, me, mn)

	me.EXPECT().GetListing(mock.Anything, "100").Return(sparseListing("100"), nil).Once()
	expectPersistGrade(ms, "l1")
	me.EXPECT().GetListing(mock.Anything, "200").Return(nil, errors.New("etsy 404")).Once()

	result, err := eng.BulkGrade(context.Background(), []string{"100", "200"})
	require.Error(t, err)
	require.Len(t, result.Graded, 1)
	assert.Equal(t, "100", result.Graded[0].EtsyListingID)
	assert.Equal(t, []string{"200"}, result.Failed)
}

func TestBulkGrade_ContextCancelled(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := etsyMocks.NewMockEtsyClient(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(t, ms, me, mn)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.BulkGrade(ctx, []string{"100"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShopHealth_GradesListingSample(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := etsyMocks.NewMockEtsyClient(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(t, ms, me, mn)

	me.EXPECT().GetShop(mock.Anything, "shop-1").Return(&domain.ShopMetrics{
		ShopID:         "shop-1",
		Category:       domain.CategoryJewelry,
		ActiveListings: 40,
		MonthlySales:   25,
		AvgRating:      4.8,
		ReviewCount:    300,
		ConversionRate: 0.03,
	}, nil).Once()
	me.EXPECT().ListShopListings(mock.Anything, "shop-1", shopSampleLimit).
		Return([]domain.ListingData{*sparseListing("100"), *sparseListing("200")}, nil).Once()

	health, err := eng.ShopHealth(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Equal(t, "shop-1", health.ShopID)
	assert.GreaterOrEqual(t, health.Score, 0)
	assert.LessOrEqual(t, health.Score, 100)
}

func TestShopHealth_SampleFailureDegrades(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := etsyMocks.NewMockEtsyClient(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(t, ms, me, mn)

	me.EXPECT().GetShop(mock.Anything, "shop-1").
		Return(&domain.ShopMetrics{ShopID: "shop-1"}, nil).Once()
	me.EXPECT().ListShopListings(mock.Anything, "shop-1", shopSampleLimit).
		Return(nil, errors.New("etsy 500")).Once()

	health, err := eng.ShopHealth(context.Background(), "shop-1")
	require.NoError(t, err, "sample failure degrades, never fails")
	assert.Equal(t, "shop-1", health.ShopID)
}

func TestShopHealth_ShopFetchError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := etsyMocks.NewMockEtsyClient(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(t, ms, me, mn)

	me.EXPECT().GetShop(mock.Anything, "missing").Return(nil, etsy.ErrNotFound).Once()

	_, err := eng.ShopHealth(context.Background(), "missing")
	assert.ErrorIs(t, err, etsy.ErrNotFound)
}

func TestCompareShop_SkipsFailedCompetitor(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := etsyMocks.NewMockEtsyClient(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(t, ms, me, mn)

	me.EXPECT().GetShop(mock.Anything, "shop-1").Return(&domain.ShopMetrics{
		ShopID:   "shop-1",
		Category: domain.CategoryJewelry,
	}, nil).Once()
	me.EXPECT().ListShopListings(mock.Anything, "shop-1", shopSampleLimit).
		Return(nil, nil).Once()

	me.EXPECT().GetShop(mock.Anything, "comp-1").Return(&domain.ShopMetrics{
		ShopID: "comp-1", MonthlySales: 100,
	}, nil).Once()
	me.EXPECT().GetShop(mock.Anything, "comp-2").
		Return(nil, errors.New("etsy 500")).Once()

	cmp, err := eng.CompareShop(context.Background(), "shop-1", []string{"comp-1", "comp-2"})
	require.NoError(t, err)
	assert.Equal(t, "shop-1", cmp.ShopID)
	assert.Equal(t, 1, cmp.CompetitorCount, "failed competitor is skipped, not fatal")
}

func TestSuggestPrice(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := etsyMocks.NewMockEtsyClient(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(t, ms, me, mn)

	listing := sparseListing("100")
	listing.Price = 20.00
	me.EXPECT().GetListing(mock.Anything, "100").Return(listing, nil).Once()

	s, err := eng.SuggestPrice(context.Background(), "100")
	require.NoError(t, err)
	assert.Equal(t, 20.00, s.CurrentPrice)
	assert.Positive(t, s.SuggestedPrice)
}

func TestRescoreAll_PagesThroughListings(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := etsyMocks.NewMockEtsyClient(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(t, ms, me, mn)

	page := []domain.ListingData{*sparseListing("100"), *sparseListing("200")}
	page[0].ID = "l1"
	page[1].ID = "l2"

	ms.EXPECT().
		ListListings(mock.Anything, &store.ListingQuery{Limit: 2, Offset: 0}).
		Return(page, 2, nil).Once()

	for _, id := range []string{"l1", "l2"} {
		ms.EXPECT().UpdateScore(mock.Anything, id, mock.AnythingOfType("int"), mock.Anything).
			Return(nil).Once()
		ms.EXPECT().InsertGradeRecord(mock.Anything, mock.Anything).Return(nil).Once()
		ms.EXPECT().ListGradeRecords(mock.Anything, id, defaultHistoryLimit).
			Return(nil, nil).Once()
	}

	count, err := eng.RescoreAll(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRescoreAll_Empty(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := etsyMocks.NewMockEtsyClient(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(t, ms, me, mn)

	ms.EXPECT().
		ListListings(mock.Anything, mock.Anything).
		Return(nil, 0, nil).Once()

	count, err := eng.RescoreAll(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, count)
}
