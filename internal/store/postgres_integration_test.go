//go:build integration

package store_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sellersage/listing-grader/internal/store"
	domain "github.com/sellersage/listing-grader/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("lg_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testListing() *domain.ListingData {
	return &domain.ListingData{
		EtsyListingID: "123456789",
		ShopID:        "shop-1",
		Title:         "Handmade Silver Ring With Intricate Engraved Details",
		Description:   "A handmade sterling silver ring, engraved by hand in our studio.",
		Tags:          []string{"handmade silver ring", "engraved jewelry", "gift for her"},
		Images: []domain.ListingImage{
			{URL: "https://img.example.com/1.jpg", AltText: "Silver ring on linen"},
			{URL: "https://img.example.com/2.jpg"},
		},
		Price:     49.99,
		Currency:  "USD",
		Category:  domain.CategoryJewelry,
		Reviews:   domain.ReviewStats{Count: 42, Average: 4.8},
		Favorites: 120,
		Views:     3500,
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_UpsertListing(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("insert new listing", func(t *testing.T) {
		l := testListing()
		err := s.UpsertListing(ctx, l)
		require.NoError(t, err)
		assert.NotEmpty(t, l.ID)
		assert.False(t, l.FirstSeenAt.IsZero())
		assert.False(t, l.UpdatedAt.IsZero())
	})

	t.Run("upsert with changed price", func(t *testing.T) {
		l := testListing()
		l.EtsyListingID = "upsert-test-1"
		err := s.UpsertListing(ctx, l)
		require.NoError(t, err)
		firstID := l.ID
		firstSeen := l.FirstSeenAt

		// Update with new price.
		l2 := testListing()
		l2.EtsyListingID = "upsert-test-1"
		l2.Price = 39.99
		err = s.UpsertListing(ctx, l2)
		require.NoError(t, err)

		// Same ID, same first_seen_at, but updated price.
		assert.Equal(t, firstID, l2.ID)
		assert.Equal(t, firstSeen, l2.FirstSeenAt)

		// Verify via GetListing.
		got, err := s.GetListing(ctx, "upsert-test-1")
		require.NoError(t, err)
		assert.InDelta(t, 39.99, got.Price, 0.01)
		assert.Equal(t, l.Tags, got.Tags)
		assert.Len(t, got.Images, 2)
		assert.Equal(t, "Silver ring on linen", got.Images[0].AltText)
	})
}

func TestPostgresStore_UpdateScore(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	l := testListing()
	require.NoError(t, s.UpsertListing(ctx, l))

	breakdown := json.RawMessage(`{"title":{"score":90}}`)
	require.NoError(t, s.UpdateScore(ctx, l.ID, 87, breakdown))

	got, err := s.GetListingByID(ctx, l.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Score)
	assert.Equal(t, 87, *got.Score)
	assert.JSONEq(t, string(breakdown), string(got.ScoreBreakdown))
}

func TestPostgresStore_ListUngradedListings(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	graded := testListing()
	graded.EtsyListingID = "graded-1"
	require.NoError(t, s.UpsertListing(ctx, graded))
	require.NoError(t, s.UpdateScore(ctx, graded.ID, 75, json.RawMessage(`{}`)))

	ungraded := testListing()
	ungraded.EtsyListingID = "ungraded-1"
	require.NoError(t, s.UpsertListing(ctx, ungraded))

	got, err := s.ListUngradedListings(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ungraded-1", got[0].EtsyListingID)
}

func TestPostgresStore_GradeRecords(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	l := testListing()
	require.NoError(t, s.UpsertListing(ctx, l))

	for _, score := range []int{72, 81, 88} {
		r := &domain.GradeRecord{
			ListingID:     l.ID,
			EtsyListingID: l.EtsyListingID,
			Score:         score,
			Overall:       "B",
			Breakdown:     json.RawMessage(`{}`),
		}
		require.NoError(t, s.InsertGradeRecord(ctx, r))
		assert.NotEmpty(t, r.ID)
		assert.False(t, r.GradedAt.IsZero())
	}

	records, err := s.ListGradeRecords(ctx, l.ID, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	// Newest first.
	assert.Equal(t, 88, records[0].Score)

	records, err = s.ListGradeRecords(ctx, l.ID, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestPostgresStore_TrackedCRUD(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	tr := &domain.TrackedListing{
		EtsyListingID:  "999",
		Name:           "flagship ring",
		ScoreThreshold: 75,
		Enabled:        true,
	}
	require.NoError(t, s.CreateTracked(ctx, tr))
	require.NotEmpty(t, tr.ID)

	got, err := s.GetTracked(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, "flagship ring", got.Name)
	assert.Equal(t, 75, got.ScoreThreshold)
	assert.Nil(t, got.LastGradedAt)

	tr.Name = "flagship ring v2"
	tr.ScoreThreshold = 80
	require.NoError(t, s.UpdateTracked(ctx, tr))

	got, err = s.GetTracked(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, "flagship ring v2", got.Name)
	assert.Equal(t, 80, got.ScoreThreshold)

	require.NoError(t, s.SetTrackedEnabled(ctx, tr.ID, false))
	enabled, err := s.ListTracked(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, enabled)

	all, err := s.ListTracked(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	now := time.Now()
	require.NoError(t, s.UpdateTrackedLastGraded(ctx, tr.ID, now))
	got, err = s.GetTracked(ctx, tr.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastGradedAt)

	require.NoError(t, s.DeleteTracked(ctx, tr.ID))
	_, err = s.GetTracked(ctx, tr.ID)
	require.Error(t, err)
}

func TestPostgresStore_Alerts(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	l := testListing()
	require.NoError(t, s.UpsertListing(ctx, l))

	tr := &domain.TrackedListing{
		EtsyListingID:  l.EtsyListingID,
		Name:           "tracked",
		ScoreThreshold: 70,
		Enabled:        true,
	}
	require.NoError(t, s.CreateTracked(ctx, tr))

	a := &domain.Alert{TrackedID: tr.ID, ListingID: l.ID, Score: 55}
	require.NoError(t, s.CreateAlert(ctx, a))
	require.NotEmpty(t, a.ID)

	// Duplicate pending alert is silently dropped.
	dup := &domain.Alert{TrackedID: tr.ID, ListingID: l.ID, Score: 52}
	require.NoError(t, s.CreateAlert(ctx, dup))

	pending, err := s.ListPendingAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 55, pending[0].Score)

	require.NoError(t, s.InsertNotificationAttempt(ctx, a.ID, false, 500, "server error"))
	ok, err := s.HasSuccessfulNotification(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.InsertNotificationAttempt(ctx, a.ID, true, 204, ""))
	ok, err = s.HasSuccessfulNotification(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.MarkAlertNotified(ctx, a.ID))

	pending, err = s.ListPendingAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	recent, err := s.HasRecentAlert(ctx, tr.ID, l.ID, time.Hour)
	require.NoError(t, err)
	assert.True(t, recent)

	recent, err = s.HasRecentAlert(ctx, tr.ID, l.ID, -time.Hour)
	require.NoError(t, err)
	assert.False(t, recent)

	byTracked, err := s.ListAlertsByTracked(ctx, tr.ID, 10)
	require.NoError(t, err)
	assert.Len(t, byTracked, 1)
}

func TestPostgresStore_SystemState(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	l := testListing()
	require.NoError(t, s.UpsertListing(ctx, l))
	require.NoError(t, s.UpdateScore(ctx, l.ID, 80, json.RawMessage(`{}`)))

	l2 := testListing()
	l2.EtsyListingID = "state-2"
	require.NoError(t, s.UpsertListing(ctx, l2))

	st, err := s.GetSystemState(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, st.ListingsTotal)
	assert.Equal(t, 1, st.ListingsUngraded)
	assert.InDelta(t, 80.0, st.AvgScore, 0.01)
}

func TestPostgresStore_JobRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	id, err := s.InsertJobRun(ctx, "refresh_tracked")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.NoError(t, s.CompleteJobRun(ctx, id, "success", "", 5))

	runs, err := s.ListJobRuns(ctx, "refresh_tracked", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "success", runs[0].Status)
	require.NotNil(t, runs[0].RowsAffected)
	assert.Equal(t, 5, *runs[0].RowsAffected)
	require.NotNil(t, runs[0].CompletedAt)

	latest, err := s.ListLatestJobRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, latest, 1)

	// A fresh 'running' row is not stale yet.
	_, err = s.InsertJobRun(ctx, "refresh_tracked")
	require.NoError(t, err)

	n, err := s.RecoverStaleJobRuns(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = s.RecoverStaleJobRuns(ctx, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
