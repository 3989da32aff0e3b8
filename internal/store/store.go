// Package store defines the datastore abstraction for the listing grader.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"encoding/json"
	"time"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

// ListingQuery defines optional filters for listing queries.
type ListingQuery struct {
	ShopID   *string
	Category *string
	MinScore *int
	MaxScore *int
	Ungraded bool
	Limit    int // default 50
	Offset   int
	OrderBy  string // "score", "price", "first_seen_at"
}

// Store defines all data access operations for the listing grader.
type Store interface {
	// Listings
	UpsertListing(ctx context.Context, l *domain.ListingData) error
	GetListing(ctx context.Context, etsyListingID string) (*domain.ListingData, error)
	GetListingByID(ctx context.Context, id string) (*domain.ListingData, error)
	ListListings(ctx context.Context, opts *ListingQuery) ([]domain.ListingData, int, error)
	ListListingsByShop(ctx context.Context, shopID string) ([]domain.ListingData, error)
	UpdateScore(ctx context.Context, id string, score int, breakdown json.RawMessage) error
	ListUngradedListings(ctx context.Context, limit int) ([]domain.ListingData, error)

	// Grade history
	InsertGradeRecord(ctx context.Context, r *domain.GradeRecord) error
	ListGradeRecords(ctx context.Context, listingID string, limit int) ([]domain.GradeRecord, error)

	// Tracked listings
	CreateTracked(ctx context.Context, t *domain.TrackedListing) error
	GetTracked(ctx context.Context, id string) (*domain.TrackedListing, error)
	ListTracked(ctx context.Context, enabledOnly bool) ([]domain.TrackedListing, error)
	UpdateTracked(ctx context.Context, t *domain.TrackedListing) error
	DeleteTracked(ctx context.Context, id string) error
	SetTrackedEnabled(ctx context.Context, id string, enabled bool) error
	UpdateTrackedLastGraded(ctx context.Context, id string, t time.Time) error

	// Alerts
	CreateAlert(ctx context.Context, a *domain.Alert) error
	ListPendingAlerts(ctx context.Context) ([]domain.Alert, error)
	ListAlertsByTracked(ctx context.Context, trackedID string, limit int) ([]domain.Alert, error)
	MarkAlertNotified(ctx context.Context, id string) error
	MarkAlertsNotified(ctx context.Context, ids []string) error
	HasRecentAlert(ctx context.Context, trackedID, listingID string, cooldown time.Duration) (bool, error)
	InsertNotificationAttempt(ctx context.Context, alertID string, succeeded bool, httpStatus int, errText string) error
	HasSuccessfulNotification(ctx context.Context, alertID string) (bool, error)

	// System state
	GetSystemState(ctx context.Context) (*domain.SystemState, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
