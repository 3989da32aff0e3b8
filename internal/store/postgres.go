package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertListing inserts or updates a listing by etsy_listing_id.
func (s *PostgresStore) UpsertListing(ctx context.Context, l *domain.ListingData) error {
	imagesJSON, err := json.Marshal(l.Images)
	if err != nil {
		return fmt.Errorf("marshaling images: %w", err)
	}

	args := pgx.NamedArgs{
		"etsy_listing_id": l.EtsyListingID,
		"shop_id":         l.ShopID,
		"title":           l.Title,
		"description":     l.Description,
		"tags":            l.Tags,
		"images":          imagesJSON,
		"price":           l.Price,
		"currency":        l.Currency,
		"category":        string(l.Category),
		"review_count":    l.Reviews.Count,
		"review_avg":      l.Reviews.Average,
		"favorites":       l.Favorites,
		"views":           l.Views,
	}

	return s.pool.QueryRow(ctx, queryUpsertListing, args).Scan(
		&l.ID, &l.FirstSeenAt, &l.UpdatedAt,
	)
}

// GetListing retrieves a listing by its Etsy listing ID.
func (s *PostgresStore) GetListing(
	ctx context.Context,
	etsyListingID string,
) (*domain.ListingData, error) {
	l := &domain.ListingData{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListingByEtsyID, etsyListingID), l); err != nil {
		return nil, err
	}
	return l, nil
}

// GetListingByID retrieves a listing by its internal UUID.
func (s *PostgresStore) GetListingByID(ctx context.Context, id string) (*domain.ListingData, error) {
	l := &domain.ListingData{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListingByID, id), l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListListings queries listings with optional filters, returning results and total count.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	opts *ListingQuery,
) ([]domain.ListingData, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	// Get total count.
	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	// Get data rows.
	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	listings, err := collectListings(rows)
	if err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

// ListListingsByShop returns all listings for a shop, newest first.
func (s *PostgresStore) ListListingsByShop(
	ctx context.Context,
	shopID string,
) ([]domain.ListingData, error) {
	rows, err := s.pool.Query(ctx, queryListListingsByShop, shopID)
	if err != nil {
		return nil, fmt.Errorf("querying shop listings: %w", err)
	}
	defer rows.Close()

	return collectListings(rows)
}

// UpdateScore updates the latest score and breakdown for a listing.
func (s *PostgresStore) UpdateScore(
	ctx context.Context,
	id string,
	score int,
	breakdown json.RawMessage,
) error {
	_, err := s.pool.Exec(ctx, queryUpdateScore, id, score, breakdown)
	if err != nil {
		return fmt.Errorf("updating score: %w", err)
	}
	return nil
}

// ListUngradedListings returns listings that have never been graded.
func (s *PostgresStore) ListUngradedListings(
	ctx context.Context,
	limit int,
) ([]domain.ListingData, error) {
	rows, err := s.pool.Query(ctx, queryListUngradedListings, limit)
	if err != nil {
		return nil, fmt.Errorf("querying ungraded listings: %w", err)
	}
	defer rows.Close()

	return collectListings(rows)
}

// InsertGradeRecord appends a grading result to a listing's history.
func (s *PostgresStore) InsertGradeRecord(ctx context.Context, r *domain.GradeRecord) error {
	args := pgx.NamedArgs{
		"listing_id":      r.ListingID,
		"etsy_listing_id": r.EtsyListingID,
		"score":           r.Score,
		"overall":         string(r.Overall),
		"breakdown":       r.Breakdown,
	}

	return s.pool.QueryRow(ctx, queryInsertGradeRecord, args).Scan(&r.ID, &r.GradedAt)
}

// ListGradeRecords returns a listing's grade history, newest first.
func (s *PostgresStore) ListGradeRecords(
	ctx context.Context,
	listingID string,
	limit int,
) ([]domain.GradeRecord, error) {
	rows, err := s.pool.Query(ctx, queryListGradeRecords, listingID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying grade records: %w", err)
	}
	defer rows.Close()

	var records []domain.GradeRecord
	for rows.Next() {
		var r domain.GradeRecord
		if err := rows.Scan(
			&r.ID, &r.ListingID, &r.EtsyListingID, &r.Score,
			&r.Overall, &r.Breakdown, &r.GradedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning grade record: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// CreateTracked inserts a new tracked listing.
func (s *PostgresStore) CreateTracked(ctx context.Context, t *domain.TrackedListing) error {
	args := pgx.NamedArgs{
		"etsy_listing_id": t.EtsyListingID,
		"name":            t.Name,
		"score_threshold": t.ScoreThreshold,
		"enabled":         t.Enabled,
	}

	return s.pool.QueryRow(ctx, queryCreateTracked, args).Scan(
		&t.ID, &t.CreatedAt, &t.UpdatedAt,
	)
}

// GetTracked retrieves a tracked listing by its ID.
func (s *PostgresStore) GetTracked(ctx context.Context, id string) (*domain.TrackedListing, error) {
	t := &domain.TrackedListing{}
	err := s.pool.QueryRow(ctx, queryGetTracked, id).Scan(
		&t.ID, &t.EtsyListingID, &t.Name, &t.ScoreThreshold, &t.Enabled,
		&t.LastGradedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListTracked returns all tracked listings, optionally filtered to enabled only.
func (s *PostgresStore) ListTracked(
	ctx context.Context,
	enabledOnly bool,
) ([]domain.TrackedListing, error) {
	query := queryListTrackedAll
	if enabledOnly {
		query = queryListTrackedEnabled
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying tracked listings: %w", err)
	}
	defer rows.Close()

	var tracked []domain.TrackedListing
	for rows.Next() {
		var t domain.TrackedListing
		if err := rows.Scan(
			&t.ID, &t.EtsyListingID, &t.Name, &t.ScoreThreshold, &t.Enabled,
			&t.LastGradedAt, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning tracked listing: %w", err)
		}
		tracked = append(tracked, t)
	}

	return tracked, rows.Err()
}

// UpdateTracked updates an existing tracked listing.
func (s *PostgresStore) UpdateTracked(ctx context.Context, t *domain.TrackedListing) error {
	args := pgx.NamedArgs{
		"id":              t.ID,
		"etsy_listing_id": t.EtsyListingID,
		"name":            t.Name,
		"score_threshold": t.ScoreThreshold,
		"enabled":         t.Enabled,
	}

	_, err := s.pool.Exec(ctx, queryUpdateTracked, args)
	if err != nil {
		return fmt.Errorf("updating tracked listing: %w", err)
	}
	return nil
}

// DeleteTracked removes a tracked listing by its ID.
func (s *PostgresStore) DeleteTracked(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, queryDeleteTracked, id)
	if err != nil {
		return fmt.Errorf("deleting tracked listing: %w", err)
	}
	return nil
}

// SetTrackedEnabled enables or disables a tracked listing.
func (s *PostgresStore) SetTrackedEnabled(ctx context.Context, id string, enabled bool) error {
	_, err := s.pool.Exec(ctx, querySetTrackedEnabled, id, enabled)
	if err != nil {
		return fmt.Errorf("setting tracked enabled: %w", err)
	}
	return nil
}

// UpdateTrackedLastGraded sets the last_graded_at timestamp for a tracked listing.
func (s *PostgresStore) UpdateTrackedLastGraded(
	ctx context.Context,
	id string,
	t time.Time,
) error {
	_, err := s.pool.Exec(ctx, queryUpdateTrackedLastGraded, id, t)
	if err != nil {
		return fmt.Errorf("updating tracked last_graded_at: %w", err)
	}
	return nil
}

// CreateAlert inserts a new alert, silently ignoring duplicates.
func (s *PostgresStore) CreateAlert(ctx context.Context, a *domain.Alert) error {
	err := s.pool.QueryRow(ctx, queryCreateAlert,
		a.TrackedID, a.ListingID, a.Score,
	).Scan(&a.ID, &a.CreatedAt)

	// ON CONFLICT DO NOTHING returns no rows — treat as success.
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	return err
}

// ListPendingAlerts returns all un-notified alerts.
func (s *PostgresStore) ListPendingAlerts(ctx context.Context) ([]domain.Alert, error) {
	return s.queryAlerts(ctx, queryListPendingAlerts)
}

// ListAlertsByTracked returns alerts for a specific tracked listing.
func (s *PostgresStore) ListAlertsByTracked(
	ctx context.Context,
	trackedID string,
	limit int,
) ([]domain.Alert, error) {
	return s.queryAlerts(ctx, queryListAlertsByTracked, trackedID, limit)
}

// MarkAlertNotified marks a single alert as notified.
func (s *PostgresStore) MarkAlertNotified(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, queryMarkAlertNotified, id)
	if err != nil {
		return fmt.Errorf("marking alert notified: %w", err)
	}
	return nil
}

// MarkAlertsNotified marks multiple alerts as notified.
func (s *PostgresStore) MarkAlertsNotified(ctx context.Context, ids []string) error {
	_, err := s.pool.Exec(ctx, queryMarkAlertsNotified, ids)
	if err != nil {
		return fmt.Errorf("marking alerts notified: %w", err)
	}
	return nil
}

// HasRecentAlert returns true if a notified alert for the same (tracked, listing)
// pair exists within the given cooldown window.
func (s *PostgresStore) HasRecentAlert(
	ctx context.Context,
	trackedID, listingID string,
	cooldown time.Duration,
) (bool, error) {
	cutoff := time.Now().Add(-cooldown)
	var exists bool
	if err := s.pool.QueryRow(ctx, queryHasRecentAlert, trackedID, listingID, cutoff).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking recent alert: %w", err)
	}
	return exists, nil
}

// InsertNotificationAttempt records the outcome of a notification send attempt.
func (s *PostgresStore) InsertNotificationAttempt(
	ctx context.Context,
	alertID string,
	succeeded bool,
	httpStatus int,
	errText string,
) error {
	_, err := s.pool.Exec(ctx, queryInsertNotificationAttempt, alertID, succeeded, httpStatus, errText)
	if err != nil {
		return fmt.Errorf("inserting notification attempt: %w", err)
	}
	return nil
}

// HasSuccessfulNotification returns true if at least one successful notification
// attempt exists for the given alert.
func (s *PostgresStore) HasSuccessfulNotification(ctx context.Context, alertID string) (bool, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, queryHasSuccessfulNotification, alertID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking successful notification: %w", err)
	}
	return exists, nil
}

// GetSystemState returns a snapshot of aggregate system metrics in one round trip.
func (s *PostgresStore) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	st := &domain.SystemState{}
	err := s.pool.QueryRow(ctx, queryGetSystemState).Scan(
		&st.ListingsTotal, &st.ListingsUngraded, &st.GradesTotal,
		&st.TrackedTotal, &st.TrackedEnabled, &st.AlertsPending, &st.AvgScore,
	)
	if err != nil {
		return nil, fmt.Errorf("querying system state: %w", err)
	}
	return st, nil
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks any 'running' job rows older than olderThan as 'crashed',
// then deletes all rows older than 30 days. Returns the number of rows marked as crashed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// queryAlerts is a helper for alert queries.
func (s *PostgresStore) queryAlerts(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Alert, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := rows.Scan(
			&a.ID, &a.TrackedID, &a.ListingID, &a.Score,
			&a.Notified, &a.NotifiedAt, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, rows.Err()
}

// collectListings drains listing rows into a slice.
func collectListings(rows pgx.Rows) ([]domain.ListingData, error) {
	var listings []domain.ListingData
	for rows.Next() {
		var l domain.ListingData
		if err := scanListing(rows, &l); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanListing scans a full listing row. Images are stored as JSONB and
// decoded after the scan.
func scanListing(row scannable, l *domain.ListingData) error {
	var imagesJSON []byte
	if err := row.Scan(
		&l.ID, &l.EtsyListingID, &l.ShopID, &l.Title, &l.Description,
		&l.Tags, &imagesJSON, &l.Price, &l.Currency, &l.Category,
		&l.Reviews.Count, &l.Reviews.Average, &l.Favorites, &l.Views,
		&l.Score, &l.ScoreBreakdown, &l.FirstSeenAt, &l.UpdatedAt,
	); err != nil {
		return err
	}

	if err := json.Unmarshal(imagesJSON, &l.Images); err != nil {
		return fmt.Errorf("unmarshaling listing images: %w", err)
	}

	return nil
}
