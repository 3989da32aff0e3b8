package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Listing queries.
const (
	queryUpsertListing = `
		INSERT INTO listings (
			etsy_listing_id, shop_id, title, description,
			tags, images, price, currency, category,
			review_count, review_avg, favorites, views,
			first_seen_at, updated_at
		) VALUES (
			@etsy_listing_id, @shop_id, @title, @description,
			@tags, @images, @price, @currency, @category,
			@review_count, @review_avg, @favorites, @views,
			now(), now()
		)
		ON CONFLICT (etsy_listing_id) DO UPDATE SET
			shop_id      = EXCLUDED.shop_id,
			title        = EXCLUDED.title,
			description  = EXCLUDED.description,
			tags         = EXCLUDED.tags,
			images       = EXCLUDED.images,
			price        = EXCLUDED.price,
			currency     = EXCLUDED.currency,
			category     = EXCLUDED.category,
			review_count = EXCLUDED.review_count,
			review_avg   = EXCLUDED.review_avg,
			favorites    = EXCLUDED.favorites,
			views        = EXCLUDED.views,
			updated_at   = now()
		RETURNING id, first_seen_at, updated_at`

	queryGetListingByEtsyID = `
		SELECT id, etsy_listing_id, COALESCE(shop_id, ''), title, description,
			tags, COALESCE(images, '[]'), price, currency, category,
			review_count, review_avg, favorites, views,
			score, score_breakdown, first_seen_at, updated_at
		FROM listings
		WHERE etsy_listing_id = $1`

	queryGetListingByID = `
		SELECT id, etsy_listing_id, COALESCE(shop_id, ''), title, description,
			tags, COALESCE(images, '[]'), price, currency, category,
			review_count, review_avg, favorites, views,
			score, score_breakdown, first_seen_at, updated_at
		FROM listings
		WHERE id = $1`

	queryListListingsByShop = `
		SELECT id, etsy_listing_id, COALESCE(shop_id, ''), title, description,
			tags, COALESCE(images, '[]'), price, currency, category,
			review_count, review_avg, favorites, views,
			score, score_breakdown, first_seen_at, updated_at
		FROM listings
		WHERE shop_id = $1
		ORDER BY first_seen_at DESC`

	queryUpdateScore = `
		UPDATE listings SET
			score = $2,
			score_breakdown = $3,
			updated_at = now()
		WHERE id = $1`

	queryListUngradedListings = `
		SELECT id, etsy_listing_id, COALESCE(shop_id, ''), title, description,
			tags, COALESCE(images, '[]'), price, currency, category,
			review_count, review_avg, favorites, views,
			score, score_breakdown, first_seen_at, updated_at
		FROM listings
		WHERE score IS NULL
		ORDER BY first_seen_at DESC
		LIMIT $1`
)

// Grade history queries.
const (
	queryInsertGradeRecord = `
		INSERT INTO grade_records (listing_id, etsy_listing_id, score, overall, breakdown)
		VALUES (@listing_id, @etsy_listing_id, @score, @overall, @breakdown)
		RETURNING id, graded_at`

	queryListGradeRecords = `
		SELECT id, listing_id, etsy_listing_id, score, overall, breakdown, graded_at
		FROM grade_records
		WHERE listing_id = $1
		ORDER BY graded_at DESC
		LIMIT $2`
)

// Tracked listing queries.
const (
	queryCreateTracked = `
		INSERT INTO tracked_listings (
			etsy_listing_id, name, score_threshold, enabled, created_at, updated_at
		) VALUES (
			@etsy_listing_id, @name, @score_threshold, @enabled, now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetTracked = `
		SELECT id, etsy_listing_id, name, score_threshold, enabled,
			last_graded_at, created_at, updated_at
		FROM tracked_listings
		WHERE id = $1`

	queryListTrackedAll = `
		SELECT id, etsy_listing_id, name, score_threshold, enabled,
			last_graded_at, created_at, updated_at
		FROM tracked_listings
		ORDER BY created_at DESC`

	queryListTrackedEnabled = `
		SELECT id, etsy_listing_id, name, score_threshold, enabled,
			last_graded_at, created_at, updated_at
		FROM tracked_listings
		WHERE enabled = true
		ORDER BY created_at DESC`

	queryUpdateTracked = `
		UPDATE tracked_listings SET
			etsy_listing_id = @etsy_listing_id,
			name            = @name,
			score_threshold = @score_threshold,
			enabled         = @enabled,
			updated_at      = now()
		WHERE id = @id`

	queryDeleteTracked = `DELETE FROM tracked_listings WHERE id = $1`

	querySetTrackedEnabled = `
		UPDATE tracked_listings SET
			enabled = $2,
			updated_at = now()
		WHERE id = $1`

	queryUpdateTrackedLastGraded = `
		UPDATE tracked_listings SET last_graded_at = $2 WHERE id = $1`
)

// Alert queries.
const (
	queryCreateAlert = `
		INSERT INTO alerts (tracked_id, listing_id, score, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (tracked_id, listing_id) WHERE notified = false DO NOTHING
		RETURNING id, created_at`

	queryListPendingAlerts = `
		SELECT id, tracked_id, listing_id, score, notified, notified_at, created_at
		FROM alerts
		WHERE notified = false
		ORDER BY created_at DESC`

	queryListAlertsByTracked = `
		SELECT id, tracked_id, listing_id, score, notified, notified_at, created_at
		FROM alerts
		WHERE tracked_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	queryMarkAlertNotified = `
		UPDATE alerts SET
			notified = true,
			notified_at = now()
		WHERE id = $1`

	queryMarkAlertsNotified = `
		UPDATE alerts SET
			notified = true,
			notified_at = now()
		WHERE id = ANY($1)`

	queryHasRecentAlert = `
		SELECT EXISTS (
			SELECT 1 FROM alerts
			WHERE tracked_id = $1
			  AND listing_id = $2
			  AND notified = true
			  AND notified_at > $3
		)`

	queryInsertNotificationAttempt = `
		INSERT INTO notification_attempts (alert_id, succeeded, http_status, error_text)
		VALUES ($1, $2, $3, NULLIF($4, ''))`

	queryHasSuccessfulNotification = `
		SELECT EXISTS (
			SELECT 1 FROM notification_attempts
			WHERE alert_id = $1
			  AND succeeded = true
		)`
)

// System state query.
const queryGetSystemState = `
	SELECT
		(SELECT COUNT(*) FROM listings)                                          AS listings_total,
		(SELECT COUNT(*) FROM listings WHERE score IS NULL)                      AS listings_ungraded,
		(SELECT COUNT(*) FROM grade_records)                                     AS grades_total,
		(SELECT COUNT(*) FROM tracked_listings)                                  AS tracked_total,
		(SELECT COUNT(*) FROM tracked_listings WHERE enabled = true)             AS tracked_enabled,
		(SELECT COUNT(*) FROM alerts WHERE notified = false)                     AS alerts_pending,
		(SELECT COALESCE(AVG(score), 0) FROM listings WHERE score IS NOT NULL)   AS avg_score`

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`
)
