package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

// RefreshResult summarizes one tracked-listing refresh cycle.
type RefreshResult struct {
	Refreshed     int `json:"refreshed"`
	Failed        int `json:"failed"`
	AlertsCreated int `json:"alerts_created"`
	Skipped       int `json:"skipped"`
}

// RefreshTracked re-fetches and re-grades every enabled tracked
// listing, creating alerts for scores below each listing's threshold,
// then dispatches pending alerts. API calls are staggered and capped
// per cycle; a per-listing failure never aborts the cycle.
func (eng *Engine) RefreshTracked(ctx context.Context) (*RefreshResult, error) {
	tracked, err := eng.store.ListTracked(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("listing tracked listings: %w", err)
	}

	result := &RefreshResult{}
	var errs []error

	for i := range tracked {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		if result.Refreshed+result.Failed >= eng.maxCallsPerCycle {
			result.Skipped = len(tracked) - i
			eng.log.Warn("refresh cycle call budget exhausted",
				"budget", eng.maxCallsPerCycle, "skipped", result.Skipped)
			break
		}

		if i > 0 && eng.staggerOffset > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(eng.staggerOffset):
			}
		}

		created, err := eng.refreshOne(ctx, &tracked[i])
		if err != nil {
			eng.log.Error("tracked refresh failed",
				"tracked_id", tracked[i].ID,
				"etsy_listing_id", tracked[i].EtsyListingID,
				"error", err)
			result.Failed++
			errs = append(errs, fmt.Errorf("refreshing %s: %w", tracked[i].ID, err))
			continue
		}

		result.Refreshed++
		if created {
			result.AlertsCreated++
		}
	}

	if err := eng.ProcessAlerts(ctx); err != nil {
		errs = append(errs, err)
	}

	return result, errors.Join(errs...)
}

// refreshOne grades a single tracked listing and creates an alert when
// the score falls below the threshold. Reports whether an alert was
// created.
func (eng *Engine) refreshOne(ctx context.Context, t *domain.TrackedListing) (bool, error) {
	grade, err := eng.GradeListingByID(ctx, t.EtsyListingID)
	if err != nil {
		return false, err
	}

	if err := eng.store.UpdateTrackedLastGraded(ctx, t.ID, time.Now().UTC()); err != nil {
		eng.log.Warn("updating last graded time failed", "tracked_id", t.ID, "error", err)
	}

	if grade.Score >= t.ScoreThreshold {
		return false, nil
	}

	listing, err := eng.store.GetListing(ctx, t.EtsyListingID)
	if err != nil {
		return false, fmt.Errorf("getting listing %s: %w", t.EtsyListingID, err)
	}

	// Suppress repeat alerts inside the cooldown window. With re-alerts
	// disabled, any prior alert for the pair suppresses forever.
	window := eng.alertCooldown
	if !eng.reAlertsEnabled {
		window = 10 * 365 * 24 * time.Hour
	}
	recent, err := eng.store.HasRecentAlert(ctx, t.ID, listing.ID, window)
	if err != nil {
		return false, fmt.Errorf("checking recent alerts: %w", err)
	}
	if recent {
		eng.log.Debug("alert suppressed by cooldown",
			"tracked_id", t.ID, "score", grade.Score)
		return false, nil
	}

	alert := &domain.Alert{
		TrackedID: t.ID,
		ListingID: listing.ID,
		Score:     grade.Score,
	}
	if err := eng.store.CreateAlert(ctx, alert); err != nil {
		return false, fmt.Errorf("creating alert: %w", err)
	}

	eng.log.Info("grade drop alert created",
		"tracked_id", t.ID,
		"etsy_listing_id", t.EtsyListingID,
		"score", grade.Score,
		"threshold", t.ScoreThreshold,
	)

	return true, nil
}
