package engine

import (
	"context"
	"fmt"

	"github.com/sellersage/listing-grader/internal/metrics"
	"github.com/sellersage/listing-grader/internal/notify"
	domain "github.com/sellersage/listing-grader/pkg/types"
)

const (
	batchThreshold = 5
	maxTopIssues   = 3
)

// ProcessAlerts sends notifications for pending alerts, then marks them
// as notified. Alerts are grouped by tracked listing; a tracked listing
// with 5+ pending alerts gets one batch notification. Failed sends are
// recorded and left pending for the next cycle.
func (eng *Engine) ProcessAlerts(ctx context.Context) error {
	pending, err := eng.store.ListPendingAlerts(ctx)
	if err != nil {
		return fmt.Errorf("listing pending alerts: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	grouped := groupByTracked(pending)

	for trackedID, alerts := range grouped {
		tracked, err := eng.store.GetTracked(ctx, trackedID)
		if err != nil {
			continue // tracked listing may have been deleted
		}

		if err := eng.sendAlerts(ctx, tracked, alerts); err != nil {
			eng.log.Error("alert delivery failed",
				"tracked_id", trackedID, "count", len(alerts), "error", err)
			metrics.NotificationFailuresTotal.Inc()
			continue
		}
	}

	return nil
}

func groupByTracked(alerts []domain.Alert) map[string][]domain.Alert {
	grouped := make(map[string][]domain.Alert)
	for _, a := range alerts {
		grouped[a.TrackedID] = append(grouped[a.TrackedID], a)
	}
	return grouped
}

func (eng *Engine) sendAlerts(
	ctx context.Context,
	tracked *domain.TrackedListing,
	alerts []domain.Alert,
) error {
	if len(alerts) >= batchThreshold {
		return eng.sendBatch(ctx, tracked, alerts)
	}

	for i := range alerts {
		if err := eng.sendSingle(ctx, tracked, &alerts[i]); err != nil {
			return err
		}
	}

	return nil
}

func (eng *Engine) sendSingle(
	ctx context.Context,
	tracked *domain.TrackedListing,
	alert *domain.Alert,
) error {
	listing, err := eng.store.GetListingByID(ctx, alert.ListingID)
	if err != nil {
		return fmt.Errorf("getting listing %s: %w", alert.ListingID, err)
	}

	payload := eng.buildAlertPayload(tracked, listing, alert.Score)

	if err := eng.notifier.SendAlert(ctx, payload); err != nil {
		_ = eng.store.InsertNotificationAttempt(ctx, alert.ID, false, 0, err.Error())
		return fmt.Errorf("sending alert: %w", err)
	}

	if err := eng.store.InsertNotificationAttempt(ctx, alert.ID, true, 0, ""); err != nil {
		eng.log.Warn("recording notification attempt failed", "alert_id", alert.ID, "error", err)
	}

	metrics.AlertsFiredTotal.Inc()

	return eng.store.MarkAlertNotified(ctx, alert.ID)
}

func (eng *Engine) sendBatch(
	ctx context.Context,
	tracked *domain.TrackedListing,
	alerts []domain.Alert,
) error {
	payloads := make([]notify.AlertPayload, 0, len(alerts))
	alertIDs := make([]string, 0, len(alerts))

	for i := range alerts {
		listing, err := eng.store.GetListingByID(ctx, alerts[i].ListingID)
		if err != nil {
			continue // listing may have been removed
		}
		payloads = append(payloads, *eng.buildAlertPayload(tracked, listing, alerts[i].Score))
		alertIDs = append(alertIDs, alerts[i].ID)
	}

	if len(payloads) == 0 {
		return nil
	}

	if err := eng.notifier.SendBatchAlert(ctx, payloads, tracked.Name); err != nil {
		return fmt.Errorf("sending batch alert: %w", err)
	}

	metrics.AlertsFiredTotal.Add(float64(len(alertIDs)))

	return eng.store.MarkAlertsNotified(ctx, alertIDs)
}

// buildAlertPayload re-runs the rubric on the stored snapshot to
// surface the top issues driving the low score.
func (eng *Engine) buildAlertPayload(
	tracked *domain.TrackedListing,
	listing *domain.ListingData,
	score int,
) *notify.AlertPayload {
	grade := eng.grader.Grade(listing)

	issues := make([]string, 0, maxTopIssues)
	for _, iss := range grade.Issues {
		if len(issues) == maxTopIssues {
			break
		}
		issues = append(issues, iss.Issue)
	}

	var imageURL string
	if len(listing.Images) > 0 {
		imageURL = listing.Images[0].URL
	}

	return &notify.AlertPayload{
		TrackedName:  tracked.Name,
		ListingTitle: listing.Title,
		ListingURL:   fmt.Sprintf("https://www.etsy.com/listing/%s", listing.EtsyListingID),
		ImageURL:     imageURL,
		Score:        score,
		Grade:        string(grade.Overall),
		Threshold:    tracked.ScoreThreshold,
		TopIssues:    issues,
	}
}
