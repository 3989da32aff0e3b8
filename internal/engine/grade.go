package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sellersage/listing-grader/internal/metrics"
	"github.com/sellersage/listing-grader/internal/store"
	domain "github.com/sellersage/listing-grader/pkg/types"
)

// gradeAndPersist runs the rubric over a listing already present in the
// store, saves the score on the listing row, appends a grade history
// record, and returns the grade with recent history attached.
func (eng *Engine) gradeAndPersist(
	ctx context.Context,
	listing *domain.ListingData,
) (*domain.SEOGrade, error) {
	start := time.Now()

	grade := eng.grader.Grade(listing)

	breakdown, err := json.Marshal(grade.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("marshaling breakdown: %w", err)
	}

	if err := eng.store.UpdateScore(ctx, listing.ID, grade.Score, breakdown); err != nil {
		metrics.GradingFailuresTotal.Inc()
		return nil, fmt.Errorf("updating score for listing %s: %w", listing.ID, err)
	}

	record := &domain.GradeRecord{
		ListingID:     listing.ID,
		EtsyListingID: listing.EtsyListingID,
		Score:         grade.Score,
		Overall:       grade.Overall,
		Breakdown:     breakdown,
		GradedAt:      time.Now().UTC(),
	}
	if err := eng.store.InsertGradeRecord(ctx, record); err != nil {
		metrics.GradingFailuresTotal.Inc()
		return nil, fmt.Errorf("recording grade for listing %s: %w", listing.ID, err)
	}

	history, err := eng.store.ListGradeRecords(ctx, listing.ID, defaultHistoryLimit)
	if err != nil {
		// History is decorative on the response; the grade is already
		// persisted, so log and return without it.
		eng.log.Warn("listing grade history unavailable", "listing_id", listing.ID, "error", err)
	} else {
		grade.History = history
	}

	metrics.GradingTotal.Inc()
	metrics.GradingDistribution.Observe(float64(grade.Score))
	metrics.GradingDuration.Observe(time.Since(start).Seconds())

	eng.log.Debug("listing graded",
		"listing_id", listing.ID,
		"etsy_listing_id", listing.EtsyListingID,
		"score", grade.Score,
		"overall", grade.Overall,
	)

	return grade, nil
}

// RescoreAll re-grades every stored listing from its persisted snapshot.
// Used after rubric or weight changes; makes no Etsy API calls. Returns
// the number of listings rescored.
func (eng *Engine) RescoreAll(ctx context.Context, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 200
	}

	var rescored int
	offset := 0
	for {
		listings, total, err := eng.store.ListListings(ctx, &store.ListingQuery{
			Limit:  batchSize,
			Offset: offset,
		})
		if err != nil {
			return rescored, fmt.Errorf("listing page at offset %d: %w", offset, err)
		}
		if len(listings) == 0 {
			return rescored, nil
		}

		for i := range listings {
			if ctx.Err() != nil {
				return rescored, ctx.Err()
			}
			if _, err := eng.gradeAndPersist(ctx, &listings[i]); err != nil {
				eng.log.Error("rescore failed", "listing_id", listings[i].ID, "error", err)
				continue
			}
			rescored++
		}

		offset += len(listings)
		if offset >= total {
			return rescored, nil
		}
	}
}
