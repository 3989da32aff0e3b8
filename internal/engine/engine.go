// Package engine implements the core business logic loops: grading,
// shop comparison, tracked-listing refresh, and alert evaluation.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sellersage/listing-grader/internal/etsy"
	"github.com/sellersage/listing-grader/internal/metrics"
	"github.com/sellersage/listing-grader/internal/notify"
	"github.com/sellersage/listing-grader/internal/store"
	"github.com/sellersage/listing-grader/pkg/grader"
	"github.com/sellersage/listing-grader/pkg/shop"
	domain "github.com/sellersage/listing-grader/pkg/types"
)

const (
	defaultMaxCallsPerCycle = 50
	defaultHistoryLimit     = 20
	shopSampleLimit         = 25
)

// Engine orchestrates fetching, grading, persistence, and alerting.
type Engine struct {
	store    store.Store
	etsy     etsy.EtsyClient
	grader   *grader.Grader
	notifier notify.Notifier
	log      *slog.Logger

	health     *shop.HealthScorer
	comparator *shop.Comparator
	pricer     *shop.SmartPricer

	maxCallsPerCycle int
	staggerOffset    time.Duration
	alertCooldown    time.Duration
	reAlertsEnabled  bool
}

// NewEngine creates a new Engine with injected dependencies. Shop
// scoring components default to the built-in benchmark tables and
// weights unless overridden via options.
func NewEngine(
	s store.Store,
	ec etsy.EtsyClient,
	g *grader.Grader,
	n notify.Notifier,
	opts ...EngineOption,
) (*Engine, error) {
	health, err := shop.NewHealthScorer(shop.DefaultHealthWeights())
	if err != nil {
		return nil, fmt.Errorf("building health scorer: %w", err)
	}

	comparator := shop.NewComparator(shop.DefaultBenchmarks())

	eng := &Engine{
		store:            s,
		etsy:             ec,
		grader:           g,
		notifier:         n,
		log:              slog.Default(),
		health:           health,
		comparator:       comparator,
		pricer:           shop.NewSmartPricer(comparator),
		maxCallsPerCycle: defaultMaxCallsPerCycle,
		staggerOffset:    30 * time.Second,
		alertCooldown:    24 * time.Hour,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng, nil
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithComparator sets a comparator built from configured benchmarks.
func WithComparator(c *shop.Comparator) EngineOption {
	return func(e *Engine) {
		e.comparator = c
		e.pricer = shop.NewSmartPricer(c)
	}
}

// WithHealthScorer sets a custom shop health scorer.
func WithHealthScorer(h *shop.HealthScorer) EngineOption {
	return func(e *Engine) {
		e.health = h
	}
}

// WithStaggerOffset sets the delay between refreshing each tracked listing.
func WithStaggerOffset(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.staggerOffset = d
	}
}

// WithMaxCallsPerCycle caps Etsy API calls per refresh cycle.
func WithMaxCallsPerCycle(n int) EngineOption {
	return func(e *Engine) {
		e.maxCallsPerCycle = n
	}
}

// WithAlertCooldown sets the re-alert suppression window.
func WithAlertCooldown(d time.Duration, reAlertsEnabled bool) EngineOption {
	return func(e *Engine) {
		e.alertCooldown = d
		e.reAlertsEnabled = reAlertsEnabled
	}
}

// GradeSnapshot grades a caller-supplied listing snapshot without
// touching the store or the Etsy API. It never fails; sparse input
// degrades the score.
func (eng *Engine) GradeSnapshot(l *domain.ListingData) *domain.SEOGrade {
	grade := eng.grader.Grade(l)
	metrics.GradingTotal.Inc()
	metrics.GradingDistribution.Observe(float64(grade.Score))
	return grade
}

// GradeListingByID fetches a listing from Etsy, persists the snapshot,
// grades it, and records the grade in the listing's history.
func (eng *Engine) GradeListingByID(
	ctx context.Context,
	etsyListingID string,
) (*domain.SEOGrade, error) {
	listing, err := eng.etsy.GetListing(ctx, etsyListingID)
	if err != nil {
		metrics.GradingFailuresTotal.Inc()
		return nil, fmt.Errorf("fetching listing %s: %w", etsyListingID, err)
	}

	if err := eng.store.UpsertListing(ctx, listing); err != nil {
		metrics.GradingFailuresTotal.Inc()
		return nil, fmt.Errorf("upserting listing %s: %w", etsyListingID, err)
	}

	return eng.gradeAndPersist(ctx, listing)
}

// RegradeListing re-grades a listing from its stored snapshot without
// calling the Etsy API.
func (eng *Engine) RegradeListing(ctx context.Context, id string) (*domain.SEOGrade, error) {
	listing, err := eng.store.GetListingByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting listing %s: %w", id, err)
	}
	return eng.gradeAndPersist(ctx, listing)
}

// BulkGradeResult summarizes a bulk grading run.
type BulkGradeResult struct {
	Graded []BulkGradeItem `json:"graded"`
	Failed []string        `json:"failed,omitempty"`
}

// BulkGradeItem is one successfully graded listing in a bulk run.
type BulkGradeItem struct {
	EtsyListingID string       `json:"etsy_listing_id"`
	Score         int          `json:"score"`
	Overall       domain.Grade `json:"overall"`
}

// BulkGrade grades listings sequentially. A per-item failure is logged
// and collected; it never aborts the batch.
func (eng *Engine) BulkGrade(ctx context.Context, etsyListingIDs []string) (*BulkGradeResult, error) {
	result := &BulkGradeResult{}
	var errs []error

	for _, id := range etsyListingIDs {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		grade, err := eng.GradeListingByID(ctx, id)
		if err != nil {
			eng.log.Error("bulk grade item failed", "etsy_listing_id", id, "error", err)
			result.Failed = append(result.Failed, id)
			errs = append(errs, fmt.Errorf("grading %s: %w", id, err))
			continue
		}

		result.Graded = append(result.Graded, BulkGradeItem{
			EtsyListingID: id,
			Score:         grade.Score,
			Overall:       grade.Overall,
		})
	}

	return result, errors.Join(errs...)
}

// ShopHealth fetches a shop and a sample of its active listings, grades
// the sample to derive the average SEO score, and scores overall health.
func (eng *Engine) ShopHealth(ctx context.Context, shopID string) (*domain.ShopHealth, error) {
	m, err := eng.shopMetrics(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return eng.health.Score(*m), nil
}

// CompareShop ranks a shop against category benchmarks and competitor
// averages. A failed competitor fetch is logged and skipped; comparison
// proceeds with whatever competitors resolved.
func (eng *Engine) CompareShop(
	ctx context.Context,
	shopID string,
	competitorIDs []string,
) (*domain.ShopComparison, error) {
	subject, err := eng.shopMetrics(ctx, shopID)
	if err != nil {
		return nil, err
	}

	competitors := make([]domain.ShopMetrics, 0, len(competitorIDs))
	for _, id := range competitorIDs {
		comp, err := eng.etsy.GetShop(ctx, id)
		if err != nil {
			eng.log.Warn("competitor fetch failed, skipping", "shop_id", id, "error", err)
			continue
		}
		competitors = append(competitors, *comp)
	}

	metrics.ShopComparisonsTotal.Inc()
	return eng.comparator.Compare(*subject, competitors), nil
}

// SuggestPrice fetches a listing and runs the smart pricing engine.
func (eng *Engine) SuggestPrice(
	ctx context.Context,
	etsyListingID string,
) (*domain.PriceSuggestion, error) {
	listing, err := eng.etsy.GetListing(ctx, etsyListingID)
	if err != nil {
		return nil, fmt.Errorf("fetching listing %s: %w", etsyListingID, err)
	}
	return eng.pricer.Suggest(listing), nil
}

// shopMetrics assembles a ShopMetrics snapshot: the shop record from
// Etsy plus the average SEO score of a graded listing sample.
func (eng *Engine) shopMetrics(ctx context.Context, shopID string) (*domain.ShopMetrics, error) {
	m, err := eng.etsy.GetShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("fetching shop %s: %w", shopID, err)
	}

	listings, err := eng.etsy.ListShopListings(ctx, shopID, shopSampleLimit)
	if err != nil {
		// Degrade: health scoring proceeds with a zero SEO average.
		eng.log.Warn("shop listing sample failed", "shop_id", shopID, "error", err)
		return m, nil
	}

	if len(listings) > 0 {
		var sum int
		for i := range listings {
			sum += eng.grader.Grade(&listings[i]).Score
		}
		m.AvgSEOScore = float64(sum) / float64(len(listings))
	}

	return m, nil
}
