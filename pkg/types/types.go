// Package domain defines the core business types for the listing grader.
package domain

import (
	"encoding/json"
	"time"
)

// Category represents the marketplace category of a shop or listing.
type Category string

// Category constants.
const (
	CategoryJewelry       Category = "jewelry"
	CategoryHomeDecor     Category = "home_decor"
	CategoryClothing      Category = "clothing"
	CategoryArt           Category = "art"
	CategoryCraftSupplies Category = "craft_supplies"
	CategoryToys          Category = "toys"
	CategoryOther         Category = "other"
)

// Dimension identifies one axis of the SEO rubric.
type Dimension string

// Dimension constants.
const (
	DimensionTitle       Dimension = "title"
	DimensionDescription Dimension = "description"
	DimensionTags        Dimension = "tags"
	DimensionImages      Dimension = "images"
	DimensionPricing     Dimension = "pricing"
	DimensionEngagement  Dimension = "engagement"
)

// Dimensions lists every rubric dimension in display order.
var Dimensions = []Dimension{
	DimensionTitle,
	DimensionDescription,
	DimensionTags,
	DimensionImages,
	DimensionPricing,
	DimensionEngagement,
}

// Grade is a letter grade derived from a 0-100 score.
type Grade string

// Severity classifies how urgent an issue is.
type Severity string

// Severity constants.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Effort estimates how much work a suggested change requires.
type Effort string

// Effort constants.
const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

// ListingImage is a single listing photo with optional alt text.
type ListingImage struct {
	URL     string `json:"url"`
	AltText string `json:"alt_text,omitempty"`
}

// ReviewStats holds review count and average rating for a listing.
type ReviewStats struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// ListingData is an immutable snapshot of a marketplace listing,
// the input to grading. The grader never mutates it.
type ListingData struct {
	ID            string `json:"id,omitempty"      db:"id"`
	EtsyListingID string `json:"etsy_listing_id"   db:"etsy_listing_id"`
	ShopID        string `json:"shop_id,omitempty" db:"shop_id"`

	Title       string         `json:"title"       db:"title"`
	Description string         `json:"description" db:"description"`
	Tags        []string       `json:"tags"        db:"tags"`
	Images      []ListingImage `json:"images"      db:"images"`

	Price    float64  `json:"price"    db:"price"`
	Currency string   `json:"currency" db:"currency"`
	Category Category `json:"category" db:"category"`

	Reviews   ReviewStats `json:"reviews"   db:"reviews"`
	Favorites int         `json:"favorites" db:"favorites"`
	Views     int         `json:"views"     db:"views"`

	// Latest persisted grade, if any.
	Score          *int            `json:"score,omitempty"           db:"score"`
	ScoreBreakdown json.RawMessage `json:"score_breakdown,omitempty" db:"score_breakdown"`

	FirstSeenAt time.Time `json:"first_seen_at,omitzero" db:"first_seen_at"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"    db:"updated_at"`
}

// ConversionProxy returns reviews-per-view as a rough conversion rate.
// Returns 0 when there are no views.
func (l *ListingData) ConversionProxy() float64 {
	if l.Views <= 0 {
		return 0
	}
	return float64(l.Reviews.Count) / float64(l.Views)
}

// GradeBreakdown is the result for one rubric dimension.
type GradeBreakdown struct {
	Grade    Grade    `json:"grade"`
	Score    int      `json:"score"`
	MaxScore int      `json:"max_score"`
	Feedback string   `json:"feedback"`
	Issues   []string `json:"issues,omitempty"`
}

// Breakdown groups the per-dimension results of a grading call.
type Breakdown struct {
	Title       GradeBreakdown `json:"title"`
	Description GradeBreakdown `json:"description"`
	Tags        GradeBreakdown `json:"tags"`
	Images      GradeBreakdown `json:"images"`
	Pricing     GradeBreakdown `json:"pricing"`
	Engagement  GradeBreakdown `json:"engagement"`
}

// ByDimension returns the breakdown entry for a dimension.
func (b *Breakdown) ByDimension(d Dimension) *GradeBreakdown {
	switch d {
	case DimensionTitle:
		return &b.Title
	case DimensionDescription:
		return &b.Description
	case DimensionTags:
		return &b.Tags
	case DimensionImages:
		return &b.Images
	case DimensionPricing:
		return &b.Pricing
	case DimensionEngagement:
		return &b.Engagement
	}
	return nil
}

// SEOIssue is a specific rubric failure surfaced to the user.
type SEOIssue struct {
	Category    Dimension `json:"category"`
	Severity    Severity  `json:"severity"`
	Issue       string    `json:"issue"`
	Description string    `json:"description"`
	Fix         string    `json:"fix"`
	Impact      string    `json:"impact"`
}

// SEOImprovement is an actionable suggestion for a low-scoring dimension.
type SEOImprovement struct {
	Category            Dimension `json:"category"`
	Priority            Severity  `json:"priority"`
	Suggestion          string    `json:"suggestion"`
	Description         string    `json:"description"`
	ExpectedImprovement string    `json:"expected_improvement"`
	Effort              Effort    `json:"effort"`
}

// SEOGrade is the aggregate result of grading one listing.
// The caller owns it after return; the grader holds no reference.
type SEOGrade struct {
	Overall      Grade            `json:"overall"`
	Score        int              `json:"score"`
	Breakdown    Breakdown        `json:"breakdown"`
	Issues       []SEOIssue       `json:"issues,omitempty"`
	Improvements []SEOImprovement `json:"improvements,omitempty"`
	History      []GradeRecord    `json:"history,omitempty"`
}

// GradeRecord is one persisted grading of a listing.
type GradeRecord struct {
	ID            string          `json:"id"              db:"id"`
	ListingID     string          `json:"listing_id"      db:"listing_id"`
	EtsyListingID string          `json:"etsy_listing_id" db:"etsy_listing_id"`
	Score         int             `json:"score"           db:"score"`
	Overall       Grade           `json:"overall"         db:"overall"`
	Breakdown     json.RawMessage `json:"breakdown,omitempty" db:"breakdown"`
	GradedAt      time.Time       `json:"graded_at"       db:"graded_at"`
}

// ShopMetrics is a snapshot of shop-level performance used by the
// health scorer and comparator.
type ShopMetrics struct {
	ShopID         string   `json:"shop_id"         db:"shop_id"`
	Name           string   `json:"name"            db:"name"`
	Category       Category `json:"category"        db:"category"`
	ActiveListings int      `json:"active_listings" db:"active_listings"`
	MonthlySales   int      `json:"monthly_sales"   db:"monthly_sales"`
	MonthlyRevenue float64  `json:"monthly_revenue" db:"monthly_revenue"`
	ConversionRate float64  `json:"conversion_rate" db:"conversion_rate"`
	AvgRating      float64  `json:"avg_rating"      db:"avg_rating"`
	ReviewCount    int      `json:"review_count"    db:"review_count"`
	AvgSEOScore    float64  `json:"avg_seo_score"   db:"avg_seo_score"`
}

// PercentileRankings positions a shop's metrics between category
// benchmark bounds, 0-100 per metric.
type PercentileRankings struct {
	Sales      float64 `json:"sales"`
	Revenue    float64 `json:"revenue"`
	Conversion float64 `json:"conversion"`
	SEOScore   float64 `json:"seo_score"`
	Rating     float64 `json:"rating"`
}

// Gap quantifies where a shop trails the competitor average on a metric.
type Gap struct {
	Metric        string  `json:"metric"`
	Subject       float64 `json:"subject"`
	CompetitorAvg float64 `json:"competitor_avg"`
	ShortfallPct  float64 `json:"shortfall_pct"`
}

// ShopRecommendation is an actionable shop-level suggestion derived
// from low percentile rankings.
type ShopRecommendation struct {
	Metric      string   `json:"metric"`
	Priority    Severity `json:"priority"`
	Suggestion  string   `json:"suggestion"`
	Description string   `json:"description"`
	Effort      Effort   `json:"effort"`
}

// ShopHealth is the aggregate result of scoring one shop.
type ShopHealth struct {
	ShopID          string               `json:"shop_id"`
	Overall         Grade                `json:"overall"`
	Score           int                  `json:"score"`
	Issues          []SEOIssue           `json:"issues,omitempty"`
	Recommendations []ShopRecommendation `json:"recommendations,omitempty"`
}

// ShopComparison is the result of comparing one shop against competitors.
type ShopComparison struct {
	ShopID          string               `json:"shop_id"`
	Category        Category             `json:"category"`
	Rankings        PercentileRankings   `json:"percentile_rankings"`
	Gaps            []Gap                `json:"gaps,omitempty"`
	Recommendations []ShopRecommendation `json:"recommendations,omitempty"`
	CompetitorCount int                  `json:"competitor_count"`
}

// PriceSuggestion is the smart pricing engine's output for one listing.
type PriceSuggestion struct {
	ListingID      string  `json:"listing_id"`
	CurrentPrice   float64 `json:"current_price"`
	SuggestedPrice float64 `json:"suggested_price"`
	Reason         string  `json:"reason"`
}

// TrackedListing is a listing under periodic re-grading with an alert
// threshold, the grading analog of a saved search.
type TrackedListing struct {
	ID             string     `json:"id"                       db:"id"`
	EtsyListingID  string     `json:"etsy_listing_id"          db:"etsy_listing_id"`
	Name           string     `json:"name"                     db:"name"`
	ScoreThreshold int        `json:"score_threshold"          db:"score_threshold"`
	Enabled        bool       `json:"enabled"                  db:"enabled"`
	LastGradedAt   *time.Time `json:"last_graded_at,omitempty" db:"last_graded_at"`
	CreatedAt      time.Time  `json:"created_at"               db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"               db:"updated_at"`
}

// Alert represents a triggered grade-drop notification.
type Alert struct {
	ID         string     `json:"id"                    db:"id"`
	TrackedID  string     `json:"tracked_id"            db:"tracked_id"`
	ListingID  string     `json:"listing_id"            db:"listing_id"`
	Score      int        `json:"score"                 db:"score"`
	Notified   bool       `json:"notified"              db:"notified"`
	NotifiedAt *time.Time `json:"notified_at,omitempty" db:"notified_at"`
	CreatedAt  time.Time  `json:"created_at"            db:"created_at"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// SystemState holds a precomputed snapshot of aggregate system metrics.
type SystemState struct {
	ListingsTotal    int     `json:"listings_total"    db:"listings_total"`
	ListingsUngraded int     `json:"listings_ungraded" db:"listings_ungraded"`
	GradesTotal      int     `json:"grades_total"      db:"grades_total"`
	TrackedTotal     int     `json:"tracked_total"     db:"tracked_total"`
	TrackedEnabled   int     `json:"tracked_enabled"   db:"tracked_enabled"`
	AlertsPending    int     `json:"alerts_pending"    db:"alerts_pending"`
	AvgScore         float64 `json:"avg_score"         db:"avg_score"`
}

// BenchmarkRange bounds one metric for percentile interpolation.
type BenchmarkRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// CategoryBenchmark holds per-category industry benchmark bounds.
type CategoryBenchmark struct {
	Category     Category       `json:"category"      yaml:"category"`
	Sales        BenchmarkRange `json:"sales"         yaml:"sales"`
	Revenue      BenchmarkRange `json:"revenue"       yaml:"revenue"`
	Conversion   BenchmarkRange `json:"conversion"    yaml:"conversion"`
	SEOScore     BenchmarkRange `json:"seo_score"     yaml:"seo_score"`
	Rating       BenchmarkRange `json:"rating"        yaml:"rating"`
	TypicalPrice BenchmarkRange `json:"typical_price" yaml:"typical_price"`
}
