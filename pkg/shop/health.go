package shop

import (
	"fmt"
	"math"

	"github.com/sellersage/listing-grader/pkg/grader"
	domain "github.com/sellersage/listing-grader/pkg/types"
)

// HealthWeights defines the relative importance of each shop health factor.
type HealthWeights struct {
	SEO        float64 `yaml:"seo"`
	Sales      float64 `yaml:"sales"`
	Conversion float64 `yaml:"conversion"`
	Reviews    float64 `yaml:"reviews"`
	Listings   float64 `yaml:"listings"`
}

// DefaultHealthWeights returns the default shop health weights.
func DefaultHealthWeights() HealthWeights {
	return HealthWeights{
		SEO:        0.30,
		Sales:      0.20,
		Conversion: 0.20,
		Reviews:    0.15,
		Listings:   0.15,
	}
}

// Sum returns the total of all health weights.
func (w HealthWeights) Sum() float64 {
	return w.SEO + w.Sales + w.Conversion + w.Reviews + w.Listings
}

// Validate checks that the weights sum to 1.0 within tolerance.
func (w HealthWeights) Validate() error {
	if diff := math.Abs(w.Sum() - 1.0); diff > 1e-9 {
		return fmt.Errorf("health weights must sum to 1.0, got %v", w.Sum())
	}
	return nil
}

// HealthScorer computes a shop-level composite score from a metrics
// snapshot. Stateless; safe for concurrent use.
type HealthScorer struct {
	weights HealthWeights
}

// NewHealthScorer creates a HealthScorer after validating the weights.
func NewHealthScorer(w HealthWeights) (*HealthScorer, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &HealthScorer{weights: w}, nil
}

// Score computes the weighted shop health composite, its letter grade,
// and recommendations for components scoring under 70.
func (s *HealthScorer) Score(m domain.ShopMetrics) *domain.ShopHealth {
	seo := m.AvgSEOScore
	sales := salesComponent(m.MonthlySales)
	conversion := conversionComponent(m.ConversionRate)
	reviews := reviewsComponent(m.ReviewCount, m.AvgRating)
	listings := listingsComponent(m.ActiveListings)

	total := seo*s.weights.SEO +
		sales*s.weights.Sales +
		conversion*s.weights.Conversion +
		reviews*s.weights.Reviews +
		listings*s.weights.Listings

	score := int(math.Round(total))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return &domain.ShopHealth{
		ShopID:          m.ShopID,
		Overall:         grader.ScoreToGrade(score),
		Score:           score,
		Recommendations: healthRecommendations(seo, sales, conversion, reviews, listings),
	}
}

// salesComponent maps monthly sales volume to a 0-100 score.
func salesComponent(monthlySales int) float64 {
	switch {
	case monthlySales >= 100:
		return 100
	case monthlySales >= 50:
		return 80
	case monthlySales >= 20:
		return 60
	case monthlySales >= 5:
		return 40
	default:
		return 20
	}
}

// conversionComponent maps conversion rate to a 0-100 score.
func conversionComponent(rate float64) float64 {
	switch {
	case rate >= 0.05:
		return 100
	case rate >= 0.03:
		return 80
	case rate >= 0.02:
		return 60
	case rate >= 0.01:
		return 40
	default:
		return 20
	}
}

// reviewsComponent averages a volume score and a rating score.
func reviewsComponent(count int, avgRating float64) float64 {
	var volume float64
	switch {
	case count >= 500:
		volume = 100
	case count >= 100:
		volume = 80
	case count >= 20:
		volume = 50
	default:
		volume = 20
	}

	var rating float64
	switch {
	case avgRating >= 4.8:
		rating = 100
	case avgRating >= 4.5:
		rating = 80
	case avgRating >= 4.0:
		rating = 50
	default:
		rating = 10
	}

	return (volume + rating) / 2
}

// listingsComponent rewards a stocked shop.
func listingsComponent(active int) float64 {
	switch {
	case active >= 50:
		return 100
	case active >= 25:
		return 80
	case active >= 10:
		return 60
	case active >= 1:
		return 40
	default:
		return 0
	}
}

const healthComponentFloor = 70.0

// healthRecommendations emits one recommendation per component under 70.
func healthRecommendations(seo, sales, conversion, reviews, listings float64) []domain.ShopRecommendation {
	var recs []domain.ShopRecommendation

	appendRec := func(ok bool, metric, suggestion string, effort domain.Effort) {
		if ok {
			return
		}
		recs = append(recs, domain.ShopRecommendation{
			Metric:     metric,
			Priority:   domain.SeverityMedium,
			Suggestion: suggestion,
			Effort:     effort,
		})
	}

	appendRec(seo >= healthComponentFloor, "seo_score",
		"Grade every active listing and fix the lowest scores first", domain.EffortMedium)
	appendRec(sales >= healthComponentFloor, "sales",
		"Promote best sellers and fill gaps in the catalog", domain.EffortHigh)
	appendRec(conversion >= healthComponentFloor, "conversion",
		"Revisit pricing and lead photos on high-traffic listings", domain.EffortMedium)
	appendRec(reviews >= healthComponentFloor, "reviews",
		"Follow up with recent buyers to grow review volume", domain.EffortLow)
	appendRec(listings >= healthComponentFloor, "listings",
		"List more products; sparse shops rank and convert worse", domain.EffortHigh)

	return recs
}
