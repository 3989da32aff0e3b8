package shop

import (
	domain "github.com/sellersage/listing-grader/pkg/types"
)

// Gap margins: a gap is recorded only when the subject trails the
// competitor average by more than these fractions.
const (
	gapMarginSales      = 0.30
	gapMarginRevenue    = 0.30
	gapMarginConversion = 0.20
	gapMarginSEO        = 0.20
)

// Recommendation thresholds on percentile rankings.
const (
	recThresholdSEO        = 50.0
	recThresholdSales      = 40.0
	recThresholdConversion = 40.0
	recThresholdRating     = 50.0
	recUrgentBelow         = 25.0
)

// Comparator ranks a shop against category benchmarks and competitor
// averages. It holds only immutable benchmark tables and is safe for
// concurrent use.
type Comparator struct {
	benchmarks map[domain.Category]domain.CategoryBenchmark
}

// NewComparator creates a Comparator over the given benchmark tables.
// Categories without a table fall back to the "other" entry.
func NewComparator(benchmarks []domain.CategoryBenchmark) *Comparator {
	m := make(map[domain.Category]domain.CategoryBenchmark, len(benchmarks))
	for _, b := range benchmarks {
		m[b.Category] = b
	}
	return &Comparator{benchmarks: m}
}

// Benchmark returns the table for a category, falling back to "other".
func (c *Comparator) Benchmark(cat domain.Category) domain.CategoryBenchmark {
	if b, ok := c.benchmarks[cat]; ok {
		return b
	}
	return c.benchmarks[domain.CategoryOther]
}

// Compare ranks the subject shop against its category benchmarks,
// derives gaps versus the competitor averages, and synthesizes
// recommendations from low rankings. Competitors may be empty, in which
// case only rankings and ranking-based recommendations are produced.
func (c *Comparator) Compare(
	subject domain.ShopMetrics,
	competitors []domain.ShopMetrics,
) *domain.ShopComparison {
	bench := c.Benchmark(subject.Category)

	rankings := domain.PercentileRankings{
		Sales:      percentile(float64(subject.MonthlySales), bench.Sales),
		Revenue:    percentile(subject.MonthlyRevenue, bench.Revenue),
		Conversion: percentile(subject.ConversionRate, bench.Conversion),
		SEOScore:   percentile(subject.AvgSEOScore, bench.SEOScore),
		Rating:     percentile(subject.AvgRating, bench.Rating),
	}

	return &domain.ShopComparison{
		ShopID:          subject.ShopID,
		Category:        subject.Category,
		Rankings:        rankings,
		Gaps:            computeGaps(subject, competitors),
		Recommendations: rankingRecommendations(rankings),
		CompetitorCount: len(competitors),
	}
}

// computeGaps finds metrics where the subject trails the competitor
// average by more than the per-metric margin.
func computeGaps(subject domain.ShopMetrics, competitors []domain.ShopMetrics) []domain.Gap {
	if len(competitors) == 0 {
		return nil
	}

	n := float64(len(competitors))
	var sales, revenue, conversion, seo float64
	for _, comp := range competitors {
		sales += float64(comp.MonthlySales)
		revenue += comp.MonthlyRevenue
		conversion += comp.ConversionRate
		seo += comp.AvgSEOScore
	}

	var gaps []domain.Gap
	appendGap := func(metric string, subjectVal, avg, margin float64) {
		if avg <= 0 || subjectVal >= avg*(1-margin) {
			return
		}
		gaps = append(gaps, domain.Gap{
			Metric:        metric,
			Subject:       subjectVal,
			CompetitorAvg: avg,
			ShortfallPct:  (avg - subjectVal) / avg * 100,
		})
	}

	appendGap("sales", float64(subject.MonthlySales), sales/n, gapMarginSales)
	appendGap("revenue", subject.MonthlyRevenue, revenue/n, gapMarginRevenue)
	appendGap("conversion", subject.ConversionRate, conversion/n, gapMarginConversion)
	appendGap("seo_score", subject.AvgSEOScore, seo/n, gapMarginSEO)

	return gaps
}

// rankingRecommendations emits one recommendation per ranking below its
// threshold, escalating priority for rankings in the bottom quartile.
func rankingRecommendations(r domain.PercentileRankings) []domain.ShopRecommendation {
	var recs []domain.ShopRecommendation

	appendRec := func(metric string, ranking, threshold float64, suggestion, description string, effort domain.Effort) {
		if ranking >= threshold {
			return
		}
		priority := domain.SeverityMedium
		if ranking < recUrgentBelow {
			priority = domain.SeverityHigh
		}
		recs = append(recs, domain.ShopRecommendation{
			Metric:      metric,
			Priority:    priority,
			Suggestion:  suggestion,
			Description: description,
			Effort:      effort,
		})
	}

	appendRec("seo_score", r.SEOScore, recThresholdSEO,
		"Raise listing SEO quality across the shop",
		"Average listing SEO score ranks in the bottom half of the category; grade and fix the worst listings first.",
		domain.EffortMedium)
	appendRec("sales", r.Sales, recThresholdSales,
		"Grow sales volume",
		"Monthly sales rank low for the category; broaden the catalog or promote best sellers.",
		domain.EffortHigh)
	appendRec("conversion", r.Conversion, recThresholdConversion,
		"Improve listing conversion",
		"Views are not turning into sales at the category rate; review pricing and photos.",
		domain.EffortMedium)
	appendRec("rating", r.Rating, recThresholdRating,
		"Lift the average review rating",
		"Ratings trail the category; address recurring complaints and follow up with buyers.",
		domain.EffortHigh)

	return recs
}
