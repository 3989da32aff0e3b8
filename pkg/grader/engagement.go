package grader

import (
	domain "github.com/sellersage/listing-grader/pkg/types"
)

// Engagement thresholds and deductions.
const (
	engageMinReviews       = 10
	engageMinRating        = 4.5
	engageMinFavorites     = 50
	engageMinConversion    = 0.02
	engageReviewsPenalty   = 15
	engageRatingPenalty    = 15
	engageFavoritesPenalty = 10
	engageConvPenalty      = 15
)

// GradeEngagement scores buyer engagement signals: review volume,
// average rating, favorites, and a reviews-per-view conversion proxy.
// A brand-new listing with zero activity fails every check, which is
// the intended graceful degradation rather than an error.
func GradeEngagement(l *domain.ListingData) domain.GradeBreakdown {
	score := MaxScore
	var issues []string

	if l.Reviews.Count < engageMinReviews {
		score -= engageReviewsPenalty
		issues = append(issues, "Fewer than 10 reviews; social proof is thin")
	}

	if l.Reviews.Average < engageMinRating {
		score -= engageRatingPenalty
		issues = append(issues, "Average rating is below 4.5 stars")
	}

	if l.Favorites < engageMinFavorites {
		score -= engageFavoritesPenalty
		issues = append(issues, "Fewer than 50 favorites")
	}

	if l.ConversionProxy() < engageMinConversion {
		score -= engageConvPenalty
		issues = append(issues, "Low conversion rate: under 2% of views become reviews")
	}

	return result(score, engagementFeedback(score), issues)
}

func engagementFeedback(score int) string {
	switch {
	case score >= 90:
		return "Healthy engagement across reviews, favorites, and conversion."
	case score >= 70:
		return "Some engagement signals lag behind the listing's traffic."
	default:
		return "Engagement is weak; the listing is not converting its views."
	}
}
