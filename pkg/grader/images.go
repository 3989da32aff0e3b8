package grader

import (
	"strings"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

// Image bounds and deductions.
const (
	imagesMinCount       = 5
	imagesMaxCount       = 10
	imagesVarietyMin     = 3
	imagesCountPenalty   = 20
	imagesAltPenalty     = 15
	imagesVarietyPenalty = 10
	imagesQualityPenalty = 20
)

// GradeImages scores a listing's photo set: count bounds, alt text
// presence, and placeholder variety and quality checks. The variety and
// quality checks are acknowledged simplifications; meaningful versions
// would need actual image analysis.
func GradeImages(images []domain.ListingImage) domain.GradeBreakdown {
	score := MaxScore
	var issues []string

	n := len(images)
	if n < imagesMinCount || n > imagesMaxCount {
		score -= imagesCountPenalty
		if n < imagesMinCount {
			issues = append(issues, "Fewer than 5 photos; buyers want to see every angle")
		} else {
			issues = append(issues, "More than 10 photos dilutes the gallery")
		}
	}

	if !hasAltText(images) {
		score -= imagesAltPenalty
		issues = append(issues, "No photo has alt text for image search")
	}

	// Variety placeholder: at least 3 photos stands in for multiple angles.
	if n < imagesVarietyMin {
		score -= imagesVarietyPenalty
		issues = append(issues, "Not enough photos to show product variety")
	}

	// Quality placeholder: an empty gallery is the only detectable failure.
	if n == 0 {
		score -= imagesQualityPenalty
		issues = append(issues, "Listing has no photos at all")
	}

	return result(score, imagesFeedback(score), issues)
}

// hasAltText reports whether any image carries non-blank alt text.
func hasAltText(images []domain.ListingImage) bool {
	for _, img := range images {
		if strings.TrimSpace(img.AltText) != "" {
			return true
		}
	}
	return false
}

func imagesFeedback(score int) string {
	switch {
	case score >= 90:
		return "Full gallery with accessible alt text."
	case score >= 70:
		return "Gallery works but is missing photos or alt text."
	default:
		return "Photo set is too thin to sell the product."
	}
}
