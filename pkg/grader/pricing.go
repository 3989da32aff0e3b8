package grader

import (
	"math"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

// Pricing thresholds and deductions.
const (
	pricingBandMax         = 1000.0
	pricingFreeShipMin     = 35.0
	pricingPsychPenalty    = 15
	pricingBandPenalty     = 20
	pricingFreeShipPenalty = 10
)

// GradePricing scores a listing price: psychological ending (.99/.95),
// a competitive band placeholder, and the free-shipping threshold. The
// band check stands in for a real competitor price comparison.
func GradePricing(price float64) domain.GradeBreakdown {
	score := MaxScore
	var issues []string

	if !IsPsychologicalPrice(price) {
		score -= pricingPsychPenalty
		issues = append(issues, "Price does not use a .99 or .95 ending")
	}

	if price <= 0 || price >= pricingBandMax {
		score -= pricingBandPenalty
		issues = append(issues, "Price is outside the competitive band for handmade goods")
	}

	if price < pricingFreeShipMin {
		score -= pricingFreeShipPenalty
		issues = append(issues, "Price is below the free-shipping threshold")
	}

	return result(score, pricingFeedback(score), issues)
}

// IsPsychologicalPrice reports whether the price ends in .99 or .95.
// 19.99 qualifies; 20.00 does not.
func IsPsychologicalPrice(price float64) bool {
	cents := int(math.Round(price*100)) % 100
	return cents == 99 || cents == 95
}

func pricingFeedback(score int) string {
	switch {
	case score >= 90:
		return "Price is positioned well for conversion."
	case score >= 70:
		return "Price works but leaves conversion levers unused."
	default:
		return "Price positioning is hurting this listing."
	}
}
