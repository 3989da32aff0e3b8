package shop

import (
	"math"

	"github.com/sellersage/listing-grader/pkg/grader"
	domain "github.com/sellersage/listing-grader/pkg/types"
)

// Smart pricing thresholds.
const (
	freeShipThreshold = 35.0
	freeShipNudgeFrom = 30.0
	bandLowFactor     = 0.5
	bandHighFactor    = 3.0
)

// SmartPricer suggests price adjustments using psychological endings,
// the free-shipping threshold, and the category's typical price band.
type SmartPricer struct {
	comparator *Comparator
}

// NewSmartPricer creates a SmartPricer sharing the comparator's
// benchmark tables.
func NewSmartPricer(c *Comparator) *SmartPricer {
	return &SmartPricer{comparator: c}
}

// Suggest returns a price suggestion for the listing. When the current
// price already satisfies every rule the suggestion equals the current
// price and the reason says so.
func (p *SmartPricer) Suggest(l *domain.ListingData) *domain.PriceSuggestion {
	bench := p.comparator.Benchmark(l.Category)
	median := (bench.TypicalPrice.Min + bench.TypicalPrice.Max) / 2

	suggestion := &domain.PriceSuggestion{
		ListingID:    l.EtsyListingID,
		CurrentPrice: l.Price,
	}

	switch {
	case l.Price <= 0:
		suggestion.SuggestedPrice = psychRound(median)
		suggestion.Reason = "Listing has no price; the category median is a starting point."
	case median > 0 && l.Price < median*bandLowFactor:
		suggestion.SuggestedPrice = psychRound(median * bandLowFactor)
		suggestion.Reason = "Price sits far below the category band; underpricing reads as low quality."
	case median > 0 && l.Price > median*bandHighFactor:
		suggestion.SuggestedPrice = psychRound(median * bandHighFactor)
		suggestion.Reason = "Price sits far above the category band for comparable items."
	case l.Price >= freeShipNudgeFrom && l.Price < freeShipThreshold:
		suggestion.SuggestedPrice = freeShipThreshold + 0.95
		suggestion.Reason = "A small increase clears the free-shipping threshold, which converts better than the discount."
	case !grader.IsPsychologicalPrice(l.Price):
		suggestion.SuggestedPrice = psychRound(l.Price)
		suggestion.Reason = "A .99 ending at the same price point converts measurably better."
	default:
		suggestion.SuggestedPrice = l.Price
		suggestion.Reason = "Price already follows the pricing rubric."
	}

	return suggestion
}

// psychRound converts a price to the nearest sensible .99 ending,
// never returning less than 0.99.
func psychRound(price float64) float64 {
	dollars := math.Floor(price)
	if price-dollars < 0.5 && dollars > 0 {
		dollars--
	}
	if dollars < 0 {
		dollars = 0
	}
	return dollars + 0.99
}
