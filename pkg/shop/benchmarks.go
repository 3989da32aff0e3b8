// Package shop implements shop-level scoring: a health scorer, a
// competitor comparator with percentile rankings against category
// benchmarks, and a smart pricing engine. Like the listing grader, all
// functions are pure and total over their inputs; data acquisition
// lives behind interfaces elsewhere.
package shop

import (
	domain "github.com/sellersage/listing-grader/pkg/types"
)

// DefaultBenchmarks returns the built-in per-category benchmark tables.
// Bounds are coarse industry figures for percentile interpolation, not
// live market data; deployments can override them in config.
func DefaultBenchmarks() []domain.CategoryBenchmark {
	return []domain.CategoryBenchmark{
		{
			Category:     domain.CategoryJewelry,
			Sales:        domain.BenchmarkRange{Min: 0, Max: 400},
			Revenue:      domain.BenchmarkRange{Min: 0, Max: 12000},
			Conversion:   domain.BenchmarkRange{Min: 0, Max: 0.05},
			SEOScore:     domain.BenchmarkRange{Min: 0, Max: 100},
			Rating:       domain.BenchmarkRange{Min: 3.0, Max: 5.0},
			TypicalPrice: domain.BenchmarkRange{Min: 15, Max: 120},
		},
		{
			Category:     domain.CategoryHomeDecor,
			Sales:        domain.BenchmarkRange{Min: 0, Max: 250},
			Revenue:      domain.BenchmarkRange{Min: 0, Max: 15000},
			Conversion:   domain.BenchmarkRange{Min: 0, Max: 0.04},
			SEOScore:     domain.BenchmarkRange{Min: 0, Max: 100},
			Rating:       domain.BenchmarkRange{Min: 3.0, Max: 5.0},
			TypicalPrice: domain.BenchmarkRange{Min: 25, Max: 200},
		},
		{
			Category:     domain.CategoryClothing,
			Sales:        domain.BenchmarkRange{Min: 0, Max: 300},
			Revenue:      domain.BenchmarkRange{Min: 0, Max: 14000},
			Conversion:   domain.BenchmarkRange{Min: 0, Max: 0.035},
			SEOScore:     domain.BenchmarkRange{Min: 0, Max: 100},
			Rating:       domain.BenchmarkRange{Min: 3.0, Max: 5.0},
			TypicalPrice: domain.BenchmarkRange{Min: 20, Max: 150},
		},
		{
			Category:     domain.CategoryArt,
			Sales:        domain.BenchmarkRange{Min: 0, Max: 150},
			Revenue:      domain.BenchmarkRange{Min: 0, Max: 10000},
			Conversion:   domain.BenchmarkRange{Min: 0, Max: 0.03},
			SEOScore:     domain.BenchmarkRange{Min: 0, Max: 100},
			Rating:       domain.BenchmarkRange{Min: 3.0, Max: 5.0},
			TypicalPrice: domain.BenchmarkRange{Min: 20, Max: 400},
		},
		{
			Category:     domain.CategoryCraftSupplies,
			Sales:        domain.BenchmarkRange{Min: 0, Max: 600},
			Revenue:      domain.BenchmarkRange{Min: 0, Max: 9000},
			Conversion:   domain.BenchmarkRange{Min: 0, Max: 0.06},
			SEOScore:     domain.BenchmarkRange{Min: 0, Max: 100},
			Rating:       domain.BenchmarkRange{Min: 3.0, Max: 5.0},
			TypicalPrice: domain.BenchmarkRange{Min: 3, Max: 50},
		},
		{
			Category:     domain.CategoryToys,
			Sales:        domain.BenchmarkRange{Min: 0, Max: 200},
			Revenue:      domain.BenchmarkRange{Min: 0, Max: 8000},
			Conversion:   domain.BenchmarkRange{Min: 0, Max: 0.04},
			SEOScore:     domain.BenchmarkRange{Min: 0, Max: 100},
			Rating:       domain.BenchmarkRange{Min: 3.0, Max: 5.0},
			TypicalPrice: domain.BenchmarkRange{Min: 15, Max: 100},
		},
		{
			Category:     domain.CategoryOther,
			Sales:        domain.BenchmarkRange{Min: 0, Max: 250},
			Revenue:      domain.BenchmarkRange{Min: 0, Max: 10000},
			Conversion:   domain.BenchmarkRange{Min: 0, Max: 0.04},
			SEOScore:     domain.BenchmarkRange{Min: 0, Max: 100},
			Rating:       domain.BenchmarkRange{Min: 3.0, Max: 5.0},
			TypicalPrice: domain.BenchmarkRange{Min: 10, Max: 150},
		},
	}
}

// percentile linearly interpolates val between the benchmark bounds,
// clamped to [0, 100].
func percentile(val float64, r domain.BenchmarkRange) float64 {
	if r.Max <= r.Min {
		return 50 // degenerate range, neutral
	}
	p := (val - r.Min) / (r.Max - r.Min) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
