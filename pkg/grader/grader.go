package grader

import (
	"math"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

// Grader applies the full rubric to listing snapshots. It is stateless
// and safe for concurrent use; construct one and share it, or build one
// per call, identically.
type Grader struct {
	weights Weights
}

// New creates a Grader after validating that the weights sum to 1.0.
func New(w Weights) (*Grader, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Grader{weights: w}, nil
}

// Weights returns the rubric weights in use.
func (g *Grader) Weights() Weights {
	return g.weights
}

// Grade runs every dimension grader, aggregates the weighted overall
// score, and synthesizes issues and improvements. It is total: any
// snapshot, however sparse, produces a result.
func (g *Grader) Grade(l *domain.ListingData) *domain.SEOGrade {
	b := domain.Breakdown{
		Title:       GradeTitle(l.Title, l.Tags),
		Description: GradeDescription(l.Description, l.Tags),
		Tags:        GradeTags(l.Tags),
		Images:      GradeImages(l.Images),
		Pricing:     GradePricing(l.Price),
		Engagement:  GradeEngagement(l),
	}

	overall := g.OverallScore(&b)

	return &domain.SEOGrade{
		Overall:      ScoreToGrade(overall),
		Score:        overall,
		Breakdown:    b,
		Issues:       SynthesizeIssues(&b),
		Improvements: SynthesizeImprovements(&b),
	}
}

// OverallScore combines the six dimension scores by the configured
// weights, rounded to the nearest integer and clamped to [0, 100].
func (g *Grader) OverallScore(b *domain.Breakdown) int {
	total := float64(b.Title.Score)*g.weights.Title +
		float64(b.Description.Score)*g.weights.Description +
		float64(b.Tags.Score)*g.weights.Tags +
		float64(b.Images.Score)*g.weights.Images +
		float64(b.Pricing.Score)*g.weights.Pricing +
		float64(b.Engagement.Score)*g.weights.Engagement

	return clampScore(int(math.Round(total)))
}
