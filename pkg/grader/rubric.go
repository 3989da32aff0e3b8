// Package grader implements the SEO rubric for marketplace listings:
// six per-dimension graders, a weighted aggregator, and issue and
// improvement synthesis. All functions are pure and total; sparse or
// malformed input degrades the score instead of failing.
package grader

import (
	"fmt"
	"math"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

// MaxScore is the ceiling for every dimension and the overall score.
const MaxScore = 100

// weightTolerance is the allowed drift when validating that weights sum to 1.0.
const weightTolerance = 1e-9

// Weights defines the relative importance of each rubric dimension.
type Weights struct {
	Title       float64 `yaml:"title"`
	Description float64 `yaml:"description"`
	Tags        float64 `yaml:"tags"`
	Images      float64 `yaml:"images"`
	Pricing     float64 `yaml:"pricing"`
	Engagement  float64 `yaml:"engagement"`
}

// DefaultWeights returns the default rubric weights.
func DefaultWeights() Weights {
	return Weights{
		Title:       0.20,
		Description: 0.25,
		Tags:        0.20,
		Images:      0.15,
		Pricing:     0.10,
		Engagement:  0.10,
	}
}

// Sum returns the total of all dimension weights.
func (w Weights) Sum() float64 {
	return w.Title + w.Description + w.Tags + w.Images + w.Pricing + w.Engagement
}

// Validate checks that the weights sum to 1.0 within tolerance.
func (w Weights) Validate() error {
	if diff := math.Abs(w.Sum() - 1.0); diff > weightTolerance {
		return fmt.Errorf("rubric weights must sum to 1.0, got %v", w.Sum())
	}
	return nil
}

// Grade letter constants, highest first.
const (
	GradeAPlus  domain.Grade = "A+"
	GradeA      domain.Grade = "A"
	GradeAMinus domain.Grade = "A-"
	GradeBPlus  domain.Grade = "B+"
	GradeB      domain.Grade = "B"
	GradeBMinus domain.Grade = "B-"
	GradeCPlus  domain.Grade = "C+"
	GradeC      domain.Grade = "C"
	GradeCMinus domain.Grade = "C-"
	GradeDPlus  domain.Grade = "D+"
	GradeD      domain.Grade = "D"
	GradeDMinus domain.Grade = "D-"
	GradeF      domain.Grade = "F"
)

// gradeBoundary maps an inclusive lower score bound to a letter grade.
type gradeBoundary struct {
	min   int
	grade domain.Grade
}

// gradeTable is ordered highest bound first. Bounds are inclusive, so
// ties at a boundary resolve toward the higher grade.
var gradeTable = []gradeBoundary{
	{97, GradeAPlus},
	{93, GradeA},
	{90, GradeAMinus},
	{87, GradeBPlus},
	{83, GradeB},
	{80, GradeBMinus},
	{77, GradeCPlus},
	{73, GradeC},
	{70, GradeCMinus},
	{67, GradeDPlus},
	{63, GradeD},
	{60, GradeDMinus},
}

// ScoreToGrade maps a 0-100 score to its letter grade.
func ScoreToGrade(score int) domain.Grade {
	for _, b := range gradeTable {
		if score >= b.min {
			return b.grade
		}
	}
	return GradeF
}

// clampScore bounds a raw score to [0, MaxScore].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// result builds a GradeBreakdown from a clamped score, feedback, and issues.
func result(score int, feedback string, issues []string) domain.GradeBreakdown {
	score = clampScore(score)
	return domain.GradeBreakdown{
		Grade:    ScoreToGrade(score),
		Score:    score,
		MaxScore: MaxScore,
		Feedback: feedback,
		Issues:   issues,
	}
}
