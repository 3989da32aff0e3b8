package grader

import (
	"strings"
	"unicode"
	"unicode/utf8"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

// Title length bounds and deductions.
const (
	titleMinLen        = 30
	titleMaxLen        = 140
	titleSweetSpotMin  = 60
	titleSweetSpotMax  = 100
	titleMinDensity    = 0.10
	titleLengthPenalty = 20
	densityPenalty     = 15
	emotionalPenalty   = 10
	sweetSpotPenalty   = 10
	brandPenalty       = 5
)

// emotionalWords is the fixed lexicon of buyer-appeal words. Matching
// is exact per word: "handmade" in a title counts, "handcrafted" does not
// unless listed here.
var emotionalWords = lexicon(
	"beautiful", "handmade", "unique", "gorgeous", "stunning",
	"perfect", "lovely", "charming", "elegant", "rustic",
	"vintage", "custom", "personalized", "adorable", "cozy",
)

// GradeTitle scores a listing title against the rubric: length bounds,
// keyword density versus the listing tags, emotional word presence,
// brand signal, and the character-count sweet spot. Empty input is not
// an error; it simply fails every check.
func GradeTitle(title string, tags []string) domain.GradeBreakdown {
	score := MaxScore
	var issues []string

	length := utf8.RuneCountInString(title)
	if length < titleMinLen || length > titleMaxLen {
		score -= titleLengthPenalty
		if length < titleMinLen {
			issues = append(issues, "Title is too short to surface in search")
		} else {
			issues = append(issues, "Title exceeds the maximum search-friendly length")
		}
	}

	if keywordDensity(title, tags) < titleMinDensity {
		score -= densityPenalty
		issues = append(issues, "Title keyword density is below 10% of your tags")
	}

	if !containsAnyWord(title, emotionalWords) {
		score -= emotionalPenalty
		issues = append(issues, "Title has no emotional appeal words")
	}

	if !hasBrandSignal(title) {
		score -= brandPenalty
		issues = append(issues, "Title carries no brand or maker signal")
	}

	if length < titleSweetSpotMin || length > titleSweetSpotMax {
		score -= sweetSpotPenalty
		issues = append(issues, "Title is outside the 60-100 character sweet spot")
	}

	return result(score, titleFeedback(score), issues)
}

// hasBrandSignal is a simplified heuristic: a capitalized word beyond
// sentence position stands in for a brand or maker name. Real brand
// detection would need a shop-name lookup.
func hasBrandSignal(title string) bool {
	for i, f := range strings.Fields(title) {
		if i == 0 {
			continue
		}
		r, _ := utf8.DecodeRuneInString(f)
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func titleFeedback(score int) string {
	switch {
	case score >= 90:
		return "Strong title with good length and keyword coverage."
	case score >= 70:
		return "Solid title, but a few rubric checks missed."
	default:
		return "Title needs rework to perform in search."
	}
}
