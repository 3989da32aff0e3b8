package grader

import (
	"strings"
	"unicode/utf8"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

// Description bounds and deductions.
const (
	descMinLen          = 200
	descMaxLen          = 5000
	descMinDensity      = 0.05
	descWordsMin        = 250
	descWordsMax        = 600
	descLengthPenalty   = 20
	descFormatPenalty   = 10
	descCTAPenalty      = 10
	descFeaturesPenalty = 10
	descWordsPenalty    = 5
)

// ctaPhrases are call-to-action phrases matched case-insensitively as
// substrings of the description.
var ctaPhrases = []string{
	"order now", "buy now", "shop now", "add to cart",
	"message me", "contact us", "order today", "don't wait",
}

// bulletMarkers are the characters and prefixes treated as list formatting.
var bulletMarkers = []string{"•", "- ", "* ", "✓"}

// GradeDescription scores a listing description: length bounds, keyword
// density against tags, structural formatting, a call to action, a
// feature list, and the word-count sweet spot.
func GradeDescription(description string, tags []string) domain.GradeBreakdown {
	score := MaxScore
	var issues []string

	length := utf8.RuneCountInString(description)
	if length < descMinLen || length > descMaxLen {
		score -= descLengthPenalty
		if length < descMinLen {
			issues = append(issues, "Description is too short to convert browsers")
		} else {
			issues = append(issues, "Description is longer than buyers will read")
		}
	}

	if keywordDensity(description, tags) < descMinDensity {
		score -= densityPenalty
		issues = append(issues, "Description keyword density is below 5% of your tags")
	}

	if !hasFormatting(description) {
		score -= descFormatPenalty
		issues = append(issues, "Description is a wall of text with no line breaks or bullets")
	}

	if !containsAnyPhrase(description, ctaPhrases) {
		score -= descCTAPenalty
		issues = append(issues, "Description has no call to action")
	}

	if !hasFeatureList(description) {
		score -= descFeaturesPenalty
		issues = append(issues, "Description lists no product features")
	}

	wc := len(words(description))
	if wc < descWordsMin || wc > descWordsMax {
		score -= descWordsPenalty
		issues = append(issues, "Description is outside the 250-600 word sweet spot")
	}

	return result(score, descFeedback(score), issues)
}

// hasFormatting reports whether the description uses line breaks or
// bullet markers.
func hasFormatting(description string) bool {
	if strings.Contains(description, "\n") {
		return true
	}
	for _, m := range bulletMarkers {
		if strings.Contains(description, m) {
			return true
		}
	}
	return false
}

// hasFeatureList treats two or more bulleted lines as a feature list.
func hasFeatureList(description string) bool {
	bullets := 0
	for _, line := range strings.Split(description, "\n") {
		trimmed := strings.TrimSpace(line)
		for _, m := range bulletMarkers {
			if strings.HasPrefix(trimmed, strings.TrimSpace(m)) {
				bullets++
				break
			}
		}
	}
	return bullets >= 2
}

func descFeedback(score int) string {
	switch {
	case score >= 90:
		return "Well-structured description with strong keyword coverage."
	case score >= 70:
		return "Decent description, but tighten formatting and keywords."
	default:
		return "Description needs restructuring to convert and rank."
	}
}
