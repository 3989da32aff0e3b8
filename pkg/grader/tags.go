package grader

import (
	"strings"
	"unicode/utf8"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

// Tag bounds and deductions. Etsy allows 13 tags; fewer than 8 leaves
// search reach on the table.
const (
	tagsMinCount          = 8
	tagsMaxCount          = 13
	tagsMaxAvgLen         = 20
	tagsRelevanceDivisor  = 10.0
	tagsMinRelevance      = 0.8
	tagsCountPenalty      = 20
	tagsRelevancePenalty  = 10
	tagsUniquenessPenalty = 10
	tagsAvgLenPenalty     = 10
	tagsLongTailPenalty   = 10
	tagsBrandPenalty      = 5
)

// GradeTags scores a listing's tag set: count bounds, relevance and
// uniqueness ratios, average length, long-tail coverage, and a brand
// tag heuristic. An empty tag set degrades rather than errors.
func GradeTags(tags []string) domain.GradeBreakdown {
	score := MaxScore
	var issues []string

	n := len(tags)
	if n < tagsMinCount || n > tagsMaxCount {
		score -= tagsCountPenalty
		if n < tagsMinCount {
			issues = append(issues, "Too few tags: every unused tag slot is lost search reach")
		} else {
			issues = append(issues, "Too many tags for the marketplace limit")
		}
	}

	// Relevance is a placeholder heuristic: tag count over 10, capped at
	// 1.0. Real relevance needs category keyword data.
	relevance := float64(n) / tagsRelevanceDivisor
	if relevance > 1.0 {
		relevance = 1.0
	}
	if relevance < tagsMinRelevance {
		score -= tagsRelevancePenalty
		issues = append(issues, "Tag set looks too thin to cover relevant searches")
	}

	if uniquenessRatio(tags) < 1.0 {
		score -= tagsUniquenessPenalty
		issues = append(issues, "Duplicate tags waste tag slots")
	}

	if n > 0 && avgTagLength(tags) > tagsMaxAvgLen {
		score -= tagsAvgLenPenalty
		issues = append(issues, "Tags average over 20 characters; shorter tags match more queries")
	}

	if !hasLongTailTag(tags) {
		score -= tagsLongTailPenalty
		issues = append(issues, "No multi-word long-tail tags")
	}

	if !hasBrandTag(tags) {
		score -= tagsBrandPenalty
		issues = append(issues, "No brand or shop-name tag")
	}

	return result(score, tagsFeedback(score), issues)
}

// uniquenessRatio is distinct lowercase tags over total. An empty set
// counts as fully unique so the count issue is the only one raised for it.
func uniquenessRatio(tags []string) float64 {
	if len(tags) == 0 {
		return 1.0
	}
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		seen[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	return float64(len(seen)) / float64(len(tags))
}

func avgTagLength(tags []string) float64 {
	total := 0
	for _, t := range tags {
		total += utf8.RuneCountInString(t)
	}
	return float64(total) / float64(len(tags))
}

// hasLongTailTag reports whether any tag is a multi-word phrase.
func hasLongTailTag(tags []string) bool {
	for _, t := range tags {
		if strings.Contains(strings.TrimSpace(t), " ") {
			return true
		}
	}
	return false
}

// hasBrandTag is a simplified heuristic: a tag longer than 12 characters
// with no space is taken for a shop or brand name. Real detection would
// compare against the seller's shop name.
func hasBrandTag(tags []string) bool {
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if !strings.Contains(t, " ") && utf8.RuneCountInString(t) > 12 {
			return true
		}
	}
	return false
}

func tagsFeedback(score int) string {
	switch {
	case score >= 90:
		return "Full, varied tag set with good long-tail coverage."
	case score >= 70:
		return "Usable tag set, but slots or variety are being wasted."
	default:
		return "Tag set needs filling out before this listing can rank."
	}
}
