package grader

import (
	domain "github.com/sellersage/listing-grader/pkg/types"
)

// Severity thresholds: dimension scores under these bounds escalate.
const (
	severityCriticalBelow = 50
	severityHighBelow     = 70
	severityMediumBelow   = 80
	improvementBelow      = 90
)

// SeverityForScore derives issue severity from a dimension score.
func SeverityForScore(score int) domain.Severity {
	switch {
	case score < severityCriticalBelow:
		return domain.SeverityCritical
	case score < severityHighBelow:
		return domain.SeverityHigh
	case score < severityMediumBelow:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// SynthesizeIssues converts every dimension's raw issue strings into
// SEOIssue records with severity from the dimension score and static
// fix and impact text per dimension. Stateless mapping, no history.
func SynthesizeIssues(b *domain.Breakdown) []domain.SEOIssue {
	var out []domain.SEOIssue
	for _, dim := range domain.Dimensions {
		db := b.ByDimension(dim)
		severity := SeverityForScore(db.Score)
		for _, issue := range db.Issues {
			out = append(out, domain.SEOIssue{
				Category:    dim,
				Severity:    severity,
				Issue:       issue,
				Description: db.Feedback,
				Fix:         fixFor(dim),
				Impact:      impactFor(dim),
			})
		}
	}
	return out
}

// SynthesizeImprovements emits one improvement per dimension scoring
// under 90, with priority mirroring issue severity.
func SynthesizeImprovements(b *domain.Breakdown) []domain.SEOImprovement {
	var out []domain.SEOImprovement
	for _, dim := range domain.Dimensions {
		db := b.ByDimension(dim)
		if db.Score >= improvementBelow {
			continue
		}
		out = append(out, domain.SEOImprovement{
			Category:            dim,
			Priority:            SeverityForScore(db.Score),
			Suggestion:          suggestionFor(dim),
			Description:         db.Feedback,
			ExpectedImprovement: expectedFor(dim),
			Effort:              effortFor(dim),
		})
	}
	return out
}

// The per-dimension lookup tables below enumerate every Dimension
// explicitly; a new constant returns empty text here, which the tests
// catch, rather than silently reusing another dimension's copy.

func fixFor(d domain.Dimension) string {
	switch d {
	case domain.DimensionTitle:
		return "Rewrite the title to 60-100 characters, front-loading your strongest tag keywords."
	case domain.DimensionDescription:
		return "Restructure the description with a bulleted feature list and a closing call to action."
	case domain.DimensionTags:
		return "Fill all 13 tag slots with unique, mostly multi-word tags under 20 characters."
	case domain.DimensionImages:
		return "Upload 5-10 photos from different angles and add alt text to each."
	case domain.DimensionPricing:
		return "Reprice to a .99 or .95 ending and consider the 35+ free-shipping band."
	case domain.DimensionEngagement:
		return "Follow up with past buyers for reviews and refresh the listing to regain views."
	}
	return ""
}

func impactFor(d domain.Dimension) string {
	switch d {
	case domain.DimensionTitle:
		return "Titles drive the largest share of search placement."
	case domain.DimensionDescription:
		return "Descriptions convert clicks into sales and feed relevancy."
	case domain.DimensionTags:
		return "Every unused or duplicate tag is a search query you can't match."
	case domain.DimensionImages:
		return "Galleries decide whether a click becomes a favorite or a sale."
	case domain.DimensionPricing:
		return "Price position changes conversion more than any copy edit."
	case domain.DimensionEngagement:
		return "Engagement compounds: listings that convert get shown more."
	}
	return ""
}

func suggestionFor(d domain.Dimension) string {
	switch d {
	case domain.DimensionTitle:
		return "Tune the title toward the keyword sweet spot"
	case domain.DimensionDescription:
		return "Restructure the description for scanning buyers"
	case domain.DimensionTags:
		return "Rebuild the tag set for coverage"
	case domain.DimensionImages:
		return "Expand the photo gallery"
	case domain.DimensionPricing:
		return "Adjust price positioning"
	case domain.DimensionEngagement:
		return "Work the review and favorites flywheel"
	}
	return ""
}

func expectedFor(d domain.Dimension) string {
	switch d {
	case domain.DimensionTitle:
		return "Noticeably better search impressions within a few weeks."
	case domain.DimensionDescription:
		return "Higher click-to-sale conversion on existing traffic."
	case domain.DimensionTags:
		return "Broader query coverage and more long-tail impressions."
	case domain.DimensionImages:
		return "More favorites and fewer bounces from the listing page."
	case domain.DimensionPricing:
		return "Improved conversion at the same traffic level."
	case domain.DimensionEngagement:
		return "Gradual ranking gains as engagement accumulates."
	}
	return ""
}

func effortFor(d domain.Dimension) domain.Effort {
	switch d {
	case domain.DimensionTitle:
		return domain.EffortLow
	case domain.DimensionDescription:
		return domain.EffortMedium
	case domain.DimensionTags:
		return domain.EffortLow
	case domain.DimensionImages:
		return domain.EffortHigh
	case domain.DimensionPricing:
		return domain.EffortLow
	case domain.DimensionEngagement:
		return domain.EffortHigh
	}
	return domain.EffortMedium
}
