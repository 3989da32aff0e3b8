package client

import (
	"context"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

// BulkGradeItem is one successfully graded listing in a bulk response.
type BulkGradeItem struct {
	EtsyListingID string       `json:"etsy_listing_id"`
	Score         int          `json:"score"`
	Overall       domain.Grade `json:"overall"`
}

// BulkGradeResponse summarizes a bulk grading request.
type BulkGradeResponse struct {
	Graded []BulkGradeItem `json:"graded"`
	Failed []string        `json:"failed,omitempty"`
}

// GradeSnapshot grades an inline listing snapshot without persisting it.
func (c *Client) GradeSnapshot(
	ctx context.Context,
	l *domain.ListingData,
) (*domain.SEOGrade, error) {
	var grade domain.SEOGrade
	if err := c.post(ctx, "/api/v1/grade", l, &grade); err != nil {
		return nil, err
	}
	return &grade, nil
}

// GradeListing fetches an Etsy listing, grades it, and stores the result.
func (c *Client) GradeListing(
	ctx context.Context,
	etsyListingID string,
) (*domain.SEOGrade, error) {
	var grade domain.SEOGrade
	if err := c.post(ctx, "/api/v1/grade/"+etsyListingID, nil, &grade); err != nil {
		return nil, err
	}
	return &grade, nil
}

// BulkGrade grades multiple Etsy listings in one request.
func (c *Client) BulkGrade(
	ctx context.Context,
	etsyListingIDs []string,
) (*BulkGradeResponse, error) {
	body := map[string]any{"etsy_listing_ids": etsyListingIDs}

	var resp BulkGradeResponse
	if err := c.post(ctx, "/api/v1/grade/bulk", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
