package grader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

func TestGradeEngagement_ConversionProxy(t *testing.T) {
	t.Parallel()

	// 5 reviews over 1000 views is a 0.5% conversion proxy, under the
	// 2% threshold.
	l := &domain.ListingData{
		Reviews:   domain.ReviewStats{Count: 5, Average: 4.8},
		Favorites: 120,
		Views:     1000,
	}

	b := GradeEngagement(l)
	assert.Contains(t, strings.Join(b.Issues, " "), "Low conversion rate")
}

func TestGradeEngagement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		listing    domain.ListingData
		wantIssues []string
	}{
		{
			name: "healthy listing",
			listing: domain.ListingData{
				Reviews:   domain.ReviewStats{Count: 40, Average: 4.9},
				Favorites: 200,
				Views:     1500,
			},
			wantIssues: nil,
		},
		{
			name: "few reviews",
			listing: domain.ListingData{
				Reviews:   domain.ReviewStats{Count: 3, Average: 5.0},
				Favorites: 80,
				Views:     100,
			},
			wantIssues: []string{"Fewer than 10 reviews"},
		},
		{
			name: "low rating",
			listing: domain.ListingData{
				Reviews:   domain.ReviewStats{Count: 30, Average: 4.1},
				Favorites: 80,
				Views:     1000,
			},
			wantIssues: []string{"below 4.5 stars"},
		},
		{
			name: "few favorites",
			listing: domain.ListingData{
				Reviews:   domain.ReviewStats{Count: 30, Average: 4.9},
				Favorites: 10,
				Views:     1000,
			},
			wantIssues: []string{"Fewer than 50 favorites"},
		},
		{
			name:    "brand new listing fails everything without erroring",
			listing: domain.ListingData{},
			wantIssues: []string{
				"Fewer than 10 reviews", "below 4.5 stars",
				"Fewer than 50 favorites", "Low conversion rate",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := GradeEngagement(&tt.listing)
			joined := strings.Join(b.Issues, " ")
			if tt.wantIssues == nil {
				assert.Empty(t, b.Issues)
			}
			for _, want := range tt.wantIssues {
				assert.Contains(t, joined, want)
			}
			assert.GreaterOrEqual(t, b.Score, 0)
			assert.LessOrEqual(t, b.Score, MaxScore)
		})
	}
}
