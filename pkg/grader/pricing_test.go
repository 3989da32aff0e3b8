package grader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPsychologicalPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		price float64
		want  bool
	}{
		{19.99, true},
		{24.95, true},
		{0.99, true},
		{20.00, false},
		{19.90, false},
		{35.50, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPsychologicalPrice(tt.price), "price %v", tt.price)
	}
}

func TestGradePricing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		price      float64
		wantIssues []string
	}{
		{
			name:       "well positioned",
			price:      39.99,
			wantIssues: nil,
		},
		{
			name:       "round price",
			price:      40.00,
			wantIssues: []string{".99 or .95"},
		},
		{
			name:       "below free shipping",
			price:      19.99,
			wantIssues: []string{"free-shipping"},
		},
		{
			name:       "zero price",
			price:      0,
			wantIssues: []string{"competitive band", "free-shipping", ".99 or .95"},
		},
		{
			name:       "above band",
			price:      1499.99,
			wantIssues: []string{"competitive band"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := GradePricing(tt.price)
			joined := strings.Join(b.Issues, " ")
			if tt.wantIssues == nil {
				assert.Empty(t, b.Issues)
				assert.Equal(t, MaxScore, b.Score)
			}
			for _, want := range tt.wantIssues {
				assert.Contains(t, joined, want)
			}
		})
	}
}
