package grader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// goodDescription builds a description that passes every check: bulleted
// features, a call to action, tag keywords sprinkled in, and a word
// count inside the sweet spot.
func goodDescription() string {
	var b strings.Builder
	b.WriteString("This handmade ceramic mug is thrown on the wheel in our studio.\n\n")
	b.WriteString("- handmade ceramic body with a glossy glaze\n")
	b.WriteString("- mug holds 350ml and is dishwasher safe\n")
	b.WriteString("- ceramic finish in four colors\n\n")
	for range 25 {
		b.WriteString("Each ceramic mug is glazed twice and fired slowly for a handmade finish that lasts. ")
	}
	b.WriteString("Order now and we ship within two days.")
	return b.String()
}

func TestGradeDescription_GoodInput(t *testing.T) {
	t.Parallel()

	b := GradeDescription(goodDescription(), []string{"handmade", "ceramic", "mug"})
	assert.Empty(t, b.Issues)
	assert.Equal(t, MaxScore, b.Score)
}

func TestGradeDescription_Checks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		desc      string
		tags      []string
		wantIssue string
	}{
		{
			name:      "too short",
			desc:      "A mug.",
			tags:      nil,
			wantIssue: "too short",
		},
		{
			name:      "too long",
			desc:      strings.Repeat("word ", 1200),
			tags:      nil,
			wantIssue: "longer than buyers will read",
		},
		{
			name:      "no formatting",
			desc:      strings.Repeat("plain sentence without breaks ", 20),
			tags:      nil,
			wantIssue: "wall of text",
		},
		{
			name:      "no call to action",
			desc:      "A lovely mug.\n- feature one\n- feature two\n",
			tags:      nil,
			wantIssue: "call to action",
		},
		{
			name:      "no feature list",
			desc:      "A lovely mug.\nOrder now while stock lasts.",
			tags:      nil,
			wantIssue: "features",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := GradeDescription(tt.desc, tt.tags)
			assert.Contains(t, strings.Join(b.Issues, " "), tt.wantIssue)
		})
	}
}

func TestGradeDescription_DensityThreshold(t *testing.T) {
	t.Parallel()

	// 1 tag word in 40 words is 2.5%, under the 5% threshold.
	sparse := strings.Repeat("filler ", 39) + "ceramic"
	b := GradeDescription(sparse, []string{"ceramic"})
	assert.Contains(t, strings.Join(b.Issues, " "), "keyword density")

	// 4 of 40 words is 10%, above threshold.
	dense := strings.Repeat("filler ", 36) + "ceramic ceramic ceramic ceramic"
	b = GradeDescription(dense, []string{"ceramic"})
	assert.NotContains(t, strings.Join(b.Issues, " "), "keyword density")
}
