package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestListingQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         ListingQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in dataSQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:  "empty query uses defaults",
			query: ListingQuery{},
			wantDataHas: []string{
				"FROM listings",
				"ORDER BY first_seen_at DESC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM listings",
			wantArgs:      nil,
		},
		{
			name: "shop filter",
			query: ListingQuery{
				ShopID: ptr("shop-123"),
			},
			wantDataHas: []string{
				"WHERE shop_id = $1",
				"LIMIT 50",
			},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE shop_id = $1",
			wantArgs:     []any{"shop-123"},
		},
		{
			name: "category filter",
			query: ListingQuery{
				Category: ptr("jewelry"),
			},
			wantDataHas:  []string{"WHERE category = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE category = $1",
			wantArgs:     []any{"jewelry"},
		},
		{
			name: "min score filter",
			query: ListingQuery{
				MinScore: ptr(70),
			},
			wantDataHas:  []string{"WHERE score >= $1"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE score >= $1",
			wantArgs:     []any{70},
		},
		{
			name: "max score filter",
			query: ListingQuery{
				MaxScore: ptr(90),
			},
			wantDataHas:  []string{"WHERE score <= $1"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE score <= $1",
			wantArgs:     []any{90},
		},
		{
			name: "ungraded filter takes no parameter",
			query: ListingQuery{
				Ungraded: true,
			},
			wantDataHas:  []string{"WHERE score IS NULL"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE score IS NULL",
			wantArgs:     nil,
		},
		{
			name: "multiple filters with correct parameter numbering",
			query: ListingQuery{
				ShopID:   ptr("shop-9"),
				Category: ptr("art"),
				MinScore: ptr(60),
				MaxScore: ptr(95),
			},
			wantDataHas: []string{
				"shop_id = $1",
				"category = $2",
				"score >= $3",
				"score <= $4",
				" AND ",
			},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE shop_id = $1 AND category = $2 AND score >= $3 AND score <= $4",
			wantArgs:     []any{"shop-9", "art", 60, 95},
		},
		{
			name: "order by score",
			query: ListingQuery{
				OrderBy: "score",
			},
			wantDataHas: []string{"ORDER BY score DESC NULLS LAST"},
		},
		{
			name: "order by price",
			query: ListingQuery{
				OrderBy: "price",
			},
			wantDataHas: []string{"ORDER BY price ASC"},
		},
		{
			name: "invalid order by falls back to default",
			query: ListingQuery{
				OrderBy: "DROP TABLE listings; --",
			},
			wantDataHas:   []string{"ORDER BY first_seen_at DESC"},
			wantDataNotIn: []string{"DROP TABLE"},
		},
		{
			name: "custom limit and offset",
			query: ListingQuery{
				Limit:  25,
				Offset: 100,
			},
			wantDataHas: []string{
				"LIMIT 25",
				"OFFSET 100",
			},
		},
		{
			name: "negative limit defaults to 50",
			query: ListingQuery{
				Limit: -10,
			},
			wantDataHas: []string{"LIMIT 50"},
		},
		{
			name: "limit exceeding max is capped",
			query: ListingQuery{
				Limit: 1000,
			},
			wantDataHas: []string{"LIMIT 500"},
		},
		{
			name: "negative offset defaults to 0",
			query: ListingQuery{
				Offset: -5,
			},
			wantDataHas: []string{"OFFSET 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := tt.query
			dataSQL, countSQL, args := q.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s, "dataSQL should contain %q", s)
			}

			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s, "dataSQL should not contain %q", s)
			}

			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}

			if tt.wantArgs != nil {
				require.Len(t, args, len(tt.wantArgs))
				assert.Equal(t, tt.wantArgs, args)
			} else {
				assert.Empty(t, args)
			}
		})
	}
}
