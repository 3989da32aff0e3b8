package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellersage/listing-grader/internal/api/handlers"
	"github.com/sellersage/listing-grader/internal/engine"
	"github.com/sellersage/listing-grader/internal/etsy"
	"github.com/sellersage/listing-grader/pkg/grader"
	domain "github.com/sellersage/listing-grader/pkg/types"
)

// mockGrading implements Grading for testing.
type mockGrading struct {
	grade      *domain.SEOGrade
	gradeErr   error
	bulkResult *engine.BulkGradeResult
	bulkErr    error
}

func (m *mockGrading) GradeSnapshot(_ *domain.ListingData) *domain.SEOGrade {
	return m.grade
}

func (m *mockGrading) GradeListingByID(_ context.Context, _ string) (*domain.SEOGrade, error) {
	return m.grade, m.gradeErr
}

func (m *mockGrading) BulkGrade(_ context.Context, _ []string) (*engine.BulkGradeResult, error) {
	return m.bulkResult, m.bulkErr
}

func sampleGrade(score int, overall domain.Grade) *domain.SEOGrade {
	return &domain.SEOGrade{
		Overall: overall,
		Score:   score,
		Issues: []domain.SEOIssue{
			{
				Category: domain.DimensionTitle,
				Severity: domain.SeverityMedium,
				Issue:    "Title too short",
			},
		},
	}
}

func TestGradeSnapshot_Success(t *testing.T) {
	t.Parallel()

	h := handlers.NewGradeHandler(&mockGrading{grade: sampleGrade(72, grader.GradeB)})

	_, api := humatest.New(t)
	handlers.RegisterGradeRoutes(api, h)

	resp := api.Post("/api/v1/grade", map[string]any{
		"etsy_listing_id": "100001",
		"title":           "Handmade silver ring with moonstone",
		"tags":            []string{"silver ring", "moonstone"},
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"score":72`)
	assert.Contains(t, resp.Body.String(), `"overall":"B"`)
}

func TestGradeSnapshot_EmptySnapshotRejected(t *testing.T) {
	t.Parallel()

	h := handlers.NewGradeHandler(&mockGrading{grade: sampleGrade(0, grader.GradeF)})

	_, api := humatest.New(t)
	handlers.RegisterGradeRoutes(api, h)

	resp := api.Post("/api/v1/grade", map[string]any{
		"etsy_listing_id": "100001",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "no gradeable content")
}

func TestGradeListing_Success(t *testing.T) {
	t.Parallel()

	h := handlers.NewGradeHandler(&mockGrading{grade: sampleGrade(85, grader.GradeA)})

	_, api := humatest.New(t)
	handlers.RegisterGradeRoutes(api, h)

	resp := api.Post("/api/v1/grade/100001")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"score":85`)
}

func TestGradeListing_NotFound(t *testing.T) {
	t.Parallel()

	h := handlers.NewGradeHandler(&mockGrading{gradeErr: etsy.ErrNotFound})

	_, api := humatest.New(t)
	handlers.RegisterGradeRoutes(api, h)

	resp := api.Post("/api/v1/grade/999999")
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGradeListing_DailyLimitReached(t *testing.T) {
	t.Parallel()

	h := handlers.NewGradeHandler(&mockGrading{gradeErr: etsy.ErrDailyLimitReached})

	_, api := humatest.New(t)
	handlers.RegisterGradeRoutes(api, h)

	resp := api.Post("/api/v1/grade/100001")
	require.Equal(t, http.StatusTooManyRequests, resp.Code)
}

func TestGradeListing_UpstreamError(t *testing.T) {
	t.Parallel()

	h := handlers.NewGradeHandler(&mockGrading{gradeErr: errors.New("etsy api timeout")})

	_, api := humatest.New(t)
	handlers.RegisterGradeRoutes(api, h)

	resp := api.Post("/api/v1/grade/100001")
	require.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Contains(t, resp.Body.String(), "grading failed")
}

func TestGradeListing_MissingGrade(t *testing.T) {
	t.Parallel()

	// Engine returns neither a grade nor an error; the handler must
	// answer 500 rather than dereference the nil grade.
	h := handlers.NewGradeHandler(&mockGrading{})

	_, api := humatest.New(t)
	handlers.RegisterGradeRoutes(api, h)

	resp := api.Post("/api/v1/grade/100001")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "no result")
}

func TestBulkGrade_RoutesBeforeListingGrade(t *testing.T) {
	t.Parallel()

	// POST /api/v1/grade/bulk must reach BulkGrade, not GradeListing
	// with etsy_listing_id="bulk". The mock has no single-listing grade,
	// so a misroute would surface as a non-200 response.
	h := handlers.NewGradeHandler(&mockGrading{
		bulkResult: &engine.BulkGradeResult{
			Graded: []engine.BulkGradeItem{
				{EtsyListingID: "100001", Score: 91, Overall: grader.GradeA},
			},
		},
	})

	_, api := humatest.New(t)
	handlers.RegisterGradeRoutes(api, h)

	resp := api.Post("/api/v1/grade/bulk", map[string]any{
		"etsy_listing_ids": []string{"100001"},
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"score":91`)
}

func TestBulkGrade_PartialFailure(t *testing.T) {
	t.Parallel()

	h := handlers.NewGradeHandler(&mockGrading{
		bulkResult: &engine.BulkGradeResult{
			Graded: []engine.BulkGradeItem{
				{EtsyListingID: "100001", Score: 72, Overall: grader.GradeB},
			},
			Failed: []string{"100002"},
		},
		bulkErr: errors.New("listing 100002: etsy api timeout"),
	})

	_, api := humatest.New(t)
	handlers.RegisterGradeRoutes(api, h)

	resp := api.Post("/api/v1/grade/bulk", map[string]any{
		"etsy_listing_ids": []string{"100001", "100002"},
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"100002"`)
	assert.Contains(t, resp.Body.String(), `"score":72`)
}

func TestBulkGrade_TotalFailure(t *testing.T) {
	t.Parallel()

	h := handlers.NewGradeHandler(&mockGrading{
		bulkResult: &engine.BulkGradeResult{Failed: []string{"100001"}},
		bulkErr:    errors.New("daily API limit reached"),
	})

	_, api := humatest.New(t)
	handlers.RegisterGradeRoutes(api, h)

	resp := api.Post("/api/v1/grade/bulk", map[string]any{
		"etsy_listing_ids": []string{"100001"},
	})
	require.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Contains(t, resp.Body.String(), "bulk grading failed")
}
