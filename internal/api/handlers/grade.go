package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sellersage/listing-grader/internal/engine"
	"github.com/sellersage/listing-grader/internal/etsy"
	domain "github.com/sellersage/listing-grader/pkg/types"
)

// Grading defines the engine operations the grade endpoints depend on.
type Grading interface {
	GradeSnapshot(l *domain.ListingData) *domain.SEOGrade
	GradeListingByID(ctx context.Context, etsyListingID string) (*domain.SEOGrade, error)
	BulkGrade(ctx context.Context, etsyListingIDs []string) (*engine.BulkGradeResult, error)
}

// GradeHandler handles listing grading requests.
type GradeHandler struct {
	engine Grading
}

// NewGradeHandler creates a new GradeHandler.
func NewGradeHandler(eng Grading) *GradeHandler {
	return &GradeHandler{engine: eng}
}

// --- Input/Output types ---

// GradeSnapshotInput is a caller-supplied listing snapshot to grade.
type GradeSnapshotInput struct {
	Body domain.ListingData
}

// GradeOutput is the response for any grading endpoint.
type GradeOutput struct {
	Body domain.SEOGrade
}

// GradeListingInput identifies an Etsy listing to fetch and grade.
type GradeListingInput struct {
	EtsyListingID string `path:"etsy_listing_id" doc:"Etsy listing ID"`
}

// BulkGradeInput is the request body for bulk grading.
type BulkGradeInput struct {
	Body struct {
		EtsyListingIDs []string `json:"etsy_listing_ids" doc:"Etsy listing IDs to grade" minItems:"1" maxItems:"100"`
	}
}

// BulkGradeOutput is the response for bulk grading.
type BulkGradeOutput struct {
	Body engine.BulkGradeResult
}

// --- Handlers ---

// GradeSnapshot grades an inline listing snapshot without persisting
// anything. Sparse snapshots are graded as-is; grading never fails.
func (h *GradeHandler) GradeSnapshot(
	_ context.Context,
	input *GradeSnapshotInput,
) (*GradeOutput, error) {
	if input.Body.Title == "" && len(input.Body.Tags) == 0 && input.Body.Description == "" {
		return nil, huma.Error422UnprocessableEntity("snapshot has no gradeable content")
	}

	grade := h.engine.GradeSnapshot(&input.Body)
	return &GradeOutput{Body: *grade}, nil
}

// GradeListing fetches a listing from Etsy, persists the snapshot, and
// grades it.
func (h *GradeHandler) GradeListing(
	ctx context.Context,
	input *GradeListingInput,
) (*GradeOutput, error) {
	grade, err := h.engine.GradeListingByID(ctx, input.EtsyListingID)
	if err != nil {
		if errors.Is(err, etsy.ErrNotFound) {
			return nil, huma.Error404NotFound("etsy listing not found")
		}
		if errors.Is(err, etsy.ErrDailyLimitReached) {
			return nil, huma.Error429TooManyRequests("etsy daily API limit reached")
		}
		return nil, huma.Error502BadGateway("grading failed: " + err.Error())
	}
	if grade == nil {
		return nil, huma.Error500InternalServerError("grading returned no result")
	}

	return &GradeOutput{Body: *grade}, nil
}

// BulkGrade grades multiple Etsy listings in one request. Partial
// failure returns 200 with per-item failures listed.
func (h *GradeHandler) BulkGrade(
	ctx context.Context,
	input *BulkGradeInput,
) (*BulkGradeOutput, error) {
	result, err := h.engine.BulkGrade(ctx, input.Body.EtsyListingIDs)
	if err != nil && (result == nil || len(result.Graded) == 0) {
		return nil, huma.Error502BadGateway("bulk grading failed: " + err.Error())
	}

	return &BulkGradeOutput{Body: *result}, nil
}

// RegisterGradeRoutes registers grading endpoints with the Huma API.
func RegisterGradeRoutes(api huma.API, h *GradeHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "grade-snapshot",
		Method:      http.MethodPost,
		Path:        "/api/v1/grade",
		Summary:     "Grade an inline listing snapshot",
		Description: "Runs the full SEO rubric over a caller-supplied listing snapshot. " +
			"Nothing is persisted and no Etsy API calls are made.",
		Tags:   []string{"grading"},
		Errors: []int{http.StatusUnprocessableEntity},
	}, h.GradeSnapshot)

	// The bulk route must be registered before the parameterized route:
	// routers that match in registration order would otherwise send
	// POST /api/v1/grade/bulk to GradeListing with etsy_listing_id="bulk".
	huma.Register(api, huma.Operation{
		OperationID: "bulk-grade",
		Method:      http.MethodPost,
		Path:        "/api/v1/grade/bulk",
		Summary:     "Grade multiple Etsy listings",
		Description: "Fetches and grades up to 100 listings. Per-listing failures are " +
			"reported in the response without failing the batch.",
		Tags:   []string{"grading"},
		Errors: []int{http.StatusBadGateway},
	}, h.BulkGrade)

	huma.Register(api, huma.Operation{
		OperationID: "grade-listing",
		Method:      http.MethodPost,
		Path:        "/api/v1/grade/{etsy_listing_id}",
		Summary:     "Fetch and grade an Etsy listing",
		Description: "Fetches the listing from the Etsy API, stores the snapshot, grades it, " +
			"and records the grade in the listing's history.",
		Tags: []string{"grading"},
		Errors: []int{
			http.StatusNotFound,
			http.StatusTooManyRequests,
			http.StatusBadGateway,
		},
	}, h.GradeListing)
}
