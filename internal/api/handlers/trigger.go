package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sellersage/listing-grader/internal/engine"
)

// TrackedRefresher defines the interface for triggering a tracked-listing
// refresh cycle.
type TrackedRefresher interface {
	RefreshTracked(ctx context.Context) (*engine.RefreshResult, error)
}

// Rescorer defines the interface for triggering a full rescore.
type Rescorer interface {
	RescoreAll(ctx context.Context, batchSize int) (int, error)
}

// RefreshHandler handles manual tracked-refresh trigger requests.
type RefreshHandler struct {
	refresher TrackedRefresher
}

// NewRefreshHandler creates a new RefreshHandler.
func NewRefreshHandler(r TrackedRefresher) *RefreshHandler {
	return &RefreshHandler{refresher: r}
}

// RefreshOutput is the response body for the refresh endpoint.
type RefreshOutput struct {
	Body engine.RefreshResult
}

// Refresh runs one tracked-listing refresh cycle: re-fetch, re-grade,
// alert, and dispatch.
func (h *RefreshHandler) Refresh(ctx context.Context, _ *struct{}) (*RefreshOutput, error) {
	result, err := h.refresher.RefreshTracked(ctx)
	if err != nil && (result == nil || result.Refreshed == 0) {
		return nil, huma.Error500InternalServerError("refresh failed: " + err.Error())
	}

	return &RefreshOutput{Body: *result}, nil
}

// RescoreHandler handles manual rescore requests.
type RescoreHandler struct {
	rescorer Rescorer
}

// NewRescoreHandler creates a new RescoreHandler.
func NewRescoreHandler(r Rescorer) *RescoreHandler {
	return &RescoreHandler{rescorer: r}
}

// RescoreOutput is the response body for the rescore endpoint.
type RescoreOutput struct {
	Body struct {
		Rescored int `json:"rescored" example:"420" doc:"Listings re-graded from stored snapshots"`
	}
}

// Rescore re-grades every stored listing from its persisted snapshot,
// without calling the Etsy API.
func (h *RescoreHandler) Rescore(ctx context.Context, _ *struct{}) (*RescoreOutput, error) {
	count, err := h.rescorer.RescoreAll(ctx, 0)
	if err != nil {
		return nil, huma.Error500InternalServerError("rescore failed: " + err.Error())
	}

	resp := &RescoreOutput{}
	resp.Body.Rescored = count
	return resp, nil
}

// RegisterTriggerRoutes registers trigger endpoints with the Huma API.
func RegisterTriggerRoutes(api huma.API, refreshH *RefreshHandler, rescoreH *RescoreHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-refresh",
		Method:      http.MethodPost,
		Path:        "/api/v1/refresh",
		Summary:     "Trigger a tracked-listing refresh",
		Description: "Re-fetches and re-grades every enabled tracked listing, creates " +
			"grade-drop alerts, and dispatches pending notifications.",
		Tags:   []string{"tracked"},
		Errors: []int{http.StatusInternalServerError},
	}, refreshH.Refresh)

	huma.Register(api, huma.Operation{
		OperationID: "trigger-rescore",
		Method:      http.MethodPost,
		Path:        "/api/v1/rescore",
		Summary:     "Re-grade all stored listings",
		Description: "Recalculates SEO grades for every stored listing snapshot using " +
			"the current rubric weights. Makes no Etsy API calls.",
		Tags:   []string{"grading"},
		Errors: []int{http.StatusInternalServerError},
	}, rescoreH.Rescore)
}
