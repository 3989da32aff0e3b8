package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sellersage/listing-grader/internal/store"
	domain "github.com/sellersage/listing-grader/pkg/types"
)

// TrackedHandler handles tracked-listing CRUD operations.
type TrackedHandler struct {
	store store.Store
}

// NewTrackedHandler creates a new TrackedHandler.
func NewTrackedHandler(s store.Store) *TrackedHandler {
	return &TrackedHandler{store: s}
}

// --- Input/Output types ---

// ListTrackedInput is the input for listing tracked listings.
type ListTrackedInput struct {
	Enabled bool `query:"enabled" doc:"Only enabled tracked listings"`
}

// ListTrackedOutput is the response for listing tracked listings.
type ListTrackedOutput struct {
	Body []domain.TrackedListing
}

// TrackedIDInput identifies a tracked listing by UUID.
type TrackedIDInput struct {
	ID string `path:"id" doc:"Tracked listing UUID"`
}

// TrackedOutput is the response carrying one tracked listing.
type TrackedOutput struct {
	Body domain.TrackedListing
}

// CreateTrackedInput is the request body for tracking a listing.
type CreateTrackedInput struct {
	Body struct {
		EtsyListingID  string `json:"etsy_listing_id" doc:"Etsy listing ID to track"                       required:"true"`
		Name           string `json:"name"            doc:"Display name for alerts"                       required:"true"`
		ScoreThreshold int    `json:"score_threshold" doc:"Alert when the score drops below this value"   minimum:"0" maximum:"100"`
	}
}

// UpdateTrackedInput is the request body for updating a tracked listing.
type UpdateTrackedInput struct {
	ID   string `path:"id" doc:"Tracked listing UUID"`
	Body struct {
		Name           string `json:"name"            doc:"Display name for alerts"`
		ScoreThreshold int    `json:"score_threshold" doc:"Alert threshold" minimum:"0" maximum:"100"`
	}
}

// SetTrackedEnabledInput is the request body for enabling or disabling.
type SetTrackedEnabledInput struct {
	ID   string `path:"id" doc:"Tracked listing UUID"`
	Body struct {
		Enabled bool `json:"enabled" doc:"Whether periodic re-grading is active"`
	}
}

// SetTrackedEnabledOutput is the response for the enabled toggle.
type SetTrackedEnabledOutput struct {
	Body StatusResponse
}

// AlertHistoryInput identifies a tracked listing's alert history.
type AlertHistoryInput struct {
	ID    string `path:"id"     doc:"Tracked listing UUID"`
	Limit int    `query:"limit" doc:"Number of alerts (default 20)" minimum:"1" maximum:"200"`
}

// AlertHistoryOutput is the response for a tracked listing's alerts.
type AlertHistoryOutput struct {
	Body []domain.Alert
}

const defaultAlertHistoryLimit = 20

// --- Handlers ---

// ListTracked returns tracked listings, optionally only enabled ones.
func (h *TrackedHandler) ListTracked(
	ctx context.Context,
	input *ListTrackedInput,
) (*ListTrackedOutput, error) {
	tracked, err := h.store.ListTracked(ctx, input.Enabled)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing tracked listings: " + err.Error())
	}

	if tracked == nil {
		tracked = []domain.TrackedListing{}
	}

	return &ListTrackedOutput{Body: tracked}, nil
}

// GetTracked returns a tracked listing by ID.
func (h *TrackedHandler) GetTracked(
	ctx context.Context,
	input *TrackedIDInput,
) (*TrackedOutput, error) {
	t, err := h.store.GetTracked(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("tracked listing not found")
	}

	return &TrackedOutput{Body: *t}, nil
}

// CreateTracked starts tracking an Etsy listing.
func (h *TrackedHandler) CreateTracked(
	ctx context.Context,
	input *CreateTrackedInput,
) (*TrackedOutput, error) {
	t := domain.TrackedListing{
		EtsyListingID:  input.Body.EtsyListingID,
		Name:           input.Body.Name,
		ScoreThreshold: input.Body.ScoreThreshold,
		Enabled:        true,
	}

	if err := h.store.CreateTracked(ctx, &t); err != nil {
		return nil, huma.Error500InternalServerError("creating tracked listing: " + err.Error())
	}

	return &TrackedOutput{Body: t}, nil
}

// UpdateTracked updates a tracked listing's name and threshold.
func (h *TrackedHandler) UpdateTracked(
	ctx context.Context,
	input *UpdateTrackedInput,
) (*TrackedOutput, error) {
	t, err := h.store.GetTracked(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("tracked listing not found")
	}

	if input.Body.Name != "" {
		t.Name = input.Body.Name
	}
	t.ScoreThreshold = input.Body.ScoreThreshold

	if err := h.store.UpdateTracked(ctx, t); err != nil {
		return nil, huma.Error500InternalServerError("updating tracked listing: " + err.Error())
	}

	return &TrackedOutput{Body: *t}, nil
}

// SetTrackedEnabled toggles periodic re-grading for a tracked listing.
func (h *TrackedHandler) SetTrackedEnabled(
	ctx context.Context,
	input *SetTrackedEnabledInput,
) (*SetTrackedEnabledOutput, error) {
	if err := h.store.SetTrackedEnabled(ctx, input.ID, input.Body.Enabled); err != nil {
		return nil, huma.Error500InternalServerError("setting tracked enabled: " + err.Error())
	}

	return &SetTrackedEnabledOutput{Body: StatusResponse{Status: "updated"}}, nil
}

// DeleteTracked stops tracking a listing.
func (h *TrackedHandler) DeleteTracked(
	ctx context.Context,
	input *TrackedIDInput,
) (*struct{}, error) {
	if err := h.store.DeleteTracked(ctx, input.ID); err != nil {
		return nil, huma.Error500InternalServerError("deleting tracked listing: " + err.Error())
	}

	return &struct{}{}, nil
}

// GetAlertHistory returns the alerts fired for a tracked listing.
func (h *TrackedHandler) GetAlertHistory(
	ctx context.Context,
	input *AlertHistoryInput,
) (*AlertHistoryOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultAlertHistoryLimit
	}

	alerts, err := h.store.ListAlertsByTracked(ctx, input.ID, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching alert history: " + err.Error())
	}

	if alerts == nil {
		alerts = []domain.Alert{}
	}

	return &AlertHistoryOutput{Body: alerts}, nil
}

// RegisterTrackedRoutes registers tracked-listing endpoints with the Huma API.
func RegisterTrackedRoutes(api huma.API, h *TrackedHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-tracked",
		Method:      http.MethodGet,
		Path:        "/api/v1/tracked",
		Summary:     "List tracked listings",
		Description: "Returns all tracked listings, optionally filtered to enabled ones.",
		Tags:        []string{"tracked"},
	}, h.ListTracked)

	huma.Register(api, huma.Operation{
		OperationID: "get-tracked",
		Method:      http.MethodGet,
		Path:        "/api/v1/tracked/{id}",
		Summary:     "Get a tracked listing",
		Description: "Returns a single tracked listing by its UUID.",
		Tags:        []string{"tracked"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetTracked)

	huma.Register(api, huma.Operation{
		OperationID:   "create-tracked",
		Method:        http.MethodPost,
		Path:          "/api/v1/tracked",
		Summary:       "Track a listing",
		Description:   "Starts periodic re-grading of an Etsy listing with an alert threshold.",
		Tags:          []string{"tracked"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateTracked)

	huma.Register(api, huma.Operation{
		OperationID: "update-tracked",
		Method:      http.MethodPut,
		Path:        "/api/v1/tracked/{id}",
		Summary:     "Update a tracked listing",
		Description: "Updates the display name and alert threshold.",
		Tags:        []string{"tracked"},
		Errors:      []int{http.StatusNotFound},
	}, h.UpdateTracked)

	huma.Register(api, huma.Operation{
		OperationID: "set-tracked-enabled",
		Method:      http.MethodPut,
		Path:        "/api/v1/tracked/{id}/enabled",
		Summary:     "Enable or disable a tracked listing",
		Description: "Toggles periodic re-grading without deleting history.",
		Tags:        []string{"tracked"},
	}, h.SetTrackedEnabled)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-tracked",
		Method:        http.MethodDelete,
		Path:          "/api/v1/tracked/{id}",
		Summary:       "Delete a tracked listing",
		Description:   "Stops tracking and removes the tracked listing.",
		Tags:          []string{"tracked"},
		DefaultStatus: http.StatusNoContent,
	}, h.DeleteTracked)

	huma.Register(api, huma.Operation{
		OperationID: "get-tracked-alerts",
		Method:      http.MethodGet,
		Path:        "/api/v1/tracked/{id}/alerts",
		Summary:     "Get a tracked listing's alert history",
		Description: "Returns alerts fired for a tracked listing, newest first.",
		Tags:        []string{"tracked"},
	}, h.GetAlertHistory)
}
