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
)

// mockTrackedRefresher implements TrackedRefresher for testing.
type mockTrackedRefresher struct {
	result *engine.RefreshResult
	err    error
	called bool
}

func (m *mockTrackedRefresher) RefreshTracked(_ context.Context) (*engine.RefreshResult, error) {
	m.called = true
	return m.result, m.err
}

// mockRescorer implements Rescorer for testing.
type mockRescorer struct {
	count     int
	err       error
	batchSize int
}

func (m *mockRescorer) RescoreAll(_ context.Context, batchSize int) (int, error) {
	m.batchSize = batchSize
	return m.count, m.err
}

func TestRefreshHandler_Success(t *testing.T) {
	t.Parallel()

	r := &mockTrackedRefresher{result: &engine.RefreshResult{Refreshed: 3, AlertsCreated: 1}}
	h := handlers.NewRefreshHandler(r)

	_, api := humatest.New(t)
	handlers.RegisterTriggerRoutes(api, h, handlers.NewRescoreHandler(&mockRescorer{}))

	resp := api.Post("/api/v1/refresh")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, r.called)
	assert.Contains(t, resp.Body.String(), `"refreshed":3`)
	assert.Contains(t, resp.Body.String(), `"alerts_created":1`)
}

func TestRefreshHandler_PartialFailureStillReturnsResult(t *testing.T) {
	t.Parallel()

	r := &mockTrackedRefresher{
		result: &engine.RefreshResult{Refreshed: 2, Failed: 1},
		err:    errors.New("listing 3: etsy api timeout"),
	}
	h := handlers.NewRefreshHandler(r)

	_, api := humatest.New(t)
	handlers.RegisterTriggerRoutes(api, h, handlers.NewRescoreHandler(&mockRescorer{}))

	resp := api.Post("/api/v1/refresh")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"refreshed":2`)
	assert.Contains(t, resp.Body.String(), `"failed":1`)
}

func TestRefreshHandler_TotalFailure(t *testing.T) {
	t.Parallel()

	r := &mockTrackedRefresher{err: errors.New("db down")}
	h := handlers.NewRefreshHandler(r)

	_, api := humatest.New(t)
	handlers.RegisterTriggerRoutes(api, h, handlers.NewRescoreHandler(&mockRescorer{}))

	resp := api.Post("/api/v1/refresh")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "refresh failed")
}

func TestRescoreHandler_Success(t *testing.T) {
	t.Parallel()

	r := &mockRescorer{count: 420}
	h := handlers.NewRescoreHandler(r)

	_, api := humatest.New(t)
	handlers.RegisterTriggerRoutes(api, handlers.NewRefreshHandler(&mockTrackedRefresher{}), h)

	resp := api.Post("/api/v1/rescore")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"rescored":420`)
	assert.Equal(t, 0, r.batchSize)
}

func TestRescoreHandler_Error(t *testing.T) {
	t.Parallel()

	r := &mockRescorer{err: errors.New("db down")}
	h := handlers.NewRescoreHandler(r)

	_, api := humatest.New(t)
	handlers.RegisterTriggerRoutes(api, handlers.NewRefreshHandler(&mockTrackedRefresher{}), h)

	resp := api.Post("/api/v1/rescore")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "rescore failed")
}
