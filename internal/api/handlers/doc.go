// Package handlers implements the versioned grading API: grade
// operations, listing queries, shop analytics, tracked listings, and
// operational endpoints. Handlers are registered on a huma API and hold
// only the narrow interfaces they consume.
package handlers

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"updated"`
}
