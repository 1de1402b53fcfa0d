package api

import (
	"errors"
	"fmt"

	"tripdeck/internal/common"
)

// ErrUnavailable is returned when the backend is unreachable or its health
// probe reports anything but ok.
var ErrUnavailable = errors.New("server unavailable")

// APIError carries a normalized non-2xx response: the HTTP status, a
// human-readable message, and the parsed (or raw) response body.
type APIError struct {
	Status  int
	Message string
	// Detail is the full response body: a map for JSON objects, a string
	// otherwise, nil when the body was empty or unreadable.
	Detail any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// Unwrap maps well-known statuses onto the shared sentinels so callers can
// match with errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case 401, 403:
		return common.ErrorUnauthorized
	case 404:
		return common.ErrorNotFound
	}
	return nil
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not an
// *APIError.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
