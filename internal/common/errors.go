// Package common defines shared constants and sentinel errors used across
// the trip planner client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Resource-level errors.
	ErrorNotFound = errors.New("not found")

	// Generic/internal flow control.
	ErrorInternal = errors.New("internal error")

	// Auth errors (missing, rejected, or expired credentials).
	ErrorUnauthorized = errors.New("unauthorized")

	// Client-side validation errors, synthesized before any request is sent.
	ErrorValidation = errors.New("validation error")
)
