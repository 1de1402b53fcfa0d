// Package api implements the HTTP transport for the trip planner backend:
// base-URL resolution, JSON negotiation, bearer-token injection, and
// normalization of error responses into *APIError values.
package api
