package services

import (
	"context"
	"strings"

	"tripdeck/internal/client/api"
)

// HealthService probes backend liveness.
type HealthService interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	api  *api.Client
	path string
}

// NewHealthService builds a probe against the configured health path
// (usually /api/health).
func NewHealthService(apiClient *api.Client, path string) HealthService {
	return &healthService{api: apiClient, path: path}
}

// Ping succeeds only when the backend answers {"status":"ok"}
// (case-insensitively); any other reply is api.ErrUnavailable.
func (h *healthService) Ping(ctx context.Context) error {
	out, err := api.GetJSON[struct {
		Status string `json:"status"`
	}](ctx, h.api, h.path)
	if err != nil {
		return err
	}
	if !strings.EqualFold(out.Status, "ok") {
		return api.ErrUnavailable
	}
	return nil
}
