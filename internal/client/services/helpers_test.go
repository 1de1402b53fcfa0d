package services

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"tripdeck/internal/client/api"
	"tripdeck/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testClient(t *testing.T, srv *httptest.Server) *api.Client {
	t.Helper()
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, nil, testLogger())
}
