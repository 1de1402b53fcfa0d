package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	ctx := context.Background()
	l, buf := newBufLogger(t)

	l.Debug(ctx, "dbg", "k", "v")
	l.Info(ctx, "inf")
	l.Warn(ctx, "wrn")
	l.Error(ctx, "err")

	out := buf.String()
	assert.Contains(t, out, "msg=dbg")
	assert.Contains(t, out, "k=v")
	assert.Contains(t, out, "msg=inf")
	assert.Contains(t, out, "msg=wrn")
	assert.Contains(t, out, "msg=err")
}

func TestSlogLogger_With(t *testing.T) {
	ctx := context.Background()
	l, buf := newBufLogger(t)

	child := l.With("view", "activities")
	require.NotNil(t, child)
	child.Info(ctx, "loaded")

	assert.Contains(t, buf.String(), "view=activities")
}
