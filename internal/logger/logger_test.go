package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := defaultLogger
	defaultLogger = New(&buf, level, "json")
	t.Cleanup(func() { defaultLogger = prev })
	return &buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", RequestID(ctx))

	ctx = WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))
}

func TestContextLogging(t *testing.T) {
	t.Run("Carries Request ID", func(t *testing.T) {
		buf := capture(t, "info")
		ErrorContext(WithRequestID(context.Background(), "req-7"), "Request failed", "path", "/bookings")

		rec := decode(t, buf)
		assert.Equal(t, "req-7", rec["request_id"])
		assert.Equal(t, "/bookings", rec["path"])
		assert.Equal(t, "ERROR", rec["level"])
	})

	t.Run("Without Request ID", func(t *testing.T) {
		buf := capture(t, "info")
		InfoContext(context.Background(), "HTTP request")

		rec := decode(t, buf)
		assert.NotContains(t, rec, "request_id")
	})

	t.Run("Derived Logger Keeps Request ID", func(t *testing.T) {
		buf := capture(t, "info")
		Get().With("component", "test").WarnContext(WithRequestID(context.Background(), "req-8"), "slow")

		rec := decode(t, buf)
		assert.Equal(t, "req-8", rec["request_id"])
		assert.Equal(t, "test", rec["component"])
	})
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", "json")
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))

	l = New(&buf, "bogus", "text")
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
}

func TestDatabaseResult(t *testing.T) {
	buf := capture(t, "info")
	DatabaseResult("GetBooking", 0, nil)
	assert.Empty(t, buf.String())

	DatabaseResult("GetBooking", 0, assert.AnError)
	rec := decode(t, buf)
	assert.Equal(t, "GetBooking", rec["operation"])
	assert.Equal(t, "ERROR", rec["level"])
}
