package gopatterns

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestLogger_LogFit(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.LogFit(context.Background(), "euclidean", 3, 5, 2, true, nil)
	l.LogFit(context.Background(), "manhattan", 3, 0, 0, false, errors.New("boom"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "fit completed", lines[0]["msg"])
	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "euclidean", lines[0]["strategy"])
	assert.Equal(t, float64(2), lines[0]["clusters"])
	assert.Equal(t, true, lines[0]["converged"])

	assert.Equal(t, "fit failed", lines[1]["msg"])
	assert.Equal(t, "ERROR", lines[1]["level"])
	assert.Equal(t, "boom", lines[1]["error"])
}

func TestLogger_LogActivity(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf).WithComponent("feed")

	l.LogActivity(context.Background(), "Calle", "Walk", 3, nil)
	l.LogActivity(context.Background(), "Calle", "Run", 1, errors.New("unreachable"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "activity saved", lines[0]["msg"])
	assert.Equal(t, "feed", lines[0]["component"])
	assert.Equal(t, "WARN", lines[1]["level"])
}

func TestLogger_LogExport(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf).WithUser("Emma")

	l.LogExport(context.Background(), "a.report", 128, time.Millisecond, nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "report exported", lines[0]["msg"])
	assert.Equal(t, float64(128), lines[0]["bytes"])
	assert.Equal(t, "Emma", lines[0]["user"])
}

func TestLogger_OrNoop(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.OrNoop().LogFit(context.Background(), "euclidean", 1, 1, 1, true, nil)
	})

	noop := NoopLogger()
	assert.Same(t, noop, noop.OrNoop())
	assert.False(t, noop.Enabled(context.Background(), slog.LevelError))
}
