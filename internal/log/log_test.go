package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "input %q", tt.in)
	}
}

func TestLevelFilterSplitsStreams(t *testing.T) {
	var low, high bytes.Buffer
	logger := slog.New(MultiHandler{hs: []slog.Handler{
		LevelFilter{
			pass: func(l slog.Level) bool { return l < slog.LevelError },
			h:    slog.NewTextHandler(&low, &slog.HandlerOptions{Level: slog.LevelDebug}),
		},
		LevelFilter{
			pass: func(l slog.Level) bool { return l >= slog.LevelError },
			h:    slog.NewTextHandler(&high, &slog.HandlerOptions{Level: slog.LevelError}),
		},
	}})

	logger.Info("connected")
	logger.Error("connection lost")

	assert.Contains(t, low.String(), "connected")
	assert.NotContains(t, low.String(), "connection lost")
	assert.Contains(t, high.String(), "connection lost")
	assert.NotContains(t, high.String(), "connected")
}

func TestMultiHandlerEnabled(t *testing.T) {
	m := MultiHandler{hs: []slog.Handler{
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: LevelTrace}),
	}}
	assert.True(t, m.Enabled(context.Background(), LevelTrace))
}

func TestWireLoggerChunk(t *testing.T) {
	var buf bytes.Buffer
	wl := NewWire(&buf)

	wl.Chunk([]byte{0x00, 0x01, 0xff})

	line := buf.String()
	assert.Contains(t, line, "S->C chunk: 3 bytes")
	assert.Contains(t, line, "00 01 ff")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestWireLoggerIgnoresEmpty(t *testing.T) {
	var buf bytes.Buffer
	wl := NewWire(&buf)

	wl.Chunk(nil)

	assert.Zero(t, buf.Len())
}
