package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idursun/hitkit/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("shown", "id", "ABCD")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "id=ABCD")
}

func TestOpen(t *testing.T) {
	logger, closer, err := Open(config.LogConfig{Level: "debug"})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError), "no file discards")

	path := filepath.Join(t.TempDir(), "hitkit.log")
	logger, closer, err = Open(config.LogConfig{Level: "debug", File: path})
	require.NoError(t, err)
	logger.Debug("drag started", "id", "1234")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "drag started")

	_, _, err = Open(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestRing(t *testing.T) {
	ring := NewRing(2, slog.LevelDebug)
	logger := slog.New(ring).With("layer", "middle")
	logger.Debug("one")
	logger.Info("two", "id", "A")
	logger.Info("three")

	recent := ring.Recent(0)
	require.Len(t, recent, 2)
	assert.Equal(t, "two", recent[0].Message)
	assert.Equal(t, "A", recent[0].Attrs["id"])
	assert.Equal(t, "middle", recent[1].Attrs["layer"])
	assert.Len(t, ring.Recent(1), 1)
	assert.Equal(t, "three", ring.Recent(1)[0].Message)
}

func TestTee(t *testing.T) {
	var buf bytes.Buffer
	ring := NewRing(10, slog.LevelDebug)
	logger := slog.New(Tee{slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}), ring})

	logger.Debug("quiet")
	logger.Warn("loud")

	assert.Len(t, ring.Recent(0), 2)
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}
