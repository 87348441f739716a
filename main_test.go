package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("Known levels", func(t *testing.T) {
		levels := map[string]slog.Level{
			"debug": slog.LevelDebug,
			"info":  slog.LevelInfo,
			"warn":  slog.LevelWarn,
			"ERROR": slog.LevelError,
		}

		for name, level := range levels {
			var out bytes.Buffer

			// When: building a logger for the level
			logger := newLogger(&out, name)

			// Then: it is enabled from that level on and nothing is reported
			assert.True(t, logger.Enabled(context.Background(), level), "level %q", name)
			assert.False(t, logger.Enabled(context.Background(), level-1), "level %q", name)
			assert.Empty(t, out.String())
		}
	})

	t.Run("Unknown level falls back to info and says so", func(t *testing.T) {
		var out bytes.Buffer

		// Given: a misspelled level
		logger := newLogger(&out, "verbose")

		// Then: info is used and the bad value is logged once
		assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
		assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
		assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("unknown log level")))
		assert.Contains(t, out.String(), `"log-level":"verbose"`)
	})
}
