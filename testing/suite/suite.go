package suite

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Out collects everything drawn by Renderer.
	Out      *bytes.Buffer
	Renderer *render.Renderer
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	out := &bytes.Buffer{}

	return ctx, &Suite{
		T:        t,
		Logger:   logger,
		Out:      out,
		Renderer: render.New(out, false),
	}
}
