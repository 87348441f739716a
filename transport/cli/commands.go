package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type handler struct {
	logger *slog.Logger
	plain  bool
}

// NewRootCommand - builds the tictactoe command tree. Without a subcommand it plays interactively.
func NewRootCommand(logger *slog.Logger, conf *config.Config) *cobra.Command {
	that := &handler{
		logger: logger.With("component", "cli"),
		plain:  conf.Render.Plain,
	}

	root := &cobra.Command{
		Use:           "tictactoe",
		Short:         "Two players, one terminal, a 3x3 board",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          that.play,
	}

	root.PersistentFlags().BoolVar(&that.plain, "plain", that.plain, "draw without colors")

	root.AddCommand(
		&cobra.Command{
			Use:   "play",
			Short: "Play a game, one \"row,col\" move per line",
			Args:  cobra.NoArgs,
			RunE:  that.play,
		},
		&cobra.Command{
			Use:   "replay FILE",
			Short: "Replay the moves listed in a YAML script",
			Args:  cobra.ExactArgs(1),
			RunE:  that.replay,
		},
	)

	return root
}

func (that *handler) newGameManager(cmd *cobra.Command) (*usecase.GameManager, *render.Renderer) {
	renderer := render.New(cmd.OutOrStdout(), !that.plain)

	return usecase.NewGameManager(that.logger, renderer), renderer
}
