package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var errQuit = errors.New("quit")

type session struct {
	manager  *usecase.GameManager
	renderer *render.Renderer
	commands map[string]func() error
}

func (that *handler) play(cmd *cobra.Command, _ []string) error {
	log := that.logger.With("method", "play")

	manager, renderer := that.newGameManager(cmd)
	current := &session{
		manager:  manager,
		renderer: renderer,
	}

	current.commands = map[string]func() error{
		"q":    current.quit,
		"quit": current.quit,
		"new":  current.newGame,
	}

	if err := current.newGame(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	lines, errs := readLines(ctx, cmd.InOrStdin())

	for {
		select {
		case <-ctx.Done():
			log.Info("game interrupted", "gameID", manager.Game().ID)
			return nil
		case err := <-errs:
			return fmt.Errorf("failed to read input: %w", err)
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errs:
					return fmt.Errorf("failed to read input: %w", err)
				default:
				}

				log.Info("input closed", "gameID", manager.Game().ID)
				return nil
			}

			finished, err := current.handleLine(line)
			if errors.Is(err, errQuit) {
				return nil
			}

			if err != nil {
				return err
			}

			if finished {
				return nil
			}
		}
	}
}

// handleLine - runs a control word or a move. It reports whether the game is over.
func (that *session) handleLine(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}

	if command, ok := that.commands[strings.ToLower(line)]; ok {
		return false, command()
	}

	coord, err := tictactoe.ParseCoordinate(line)
	if err != nil {
		return false, that.renderer.RenderError(err)
	}

	game, err := that.manager.MakeTurn(coord)
	if errors.Is(err, apperror.ErrInvalidCoordinate) || errors.Is(err, apperror.ErrCellOccupied) {
		return false, that.renderer.RenderError(err)
	}

	if err != nil {
		return false, fmt.Errorf("failed to play %s: %w", coord, err)
	}

	return game.IsFinished(), nil
}

func (that *session) newGame() error {
	if _, err := that.manager.NewGame(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	return nil
}

func (that *session) quit() error {
	return errQuit
}

// readLines - feeds stdin lines into a channel until EOF or ctx is done.
func readLines(ctx context.Context, reader io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			errs <- err
		}
	}()

	return lines, errs
}
