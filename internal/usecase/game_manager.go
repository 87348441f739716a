package usecase

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type renderer interface {
	RenderTurn(game entity.Game) error
	RenderGameOver(game entity.Game) error
}

// GameManager takes a coordinate, produces the next session or an error,
// and asks the renderer to draw the result. Calls are serialized, a replay
// counts as one call.
type GameManager struct {
	logger   *slog.Logger
	renderer renderer

	mu      sync.Mutex
	game    entity.Game
	started bool
}

func NewGameManager(logger *slog.Logger, renderer renderer) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		renderer: renderer,
	}
}

// NewGame - starts a fresh session, replacing the current one.
func (that *GameManager) NewGame() (entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.newGame()
}

// MakeTurn - applies coord for the current player. On error the current session is
// returned unchanged.
func (that *GameManager) MakeTurn(coord tictactoe.Coordinate) (entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.makeTurn(coord)
}

// Replay - starts a new game and plays moves in order, stopping at the first one
// that is rejected. No other call runs until the replay is over.
func (that *GameManager) Replay(moves []tictactoe.Coordinate) (entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.newGame()
	if err != nil {
		return game, err
	}

	for i, move := range moves {
		game, err = that.makeTurn(move)
		if err != nil {
			return game, fmt.Errorf("move %d (%s): %w", i+1, move, err)
		}
	}

	return game, nil
}

func (that *GameManager) Game() entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game
}

func (that *GameManager) newGame() (entity.Game, error) {
	game := entity.NewGame(pkg.GenerateGameID())
	that.game = game
	that.started = true

	that.logger.Info("game started", "gameID", game.ID, "player", game.State.CurrentPlayer)

	if err := that.renderer.RenderTurn(game); err != nil {
		return game, fmt.Errorf("failed to render turn: %w", err)
	}

	return game, nil
}

func (that *GameManager) makeTurn(coord tictactoe.Coordinate) (entity.Game, error) {
	if !that.started {
		return entity.Game{}, apperror.ErrGameIsNotStarted
	}

	log := that.logger.With("method", "MakeTurn", "gameID", that.game.ID, "coordinate", coord.String())

	player := that.game.State.CurrentPlayer

	game, err := that.game.Play(coord)
	if err != nil {
		log.Warn("turn rejected", "player", player, "error", err)
		return that.game, fmt.Errorf("failed make turn: %w", err)
	}

	that.game = game
	log.Debug("turn accepted", "player", player, "turn", game.State.Turn)

	if game.IsFinished() {
		return game, that.finishGame(log, game)
	}

	if err = that.renderer.RenderTurn(game); err != nil {
		return game, fmt.Errorf("failed to render turn: %w", err)
	}

	return game, nil
}

func (that *GameManager) finishGame(log *slog.Logger, game entity.Game) error {
	switch {
	case game.IsDraw():
		log.Info("game finished in a draw", "turns", game.State.Turn)
	case game.Outcome == entity.OutcomeWin:
		log.Info("game finished", "winner", game.Winner, "turns", game.State.Turn)
	default:
		return fmt.Errorf("%w: outcome %q", entity.ErrUnknownGameStatus, game.Outcome)
	}

	if err := that.renderer.RenderGameOver(game); err != nil {
		return fmt.Errorf("failed to render game over: %w", err)
	}

	return nil
}
