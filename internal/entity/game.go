package entity

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Outcome describes how a finished game ended.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "win"
	OutcomeDraw Outcome = "draw"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a play session: the latest engine state plus the status derived from it.
// Play returns a new Game and never changes the receiver.
type Game struct {
	ID      string                 `json:"id"`
	State   tictactoe.GameState    `json:"state"`
	Status  string                 `json:"status"`
	Outcome Outcome                `json:"outcome,omitempty"`
	Winner  tictactoe.Player       `json:"winner,omitempty"`
	Moves   []tictactoe.Coordinate `json:"moves,omitempty"`
}

func NewGame(id string) Game {
	return Game{
		ID:     id,
		State:  tictactoe.Initialize(),
		Status: StatusOngoing,
	}
}

// DetermineGameResult - a completed line wins, a full board without one is a draw,
// anything else keeps the game going.
func (that Game) DetermineGameResult() (Outcome, tictactoe.Player) {
	if winner, ok := tictactoe.DetectWinner(that.State); ok {
		return OutcomeWin, winner
	}

	// the game will continue until all the squares are full
	if !tictactoe.IsBoardFull(that.State) {
		return OutcomeNone, tictactoe.NoPlayer
	}

	return OutcomeDraw, tictactoe.NoPlayer
}

func (that Game) withResult() Game {
	switch outcome, winner := that.DetermineGameResult(); outcome {
	case OutcomeWin:
		that.Status = StatusFinished
		that.Outcome = OutcomeWin
		that.Winner = winner
	case OutcomeDraw:
		that.Status = StatusFinished
		that.Outcome = OutcomeDraw
		that.Winner = tictactoe.NoPlayer
	default:
		that.Status = StatusOngoing
	}

	return that
}

// Play - applies the current player's move at coord and returns the next session.
func (that Game) Play(coord tictactoe.Coordinate) (Game, error) {
	if err := that.ConfirmOngoingState(); err != nil {
		return that, err
	}

	state, err := tictactoe.ApplyMove(that.State, coord)
	if err != nil {
		return that, fmt.Errorf("invalid turn: %w", err)
	}

	next := that
	next.State = state
	next.Moves = append(slices.Clone(that.Moves), coord)

	return next.withResult(), nil
}

func (that Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that Game) IsDraw() bool {
	return that.Outcome == OutcomeDraw
}

func (that Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGameStatus, that.Status)
	}
}
