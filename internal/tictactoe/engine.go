package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// lines lists every row, then every column, then the main and the anti diagonal.
// DetectWinner walks them in this order.
var lines = [8][3]Coordinate{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Initialize - returns the starting state: O then X, turn 0, empty board, O to move.
func Initialize() GameState {
	players := [2]Player{PlayerO, PlayerX}

	return GameState{
		Players:       players,
		CurrentPlayer: players[0],
		Turn:          0,
		Board:         Board{},
	}
}

// IsCellOccupied - reports whether the cell at coord already holds a symbol.
func IsCellOccupied(state GameState, coord Coordinate) (bool, error) {
	if err := coord.Validate(); err != nil {
		return false, err
	}

	return !state.Cell(coord).IsEmpty(), nil
}

// ApplyMove - marks coord with the current player's symbol and passes the turn.
// The input state is left untouched; on error no state is produced.
func ApplyMove(state GameState, coord Coordinate) (GameState, error) {
	occupied, err := IsCellOccupied(state, coord)
	if err != nil {
		return GameState{}, err
	}

	if occupied {
		return GameState{}, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, coord)
	}

	next := state
	next.Board[coord.Row][coord.Col] = markOf(state.CurrentPlayer)
	next.Turn = state.Turn + 1
	next.CurrentPlayer = nextPlayer(state)

	return next, nil
}

// DetectWinner - returns the player owning the first complete line, if any.
func DetectWinner(state GameState) (Player, bool) {
	for _, line := range lines {
		a, b, c := state.Cell(line[0]), state.Cell(line[1]), state.Cell(line[2])
		if !a.IsEmpty() && a == b && b == c {
			return a.Player(), true
		}
	}

	return NoPlayer, false
}

// IsBoardFull reports whether no empty cell is left.
func IsBoardFull(state GameState) bool {
	return len(EmptyCells(state)) == 0
}

// EmptyCells returns the unmarked coordinates in row-major order.
func EmptyCells(state GameState) []Coordinate {
	empty := make([]Coordinate, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if state.Board[row][col].IsEmpty() {
				empty = append(empty, Coordinate{Row: row, Col: col})
			}
		}
	}

	return empty
}

func nextPlayer(state GameState) Player {
	return state.Players[(state.Turn+1)%len(state.Players)]
}
