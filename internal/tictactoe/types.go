package tictactoe

// BoardSize is the number of rows and columns of the board.
const BoardSize = 3

// Player is the symbol a player marks cells with.
type Player string

const (
	PlayerO  Player = "O"
	PlayerX  Player = "X"
	NoPlayer Player = ""
)

// Cell is a single board position, either empty or marked by a player.
type Cell string

const EmptyCell Cell = ""

func markOf(player Player) Cell {
	return Cell(player)
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

func (that Cell) Player() Player {
	return Player(that)
}

// Board is a row-major 3x3 grid.
type Board [BoardSize][BoardSize]Cell

// GameState is an immutable snapshot of a game. Operations take it by value and
// return a new value.
type GameState struct {
	Players       [2]Player `json:"players"`
	CurrentPlayer Player    `json:"current_player"`
	Turn          int       `json:"turn"`
	Board         Board     `json:"board"`
}

// Cell returns the cell at a valid coordinate.
func (that GameState) Cell(coord Coordinate) Cell {
	return that.Board[coord.Row][coord.Col]
}
