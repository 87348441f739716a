package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	colorO = "#5fafff"
	colorX = "#ff5f87"
)

// Renderer draws game sessions on a terminal.
type Renderer struct {
	writer io.Writer
	output *termenv.Output
}

// New - creates a renderer writing to w. Without color the output is plain ASCII.
func New(w io.Writer, colored bool) *Renderer {
	profile := termenv.Ascii
	if colored {
		profile = termenv.EnvColorProfile()
	}

	return &Renderer{
		writer: w,
		output: termenv.NewOutput(w, termenv.WithProfile(profile)),
	}
}

// RenderTurn - draws the players line, the board and whose move it is.
func (that *Renderer) RenderTurn(game entity.Game) error {
	var sb strings.Builder

	sb.WriteString(that.players(game.State))
	sb.WriteString("\n\n")
	sb.WriteString(that.board(game.State))
	fmt.Fprintf(&sb, "\nturn %d, %s to move\n", game.State.Turn+1, that.mark(game.State.CurrentPlayer))

	return that.write(sb.String())
}

// RenderGameOver - draws the final board with the win or draw banner.
func (that *Renderer) RenderGameOver(game entity.Game) error {
	var sb strings.Builder

	sb.WriteString(that.board(game.State))
	sb.WriteString("\n")

	banner := "Game over, it's a draw!"
	if !game.IsDraw() {
		banner = fmt.Sprintf("Game over, %s wins!", that.mark(game.Winner))
	}

	sb.WriteString(that.output.String(banner).Bold().String())
	sb.WriteString("\n")

	return that.write(sb.String())
}

// RenderError - reports a rejected input without touching the board.
func (that *Renderer) RenderError(err error) error {
	return that.write(that.output.String(err.Error()).Faint().String() + "\n")
}

func (that *Renderer) players(state tictactoe.GameState) string {
	names := make([]string, 0, len(state.Players))
	for _, player := range state.Players {
		if player == state.CurrentPlayer {
			names = append(names, "["+that.mark(player)+"]")
			continue
		}

		names = append(names, " "+that.mark(player)+" ")
	}

	return strings.Join(names, " ")
}

func (that *Renderer) board(state tictactoe.GameState) string {
	var sb strings.Builder

	sb.WriteString("   0   1   2\n")
	for row := range tictactoe.BoardSize {
		if row > 0 {
			sb.WriteString("  ---+---+---\n")
		}

		cells := make([]string, 0, tictactoe.BoardSize)
		for col := range tictactoe.BoardSize {
			cells = append(cells, " "+that.cell(state.Board[row][col])+" ")
		}

		fmt.Fprintf(&sb, "%d %s\n", row, strings.Join(cells, "|"))
	}

	return sb.String()
}

func (that *Renderer) cell(cell tictactoe.Cell) string {
	if cell.IsEmpty() {
		return " "
	}

	return that.mark(cell.Player())
}

func (that *Renderer) mark(player tictactoe.Player) string {
	style := that.output.String(string(player)).Bold()

	switch player {
	case tictactoe.PlayerO:
		style = style.Foreground(that.output.Color(colorO))
	case tictactoe.PlayerX:
		style = style.Foreground(that.output.Color(colorX))
	}

	return style.String()
}

func (that *Renderer) write(text string) error {
	if _, err := io.WriteString(that.writer, text); err != nil {
		return fmt.Errorf("failed to write to terminal: %w", err)
	}

	return nil
}
