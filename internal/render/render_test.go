package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, moves ...tictactoe.Coordinate) entity.Game {
	t.Helper()

	game := entity.NewGame("render")
	for _, move := range moves {
		next, err := game.Play(move)
		require.NoError(t, err)
		game = next
	}

	return game
}

func TestRenderer_RenderTurn(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		// Given: a plain renderer and a new game
		var buf bytes.Buffer
		renderer := New(&buf, false)

		// When: the first turn is rendered
		err := renderer.RenderTurn(entity.NewGame("render"))
		require.NoError(t, err)

		// Then: O is marked as active and the grid is empty
		expected := "" +
			"[O]  X \n" +
			"\n" +
			"   0   1   2\n" +
			"0    |   |   \n" +
			"  ---+---+---\n" +
			"1    |   |   \n" +
			"  ---+---+---\n" +
			"2    |   |   \n" +
			"\n" +
			"turn 1, O to move\n"

		assert.Equal(t, expected, buf.String())
	})

	t.Run("Board with marks", func(t *testing.T) {
		var buf bytes.Buffer
		renderer := New(&buf, false)

		// Given: O took the center and X the bottom right corner
		game := play(t, tictactoe.Coordinate{Row: 1, Col: 1}, tictactoe.Coordinate{Row: 2, Col: 2})

		// When: the turn is rendered
		require.NoError(t, renderer.RenderTurn(game))

		// Then: the marks show up in their cells and O is to move
		assert.Contains(t, buf.String(), "1    | O |   \n")
		assert.Contains(t, buf.String(), "2    |   | X \n")
		assert.Contains(t, buf.String(), "turn 3, O to move\n")
	})
}

func TestRenderer_RenderGameOver(t *testing.T) {
	t.Run("Winner", func(t *testing.T) {
		var buf bytes.Buffer
		renderer := New(&buf, false)

		// Given: O completed the top row
		game := play(t,
			tictactoe.Coordinate{Row: 0, Col: 0}, tictactoe.Coordinate{Row: 1, Col: 0},
			tictactoe.Coordinate{Row: 0, Col: 1}, tictactoe.Coordinate{Row: 1, Col: 1},
			tictactoe.Coordinate{Row: 0, Col: 2},
		)

		// When: the game over screen is rendered
		require.NoError(t, renderer.RenderGameOver(game))

		// Then: the winner is announced
		assert.Contains(t, buf.String(), "0  O | O | O \n")
		assert.Contains(t, buf.String(), "Game over, O wins!\n")
	})

	t.Run("Draw", func(t *testing.T) {
		var buf bytes.Buffer
		renderer := New(&buf, false)

		// Given: a full board without a line
		game := play(t,
			tictactoe.Coordinate{Row: 0, Col: 0}, tictactoe.Coordinate{Row: 0, Col: 1},
			tictactoe.Coordinate{Row: 0, Col: 2}, tictactoe.Coordinate{Row: 1, Col: 1},
			tictactoe.Coordinate{Row: 1, Col: 0}, tictactoe.Coordinate{Row: 1, Col: 2},
			tictactoe.Coordinate{Row: 2, Col: 1}, tictactoe.Coordinate{Row: 2, Col: 0},
			tictactoe.Coordinate{Row: 2, Col: 2},
		)

		// When: the game over screen is rendered
		require.NoError(t, renderer.RenderGameOver(game))

		// Then: the draw branch is used
		assert.Contains(t, buf.String(), "Game over, it's a draw!\n")
		assert.NotContains(t, buf.String(), "wins")
	})
}

func TestRenderer_RenderError(t *testing.T) {
	var buf bytes.Buffer
	renderer := New(&buf, false)

	require.NoError(t, renderer.RenderError(errors.New("cell is already occupied")))

	assert.Equal(t, "cell is already occupied\n", buf.String())
}
