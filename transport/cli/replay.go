package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// script is the replay file format. Moves are either "row,col" strings or
// {row: R, col: C} mappings.
type script struct {
	Moves []scriptMove `yaml:"moves"`
}

type scriptMove tictactoe.Coordinate

func (that *scriptMove) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		coord, err := tictactoe.ParseCoordinate(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		*that = scriptMove(coord)
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %w: expected \"row,col\" or {row, col}", node.Line, apperror.ErrInvalidCoordinate)
	}

	var row, col *int
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var target **int
		switch key.Value {
		case "row":
			target = &row
		case "col":
			target = &col
		default:
			return fmt.Errorf("line %d: %w: unknown key %q", key.Line, apperror.ErrInvalidCoordinate, key.Value)
		}

		var n int
		if err := value.Decode(&n); err != nil {
			return fmt.Errorf("line %d: %w: bad %s %q", value.Line, apperror.ErrInvalidCoordinate, key.Value, value.Value)
		}
		*target = &n
	}

	if row == nil || col == nil {
		return fmt.Errorf("line %d: %w: both row and col are required", node.Line, apperror.ErrInvalidCoordinate)
	}

	*that = scriptMove{Row: *row, Col: *col}
	return nil
}

func loadScript(path string) ([]tictactoe.Coordinate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	var parsed script
	if err = yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse script %s: %w", path, err)
	}

	moves := make([]tictactoe.Coordinate, 0, len(parsed.Moves))
	for _, move := range parsed.Moves {
		moves = append(moves, tictactoe.Coordinate(move))
	}

	return moves, nil
}

func (that *handler) replay(cmd *cobra.Command, args []string) error {
	log := that.logger.With("method", "replay", "script", args[0])

	moves, err := loadScript(args[0])
	if err != nil {
		return err
	}

	manager, _ := that.newGameManager(cmd)

	game, err := manager.Replay(moves)
	if err != nil {
		return fmt.Errorf("replay stopped: %w", err)
	}

	if !game.IsFinished() {
		log.Info("script ended before the game did", "gameID", game.ID, "turn", game.State.Turn)
	}

	return nil
}
