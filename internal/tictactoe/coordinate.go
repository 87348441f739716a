package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Coordinate addresses a cell by row and column, both in [0, BoardSize).
type Coordinate struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

func (that Coordinate) Validate() error {
	if that.Row < 0 || that.Row >= BoardSize || that.Col < 0 || that.Col >= BoardSize {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCoordinate, that.Row, that.Col)
	}

	return nil
}

func (that Coordinate) String() string {
	return fmt.Sprintf("%d,%d", that.Row, that.Col)
}

// ParseCoordinate - parses "row,col" or "row col" into a coordinate. Exactly one
// separator is allowed. The result is not range checked.
func ParseCoordinate(input string) (Coordinate, error) {
	trimmed := strings.TrimSpace(input)

	var fields []string
	if before, after, found := strings.Cut(trimmed, ","); found {
		fields = []string{before, after}
	} else {
		fields = strings.Fields(trimmed)
	}

	if len(fields) != 2 {
		return Coordinate{}, fmt.Errorf("%w: expected \"row,col\", got %q", apperror.ErrInvalidCoordinate, input)
	}

	row, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: bad row %q", apperror.ErrInvalidCoordinate, fields[0])
	}

	col, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: bad col %q", apperror.ErrInvalidCoordinate, fields[1])
	}

	return Coordinate{Row: row, Col: col}, nil
}
