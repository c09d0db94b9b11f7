package game

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/snake/constants"
)

// ErrInvalidConfig is wrapped by every Config validation failure
var ErrInvalidConfig = errors.New("invalid game config")

// Config fixes the playfield geometry and scoring rules for a State
type Config struct {
	Cols, Rows int

	// CellSize, OriginX and OriginY map cells to pixels for window frontends
	CellSize         int
	OriginX, OriginY int

	// Start is the head cell after reset; the body trails leftward from it
	Start         Point
	InitialLength int
	MaxLength     int
	FoodReward    int

	// FoodAttempts caps rejection sampling before falling back to a scan
	FoodAttempts int
}

// DefaultConfig returns the classic 30x22 playfield
func DefaultConfig() Config {
	return Config{
		Cols:          constants.GridCols,
		Rows:          constants.GridRows,
		CellSize:      constants.CellSize,
		OriginX:       constants.PlayfieldOriginX,
		OriginY:       constants.PlayfieldOriginY,
		Start:         Point{X: constants.StartCol, Y: constants.StartRow},
		InitialLength: constants.InitialSnakeLength,
		MaxLength:     constants.MaxSnakeLength,
		FoodReward:    constants.FoodReward,
		FoodAttempts:  4 * constants.GridCols * constants.GridRows,
	}
}

// Validate checks the geometry can host the initial snake and always leaves a free cell for food
func (c Config) Validate() error {
	switch {
	case c.Cols <= 0 || c.Rows <= 0:
		return fmt.Errorf("%w: playfield %dx%d", ErrInvalidConfig, c.Cols, c.Rows)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	case c.InitialLength < 1:
		return fmt.Errorf("%w: initial length %d", ErrInvalidConfig, c.InitialLength)
	case c.MaxLength < c.InitialLength:
		return fmt.Errorf("%w: max length %d below initial length %d", ErrInvalidConfig, c.MaxLength, c.InitialLength)
	case c.MaxLength >= c.Cells():
		return fmt.Errorf("%w: max length %d leaves no free cell in %d", ErrInvalidConfig, c.MaxLength, c.Cells())
	case c.FoodReward < 0:
		return fmt.Errorf("%w: food reward %d", ErrInvalidConfig, c.FoodReward)
	case c.FoodAttempts < 0:
		return fmt.Errorf("%w: food attempts %d", ErrInvalidConfig, c.FoodAttempts)
	}

	tail := Point{X: c.Start.X - (c.InitialLength - 1), Y: c.Start.Y}
	if !c.Contains(c.Start) || !c.Contains(tail) {
		return fmt.Errorf("%w: initial body %v..%v outside playfield", ErrInvalidConfig, c.Start, tail)
	}
	return nil
}

// Cells returns the number of playfield cells
func (c Config) Cells() int {
	return c.Cols * c.Rows
}

// Contains reports whether p lies in the half-open rectangle [0,Cols) x [0,Rows)
func (c Config) Contains(p Point) bool {
	return p.X >= 0 && p.X < c.Cols && p.Y >= 0 && p.Y < c.Rows
}

// Pixel returns the pixel centre of cell p
func (c Config) Pixel(p Point) (x, y int) {
	return c.OriginX + p.X*c.CellSize, c.OriginY + p.Y*c.CellSize
}
