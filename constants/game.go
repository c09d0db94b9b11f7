package constants

import "time"

// Playfield Geometry
// The playfield is fixed; every position is a cell index inside it.
const (
	// GridCols and GridRows are the playfield size in cells
	GridCols = 30
	GridRows = 22

	// CellSize is the pixel edge length of one cell in the window frontend
	CellSize = 20

	// PlayfieldOriginX and PlayfieldOriginY are the pixel coordinates of cell (0,0)
	PlayfieldOriginX = 20
	PlayfieldOriginY = 20

	// BorderInset is the pixel distance between the window edge and the drawn border
	BorderInset = 10

	// WindowWidth and WindowHeight are the window frontend dimensions in pixels
	WindowWidth  = 640
	WindowHeight = 480
)

// Snake Lifecycle
const (
	// StartCol and StartRow place the head at pixel (320,240) with the default origin
	StartCol = 15
	StartRow = 11

	// InitialSnakeLength is the segment count after reset
	InitialSnakeLength = 5

	// MaxSnakeLength caps growth; eating at capacity still scores
	MaxSnakeLength = 500

	// FoodReward is the score gained per food eaten
	FoodReward = 10
)

// Game Loop Timing
const (
	// TickRate is the number of simulation ticks per second
	TickRate = 8

	// TickInterval is the duration of one simulation tick
	TickInterval = time.Second / TickRate

	// EventChannelSize buffers terminal events between polling and the loop
	EventChannelSize = 100
)
