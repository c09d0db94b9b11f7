package game

// Direction is one of the four movement headings
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
	directionCount
)

// Directions lists the headings in input priority order
var Directions = [directionCount]Direction{Up, Down, Left, Right}

var directionVectors = [directionCount]Point{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

var directionNames = [directionCount]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d < directionCount
}

// Vector returns the unit cell offset for one step in d
func (d Direction) Vector() Point {
	if !d.Valid() {
		return Point{}
	}
	return directionVectors[d]
}

// Opposite returns the heading pointing the other way on the same axis
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Horizontal reports whether d moves along the X axis
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directionNames[d]
}

// Reverses reports whether turning from current to requested would reverse travel
// on the current axis
func Reverses(current, requested Direction) bool {
	return requested == current.Opposite()
}
