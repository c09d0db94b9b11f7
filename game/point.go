package game

// Point is a playfield cell coordinate; X grows rightward, Y grows downward
type Point struct {
	X, Y int
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}
