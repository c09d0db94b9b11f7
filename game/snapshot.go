package game

// Snapshot is a read-only copy of a State for renderers and logs
type Snapshot struct {
	Body     []Point
	Heading  Direction // direction of the last executed move
	Food     Point
	Score    int
	Terminal bool
	Cause    Cause
	Ticks    int
	Eaten    int
	Config   Config
}

// Snapshot copies the current state; the body slice is never shared with the State
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Body:     s.Body(),
		Heading:  s.direction,
		Food:     s.food,
		Score:    s.score,
		Terminal: s.terminal,
		Cause:    s.cause,
		Ticks:    s.ticks,
		Eaten:    s.eaten,
		Config:   s.cfg,
	}
}

// Length returns the number of active segments
func (snap Snapshot) Length() int {
	return len(snap.Body)
}

// Head returns the head cell, or the zero Point for an empty snapshot
func (snap Snapshot) Head() Point {
	if len(snap.Body) == 0 {
		return Point{}
	}
	return snap.Body[0]
}
