package game

// placeFood draws uniformly random cells until one is free of the active body.
// After FoodAttempts misses it scans row-major from a random cell, which only
// happens when the snake covers most of the playfield. Config.Validate keeps
// MaxLength below the cell count, so the scan always finds a cell.
func (s *State) placeFood() Point {
	cells := s.cfg.Cells()

	for i := 0; i < s.cfg.FoodAttempts; i++ {
		p := cellAt(s.rng.Intn(cells), s.cfg.Cols)
		if !s.occupied(p) {
			return p
		}
	}

	start := s.rng.Intn(cells)
	for i := 0; i < cells; i++ {
		p := cellAt((start+i)%cells, s.cfg.Cols)
		if !s.occupied(p) {
			return p
		}
	}

	// Unreachable under a valid config
	return s.food
}

// occupied reports whether p is covered by one of the active segments
func (s *State) occupied(p Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

func cellAt(index, cols int) Point {
	return Point{X: index % cols, Y: index / cols}
}
