package game

// Cause records why a round ended
type Cause uint8

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}

// Event is the set of things that happened during one AdvanceTick
type Event uint8

const (
	EventMoved Event = 1 << iota
	EventAte
	EventCapped // ate while at MaxLength; score counted, no growth
	EventCollided
)

// Has reports whether all bits of flag are set in e
func (e Event) Has(flag Event) bool {
	return e&flag == flag
}

// State is the complete simulation of one playfield and one snake.
// It is owned by a single goroutine; hand Snapshot copies to other readers.
type State struct {
	cfg Config
	rng Rand

	// body[0] is the head; len(body) is the active length, cap(body) is MaxLength
	body []Point

	// direction is the heading of the last executed move, pending the next one
	direction Direction
	pending   Direction

	food     Point
	score    int
	terminal bool
	cause    Cause
	ticks    int
	eaten    int
}

// NewState validates cfg and returns a freshly reset State
func NewState(cfg Config, rng Rand) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(0)
	}

	s := &State{
		cfg:  cfg,
		rng:  rng,
		body: make([]Point, 0, cfg.MaxLength),
	}
	s.Reset()
	return s, nil
}

// Reset starts a new round: initial body trailing left of Start, heading right, zero score
func (s *State) Reset() {
	s.body = s.body[:0]
	for i := 0; i < s.cfg.InitialLength; i++ {
		s.body = append(s.body, Point{X: s.cfg.Start.X - i, Y: s.cfg.Start.Y})
	}

	s.direction = Right
	s.pending = Right
	s.score = 0
	s.terminal = false
	s.cause = CauseNone
	s.ticks = 0
	s.eaten = 0
	s.food = s.placeFood()
}

// SetDirection queues the heading for the next tick.
// Only turns onto the other axis of travel are accepted: while moving horizontally
// only Up and Down count, while moving vertically only Left and Right. Repeating the
// current heading or reversing it is refused. The return value reports acceptance.
func (s *State) SetDirection(requested Direction) bool {
	if !requested.Valid() || requested.Horizontal() == s.direction.Horizontal() {
		return false
	}
	s.pending = requested
	return true
}

// AdvanceTick moves the snake one cell and resolves collisions before food.
// It does nothing once the round is over.
func (s *State) AdvanceTick() Event {
	if s.terminal {
		return 0
	}

	s.ticks++
	s.direction = s.pending
	tail := s.body[len(s.body)-1]

	// Shift movement: every segment takes its predecessor's cell
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = s.body[0].Add(s.direction.Vector())
	head := s.body[0]

	if !s.cfg.Contains(head) {
		s.end(CauseWall)
		return EventMoved | EventCollided
	}

	for _, seg := range s.body[1:] {
		if seg == head {
			s.end(CauseSelf)
			return EventMoved | EventCollided
		}
	}

	if head != s.food {
		return EventMoved
	}

	ev := EventMoved | EventAte
	s.score += s.cfg.FoodReward
	s.eaten++
	if len(s.body) < s.cfg.MaxLength {
		s.body = append(s.body, tail)
	} else {
		ev |= EventCapped
	}
	s.food = s.placeFood()
	return ev
}

func (s *State) end(cause Cause) {
	s.terminal = true
	s.cause = cause
}

// PlaceFood moves the food to p if p is inside the playfield and off the body
func (s *State) PlaceFood(p Point) bool {
	if !s.cfg.Contains(p) || s.occupied(p) {
		return false
	}
	s.food = p
	return true
}

// Direction is the pending heading the next tick will use
func (s *State) Direction() Direction { return s.pending }

// Heading is the direction of the last executed move
func (s *State) Heading() Direction { return s.direction }

func (s *State) Config() Config { return s.cfg }
func (s *State) Head() Point    { return s.body[0] }
func (s *State) Length() int    { return len(s.body) }
func (s *State) Food() Point    { return s.food }
func (s *State) Score() int     { return s.score }
func (s *State) Terminal() bool { return s.terminal }
func (s *State) Cause() Cause   { return s.cause }
func (s *State) Ticks() int     { return s.ticks }
func (s *State) Eaten() int     { return s.eaten }

// Body returns a copy of the active segments, head first
func (s *State) Body() []Point {
	return append([]Point(nil), s.body...)
}
