package engine

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/snake/game"
	"github.com/lixenwraith/snake/input"
)

// Sound receives gameplay audio cues
type Sound interface {
	PlayEat()
	PlayCrash()
}

// Renderer consumes one snapshot per frame
type Renderer interface {
	Draw(game.Snapshot)
}

type silentSound struct{}

func (silentSound) PlayEat()   {}
func (silentSound) PlayCrash() {}

// Driver applies one tick of player input to the simulation and routes the resulting events.
// It owns the State; callers only see snapshots.
type Driver struct {
	state *game.State
	sound Sound
	clock Clock

	round      uuid.UUID
	roundStart time.Time
}

// NewDriver wraps state; a nil sound runs silent, a nil clock uses the system clock
func NewDriver(state *game.State, sound Sound, clock Clock) *Driver {
	if sound == nil {
		sound = silentSound{}
	}
	if clock == nil {
		clock = SystemClock{}
	}
	d := &Driver{state: state, sound: sound, clock: clock}
	d.startRound()
	return d
}

// Step processes one tick. It returns true when the player asked to quit.
// Restart is honoured only after game over. Of the pressed directions, the first
// in Up, Down, Left, Right order that the state accepts is applied.
func (d *Driver) Step(f input.Frame) (quit bool) {
	if f.Quit {
		log.Printf("round %s: quit requested at tick %d", d.round, d.state.Ticks())
		return true
	}

	if f.Restart && d.state.Terminal() {
		d.state.Reset()
		d.startRound()
	}

	for _, dir := range game.Directions {
		if f.Pressed[dir] && d.state.SetDirection(dir) {
			break
		}
	}

	ev := d.state.AdvanceTick()
	if ev.Has(game.EventAte) {
		d.sound.PlayEat()
		if ev.Has(game.EventCapped) {
			log.Printf("round %s: length capped at %d", d.round, d.state.Length())
		}
	}
	if ev.Has(game.EventCollided) {
		d.sound.PlayCrash()
		d.endRound()
	}

	return false
}

// Snapshot returns a copy of the current state for rendering
func (d *Driver) Snapshot() game.Snapshot {
	return d.state.Snapshot()
}

// Round returns the id of the current round
func (d *Driver) Round() uuid.UUID {
	return d.round
}

// Elapsed returns how long the current round has been running
func (d *Driver) Elapsed() time.Duration {
	return d.clock.Now().Sub(d.roundStart)
}

func (d *Driver) startRound() {
	d.round = uuid.New()
	d.roundStart = d.clock.Now()
	log.Printf("round %s: started, food at %v", d.round, d.state.Food())
}

func (d *Driver) endRound() {
	log.Printf("round %s: over (%s) score=%d length=%d eaten=%d ticks=%d elapsed=%s",
		d.round, d.state.Cause(), d.state.Score(), d.state.Length(), d.state.Eaten(),
		d.state.Ticks(), d.Elapsed().Round(time.Millisecond))
}
