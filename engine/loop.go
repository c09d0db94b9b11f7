package engine

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/input"
)

// Loop runs a Driver against a tcell screen at a fixed tick rate
type Loop struct {
	screen   tcell.Screen
	driver   *Driver
	renderer Renderer
	keys     *input.KeyTable
	interval time.Duration
}

// NewLoop creates a terminal game loop; tickRate is ticks per second
func NewLoop(screen tcell.Screen, driver *Driver, renderer Renderer, keys *input.KeyTable, tickRate int) *Loop {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	interval := constants.TickInterval
	if tickRate > 0 {
		interval = time.Second / time.Duration(tickRate)
	}
	return &Loop{
		screen:   screen,
		driver:   driver,
		renderer: renderer,
		keys:     keys,
		interval: interval,
	}
}

// Run polls input, steps the driver once per tick and redraws.
// It returns nil on quit, context cancellation, or when the screen stops delivering events.
func (l *Loop) Run(ctx context.Context) error {
	events := make(chan tcell.Event, constants.EventChannelSize)
	done := make(chan struct{})
	defer close(done)
	go l.pollEvents(events, done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	var collector input.Collector
	l.renderer.Draw(l.driver.Snapshot())

	for {
		select {
		case <-ctx.Done():
			log.Printf("loop: %v", ctx.Err())
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action := l.keys.Resolve(ev)
				// Quit is handled immediately rather than waiting for the next tick
				if action == input.ActionQuit {
					return l.quit(collector.Flush())
				}
				collector.Add(action)
			case *tcell.EventResize:
				l.screen.Sync()
				l.renderer.Draw(l.driver.Snapshot())
			}

		case <-ticker.C:
			if l.driver.Step(collector.Flush()) {
				return nil
			}
			l.renderer.Draw(l.driver.Snapshot())
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or Run returns
func (l *Loop) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := l.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (l *Loop) quit(pending input.Frame) error {
	pending.Quit = true
	l.driver.Step(pending)
	return nil
}
