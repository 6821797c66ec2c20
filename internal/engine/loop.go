package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mankyKitty/arcade-rs/internal/engine/gfx"
	"github.com/mankyKitty/arcade-rs/internal/engine/input"
)

// tickInterval is the minimum milliseconds between ticks (60 Hz cap). The
// loop never renders faster than this but may render slower under load; it
// does not attempt catch-up.
const tickInterval = 1000 / 60

// Loop is the frame driver: it paces ticks, pumps input, dispatches to the
// active view, and interprets the returned action.
type Loop struct {
	renderer *gfx.Context
	input    *input.Input
	events   input.EventSource
	clock    Clock
	view     View
	log      *zap.Logger

	// showFPS raises the per-second FPS line from debug to info.
	showFPS bool
}

// NewLoop assembles a loop. The loop takes ownership of first and of every
// view adopted through Replace.
func NewLoop(renderer *gfx.Context, events input.EventSource, clock Clock, first View, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		renderer: renderer,
		input:    input.New(),
		events:   events,
		clock:    clock,
		view:     first,
		log:      log,
	}
}

// Run blocks until the active view returns Quit or the surface fails.
func (l *Loop) Run() error {
	before := l.clock.Ticks()
	lastReport := before
	frames := 0

	l.log.Info("starting game loop")

	for {
		now := l.clock.Ticks()
		dt := now - before

		// Below the target interval: wait out the difference and retry
		// without advancing tick state.
		if dt < tickInterval {
			l.clock.Delay(tickInterval - dt)
			continue
		}

		before = now
		frames++
		if now-lastReport > 1000 {
			if l.showFPS {
				l.log.Info("fps", zap.Int("count", frames))
			} else {
				l.log.Debug("fps", zap.Int("count", frames))
			}
			frames = 0
			lastReport = now
		}

		l.input.Pump(l.events)

		ctx := &Context{
			Renderer: l.renderer,
			Input:    l.input.Snapshot(),
		}
		action := l.view.Render(ctx, float64(dt)/1000)

		switch action.kind {
		case actionContinue:
			if err := l.renderer.Present(); err != nil {
				return fmt.Errorf("present frame: %w", err)
			}

		case actionQuit:
			l.log.Info("view requested quit")
			return nil

		case actionReplace:
			// The outgoing view is dropped here; the incoming view draws
			// its first frame next tick, so nothing is presented now.
			l.view = action.next
			if err := l.renderer.Err(); err != nil {
				return fmt.Errorf("surface error: %w", err)
			}
		}
	}
}
