// Package engine drives the game: it owns the rendering context and input
// accumulator, runs the fixed-rate frame loop, and dispatches each tick to
// the active view.
package engine

import (
	"github.com/mankyKitty/arcade-rs/internal/engine/gfx"
	"github.com/mankyKitty/arcade-rs/internal/engine/input"
)

// Context bundles what a view needs for one tick: the rendering context and
// this tick's input snapshot. Views must not retain the renderer beyond the
// call they received it in.
type Context struct {
	Renderer *gfx.Context
	Input    input.Snapshot
}

// View is a swappable unit of per-frame game logic and rendering. Render is
// called exactly once per tick with the elapsed time in seconds and returns
// the action the loop should take. A view owns its private state and any
// scoped resources; there is no teardown callback after it is replaced.
type View interface {
	Render(ctx *Context, elapsed float64) Action
}

type actionKind int

const (
	actionContinue actionKind = iota
	actionQuit
	actionReplace
)

// Action is a view's verdict for the tick: keep going, stop the loop, or
// hand control to another view.
type Action struct {
	kind actionKind
	next View
}

// Continue presents the frame and keeps the current view.
func Continue() Action {
	return Action{kind: actionContinue}
}

// Quit stops the loop without presenting the frame.
func Quit() Action {
	return Action{kind: actionQuit}
}

// Replace drops the current view and adopts next. The transition tick is
// not presented; next renders its first frame on the following tick.
func Replace(next View) Action {
	return Action{kind: actionReplace, next: next}
}
