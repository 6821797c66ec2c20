// Package input aggregates platform events into a per-frame keyboard
// snapshot. The platform layer feeds it normalized events, so this package
// stays free of SDL types and can be driven synthetically in tests.
package input

// Button identifies a logical game button. Adding a button means extending
// this enumeration and the platform layer's scancode mapping together.
type Button int

const (
	Up Button = iota
	Down
	Left
	Right
	Confirm
	Cancel

	buttonCount
)

// EventKind discriminates normalized platform events.
type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
	Quit
	Resize
)

// Event is a normalized platform event. Button is meaningful for
// KeyDown/KeyUp, Width/Height for Resize.
type Event struct {
	Kind   EventKind
	Button Button
	Width  int
	Height int
}

// EventSource drains whatever platform events arrived since the last call,
// without blocking. Resize side effects (updating the drawing surface) are
// the source's responsibility; resize events may still be reported here but
// carry no input state.
type EventSource interface {
	PollEvents() []Event
}

// State is the per-button combined level and edge state.
type State struct {
	// Held is true while the key is down.
	Held bool
	// Pressed is true only during the tick in which the key went down.
	Pressed bool
}

// Snapshot is an immutable copy of the input state for one tick.
type Snapshot struct {
	buttons [buttonCount]State
	quit    bool
}

// Button returns the state of b. Out-of-range buttons read as released.
func (s Snapshot) Button(b Button) State {
	if b < 0 || b >= buttonCount {
		return State{}
	}
	return s.buttons[b]
}

// Held reports whether b is currently down.
func (s Snapshot) Held(b Button) bool { return s.Button(b).Held }

// Pressed reports whether b went down this tick.
func (s Snapshot) Pressed(b Button) bool { return s.Button(b).Pressed }

// QuitRequested reports whether a window-close signal has been received.
func (s Snapshot) QuitRequested() bool { return s.quit }

// Input is the mutable per-tick accumulator behind Snapshot.
type Input struct {
	state Snapshot
}

// New creates an input accumulator with all buttons released.
func New() *Input {
	return &Input{}
}

// Pump resets the previous tick's edge flags, then drains src and applies
// every recognized event. Level flags carry across ticks; the quit flag is
// sticky once raised. Unrecognized events are dropped.
func (in *Input) Pump(src EventSource) {
	for i := range in.state.buttons {
		in.state.buttons[i].Pressed = false
	}

	for _, ev := range src.PollEvents() {
		switch ev.Kind {
		case KeyDown:
			if ev.Button < 0 || ev.Button >= buttonCount {
				continue
			}
			st := &in.state.buttons[ev.Button]
			if !st.Held {
				st.Pressed = true
			}
			st.Held = true

		case KeyUp:
			if ev.Button < 0 || ev.Button >= buttonCount {
				continue
			}
			in.state.buttons[ev.Button].Held = false

		case Quit:
			in.state.quit = true
		}
	}
}

// Snapshot returns a copy of the current combined state. Calling it any
// number of times between pumps yields identical results.
func (in *Input) Snapshot() Snapshot {
	return in.state
}
