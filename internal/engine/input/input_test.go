package input

import "testing"

// fakeSource returns one scripted batch of events per pump.
type fakeSource struct {
	batches [][]Event
}

func (f *fakeSource) PollEvents() []Event {
	if len(f.batches) == 0 {
		return nil
	}
	batch := f.batches[0]
	f.batches = f.batches[1:]
	return batch
}

func TestPressAndHold(t *testing.T) {
	in := New()
	src := &fakeSource{batches: [][]Event{
		{{Kind: KeyDown, Button: Up}},
		{}, // no new events
	}}

	in.Pump(src)
	snap := in.Snapshot()
	if !snap.Held(Up) {
		t.Error("expected Up held after key down")
	}
	if !snap.Pressed(Up) {
		t.Error("expected Up pressed on the transition tick")
	}

	in.Pump(src)
	snap = in.Snapshot()
	if !snap.Held(Up) {
		t.Error("expected Up still held with no key up")
	}
	if snap.Pressed(Up) {
		t.Error("edge flag must not leak into the next tick")
	}
}

func TestRepeatedKeyDownNoEdge(t *testing.T) {
	in := New()
	src := &fakeSource{batches: [][]Event{
		{{Kind: KeyDown, Button: Confirm}},
		{{Kind: KeyDown, Button: Confirm}}, // key repeat while held
	}}

	in.Pump(src)
	in.Pump(src)
	if in.Snapshot().Pressed(Confirm) {
		t.Error("key down while already held must not set the edge flag")
	}
}

func TestRelease(t *testing.T) {
	in := New()
	src := &fakeSource{batches: [][]Event{
		{{Kind: KeyDown, Button: Left}},
		{{Kind: KeyUp, Button: Left}},
		{{Kind: KeyDown, Button: Left}},
	}}

	in.Pump(src)
	in.Pump(src)
	if in.Snapshot().Held(Left) {
		t.Error("expected Left released after key up")
	}

	// A fresh press after release produces a new edge.
	in.Pump(src)
	if !in.Snapshot().Pressed(Left) {
		t.Error("expected a new edge after release and re-press")
	}
}

func TestQuitSticky(t *testing.T) {
	in := New()
	src := &fakeSource{batches: [][]Event{
		{{Kind: Quit}},
		{},
		{},
	}}

	in.Pump(src)
	if !in.Snapshot().QuitRequested() {
		t.Fatal("expected quit after close event")
	}
	in.Pump(src)
	in.Pump(src)
	if !in.Snapshot().QuitRequested() {
		t.Error("quit flag must persist across pumps")
	}
}

func TestIndependentButtons(t *testing.T) {
	in := New()
	src := &fakeSource{batches: [][]Event{
		{{Kind: KeyDown, Button: Up}},
		{{Kind: KeyDown, Button: Right}},
	}}

	in.Pump(src)
	in.Pump(src)
	snap := in.Snapshot()
	if !snap.Held(Up) || snap.Pressed(Up) {
		t.Errorf("Up: got %+v, want held without edge", snap.Button(Up))
	}
	if !snap.Held(Right) || !snap.Pressed(Right) {
		t.Errorf("Right: got %+v, want held with edge", snap.Button(Right))
	}
}

func TestUnknownEventsIgnored(t *testing.T) {
	in := New()
	src := &fakeSource{batches: [][]Event{{
		{Kind: KeyDown, Button: Button(99)},
		{Kind: KeyUp, Button: Button(-1)},
		{Kind: Resize, Width: 1024, Height: 768},
	}}}

	in.Pump(src)
	snap := in.Snapshot()
	for b := Up; b < buttonCount; b++ {
		if snap.Held(b) || snap.Pressed(b) {
			t.Errorf("button %d affected by untracked events", b)
		}
	}
	if snap.QuitRequested() {
		t.Error("quit raised by untracked events")
	}
}

func TestSnapshotIdempotent(t *testing.T) {
	in := New()
	src := &fakeSource{batches: [][]Event{
		{{Kind: KeyDown, Button: Down}},
	}}

	in.Pump(src)
	first := in.Snapshot()
	second := in.Snapshot()
	if first != second {
		t.Error("repeated snapshots between pumps must be identical")
	}

	// Mutating state after the snapshot must not alias into the copy.
	in.Pump(src)
	if !first.Pressed(Down) {
		t.Error("snapshot copy changed by a later pump")
	}
}
