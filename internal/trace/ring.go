package trace

import (
	"io"
	"sync"
)

// RingTracer keeps the last capacity events in memory. It backs the error
// level: nothing is written unless Dump is called.
type RingTracer struct {
	mu     sync.Mutex
	events []Event
	head   int
	full   bool
	seq    uint64
	level  Level
}

func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingTracer{events: make([]Event, capacity), level: level}
}

func (t *RingTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	stored := *ev
	stored.Seq = t.seq
	t.events[t.head] = stored
	t.head = (t.head + 1) % len(t.events)
	if t.head == 0 {
		t.full = true
	}
}

// Snapshot returns the stored events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.full {
		return append([]Event(nil), t.events[:t.head]...)
	}
	out := make([]Event, 0, len(t.events))
	out = append(out, t.events[t.head:]...)
	return append(out, t.events[:t.head]...)
}

// Dump writes the stored events to w through a StreamTracer, so the output
// looks like a live trace.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	events := t.Snapshot()
	st := NewStreamTracer(w, LevelDebug, format)
	if len(events) > 0 {
		st.start = events[0].Time
	}
	for i := range events {
		st.Emit(&events[i])
	}
	return st.Flush()
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
