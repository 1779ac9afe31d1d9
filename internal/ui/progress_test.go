package ui

import (
	"strings"
	"testing"

	"lumen/internal/driver"
)

func feed(m *progressModel, events ...driver.Event) {
	for _, ev := range events {
		m.Update(eventMsg(ev))
	}
}

func TestProgressModelTracksFiles(t *testing.T) {
	m := NewProgressModel("resolving names", nil, nil).(*progressModel)
	feed(m,
		driver.Event{File: "a.lm", Stage: driver.StageParse, Status: driver.StatusQueued},
		driver.Event{File: "b.lm", Stage: driver.StageParse, Status: driver.StatusQueued},
		driver.Event{File: "a.lm", Stage: driver.StageParse, Status: driver.StatusWorking},
	)
	if len(m.items) != 2 || m.items[0].status != "parsing" || m.items[1].status != "queued" {
		t.Fatalf("items = %+v", m.items)
	}
	if got := m.percent(); got != 0.1 {
		t.Fatalf("percent = %v", got)
	}

	feed(m,
		driver.Event{File: "a.lm", Stage: driver.StageParse, Status: driver.StatusDone},
		driver.Event{File: "b.lm", Stage: driver.StageParse, Status: driver.StatusError},
		// events for files that were never queued are ignored
		driver.Event{File: "c.lm", Stage: driver.StageParse, Status: driver.StatusDone},
		driver.Event{File: "a.lm", Stage: driver.StageNaming, Status: driver.StatusDone},
		// a failed file keeps its status
		driver.Event{File: "b.lm", Stage: driver.StageNaming, Status: driver.StatusDone},
	)
	if len(m.items) != 2 || m.items[0].status != "done" || m.items[1].status != "error" {
		t.Fatalf("items = %+v", m.items)
	}
	if got := m.percent(); got != 1 {
		t.Fatalf("percent = %v", got)
	}

	m.Update(doneMsg{})
	view := m.View()
	for _, want := range []string{"done: resolving names (2 files), 1 failed", "a.lm", "b.lm"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestProgressModelPresetFiles(t *testing.T) {
	m := NewProgressModel("x", []string{"a.lm", "a.lm"}, nil).(*progressModel)
	if len(m.items) != 1 {
		t.Fatalf("items = %+v", m.items)
	}
	if m.View() == "" {
		t.Fatalf("empty view")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.lm", 20, "short.lm"},
		{"some/long/path.lm", 10, "some/lo..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
