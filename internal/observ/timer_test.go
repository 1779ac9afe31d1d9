package observ

import (
	"strings"
	"sync"
	"testing"
)

func TestTimerOrderAndNotes(t *testing.T) {
	tm := NewTimer()
	a := tm.Begin("load")
	b := tm.Begin("parse")
	tm.End(b, "2 files")
	tm.End(a, "")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != "load" || r.Phases[1].Note != "2 files" {
		t.Fatalf("report = %+v", r)
	}
	s := tm.Summary()
	if !strings.HasPrefix(s, "timings:\n  load") || !strings.Contains(s, "// 2 files") || !strings.Contains(s, "total") {
		t.Fatalf("summary:\n%s", s)
	}
}

func TestTimerEmpty(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Fatalf("report = %+v", r)
	}
}

func TestTimerConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			tm.End(tm.Begin("file"), "")
		})
	}
	wg.Wait()
	if n := len(tm.Phases()); n != 16 {
		t.Fatalf("got %d phases", n)
	}
}
