package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug"} {
		l, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if l.String() != s {
			t.Fatalf("round trip %q -> %q", s, l)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeModule, false},
		{LevelDetail, ScopeModule, true},
		{LevelDetail, ScopeNode, false},
		{LevelDebug, ScopeNode, true},
		{LevelError, ScopeModule, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestStreamTextNesting(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)

	pass := Begin(tr, ScopePass, "naming", 0)
	mod := Begin(tr, ScopeModule, "module M", pass.ID())
	Begin(tr, ScopeNode, "hidden", mod.ID()).End("")
	mod.WithExtra("defs", "2").WithExtra("decls", "1").End("ok")
	pass.End("")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	strip := func(s string) string { return s[strings.Index(s, "] ")+2:] }
	if got := strip(lines[0]); got != "→ naming" {
		t.Fatalf("line 0 = %q", got)
	}
	if got := strip(lines[1]); got != "  → module M" {
		t.Fatalf("line 1 = %q", got)
	}
	got := strip(lines[2])
	if !strings.HasPrefix(got, "  ← module M ") || !strings.HasSuffix(got, "ms (ok) {decls=1, defs=2}") {
		t.Fatalf("line 2 = %q", got)
	}
	if got := strip(lines[3]); !strings.HasPrefix(got, "← naming ") {
		t.Fatalf("line 3 = %q", got)
	}
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatNDJSON)
	Begin(tr, ScopePass, "parse", 0).End("files=2")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	var ev jsonEvent
	if err := json.Unmarshal([]byte(lines[1]), &ev); err != nil {
		t.Fatal(err)
	}
	if ev.Kind != "end" || ev.Scope != "pass" || ev.Name != "parse" || ev.Detail != "files=2" || ev.Seq != 2 {
		t.Fatalf("event = %+v", ev)
	}
}

func TestRingKeepsLastEvents(t *testing.T) {
	tr := NewRingTracer(3, LevelError)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(tr, ScopeDriver, name, "", 0)
	}
	events := tr.Snapshot()
	var names []string
	for _, ev := range events {
		names = append(names, ev.Name)
	}
	if got := strings.Join(names, ","); got != "c,d,e" {
		t.Fatalf("snapshot = %s", got)
	}

	var buf bytes.Buffer
	if err := tr.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "• ") != 3 {
		t.Fatalf("dump:\n%s", buf.String())
	}
}

func TestNewSelectsTracer(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("off: %v %v", tr, err)
	}
	tr, _ = New(Config{Level: LevelError})
	if _, ok := tr.(*RingTracer); !ok {
		t.Fatalf("error level gave %T", tr)
	}
	var buf bytes.Buffer
	tr, _ = New(Config{Level: LevelPhase, Output: &buf, OutputPath: "trace.ndjson"})
	st, ok := tr.(*StreamTracer)
	if !ok || st.format != FormatNDJSON {
		t.Fatalf("phase level gave %T", tr)
	}
}

func TestContextPlumbing(t *testing.T) {
	ctx := context.Background()
	if FromContext(ctx) != Nop {
		t.Fatalf("empty context has a tracer")
	}
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatText)
	ctx = WithTracer(ctx, tr)
	if FromContext(ctx) != tr {
		t.Fatalf("tracer not found in context")
	}
	span := Begin(tr, ScopeDriver, "run", 0)
	ctx = WithSpan(ctx, span)
	if CurrentSpan(ctx).SpanID != span.ID() {
		t.Fatalf("span not found in context")
	}
}

func TestDisabledSpanIsInert(t *testing.T) {
	s := Begin(Nop, ScopePass, "x", 0)
	if s.ID() != 0 || s.End("") != 0 {
		t.Fatalf("nop span is active")
	}
	var nilSpan *Span
	if nilSpan.WithExtra("k", "v") != nil || nilSpan.ID() != 0 {
		t.Fatalf("nil span misbehaves")
	}
}
