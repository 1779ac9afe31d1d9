package lexer

import (
	"testing"

	"lumen/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lm", []byte(content))
	return fs.Get(id)
}

func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Fatalf("Peek = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() {
		t.Fatal("expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatal("expected zero bytes at EOF")
	}
}

func TestPeek2(t *testing.T) {
	cursor := NewCursor(createFile("abc"))
	if b0, b1, ok := cursor.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2 at start = (%q, %q, %v)", b0, b1, ok)
	}
	cursor.Bump()
	cursor.Bump()
	if _, _, ok := cursor.Peek2(); ok {
		t.Fatal("Peek2 must fail with one byte left")
	}
}

func TestMarkSpanReset(t *testing.T) {
	file := createFile("α\nβ")
	cursor := NewCursor(file)
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	sp := cursor.SpanFrom(m)
	if sp.File != file.ID || sp.Start != 0 || sp.End != 2 {
		t.Fatalf("unexpected span %+v", sp)
	}
	cursor.Reset(m)
	if cursor.Off != 0 {
		t.Fatalf("Reset left offset %d", cursor.Off)
	}
}

func TestEat(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	if !cursor.Eat('a') || !cursor.Eat('\n') {
		t.Fatal("expected Eat to consume matching bytes")
	}
	if cursor.Eat('x') {
		t.Fatal("Eat must not consume a mismatch")
	}
	if !cursor.Eat('b') || !cursor.EOF() {
		t.Fatal("expected EOF after last Eat")
	}
	if cursor.Eat('b') {
		t.Fatal("Eat at EOF must fail")
	}
}
