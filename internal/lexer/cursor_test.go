package lexer

import (
	"testing"

	"cxlint/internal/source"
)

func makeCursor(input string) Cursor {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("cursor.cpp", []byte(input))
	return NewCursor(fs.Get(fileID))
}

func TestCursorPeekBump(t *testing.T) {
	c := makeCursor("ab")

	if c.Peek() != 'a' {
		t.Errorf("Peek() = %q, want 'a'", c.Peek())
	}
	if b := c.Bump(); b != 'a' {
		t.Errorf("Bump() = %q, want 'a'", b)
	}
	if c.Peek() != 'b' {
		t.Errorf("Peek() = %q, want 'b'", c.Peek())
	}
	c.Bump()
	if !c.EOF() {
		t.Error("EOF() = false at end of input")
	}
}

func TestCursorPastEndIsZero(t *testing.T) {
	c := makeCursor("x")

	if c.PeekAt(1) != 0 {
		t.Errorf("PeekAt(1) = %q, want 0", c.PeekAt(1))
	}
	c.Bump()
	if c.Peek() != 0 {
		t.Errorf("Peek() at EOF = %q, want 0", c.Peek())
	}
	if c.Bump() != 0 {
		t.Error("Bump() at EOF must return 0")
	}
	// позиция не должна уходить за конец буфера
	if c.Off != 1 {
		t.Errorf("Off = %d after bumping past EOF, want 1", c.Off)
	}
}

func TestCursorPeekAt(t *testing.T) {
	c := makeCursor("abc")
	for k, want := range []byte{'a', 'b', 'c', 0, 0} {
		if got := c.PeekAt(uint32(k)); got != want {
			t.Errorf("PeekAt(%d) = %q, want %q", k, got, want)
		}
	}
}

func TestCursorMarkSpanReset(t *testing.T) {
	c := makeCursor("hello")
	m := c.Mark()
	c.Advance(3)

	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 3 {
		t.Errorf("SpanFrom = [%d,%d), want [0,3)", sp.Start, sp.End)
	}

	c.Reset(m)
	if c.Off != 0 || c.Peek() != 'h' {
		t.Errorf("Reset did not restore position: Off=%d", c.Off)
	}
}

func TestCursorAdvanceClamps(t *testing.T) {
	c := makeCursor("ab")
	c.Advance(10)
	if !c.EOF() {
		t.Error("EOF() = false after advancing past end")
	}
	if c.Off != 2 {
		t.Errorf("Off = %d, want 2", c.Off)
	}
}
