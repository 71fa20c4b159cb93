package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"cxlint/internal/source"
)

// Cursor is a bounds-checked position over a file's content.
// Reads past the end return 0, so lookahead never needs an embedded
// terminator byte in the buffer.
type Cursor struct {
	File *source.File
	Off  uint32
}

// NewCursor creates a cursor at the start of the file.
func NewCursor(f *source.File) Cursor {
	if _, err := safecast.Conv[uint32](len(f.Content)); err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, Off: 0}
}

func (c *Cursor) limit() uint32 {
	return uint32(len(c.File.Content))
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit()
}

// Peek returns the current byte, or 0 at end of input.
func (c *Cursor) Peek() byte {
	return c.PeekAt(0)
}

// PeekAt returns the byte k positions ahead, or 0 past the end.
func (c *Cursor) PeekAt(k uint32) byte {
	if c.Off+k >= c.limit() {
		return 0
	}
	return c.File.Content[c.Off+k]
}

// Bump advances by one byte and returns the byte read, or 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Advance moves the cursor n bytes forward, clamping at the end.
func (c *Cursor) Advance(n uint32) {
	c.Off += n
	if c.Off > c.limit() {
		c.Off = c.limit()
	}
}

// Mark is a saved cursor position used to recover spans.
type Mark uint32

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom builds the span from a mark to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: uint32(m),
		End:   c.Off,
	}
}

// Reset moves the cursor back to a mark.
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}
