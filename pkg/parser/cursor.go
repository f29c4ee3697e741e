package parser

import (
	"github.com/pseudomuto/chexpr/pkg/ast"
)

// Cursor is a read position over an immutable input string. It is the only
// mutable state a parse carries.
//
// Besides the position, the cursor tracks the deepest failure seen so far so
// an entry point can report the most useful "expected ..." message after all
// alternatives have been exhausted.
type Cursor struct {
	input string
	pos   int

	depth    int
	maxDepth int

	expected    string
	expectedPos int
}

// NewCursor returns a cursor at the start of input with no depth limit.
func NewCursor(input string) *Cursor {
	return &Cursor{input: input, expectedPos: -1}
}

func (c *Cursor) Input() string { return c.input }
func (c *Cursor) Pos() int      { return c.pos }
func (c *Cursor) EOF() bool     { return c.pos >= len(c.input) }
func (c *Cursor) Rest() string  { return c.input[c.pos:] }

// Reset moves the cursor back (or forward) to pos.
func (c *Cursor) Reset(pos int) {
	c.pos = pos
}

// Advance moves the cursor forward n bytes.
func (c *Cursor) Advance(n int) {
	c.pos = min(c.pos+n, len(c.input))
}

// Peek returns the current byte, or 0 at end of input.
func (c *Cursor) Peek() byte {
	return c.PeekAt(0)
}

// PeekAt returns the byte off bytes ahead, or 0 past the end of input.
func (c *Cursor) PeekAt(off int) byte {
	if i := c.pos + off; i >= 0 && i < len(c.input) {
		return c.input[i]
	}
	return 0
}

// HasPrefix reports whether the remaining input starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	return len(c.input)-c.pos >= len(s) && c.input[c.pos:c.pos+len(s)] == s
}

// Span returns the span from begin to the current position.
func (c *Cursor) Span(begin int) ast.Span {
	return ast.Span{Start: begin, End: c.pos}
}

// Fail records what was expected at the current position and returns the
// matching soft failure. The cursor is left where it is.
func (c *Cursor) Fail(expected string) error {
	c.note(c.pos, expected)
	return &Mismatch{Pos: c.pos, Expected: expected}
}

// FailAt is Fail for a position other than the current one.
func (c *Cursor) FailAt(pos int, expected string) error {
	c.note(pos, expected)
	return &Mismatch{Pos: pos, Expected: expected}
}

func (c *Cursor) note(pos int, expected string) {
	if pos >= c.expectedPos {
		c.expectedPos = pos
		c.expected = expected
	}
}

// Expected returns the deepest recorded failure. pos is -1 when nothing has
// failed yet.
func (c *Cursor) Expected() (pos int, expected string) {
	return c.expectedPos, c.expected
}

// Enter marks the start of a nested rule and fails once the configured
// maximum depth is exceeded. Every successful Enter must be paired with Leave.
func (c *Cursor) Enter() error {
	if c.maxDepth > 0 && c.depth >= c.maxDepth {
		return &SyntaxError{Pos: c.pos, Msg: "maximum parse depth exceeded"}
	}
	c.depth++
	return nil
}

func (c *Cursor) Leave() {
	c.depth--
}
