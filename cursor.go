package parsekit

import (
	"fmt"
	"strings"
)

// Cursor is a position within the input.  It's a small value that
// is copied around instead of mutated, which is what makes
// backtracking free: a failed attempt just drops its cursor.
type Cursor struct {
	input  string
	offset int
	line   int
	column int
}

// NewCursor returns a cursor at the very beginning of `input`
func NewCursor(input string) Cursor {
	return Cursor{input: input}
}

// Location describes where a cursor is.  Line and Column are
// 0-based, Column counts runes and Offset counts bytes.
type Location struct {
	Line     int
	Column   int
	Offset   int
	LineText string
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line+1, l.Column+1)
}

func (c Cursor) Input() string { return c.input }
func (c Cursor) Offset() int   { return c.offset }
func (c Cursor) Line() int     { return c.line }
func (c Cursor) Column() int   { return c.column }

// Rest returns the input that hasn't been consumed yet
func (c Cursor) Rest() string { return c.input[c.offset:] }

// Remaining returns how many bytes are left to be consumed
func (c Cursor) Remaining() int { return len(c.input) - c.offset }

// IsEmpty returns true when the whole input has been consumed
func (c Cursor) IsEmpty() bool { return c.offset >= len(c.input) }

// Advance returns a new cursor `n` bytes ahead of `c`.  The line and
// column are recomputed by scanning the skipped bytes, so `c` itself
// is left untouched.  Columns count characters, so `n` should end on
// a character boundary: the bytes of a split character are counted
// as one column each.
func (c Cursor) Advance(n int) Cursor {
	if n < 0 || n > c.Remaining() {
		panic(fmt.Sprintf("can't advance cursor %d bytes with %d bytes left", n, c.Remaining()))
	}
	for _, r := range c.input[c.offset : c.offset+n] {
		if r == '\n' {
			c.line++
			c.column = 0
			continue
		}
		c.column++
	}
	c.offset += n
	return c
}

// LineText returns the line the cursor is at without its line
// terminator.
func (c Cursor) LineText() string {
	start := strings.LastIndexByte(c.input[:c.offset], '\n') + 1
	end := strings.IndexByte(c.input[c.offset:], '\n')
	if end < 0 {
		end = len(c.input)
	} else {
		end += c.offset
	}
	return strings.TrimSuffix(c.input[start:end], "\r")
}

// Location returns the full location of the cursor, including the
// text of its line so errors can be displayed without rescanning.
func (c Cursor) Location() Location {
	return Location{
		Line:     c.line,
		Column:   c.column,
		Offset:   c.offset,
		LineText: c.LineText(),
	}
}

// Range returns the byte range between `c` and `to`
func (c Cursor) Range(to Cursor) Range {
	return NewRange(c.offset, to.offset)
}

// Slice returns the input between `c` and `to`.  The returned string
// shares memory with the input.
func (c Cursor) Slice(to Cursor) string {
	return c.input[c.offset:to.offset]
}

func (c Cursor) String() string {
	return fmt.Sprintf("%q @ %d:%d", c.Rest(), c.line+1, c.column+1)
}
