package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_Advance(t *testing.T) {
	t.Run("tracks lines and columns", func(t *testing.T) {
		start := NewCursor("ab\ncd\n\nef")
		c := start.Advance(4)

		assert.Equal(t, 4, c.Offset())
		assert.Equal(t, 1, c.Line())
		assert.Equal(t, 1, c.Column())
		assert.Equal(t, "d\n\nef", c.Rest())

		c = c.Advance(3)
		assert.Equal(t, 3, c.Line())
		assert.Equal(t, 0, c.Column())
		assert.Equal(t, "ef", c.Rest())
	})

	t.Run("leaves the original cursor untouched", func(t *testing.T) {
		start := NewCursor("hello")
		_ = start.Advance(3)
		assert.Equal(t, 0, start.Offset())
		assert.Equal(t, "hello", start.Rest())
	})

	t.Run("counts columns in runes", func(t *testing.T) {
		c := NewCursor("ação!").Advance(len("ação"))
		assert.Equal(t, 4, c.Column())
		assert.Equal(t, "!", c.Rest())
	})

	t.Run("advancing zero bytes at the end is fine", func(t *testing.T) {
		c := NewCursor("x").Advance(1)
		require.True(t, c.IsEmpty())
		assert.Equal(t, c, c.Advance(0))
	})

	t.Run("panics past the end of the input", func(t *testing.T) {
		assert.Panics(t, func() { NewCursor("ab").Advance(3) })
		assert.Panics(t, func() { NewCursor("ab").Advance(-1) })
	})
}

func TestCursor_LineText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		advance  int
		expected string
	}{
		{name: "single line", input: "69 + 420", advance: 3, expected: "69 + 420"},
		{name: "first line", input: "one\ntwo", advance: 1, expected: "one"},
		{name: "second line", input: "one\ntwo\nthree", advance: 5, expected: "two"},
		{name: "right after the line break", input: "one\ntwo", advance: 4, expected: "two"},
		{name: "end of input after a line break", input: "one\n", advance: 4, expected: ""},
		{name: "carriage return is dropped", input: "one\r\ntwo", advance: 1, expected: "one"},
		{name: "empty input", input: "", advance: 0, expected: ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := NewCursor(test.input).Advance(test.advance)
			assert.Equal(t, test.expected, c.LineText())
		})
	}
}

func TestCursor_Location(t *testing.T) {
	c := NewCursor("let x\nlet y = 2").Advance(10)
	loc := c.Location()

	assert.Equal(t, Location{Line: 1, Column: 4, Offset: 10, LineText: "let y = 2"}, loc)
	assert.Equal(t, "2:5", loc.String())
}

func TestCursor_Slice(t *testing.T) {
	start := NewCursor("damn huh")
	end := start.Advance(4)

	assert.Equal(t, "damn", start.Slice(end))
	assert.Equal(t, NewRange(0, 4), start.Range(end))
}

func TestRange(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "3", NewRange(3, 3).String())
		assert.Equal(t, "3..7", NewRange(3, 7).String())
	})

	t.Run("Str", func(t *testing.T) {
		assert.Equal(t, "amn", NewRange(1, 4).Str("damn"))
		assert.Equal(t, 3, NewRange(1, 4).Len())
	})

	t.Run("Contains", func(t *testing.T) {
		tests := []struct {
			name     string
			parent   Range
			other    Range
			expected bool
		}{
			{name: "fully contained range", parent: NewRange(0, 10), other: NewRange(2, 8), expected: true},
			{name: "identical ranges", parent: NewRange(5, 15), other: NewRange(5, 15), expected: true},
			{name: "other starts before parent", parent: NewRange(5, 15), other: NewRange(3, 10), expected: false},
			{name: "other ends after parent", parent: NewRange(5, 15), other: NewRange(10, 20), expected: false},
			{name: "zero-length range at end", parent: NewRange(0, 10), other: NewRange(10, 10), expected: true},
			{name: "parent zero-length, other has length", parent: NewRange(5, 5), other: NewRange(5, 10), expected: false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.expected, tt.parent.Contains(tt.other))
			})
		}
	})
}
