package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarete/parsekit/ascii"
)

func TestParseError_Error(t *testing.T) {
	for _, test := range []struct {
		name     string
		parser   Parser[tag]
		input    string
		expected string
	}{
		{
			name:   "with message",
			parser: arithmetic(),
			input:  "69 * 420",
			expected: "[1:4] parse error\n" +
				"69 * 420\n" +
				"   ^~~~~\n" +
				"expected `+` or `-`",
		},
		{
			name:   "at the end of the input",
			parser: arithmetic(),
			input:  "69 +",
			expected: "[1:5] parse error\n" +
				"69 +\n" +
				"    ^\n" +
				"unexpected end of input",
		},
		{
			name:   "without message",
			parser: Seq[tag](Literal[tag]("let"), Char[tag]('\n'), Literal[tag]("var")),
			input:  "let\nvaz",
			expected: "[2:1] parse error\n" +
				"vaz\n" +
				"^~~",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := test.parser.Run(NewCursor(test.input))
			require.NotNil(t, err)
			assert.Equal(t, test.expected, err.Error())
		})
	}
}

func TestParseError_Info(t *testing.T) {
	t.Run("shows the expected parser and the backtrace", func(t *testing.T) {
		_, _, err := arithmetic().Run(NewCursor("69 * 420"))
		require.NotNil(t, err)

		assert.Equal(t, "[1:4] parse error\n"+
			"69 * 420\n"+
			"   ^~~~~\n"+
			"expected `+` or `-`\n"+
			"expected: ('+' / '-')\n"+
			"backtrace:\n"+
			"  Op\n"+
			"  ⤷ Expr", err.Info())
	})

	t.Run("no backtrace section without labels", func(t *testing.T) {
		_, _, err := Char[tag]('a').Run(NewCursor("b"))
		require.NotNil(t, err)

		assert.Equal(t, "[1:1] parse error\nb\n^\nexpected: 'a'", err.Info())
	})

	t.Run("plain theme highlights like the plain renderings", func(t *testing.T) {
		_, _, err := arithmetic().Run(NewCursor("69 +"))
		require.NotNil(t, err)

		assert.Equal(t, err.Error(), err.Highlight(ascii.PlainTheme, false))
		assert.Equal(t, err.Info(), err.Highlight(ascii.PlainTheme, true))
	})
}

func TestParseError_Labels(t *testing.T) {
	_, _, err := arithmetic().Run(NewCursor("69 +"))
	require.NotNil(t, err)

	assert.Equal(t, []tag{Number, Expr}, err.Labels())
}

func TestParseError_WithLabelCopies(t *testing.T) {
	orig := newParseError[tag](NewCursor("a"), Char[tag]('b'))
	labeledErr := orig.withLabel(Word)
	messaged := orig.withMessage("hi")

	assert.Nil(t, orig.Backtrace)
	assert.Empty(t, orig.Message)
	assert.Equal(t, []tag{Word}, labeledErr.Labels())
	assert.Equal(t, "hi", messaged.Message)
	assert.Equal(t, "hi", messaged.withMessage("bye").Message)
}

func TestPoint(t *testing.T) {
	for _, test := range []struct {
		name     string
		line     string
		column   int
		expected string
	}{
		{name: "first column", line: "abc", column: 0, expected: "^~~"},
		{name: "middle", line: "abcde", column: 2, expected: "  ^~~"},
		{name: "last column", line: "abc", column: 2, expected: "  ^"},
		{name: "past the end", line: "abc", column: 3, expected: "   ^"},
		{name: "tabs are kept", line: "\tab", column: 1, expected: "\t^~"},
		{name: "multi-byte runes", line: "ação x", column: 5, expected: "     ^"},
		{name: "empty line", line: "", column: 0, expected: "^"},
	} {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, point(test.line, test.column))
		})
	}
}
