package parsekit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/clarete/parsekit/ascii"
)

const (
	msgEndOfInput      = "unexpected end of input"
	msgUnconsumedInput = "unconsumed input"
)

// Backtrace is the chain of labels a failure bubbled through.  Each
// Label combinator prepends its identifier on the way out, so the
// head of the chain is the outermost label.
type Backtrace[T comparable] struct {
	Label T
	Next  *Backtrace[T]
}

// Labels returns the labels in the chain, most specific first
func (b *Backtrace[T]) Labels() []T {
	var labels []T
	for f := b; f != nil; f = f.Next {
		labels = append(labels, f.Label)
	}
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
	return labels
}

func (b *Backtrace[T]) Len() int {
	n := 0
	for f := b; f != nil; f = f.Next {
		n++
	}
	return n
}

// ParseError is what a parser returns when it can't match the input.
// It carries where the mismatch happened, which parser gave up, the
// labels it went through and, optionally, a human friendly message.
type ParseError[T comparable] struct {
	Location  Location
	Expected  Parser[T]
	Backtrace *Backtrace[T]
	Message   string
}

func newParseError[T comparable](at Cursor, expected Parser[T]) *ParseError[T] {
	return &ParseError[T]{Location: at.Location(), Expected: expected}
}

// HasMessage returns true if a message was attached to the error
func (e *ParseError[T]) HasMessage() bool { return e.Message != "" }

// Labels returns the backtrace as a slice, most specific label first
func (e *ParseError[T]) Labels() []T { return e.Backtrace.Labels() }

// withLabel returns a copy of the error with `label` prepended to
// its backtrace
func (e *ParseError[T]) withLabel(label T) *ParseError[T] {
	c := *e
	c.Backtrace = &Backtrace[T]{Label: label, Next: e.Backtrace}
	return &c
}

// withMessage returns a copy of the error holding `msg` unless a
// message was already set
func (e *ParseError[T]) withMessage(msg string) *ParseError[T] {
	if e.HasMessage() {
		return e
	}
	c := *e
	c.Message = msg
	return &c
}

// Error returns the short rendering of the error: a header with the
// position, the failing line with a marker under the column and the
// message when there's one.
func (e *ParseError[T]) Error() string {
	return e.render(ascii.PlainTheme, false)
}

// Info returns the verbose rendering of the error.  On top of what
// Error returns, it shows the parser that failed and the backtrace.
func (e *ParseError[T]) Info() string {
	return e.render(ascii.PlainTheme, true)
}

// Highlight returns the short or verbose rendering painted with
// `theme`
func (e *ParseError[T]) Highlight(theme ascii.Theme, verbose bool) string {
	return e.render(theme, verbose)
}

func (e *ParseError[T]) render(theme ascii.Theme, verbose bool) string {
	var s strings.Builder
	s.WriteString(ascii.Paint(theme.Error, fmt.Sprintf("[%s] parse error", e.Location)))
	s.WriteString("\n")
	s.WriteString(e.Location.LineText)
	s.WriteString("\n")
	s.WriteString(ascii.Paint(theme.Caret, point(e.Location.LineText, e.Location.Column)))
	if e.HasMessage() {
		s.WriteString("\n")
		s.WriteString(ascii.Paint(theme.Message, e.Message))
	}
	if !verbose {
		return s.String()
	}
	s.WriteString("\nexpected: ")
	if e.Expected != nil {
		s.WriteString(ascii.Paint(theme.Accent, e.Expected.String()))
	} else {
		s.WriteString("?")
	}
	labels := e.Labels()
	if len(labels) == 0 {
		return s.String()
	}
	s.WriteString("\nbacktrace:")
	for i, label := range labels {
		s.WriteString("\n")
		if i == 0 {
			s.WriteString("  ")
		} else {
			s.WriteString("  ⤷ ")
		}
		s.WriteString(ascii.Paint(theme.Label, fmt.Sprintf("%v", label)))
	}
	return s.String()
}

// point returns the marker drawn under `line`: spaces up to the rune
// `column`, a caret and tildes until the end of the line.  Tabs are
// kept so the caret lines up in a terminal.
func point(line string, column int) string {
	var s strings.Builder
	width := utf8.RuneCountInString(line)
	i := 0
	for _, r := range line {
		if i >= column {
			break
		}
		if r == '\t' {
			s.WriteRune('\t')
		} else {
			s.WriteRune(' ')
		}
		i++
	}
	for ; i < column; i++ {
		s.WriteRune(' ')
	}
	s.WriteRune('^')
	if rest := width - column - 1; rest > 0 {
		s.WriteString(strings.Repeat("~", rest))
	}
	return s.String()
}
