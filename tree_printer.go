package parsekit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/clarete/parsekit/ascii"
)

type FormatToken int

const (
	FormatToken_None FormatToken = iota
	FormatToken_Range
	FormatToken_Literal
	FormatToken_Label
)

type FormatFunc[T any] func(input string, token T) string

// Pretty draws `n` as a box-drawing tree without any colors
func Pretty[T comparable](n Node[T]) string {
	return n.Format(func(input string, _ FormatToken) string { return input })
}

// Highlight draws `n` as a box-drawing tree painted with `theme`
func Highlight[T comparable](n Node[T], theme ascii.Theme) string {
	return n.Format(func(input string, token FormatToken) string {
		switch token {
		case FormatToken_Range:
			return ascii.Paint(theme.Span, input)
		case FormatToken_Literal:
			return ascii.Paint(theme.Literal, input)
		case FormatToken_Label:
			return ascii.Paint(theme.Label, input)
		default:
			return input
		}
	})
}

func formatNode[T comparable](n Node[T], fn FormatFunc[FormatToken]) string {
	p := &prettyPrinter[T]{format: fn}
	n.Accept(p)
	return p.out.String()
}

// prettyPrinter is the Visitor that draws a parse tree.  `pad` holds
// the prefixes written before each line, one per tree level.
type prettyPrinter[T comparable] struct {
	pad    []string
	out    strings.Builder
	format FormatFunc[FormatToken]
}

func (vi *prettyPrinter[T]) push(s string) { vi.pad = append(vi.pad, s) }
func (vi *prettyPrinter[T]) pop()          { vi.pad = vi.pad[:len(vi.pad)-1] }

// branch starts a new line for a child node drawn with `connector`
func (vi *prettyPrinter[T]) branch(connector string) {
	for _, p := range vi.pad {
		vi.out.WriteString(p)
	}
	vi.out.WriteString(connector)
}

func (vi *prettyPrinter[T]) put(s string, token FormatToken) {
	vi.out.WriteString(vi.format(s, token))
}

func (vi *prettyPrinter[T]) VisitSpan(n Span[T]) error {
	vi.put(strconv.Quote(n.Value), FormatToken_Literal)
	vi.put(fmt.Sprintf(" (%s)", n.Range), FormatToken_Range)
	return nil
}

func (vi *prettyPrinter[T]) VisitEmpty(n Empty[T]) error {
	vi.put("Empty", FormatToken_None)
	return nil
}

func (vi *prettyPrinter[T]) VisitGroup(n Group[T]) error {
	vi.put(fmt.Sprintf("Group<%d>", len(n.Items)), FormatToken_None)
	for i, item := range n.Items {
		vi.out.WriteRune('\n')
		if i == len(n.Items)-1 {
			vi.branch("└── ")
			vi.push("    ")
		} else {
			vi.branch("├── ")
			vi.push("│   ")
		}
		if err := item.Accept(vi); err != nil {
			return err
		}
		vi.pop()
	}
	return nil
}

func (vi *prettyPrinter[T]) VisitLabeled(n Labeled[T]) error {
	vi.put(fmt.Sprintf("%v", n.ID), FormatToken_Label)
	vi.out.WriteRune('\n')
	vi.branch("└── ")
	vi.push("    ")
	defer vi.pop()
	if n.Child == nil {
		return vi.VisitEmpty(Empty[T]{})
	}
	return n.Child.Accept(vi)
}
