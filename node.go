package parsekit

import (
	"fmt"
	"strings"
)

type NodeKind int

const (
	NodeKind_Empty NodeKind = iota
	NodeKind_Span
	NodeKind_Group
	NodeKind_Labeled
)

func (k NodeKind) String() string {
	switch k {
	case NodeKind_Empty:
		return "empty"
	case NodeKind_Span:
		return "span"
	case NodeKind_Group:
		return "group"
	case NodeKind_Labeled:
		return "labeled"
	default:
		return "unknown"
	}
}

// Node is the output of a successful parser run.  It's a closed set
// of variants: Labeled, Group, Span and Empty.  T is the type of the
// identifiers callers attach to subtrees with the Label combinator.
type Node[T comparable] interface {
	Kind() NodeKind
	Text() string
	String() string
	Accept(Visitor[T]) error
	Format(FormatFunc[FormatToken]) string
}

type Visitor[T comparable] interface {
	VisitLabeled(n Labeled[T]) error
	VisitGroup(n Group[T]) error
	VisitSpan(n Span[T]) error
	VisitEmpty(n Empty[T]) error
}

// Labeled Node

type Labeled[T comparable] struct {
	ID    T
	Child Node[T]
}

func NewLabeled[T comparable](id T, child Node[T]) Labeled[T] {
	return Labeled[T]{ID: id, Child: child}
}

func (n Labeled[T]) Kind() NodeKind                           { return NodeKind_Labeled }
func (n Labeled[T]) Accept(v Visitor[T]) error                { return v.VisitLabeled(n) }
func (n Labeled[T]) Format(fn FormatFunc[FormatToken]) string { return formatNode[T](n, fn) }
func (n Labeled[T]) Text() string {
	if n.Child == nil {
		return ""
	}
	return n.Child.Text()
}

func (n Labeled[T]) String() string {
	return fmt.Sprintf("%v(%s)", n.ID, n.Child)
}

// Group Node

type Group[T comparable] struct {
	Items []Node[T]
}

func NewGroup[T comparable](items ...Node[T]) Group[T] {
	return Group[T]{Items: items}
}

func (n Group[T]) Kind() NodeKind                           { return NodeKind_Group }
func (n Group[T]) Accept(v Visitor[T]) error                { return v.VisitGroup(n) }
func (n Group[T]) Format(fn FormatFunc[FormatToken]) string { return formatNode[T](n, fn) }
func (n Group[T]) Text() string {
	var s strings.Builder
	for _, item := range n.Items {
		s.WriteString(item.Text())
	}
	return s.String()
}

func (n Group[T]) String() string {
	var s strings.Builder
	s.WriteString("Group[")
	for i, item := range n.Items {
		s.WriteString(item.String())
		if i < len(n.Items)-1 {
			s.WriteString(", ")
		}
	}
	s.WriteString("]")
	return s.String()
}

// Span Node

type Span[T comparable] struct {
	Value string
	Range Range
}

// NewSpan creates a leaf holding the text covered by `rg` within
// `input`.  The text is a substring of the input, not a copy.
func NewSpan[T comparable](input string, rg Range) Span[T] {
	return Span[T]{Value: rg.Str(input), Range: rg}
}

func (n Span[T]) Kind() NodeKind                           { return NodeKind_Span }
func (n Span[T]) Text() string                             { return n.Value }
func (n Span[T]) Accept(v Visitor[T]) error                { return v.VisitSpan(n) }
func (n Span[T]) Format(fn FormatFunc[FormatToken]) string { return formatNode[T](n, fn) }
func (n Span[T]) String() string {
	return fmt.Sprintf("Span(%q)", n.Value)
}

// Empty Node

// Empty is the canonical "nothing here" result of zero-width
// combinators.
type Empty[T comparable] struct{}

func (n Empty[T]) Kind() NodeKind                           { return NodeKind_Empty }
func (n Empty[T]) Text() string                             { return "" }
func (n Empty[T]) String() string                           { return "Empty" }
func (n Empty[T]) Accept(v Visitor[T]) error                { return v.VisitEmpty(n) }
func (n Empty[T]) Format(fn FormatFunc[FormatToken]) string { return formatNode[T](n, fn) }

// IsEmpty returns true if `n` is nil or the Empty node
func IsEmpty[T comparable](n Node[T]) bool {
	return n == nil || n.Kind() == NodeKind_Empty
}

// Walk calls fn for `n` and, if fn returns true, for each of its
// descendants in input order.
func Walk[T comparable](n Node[T], fn func(Node[T]) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch v := n.(type) {
	case Group[T]:
		for _, item := range v.Items {
			Walk(item, fn)
		}
	case Labeled[T]:
		Walk(v.Child, fn)
	}
}

// Spans returns the leaves of `n` in input order
func Spans[T comparable](n Node[T]) []Span[T] {
	var spans []Span[T]
	Walk(n, func(n Node[T]) bool {
		if s, ok := n.(Span[T]); ok {
			spans = append(spans, s)
		}
		return true
	})
	return spans
}

// Find returns the first Labeled node tagged with `id` in a depth
// first, left to right search.
func Find[T comparable](n Node[T], id T) (Labeled[T], bool) {
	var (
		found Labeled[T]
		ok    bool
	)
	Walk(n, func(n Node[T]) bool {
		if ok {
			return false
		}
		if l, isLabeled := n.(Labeled[T]); isLabeled && l.ID == id {
			found, ok = l, true
			return false
		}
		return true
	})
	return found, ok
}
