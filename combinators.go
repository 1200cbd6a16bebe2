package parsekit

import (
	"fmt"
	"strings"
)

const (
	opOneOrMore  = "+"
	opZeroOrMore = "*"
	opOptional   = "?"
	opEnsure     = "&"
	opCatenate   = "$"
)

//  ---- Sequence ----

// Sequence matches each of its items one after the other
type Sequence[T comparable] struct {
	items []Parser[T]
}

// Seq returns a rule that matches all `items` in order, collecting
// their results in a Group.  It either consumes all of them or
// nothing at all.
func Seq[T comparable](items ...Parser[T]) Rule[T] {
	return R[T](&Sequence[T]{items: unwrapAll(items)})
}

func (p *Sequence[T]) Items() []Parser[T] { return p.items }

func (p *Sequence[T]) Run(in Cursor) (Node[T], Cursor, *ParseError[T]) {
	var (
		children = make([]Node[T], 0, len(p.items))
		head     = in
	)
	for _, item := range p.items {
		node, next, err := item.Run(head)
		if err != nil {
			return nil, in, err
		}
		children = append(children, node)
		head = next
	}
	return Group[T]{Items: children}, head, nil
}

func (p *Sequence[T]) String() string {
	return "(" + joinParsers(p.items, " ") + ")"
}

func (p *Sequence[T]) fuseSeq(next []Parser[T]) Parser[T] {
	items := make([]Parser[T], 0, len(p.items)+len(next))
	items = append(items, p.items...)
	items = append(items, next...)
	return &Sequence[T]{items: items}
}

//  ---- Choice ----

// Alternatives tries its items in order and stops at the first one
// that matches
type Alternatives[T comparable] struct {
	items []Parser[T]
}

// Choice returns a rule that tries each of `items` from the same
// position and returns the result of the first that succeeds.  The
// order matters: an earlier match wins even if a later alternative
// would consume more input.
func Choice[T comparable](items ...Parser[T]) Rule[T] {
	return R[T](&Alternatives[T]{items: unwrapAll(items)})
}

func (p *Alternatives[T]) Items() []Parser[T] { return p.items }

func (p *Alternatives[T]) Run(in Cursor) (Node[T], Cursor, *ParseError[T]) {
	for _, item := range p.items {
		node, next, err := item.Run(in)
		if err == nil {
			return node, next, nil
		}
	}
	return nil, in, newParseError[T](in, p)
}

func (p *Alternatives[T]) String() string {
	return "(" + joinParsers(p.items, " / ") + ")"
}

func (p *Alternatives[T]) fuseChoice(next []Parser[T]) Parser[T] {
	items := make([]Parser[T], 0, len(p.items)+len(next))
	items = append(items, p.items...)
	items = append(items, next...)
	return &Alternatives[T]{items: items}
}

//  ---- Repetition ----

// Repeat matches its item as many times as possible
type Repeat[T comparable] struct {
	item Parser[T]
	min  int
}

// OneOrMore returns a rule that matches `item` at least once.  It
// fails with the error of the first attempt if that one fails.
func OneOrMore[T comparable](item Parser[T]) Rule[T] {
	return R[T](&Repeat[T]{item: unwrap(item), min: 1})
}

// ZeroOrMore returns a rule that matches `item` as many times as
// possible.  It never fails, and returns Empty when there were no
// matches.
func ZeroOrMore[T comparable](item Parser[T]) Rule[T] {
	return R[T](&Repeat[T]{item: unwrap(item), min: 0})
}

func (p *Repeat[T]) Run(in Cursor) (Node[T], Cursor, *ParseError[T]) {
	var (
		children []Node[T]
		head     = in
	)
	if p.min > 0 {
		node, next, err := p.item.Run(head)
		if err != nil {
			return nil, in, err
		}
		children = append(children, node)
		head = next
	}
	for {
		node, next, err := p.item.Run(head)
		if err != nil {
			break
		}
		// an item that matched without consuming anything would
		// match again forever at the same position
		if next.Offset() == head.Offset() {
			break
		}
		children = append(children, node)
		head = next
	}
	if len(children) == 0 {
		return Empty[T]{}, in, nil
	}
	return Group[T]{Items: children}, head, nil
}

func (p *Repeat[T]) String() string {
	return p.item.String() + p.idempotentOp()
}

func (p *Repeat[T]) idempotentOp() string {
	if p.min > 0 {
		return opOneOrMore
	}
	return opZeroOrMore
}

//  ---- Optional ----

type Maybe[T comparable] struct {
	item Parser[T]
}

// Optional returns a rule that matches `item` or succeeds with Empty
// without consuming anything.
func Optional[T comparable](item Parser[T]) Rule[T] {
	return R[T](&Maybe[T]{item: unwrap(item)})
}

func (p *Maybe[T]) Run(in Cursor) (Node[T], Cursor, *ParseError[T]) {
	node, next, err := p.item.Run(in)
	if err != nil {
		return Empty[T]{}, in, nil
	}
	return node, next, nil
}

func (p *Maybe[T]) String() string      { return p.item.String() + opOptional }
func (p *Maybe[T]) idempotentOp() string { return opOptional }

//  ---- Lookahead ----

// Lookahead runs its item without consuming any input.  The negated
// flavor succeeds only when the item fails.
type Lookahead[T comparable] struct {
	item   Parser[T]
	negate bool
}

// Ensure returns a rule that succeeds with Empty if `item` matches,
// without consuming anything, and fails with the item's error
// otherwise.
func Ensure[T comparable](item Parser[T]) Rule[T] {
	return R[T](&Lookahead[T]{item: unwrap(item)})
}

// Avoid returns a rule that succeeds with Empty if `item` doesn't
// match and fails if it does.  It never consumes any input.
func Avoid[T comparable](item Parser[T]) Rule[T] {
	return R[T](&Lookahead[T]{item: unwrap(item), negate: true})
}

func (p *Lookahead[T]) Run(in Cursor) (Node[T], Cursor, *ParseError[T]) {
	_, _, err := p.item.Run(in)
	switch {
	case p.negate && err == nil:
		return nil, in, newParseError[T](in, p.item)
	case p.negate:
		return Empty[T]{}, in, nil
	case err != nil:
		return nil, in, err
	default:
		return Empty[T]{}, in, nil
	}
}

func (p *Lookahead[T]) String() string {
	if p.negate {
		return "!" + p.item.String()
	}
	return opEnsure + p.item.String()
}

func (p *Lookahead[T]) idempotentOp() string {
	if p.negate {
		return ""
	}
	return opEnsure
}

//  ---- Catenate ----

type Catenation[T comparable] struct {
	item Parser[T]
}

// Catenate returns a rule that replaces whatever tree `item` builds
// with a single Span covering the input it consumed.
func Catenate[T comparable](item Parser[T]) Rule[T] {
	return R[T](&Catenation[T]{item: unwrap(item)})
}

func (p *Catenation[T]) Run(in Cursor) (Node[T], Cursor, *ParseError[T]) {
	_, next, err := p.item.Run(in)
	if err != nil {
		return nil, in, err
	}
	return NewSpan[T](in.Input(), in.Range(next)), next, nil
}

func (p *Catenation[T]) String() string      { return opCatenate + p.item.String() }
func (p *Catenation[T]) idempotentOp() string { return opCatenate }

//  ---- Label ----

type Labeler[T comparable] struct {
	item Parser[T]
	id   T
}

// Label returns a rule that wraps the tree built by `item` within a
// Labeled node.  When `item` fails, `id` is added to the backtrace of
// the error.
func Label[T comparable](id T, item Parser[T]) Rule[T] {
	return R[T](&Labeler[T]{item: unwrap(item), id: id})
}

func (p *Labeler[T]) ID() T { return p.id }

func (p *Labeler[T]) Run(in Cursor) (Node[T], Cursor, *ParseError[T]) {
	node, next, err := p.item.Run(in)
	if err != nil {
		return nil, in, err.withLabel(p.id)
	}
	return Labeled[T]{ID: p.id, Child: node}, next, nil
}

// String shows the label only, the way a grammar refers to a
// non-terminal by its name
func (p *Labeler[T]) String() string { return fmt.Sprintf("%v", p.id) }

//  ---- Message ----

type Messenger[T comparable] struct {
	item Parser[T]
	msg  string
}

// Message returns a rule that attaches `msg` to the errors of `item`
// that don't carry a message yet.  The innermost message wins.
func Message[T comparable](msg string, item Parser[T]) Rule[T] {
	return R[T](&Messenger[T]{item: unwrap(item), msg: msg})
}

func (p *Messenger[T]) Run(in Cursor) (Node[T], Cursor, *ParseError[T]) {
	node, next, err := p.item.Run(in)
	if err != nil {
		return nil, in, err.withMessage(p.msg)
	}
	return node, next, nil
}

func (p *Messenger[T]) String() string { return p.item.String() }

//  ---- Ignore ----

type Ignorer[T comparable] struct {
	item Parser[T]
}

// Ignore returns a rule that consumes what `item` matches but
// returns Empty instead of its tree.
func Ignore[T comparable](item Parser[T]) Rule[T] {
	return R[T](&Ignorer[T]{item: unwrap(item)})
}

func (p *Ignorer[T]) Run(in Cursor) (Node[T], Cursor, *ParseError[T]) {
	_, next, err := p.item.Run(in)
	if err != nil {
		return nil, in, err
	}
	return Empty[T]{}, next, nil
}

func (p *Ignorer[T]) String() string { return p.item.String() }

//  ---- Log ----

// Outcome is what a Log observer gets to see after its parser ran.
// Err is nil on success.
type Outcome[T comparable] struct {
	Parser Parser[T]
	Start  Cursor
	End    Cursor
	Node   Node[T]
	Err    *ParseError[T]
}

func (o Outcome[T]) Ok() bool { return o.Err == nil }

// Consumed returns the input matched by the parser
func (o Outcome[T]) Consumed() string { return o.Start.Slice(o.End) }

// Observer is called by the Log combinator.  The error in the
// outcome is a copy, changing it doesn't affect the parse result.
type Observer[T comparable] func(Outcome[T])

type Logger[T comparable] struct {
	item Parser[T]
	fn   Observer[T]
}

// Log returns a rule that behaves exactly like `item` but calls `fn`
// with the outcome of every run.
func Log[T comparable](item Parser[T], fn Observer[T]) Rule[T] {
	return R[T](&Logger[T]{item: unwrap(item), fn: fn})
}

func (p *Logger[T]) Run(in Cursor) (Node[T], Cursor, *ParseError[T]) {
	node, next, err := p.item.Run(in)
	if p.fn != nil {
		o := Outcome[T]{Parser: p.item, Start: in, End: next, Node: node}
		if err != nil {
			c := *err
			o.Err = &c
		}
		p.fn(o)
	}
	return node, next, err
}

func (p *Logger[T]) String() string { return p.item.String() }

func joinParsers[T comparable](ps []Parser[T], sep string) string {
	var s strings.Builder
	for i, p := range ps {
		if i > 0 {
			s.WriteString(sep)
		}
		s.WriteString(p.String())
	}
	return s.String()
}
