package parsekit

// Parser is the contract every parsing unit implements, from the
// leaf matchers to the combinators.
//
// On success, Run returns the tree built for the matched input and a
// cursor at or after `in`.  On failure, it returns an error that
// knows where the mismatch happened and hands `in` back untouched, so
// the caller can try something else from the same position.
type Parser[T comparable] interface {
	Run(in Cursor) (Node[T], Cursor, *ParseError[T])

	// String returns a short description of the parser.  It shows
	// up in the verbose rendering of errors.
	String() string
}

// ParserFunc adapts a function to the Parser interface
type ParserFunc[T comparable] struct {
	Name string
	Fn   func(in Cursor) (Node[T], Cursor, *ParseError[T])
}

func (p ParserFunc[T]) Run(in Cursor) (Node[T], Cursor, *ParseError[T]) { return p.Fn(in) }
func (p ParserFunc[T]) String() string                                  { return p.Name }

// Rule wraps a Parser to provide the builder methods.  Each method
// returns a new Rule and leaves the receiver as it was, so a Rule can
// be safely reused in more than one place of a grammar.
type Rule[T comparable] struct {
	Parser[T]
}

// R turns any parser into a Rule
func R[T comparable](p Parser[T]) Rule[T] {
	if r, ok := p.(Rule[T]); ok {
		return r
	}
	return Rule[T]{Parser: p}
}

// unwrap strips Rule wrappers so fusing can look at the concrete
// combinator underneath
func unwrap[T comparable](p Parser[T]) Parser[T] {
	for {
		r, ok := p.(Rule[T])
		if !ok {
			return p
		}
		p = r.Parser
	}
}

func unwrapAll[T comparable](ps []Parser[T]) []Parser[T] {
	out := make([]Parser[T], len(ps))
	for i, p := range ps {
		out[i] = unwrap(p)
	}
	return out
}

// These are the hooks that let a combinator fuse with the operation
// being applied to it instead of getting nested inside a new one.

type seqFuser[T comparable] interface {
	fuseSeq(next []Parser[T]) Parser[T]
}

type choiceFuser[T comparable] interface {
	fuseChoice(next []Parser[T]) Parser[T]
}

// idempotent is implemented by unary combinators for which applying
// the same operation twice is the same as applying it once
type idempotent interface {
	idempotentOp() string
}

func (r Rule[T]) fusesWith(op string) bool {
	i, ok := unwrap(r.Parser).(idempotent)
	return ok && i.idempotentOp() == op
}

// Seq returns a rule that matches the receiver followed by `next`
func (r Rule[T]) Seq(next ...Parser[T]) Rule[T] {
	if f, ok := unwrap(r.Parser).(seqFuser[T]); ok {
		return R(f.fuseSeq(unwrapAll(next)))
	}
	return Seq(append([]Parser[T]{r.Parser}, next...)...)
}

// Or returns a rule that tries the receiver and then each of `alts`
func (r Rule[T]) Or(alts ...Parser[T]) Rule[T] {
	if f, ok := unwrap(r.Parser).(choiceFuser[T]); ok {
		return R(f.fuseChoice(unwrapAll(alts)))
	}
	return Choice(append([]Parser[T]{r.Parser}, alts...)...)
}

func (r Rule[T]) OneOrMore() Rule[T] {
	if r.fusesWith(opOneOrMore) {
		return r
	}
	return OneOrMore[T](r.Parser)
}

func (r Rule[T]) ZeroOrMore() Rule[T] {
	if r.fusesWith(opZeroOrMore) {
		return r
	}
	return ZeroOrMore[T](r.Parser)
}

func (r Rule[T]) Optional() Rule[T] {
	if r.fusesWith(opOptional) {
		return r
	}
	return Optional[T](r.Parser)
}

func (r Rule[T]) Ensure() Rule[T] {
	if r.fusesWith(opEnsure) {
		return r
	}
	return Ensure[T](r.Parser)
}

// Avoid never fuses: avoiding an avoid is a positive lookahead
func (r Rule[T]) Avoid() Rule[T] {
	return Avoid[T](r.Parser)
}

func (r Rule[T]) Catenate() Rule[T] {
	if r.fusesWith(opCatenate) {
		return r
	}
	return Catenate[T](r.Parser)
}

func (r Rule[T]) Label(id T) Rule[T] {
	return Label[T](id, r.Parser)
}

func (r Rule[T]) Message(msg string) Rule[T] {
	return Message[T](msg, r.Parser)
}

func (r Rule[T]) Ignore() Rule[T] {
	return Ignore[T](r.Parser)
}

func (r Rule[T]) Log(fn Observer[T]) Rule[T] {
	return Log[T](r.Parser, fn)
}
