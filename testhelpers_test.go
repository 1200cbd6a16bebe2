package parsekit

// tag is the identifier type used by the tests to label subtrees
type tag int

const (
	Number tag = iota
	Op
	Expr
	Term
	Paren
	Word
)

func (t tag) String() string {
	switch t {
	case Number:
		return "Number"
	case Op:
		return "Op"
	case Expr:
		return "Expr"
	case Term:
		return "Term"
	case Paren:
		return "Paren"
	case Word:
		return "Word"
	default:
		return "?"
	}
}

func span(value string, start int) Span[tag] {
	return Span[tag]{Value: value, Range: NewRange(start, start+len(value))}
}

func group(items ...Node[tag]) Group[tag] {
	return Group[tag]{Items: items}
}

func labeled(id tag, child Node[tag]) Labeled[tag] {
	return Labeled[tag]{ID: id, Child: child}
}

// arithmetic returns the `digits ws op ws* digits` grammar used by
// several tests
func arithmetic() Rule[tag] {
	var (
		ws     = OneOf[tag](" \t")
		digits = RuneRange[tag]('0', '9').OneOrMore().Catenate().Label(Number)
		op     = Choice[tag](Char[tag]('+'), Char[tag]('-')).Message("expected `+` or `-`").Label(Op)
	)
	return digits.Seq(ws, op, ws.ZeroOrMore(), digits).Label(Expr)
}
