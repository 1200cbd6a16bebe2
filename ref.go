package parsekit

import "fmt"

// Ref is a parser whose target is only known later.  It's how
// recursive grammars are built: declare the reference, use it within
// the rules that need it and then point it at the final rule.
//
//	expr := parsekit.Forward[tag]("Expr")
//	atom := parsekit.Choice[tag](number, parsekit.Seq[tag](open, expr, close))
//	expr.Set(atom.Seq(...))
type Ref[T comparable] struct {
	name   string
	target Parser[T]
}

// Forward declares a reference named `name`
func Forward[T comparable](name string) *Ref[T] {
	return &Ref[T]{name: name}
}

// Set points the reference at `p`.  It can only be done once.
func (r *Ref[T]) Set(p Parser[T]) {
	if r.target != nil {
		panic(fmt.Sprintf("reference `%s` is already set", r.name))
	}
	r.target = unwrap(p)
}

// Rule returns the reference wrapped within a Rule so the builder
// methods can be chained on it
func (r *Ref[T]) Rule() Rule[T] { return R[T](r) }

func (r *Ref[T]) Run(in Cursor) (Node[T], Cursor, *ParseError[T]) {
	if r.target == nil {
		panic(fmt.Sprintf("reference `%s` was used before being set", r.name))
	}
	return r.target.Run(in)
}

// String returns the name of the reference and not of its target,
// otherwise describing a recursive grammar would never end
func (r *Ref[T]) String() string { return r.name }
