// Package parsekit builds recursive descent parsers out of small
// parsers glued together by combinators.
//
// A grammar is described by starting from leaf parsers (Char,
// Literal, Predicate, Any, OneOf, NoneOf) and chaining the builder
// methods of Rule: Seq, Or, OneOrMore, ZeroOrMore, Optional, Ensure,
// Avoid, Catenate, Label, Message, Ignore and Log.  Running the
// resulting parser returns either a tree of Labeled, Group, Span and
// Empty nodes, or a *ParseError that points at the failing line and
// carries the labels the failure went through.
//
//	type tag int
//
//	const (
//		Number tag = iota
//		Sum
//	)
//
//	digits := parsekit.OneOf[tag]("0123456789").OneOrMore().Catenate().Label(Number)
//	sum := digits.Seq(parsekit.Char[tag]('+'), digits).Label(Sum)
//	tree, _, err := parsekit.ParseAll[tag](sum, "69+420")
package parsekit
