package parsekit

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// The leaf parsers.  They all fail right away with a dedicated
// message when there's no input left, and fail with neither a
// message nor a backtrace on a mismatch, leaving it to enclosing
// Label and Message combinators to explain what went wrong.

// Matcher is the function that backs a Predicate parser.  It gets
// the input that's left and returns whether it matches and how many
// bytes to consume.  The length must not stop in the middle of a
// character.
type Matcher func(rest string) (ok bool, n int)

type primitive[T comparable] struct {
	name  string
	match Matcher
}

func (p *primitive[T]) Run(in Cursor) (Node[T], Cursor, *ParseError[T]) {
	if in.IsEmpty() {
		err := newParseError[T](in, p)
		err.Message = msgEndOfInput
		return nil, in, err
	}
	ok, n := p.match(in.Rest())
	if !ok {
		return nil, in, newParseError[T](in, p)
	}
	if n < 0 || n > in.Remaining() {
		panic(fmt.Sprintf("%s matched %d bytes with %d bytes left", p.name, n, in.Remaining()))
	}
	if splitsRune(in.Rest(), n) {
		panic(fmt.Sprintf("%s matched %d bytes, stopping in the middle of a character", p.name, n))
	}
	next := in.Advance(n)
	return NewSpan[T](in.Input(), in.Range(next)), next, nil
}

func (p *primitive[T]) String() string { return p.name }

func newPrimitive[T comparable](name string, match Matcher) Rule[T] {
	return R[T](&primitive[T]{name: name, match: match})
}

// Char matches the rune `c`.  Bytes that aren't valid UTF-8 decode
// as utf8.RuneError but never match it.
func Char[T comparable](c rune) Rule[T] {
	return newPrimitive[T](strconv.QuoteRune(c), func(rest string) (bool, int) {
		r, size := utf8.DecodeRuneInString(rest)
		return r == c && validRune(r, size), size
	})
}

// Literal matches the string `s`
func Literal[T comparable](s string) Rule[T] {
	return newPrimitive[T](strconv.Quote(s), func(rest string) (bool, int) {
		return strings.HasPrefix(rest, s), len(s)
	})
}

// Predicate matches whatever `match` accepts.  The `name` is only
// used to describe the parser in error messages.
func Predicate[T comparable](name string, match Matcher) Rule[T] {
	return newPrimitive[T]("<"+name+">", match)
}

// Any matches any single rune
func Any[T comparable]() Rule[T] {
	return newPrimitive[T](".", func(rest string) (bool, int) {
		_, size := utf8.DecodeRuneInString(rest)
		return true, size
	})
}

// OneOf matches a single rune present in `set`
func OneOf[T comparable](set string) Rule[T] {
	return newPrimitive[T]("["+escapeSet(set)+"]", func(rest string) (bool, int) {
		r, size := utf8.DecodeRuneInString(rest)
		return strings.ContainsRune(set, r), size
	})
}

// NoneOf matches a single rune that isn't present in `set`
func NoneOf[T comparable](set string) Rule[T] {
	return newPrimitive[T]("[^"+escapeSet(set)+"]", func(rest string) (bool, int) {
		r, size := utf8.DecodeRuneInString(rest)
		return !strings.ContainsRune(set, r), size
	})
}

// RuneRange matches a single rune between `lo` and `hi`, inclusive
func RuneRange[T comparable](lo, hi rune) Rule[T] {
	name := "[" + escapeSet(string(lo)) + "-" + escapeSet(string(hi)) + "]"
	return newPrimitive[T](name, func(rest string) (bool, int) {
		r, size := utf8.DecodeRuneInString(rest)
		return r >= lo && r <= hi, size
	})
}

var setSanitizer = strings.NewReplacer(
	`]`, `\]`,
	`\`, `\\`,
	`-`, `\-`,
	string('\n'), `\n`,
	string('\r'), `\r`,
	string('\t'), `\t`,
)

func escapeSet(s string) string {
	return setSanitizer.Replace(s)
}

// validRune tells a decoded utf8.RuneError apart from the replacement
// for an invalid byte, which always has size 1
func validRune(r rune, size int) bool {
	return size > 1 || (size == 1 && r != utf8.RuneError)
}

// splitsRune returns true when cutting `s` at `n` falls within a valid
// multi-byte character.  Invalid bytes can be cut anywhere.
func splitsRune(s string, n int) bool {
	if n <= 0 || n >= len(s) || utf8.RuneStart(s[n]) {
		return false
	}
	start := n - 1
	for start > 0 && n-start < utf8.UTFMax && !utf8.RuneStart(s[start]) {
		start--
	}
	r, size := utf8.DecodeRuneInString(s[start:])
	return validRune(r, size) && start+size > n
}
