package parsekit

// Parse runs `p` once from the beginning of `input`.  It returns the
// tree and the cursor where the parser stopped, or a *ParseError.
func Parse[T comparable](p Parser[T], input string) (Node[T], Cursor, error) {
	node, next, err := p.Run(NewCursor(input))
	if err != nil {
		return nil, next, err
	}
	return node, next, nil
}

// ParseAll is like Parse but also fails when `p` doesn't consume the
// whole input.  The error points at where the parser stopped.
func ParseAll[T comparable](p Parser[T], input string) (Node[T], Cursor, error) {
	node, next, err := p.Run(NewCursor(input))
	if err != nil {
		return nil, next, err
	}
	if !next.IsEmpty() {
		perr := newParseError[T](next, p)
		perr.Message = msgUnconsumedInput
		return nil, NewCursor(input), perr
	}
	return node, next, nil
}

// ParseWithConfig runs `p` over `input` honoring the settings in
// `cfg`:
//
//   - parse.require_eof: behave like ParseAll
//   - parse.clean_tree: apply Clean to the output tree
//
// A nil `cfg` means the defaults of NewConfig.
func ParseWithConfig[T comparable](p Parser[T], input string, cfg *Config) (Node[T], Cursor, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	var (
		node Node[T]
		next Cursor
		err  error
	)
	if cfg.GetBool("parse.require_eof") {
		node, next, err = ParseAll(p, input)
	} else {
		node, next, err = Parse(p, input)
	}
	if err != nil {
		return nil, next, err
	}
	if cfg.GetBool("parse.clean_tree") {
		node = Clean(node)
	}
	return node, next, nil
}
