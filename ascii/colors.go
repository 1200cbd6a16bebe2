// Package ascii provides semantic names for terminal colors so they
// can be grouped in themes used by the tree and error printers.
package ascii

import "github.com/fatih/color"

// Theme defines semantic color mappings
type Theme struct {
	// Diagnostics
	Error   *color.Color
	Message *color.Color
	Caret   *color.Color

	// UI elements
	Muted  *color.Color // secondary/dimmed text
	Accent *color.Color // highlighted/emphasized text

	// Tree printer
	Literal *color.Color
	Span    *color.Color
	Label   *color.Color
}

// DefaultTheme provides a sensible default color mapping.
var DefaultTheme = Theme{
	Error:   color.New(color.FgRed, color.Bold),
	Message: color.New(color.FgYellow, color.Bold),
	Caret:   color.New(color.FgHiBlue, color.Bold),

	Muted:  color.New(color.FgHiBlack),
	Accent: color.New(color.FgCyan, color.Bold),

	Literal: color.New(color.FgGreen),
	Span:    color.New(color.FgHiYellow),
	Label:   color.New(color.FgMagenta, color.Bold),
}

// PlainTheme never emits escape sequences.  Handy for tests and for
// output that isn't going to a terminal.
var PlainTheme = Theme{
	Error:   plain(),
	Message: plain(),
	Caret:   plain(),
	Muted:   plain(),
	Accent:  plain(),
	Literal: plain(),
	Span:    plain(),
	Label:   plain(),
}

func plain() *color.Color {
	c := color.New()
	c.DisableColor()
	return c
}

// Paint is a nil-safe shortcut for `c.Sprint(s)`
func Paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}
