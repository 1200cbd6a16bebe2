package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward(t *testing.T) {
	t.Run("nested parens", func(t *testing.T) {
		expr := Forward[tag]("Expr")
		atom := Choice[tag](
			Char[tag]('x'),
			Seq[tag](Char[tag]('('), expr, Char[tag](')')).Label(Paren),
		)
		expr.Set(atom)

		node, next, err := expr.Run(NewCursor("((x))"))
		require.Nil(t, err)
		assert.True(t, next.IsEmpty())
		assert.Equal(t, labeled(Paren, group(
			span("(", 0),
			labeled(Paren, group(span("(", 1), span("x", 2), span(")", 3))),
			span(")", 4),
		)), node)
		assert.Equal(t, "('x' / Paren)", atom.String())
		assert.Equal(t, "Expr", expr.String())
	})

	t.Run("builder methods", func(t *testing.T) {
		list := Forward[tag]("List")
		list.Set(Char[tag]('a').Seq(Char[tag](',').Seq(list).Optional()))

		node, next, err := list.Rule().Catenate().Run(NewCursor("a,a,a!"))
		require.Nil(t, err)
		assert.Equal(t, span("a,a,a", 0), node)
		assert.Equal(t, "!", next.Rest())
	})

	t.Run("errors go through the reference", func(t *testing.T) {
		expr := Forward[tag]("Expr")
		expr.Set(Char[tag]('x').Label(Word))

		_, _, err := expr.Rule().Label(Expr).Run(NewCursor("y"))
		require.NotNil(t, err)
		assert.Equal(t, []tag{Word, Expr}, err.Labels())
	})

	t.Run("using an unset reference panics", func(t *testing.T) {
		assert.Panics(t, func() { Forward[tag]("Expr").Run(NewCursor("x")) })
	})

	t.Run("setting a reference twice panics", func(t *testing.T) {
		r := Forward[tag]("Expr")
		r.Set(Char[tag]('x'))
		assert.Panics(t, func() { r.Set(Char[tag]('y')) })
	})
}
