package parsekit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNode_String(t *testing.T) {
	tree := labeled(Expr, group(labeled(Number, span("1", 0)), Empty[tag]{}, span("+", 1)))

	assert.Equal(t, `Expr(Group[Number(Span("1")), Empty, Span("+")])`, tree.String())
	assert.Equal(t, "1+", tree.Text())
	assert.Equal(t, NodeKind_Labeled, tree.Kind())
	assert.Equal(t, "labeled", tree.Kind().String())
}

func TestNode_Find(t *testing.T) {
	tree := labeled(Expr, group(labeled(Number, span("1", 0)), span("+", 1), labeled(Number, span("2", 2))))

	n, ok := Find[tag](tree, Number)
	assert.True(t, ok)
	assert.Equal(t, labeled(Number, span("1", 0)), n)

	_, ok = Find[tag](tree, Paren)
	assert.False(t, ok)

	assert.Equal(t, []Span[tag]{span("1", 0), span("+", 1), span("2", 2)}, Spans[tag](tree))
}

func TestClean(t *testing.T) {
	for _, test := range []struct {
		name     string
		input    Node[tag]
		expected Node[tag]
	}{
		{
			name:     "drops empty items",
			input:    group(span("a", 0), Empty[tag]{}, span("b", 1)),
			expected: group(span("a", 0), span("b", 1)),
		},
		{
			name:     "empty group collapses",
			input:    group(Empty[tag]{}, Empty[tag]{}),
			expected: Empty[tag]{},
		},
		{
			name:     "nested groups",
			input:    group(group(Empty[tag]{}), span("a", 0), group(Empty[tag]{}, span("b", 1))),
			expected: group(span("a", 0), group(span("b", 1))),
		},
		{
			name:     "under labels",
			input:    labeled(Word, group(Empty[tag]{}, span("a", 0))),
			expected: labeled(Word, group(span("a", 0))),
		},
		{
			name:     "labeled empty is kept",
			input:    group(labeled(Word, group(Empty[tag]{}))),
			expected: group(labeled(Word, Empty[tag]{})),
		},
		{
			name:     "span is untouched",
			input:    span("a", 0),
			expected: span("a", 0),
		},
		{
			name:     "nil becomes empty",
			input:    nil,
			expected: Empty[tag]{},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			cleaned := Clean[tag](test.input)
			if diff := cmp.Diff(test.expected, cleaned); diff != "" {
				t.Errorf("Clean() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(cleaned, Clean[tag](cleaned)); diff != "" {
				t.Errorf("Clean() isn't idempotent (-first +second):\n%s", diff)
			}
		})
	}
}
