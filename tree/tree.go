// Package tree defines match trees produced by the parser and functions
// to traverse them and fold them into application values.
package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a half-open interval [Start, End) of scalar offsets in the input.
type Range struct {
	Start, End int
}

// Match is a single match tree: either a *Token or a *Node.
// Match trees are immutable after the parser returns them.
type Match[L comparable] interface {
	// Span returns the input range covered by the match, nil if the match
	// covers no input (synthetic tokens, empty nodes).
	Span() *Range

	// Equal reports structural equality of two match trees.
	Equal(m Match[L]) bool

	// String renders the match tree for diagnostic messages.
	String() string
}

// Token is a leaf match holding a literal scalar sequence.
// Pos is nil for synthetic tokens produced over empty input.
type Token[L comparable] struct {
	Text string
	Pos  *Range
}

// Node is a non-leaf match holding ordered children, tagged with a label
// when produced by a labeled grammar term.
type Node[L comparable] struct {
	Label    *L
	Children []Match[L]
}

func (t *Token[L]) Span() *Range {
	return t.Pos
}

func (t *Token[L]) Equal(m Match[L]) bool {
	o, f := m.(*Token[L])
	if !f || t.Text != o.Text {
		return false
	}
	if t.Pos == nil || o.Pos == nil {
		return t.Pos == o.Pos
	}
	return *t.Pos == *o.Pos
}

func (t *Token[L]) String() string {
	return strconv.Quote(t.Text)
}

// Span returns the range from the first ranged child to the last one,
// nil if no child covers any input.
func (n *Node[L]) Span() *Range {
	var res *Range
	for _, c := range n.Children {
		s := c.Span()
		if s == nil {
			continue
		}
		if res == nil {
			res = &Range{s.Start, s.End}
		} else {
			res.End = s.End
		}
	}
	return res
}

func (n *Node[L]) Equal(m Match[L]) bool {
	o, f := m.(*Node[L])
	if !f || len(n.Children) != len(o.Children) {
		return false
	}
	if n.Label == nil || o.Label == nil {
		if n.Label != nil || o.Label != nil {
			return false
		}
	} else if *n.Label != *o.Label {
		return false
	}

	for i, c := range n.Children {
		if !c.Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

func (n *Node[L]) String() string {
	b := &strings.Builder{}
	b.WriteByte('(')
	if n.Label != nil {
		writeLabel(b, *n.Label)
	}
	for _, c := range n.Children {
		if b.Len() > 1 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(')')
	return b.String()
}

func writeLabel[L comparable](b *strings.Builder, label L) {
	fmt.Fprintf(b, "%v", label)
}

// Text returns the concatenated text of all tokens of the match tree.
func Text[L comparable](m Match[L]) string {
	b := &strings.Builder{}
	writeText(m, b)
	return b.String()
}

func writeText[L comparable](m Match[L], b *strings.Builder) {
	switch t := m.(type) {
	case *Token[L]:
		b.WriteString(t.Text)
	case *Node[L]:
		for _, c := range t.Children {
			writeText(c, b)
		}
	}
}

// Visitor is called by Walk for every match in the tree.
// Returning false skips the children of the current match.
type Visitor[L comparable] func(m Match[L]) (walkChildren bool)

// Walk visits the match tree top-down, children in order.
func Walk[L comparable](m Match[L], visit Visitor[L]) {
	if m == nil {
		return
	}

	if !visit(m) {
		return
	}
	if n, f := m.(*Node[L]); f {
		for _, c := range n.Children {
			Walk(c, visit)
		}
	}
}
