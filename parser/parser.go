// Package parser defines the backtracking matcher.
//
// The matcher evaluates a grammar term against an input string by plain
// recursive descent with backtracking: alternatives are tried in order and
// the cursor is restored on failure. There is no memoization, matching time
// is worst-case exponential in input length for pathological grammars.
// A single call owns all of its state, concurrent calls never share anything
// but the (immutable) grammar.
package parser

import (
	"strings"

	"github.com/ava12/pex"
	"github.com/ava12/pex/grammar"
	"github.com/ava12/pex/source"
	"github.com/ava12/pex/tree"
)

// Match matches input against term and returns the match tree.
// The whole input must be consumed: a match stopping short of the end fails
// with UnexpectedTokenError carrying the remaining input.
func Match[L comparable](term grammar.Term[L], input string) (tree.Match[L], error) {
	return MatchSource(term, source.New("", input))
}

// MatchSource is Match for a named source; error messages gain the source
// name and line/column position.
// Panics with *pex.Error if the grammar resolves an unbound reference,
// this is a construction bug, not an input error.
func MatchSource[L comparable](term grammar.Term[L], src *source.Source) (tree.Match[L], error) {
	c := &context[L]{src: src, bestPos: -1, env: make(map[L]grammar.Term[L])}
	m, f := c.matchTree(term)
	if !f {
		offset := c.bestPos
		expected := c.expected
		if expected == nil {
			offset = c.pos
			expected = term
		}
		return nil, expectedError(src, offset, expected)
	}

	if c.pos < src.Len() {
		return nil, unexpectedTokenError(src, c.pos)
	}
	return m, nil
}

// context is the state of a single match invocation: the cursor, the
// farthest failure site seen so far, and the reference environment.
type context[L comparable] struct {
	src      *source.Source
	pos      int
	bestPos  int
	expected grammar.Term[L]
	env      map[L]grammar.Term[L]
}

// miss records a failure site, keeping only the farthest one.
func (c *context[L]) miss(term grammar.Term[L], at int) {
	if at > c.bestPos {
		c.bestPos = at
		c.expected = term
	}
}

func (c *context[L]) resolve(name L) grammar.Term[L] {
	bound, f := c.env[name]
	if !f {
		panic(pex.FormatError(UnboundRefError, "unbound reference %v", name))
	}
	return bound
}

// appendChild adds a match to a node's child list, splicing the children of
// unlabeled nodes; tokens and labeled nodes are kept as single elements.
func appendChild[L comparable](children []tree.Match[L], m tree.Match[L]) []tree.Match[L] {
	if n, f := m.(*tree.Node[L]); f && n.Label == nil {
		return append(children, n.Children...)
	}
	return append(children, m)
}

// matchTree evaluates term at the cursor and builds a match tree.
// On failure the cursor is left where the attempt started.
func (c *context[L]) matchTree(term grammar.Term[L]) (tree.Match[L], bool) {
	switch t := term.(type) {
	case *grammar.Str[L]:
		start := c.pos
		if !c.eat(term, t.Text) {
			return nil, false
		}
		return &tree.Token[L]{Text: t.Text, Pos: &tree.Range{Start: start, End: c.pos}}, true

	case *grammar.Class[L]:
		if c.pos >= c.src.Len() || !t.Set.Contains(c.src.At(c.pos)) {
			c.miss(term, c.pos)
			return nil, false
		}
		c.pos++
		return &tree.Token[L]{Text: string(c.src.At(c.pos - 1)), Pos: &tree.Range{Start: c.pos - 1, End: c.pos}}, true

	case *grammar.Choice[L]:
		start := c.pos
		for _, alt := range t.Terms {
			m, f := c.matchTree(alt)
			if !f {
				continue
			}
			if c.pos > start {
				return m, true
			}
			// a zero-width success never wins an alternation
			c.pos = start
		}
		return nil, false

	case *grammar.Sequence[L]:
		start := c.pos
		children := make([]tree.Match[L], 0, len(t.Terms))
		for _, sub := range t.Terms {
			m, f := c.matchTree(sub)
			if !f {
				c.miss(sub, c.pos)
				c.pos = start
				return nil, false
			}
			children = appendChild(children, m)
		}
		return &tree.Node[L]{Children: children}, true

	case *grammar.Option[L]:
		m, f := c.matchTree(t.Term)
		if !f {
			return &tree.Node[L]{}, true
		}
		return m, true

	case *grammar.Repeat[L]:
		if cls, f := t.Term.(*grammar.Class[L]); f {
			return c.repeatClass(cls), true
		}

		children := make([]tree.Match[L], 0)
		for {
			start := c.pos
			m, f := c.matchTree(t.Term)
			if !f {
				break
			}
			if c.pos == start {
				// no progress, stop instead of looping forever
				break
			}
			children = appendChild(children, m)
		}
		return &tree.Node[L]{Children: children}, true

	case *grammar.Flatten[L]:
		start := c.pos
		text, f := c.matchString(t.Term)
		if !f {
			return nil, false
		}
		tok := &tree.Token[L]{Text: text}
		if c.pos > start {
			tok.Pos = &tree.Range{Start: start, End: c.pos}
		}
		return tok, true

	case *grammar.Discard[L]:
		if !c.skip(t.Term) {
			return nil, false
		}
		return &tree.Node[L]{}, true

	case *grammar.Replace[L]:
		start := c.pos
		if !c.skip(t.Term) {
			return nil, false
		}
		tok := &tree.Token[L]{Text: t.Text}
		if c.pos > start {
			tok.Pos = &tree.Range{Start: start, End: c.pos}
		}
		return tok, true

	case *grammar.Label[L]:
		c.env[t.Name] = term
		m, f := c.matchTree(t.Term)
		if !f {
			return nil, false
		}
		name := t.Name
		if n, unlabeled := m.(*tree.Node[L]); unlabeled && n.Label == nil {
			return &tree.Node[L]{Label: &name, Children: n.Children}, true
		}
		return &tree.Node[L]{Label: &name, Children: []tree.Match[L]{m}}, true

	case *grammar.Reference[L]:
		return c.matchTree(c.resolve(t.Name))

	default:
		panic(pex.FormatError(WrongTermError, "unknown grammar term %s", term))
	}
}

// repeatClass is the repetition fast path for character classes: consume in
// a tight loop first, then synthesize one token per consumed scalar.
func (c *context[L]) repeatClass(cls *grammar.Class[L]) tree.Match[L] {
	start := c.pos
	for c.pos < c.src.Len() && cls.Set.Contains(c.src.At(c.pos)) {
		c.pos++
	}

	children := make([]tree.Match[L], 0, c.pos-start)
	for i := start; i < c.pos; i++ {
		children = append(children, &tree.Token[L]{Text: string(c.src.At(i)), Pos: &tree.Range{Start: i, End: i + 1}})
	}
	return &tree.Node[L]{Children: children}
}

// eat consumes text scalar by scalar, recording the farthest scalar reached
// on a partial match before restoring the cursor.
func (c *context[L]) eat(term grammar.Term[L], text string) bool {
	start := c.pos
	for _, r := range text {
		if c.pos >= c.src.Len() || c.src.At(c.pos) != r {
			c.miss(term, c.pos)
			c.pos = start
			return false
		}
		c.pos++
	}
	return true
}

// matchString evaluates term at the cursor collecting only the produced
// text. Used under Flatten, where building the intermediate tree would be
// wasted work. Semantics are identical to matchTree.
func (c *context[L]) matchString(term grammar.Term[L]) (string, bool) {
	switch t := term.(type) {
	case *grammar.Str[L]:
		if !c.eat(term, t.Text) {
			return "", false
		}
		return t.Text, true

	case *grammar.Class[L]:
		if c.pos >= c.src.Len() || !t.Set.Contains(c.src.At(c.pos)) {
			c.miss(term, c.pos)
			return "", false
		}
		c.pos++
		return string(c.src.At(c.pos - 1)), true

	case *grammar.Choice[L]:
		start := c.pos
		for _, alt := range t.Terms {
			text, f := c.matchString(alt)
			if !f {
				continue
			}
			if c.pos > start {
				return text, true
			}
			c.pos = start
		}
		return "", false

	case *grammar.Sequence[L]:
		start := c.pos
		b := &strings.Builder{}
		for _, sub := range t.Terms {
			text, f := c.matchString(sub)
			if !f {
				c.miss(sub, c.pos)
				c.pos = start
				return "", false
			}
			b.WriteString(text)
		}
		return b.String(), true

	case *grammar.Option[L]:
		text, f := c.matchString(t.Term)
		if !f {
			return "", true
		}
		return text, true

	case *grammar.Repeat[L]:
		if cls, f := t.Term.(*grammar.Class[L]); f {
			start := c.pos
			for c.pos < c.src.Len() && cls.Set.Contains(c.src.At(c.pos)) {
				c.pos++
			}
			return c.src.Slice(start, c.pos), true
		}

		b := &strings.Builder{}
		for {
			start := c.pos
			text, f := c.matchString(t.Term)
			if !f || c.pos == start {
				break
			}
			b.WriteString(text)
		}
		return b.String(), true

	case *grammar.Flatten[L]:
		return c.matchString(t.Term)

	case *grammar.Discard[L]:
		if !c.skip(t.Term) {
			return "", false
		}
		return "", true

	case *grammar.Replace[L]:
		if !c.skip(t.Term) {
			return "", false
		}
		return t.Text, true

	case *grammar.Label[L]:
		c.env[t.Name] = term
		return c.matchString(t.Term)

	case *grammar.Reference[L]:
		return c.matchString(c.resolve(t.Name))

	default:
		panic(pex.FormatError(WrongTermError, "unknown grammar term %s", term))
	}
}

// skip evaluates term at the cursor reporting only success or failure.
// Used under Discard and Replace.
// Semantics are identical to matchTree.
func (c *context[L]) skip(term grammar.Term[L]) bool {
	switch t := term.(type) {
	case *grammar.Str[L]:
		return c.eat(term, t.Text)

	case *grammar.Class[L]:
		if c.pos >= c.src.Len() || !t.Set.Contains(c.src.At(c.pos)) {
			c.miss(term, c.pos)
			return false
		}
		c.pos++
		return true

	case *grammar.Choice[L]:
		start := c.pos
		for _, alt := range t.Terms {
			if !c.skip(alt) {
				continue
			}
			if c.pos > start {
				return true
			}
			c.pos = start
		}
		return false

	case *grammar.Sequence[L]:
		start := c.pos
		for _, sub := range t.Terms {
			if !c.skip(sub) {
				c.miss(sub, c.pos)
				c.pos = start
				return false
			}
		}
		return true

	case *grammar.Option[L]:
		c.skip(t.Term)
		return true

	case *grammar.Repeat[L]:
		if cls, f := t.Term.(*grammar.Class[L]); f {
			for c.pos < c.src.Len() && cls.Set.Contains(c.src.At(c.pos)) {
				c.pos++
			}
			return true
		}

		for {
			start := c.pos
			if !c.skip(t.Term) || c.pos == start {
				return true
			}
		}

	case *grammar.Flatten[L]:
		return c.skip(t.Term)

	case *grammar.Discard[L]:
		return c.skip(t.Term)

	case *grammar.Replace[L]:
		return c.skip(t.Term)

	case *grammar.Label[L]:
		c.env[t.Name] = term
		return c.skip(t.Term)

	case *grammar.Reference[L]:
		return c.skip(c.resolve(t.Name))

	default:
		panic(pex.FormatError(WrongTermError, "unknown grammar term %s", term))
	}
}
