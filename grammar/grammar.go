// Package grammar defines grammar terms and combinators.
//
// A grammar is an immutable recursive value assembled from the constructors
// in this package. Terms are polymorphic in the label type L, any comparable
// type will do; labels name the subterms that survive as nodes in the match
// tree and serve as keys for back references. Composed terms share subterms,
// combining grammars never copies them.
package grammar

import (
	"github.com/ava12/pex/runeset"
)

// Term is a single grammar term. Concrete terms are Str, Class, Choice,
// Sequence, Option, Repeat, Flatten, Discard, Replace, Label, and Reference.
type Term[L comparable] interface {
	// Equal reports structural equality of two terms.
	Equal(t Term[L]) bool

	// String renders the term for diagnostic messages.
	String() string
}

// Str matches an exact sequence of scalars.
type Str[L comparable] struct {
	Text string
}

// Class matches exactly one scalar contained in Set.
type Class[L comparable] struct {
	Set *runeset.Set
}

// Choice matches the first of Terms that matches and consumes at least one scalar.
type Choice[L comparable] struct {
	Terms []Term[L]
}

// Sequence matches all of Terms in order.
type Sequence[L comparable] struct {
	Terms []Term[L]
}

// Option matches Term or produces an empty node without consuming input.
type Option[L comparable] struct {
	Term Term[L]
}

// Repeat greedily matches Term zero or more times.
type Repeat[L comparable] struct {
	Term Term[L]
}

// Flatten matches Term, replacing its match tree with a single token
// holding the concatenated text.
type Flatten[L comparable] struct {
	Term Term[L]
}

// Discard matches Term, producing an empty node.
type Discard[L comparable] struct {
	Term Term[L]
}

// Replace matches Term, producing a single token holding Text.
type Replace[L comparable] struct {
	Term Term[L]
	Text string
}

// Label matches Term and tags the produced node with Name.
// Matching a Label binds Name, so a Reference inside Term resolves back to it.
type Label[L comparable] struct {
	Name L
	Term Term[L]
}

// Reference stands for the most recently bound Label of the same name.
type Reference[L comparable] struct {
	Name L
}

// S creates a literal term matching text.
func S[L comparable](text string) Term[L] {
	return &Str[L]{text}
}

// C creates a character class term matching one scalar of set.
func C[L comparable](set *runeset.Set) Term[L] {
	return &Class[L]{set}
}

// Any creates an ordered choice of terms.
func Any[L comparable](terms ...Term[L]) Term[L] {
	return &Choice[L]{terms}
}

// Seq creates a sequence of terms.
func Seq[L comparable](terms ...Term[L]) Term[L] {
	return &Sequence[L]{terms}
}

// Opt creates an optional term.
func Opt[L comparable](term Term[L]) Term[L] {
	return &Option[L]{term}
}

// Rep creates a zero-or-more repetition of term.
func Rep[L comparable](term Term[L]) Term[L] {
	return &Repeat[L]{term}
}

// Rep1 creates a one-or-more repetition of term.
func Rep1[L comparable](term Term[L]) Term[L] {
	return Seq(term, Rep(term))
}

// List creates a repetition of one or more items interleaved with sep:
// item, sep, item, sep, ..., item.
func List[L comparable](item, sep Term[L]) Term[L] {
	return Seq(Rep(Seq(item, sep)), item)
}

// Flat wraps term so that its match is replaced with a single token
// holding the concatenated text of all matched leaves.
func Flat[L comparable](term Term[L]) Term[L] {
	return &Flatten[L]{term}
}

// Omit wraps term so that its match is replaced with an empty node.
func Omit[L comparable](term Term[L]) Term[L] {
	return &Discard[L]{term}
}

// Subst wraps term so that its match is replaced with a single token holding text.
func Subst[L comparable](term Term[L], text string) Term[L] {
	return &Replace[L]{term, text}
}

// Name tags term with a label.
func Name[L comparable](name L, term Term[L]) Term[L] {
	return &Label[L]{name, term}
}

// Ref creates a reference to the most recently bound label of the given name.
func Ref[L comparable](name L) Term[L] {
	return &Reference[L]{name}
}

// Or combines two grammars into an ordered choice.
// Nested choices are flattened rather than nested, and a disjunction of two
// character classes is a single character class over the union of their sets.
func Or[L comparable](a, b Term[L]) Term[L] {
	ca, af := a.(*Class[L])
	cb, bf := b.(*Class[L])
	if af && bf {
		return C[L](ca.Set.Union(cb.Set))
	}

	terms := make([]Term[L], 0, 2)
	if alt, f := a.(*Choice[L]); f {
		terms = append(terms, alt.Terms...)
	} else {
		terms = append(terms, a)
	}
	if alt, f := b.(*Choice[L]); f {
		terms = append(terms, alt.Terms...)
	} else {
		terms = append(terms, b)
	}
	return &Choice[L]{terms}
}

func equalTerms[L comparable](a, b []Term[L]) bool {
	if len(a) != len(b) {
		return false
	}

	for i, t := range a {
		if !t.Equal(b[i]) {
			return false
		}
	}
	return true
}

func (s *Str[L]) Equal(t Term[L]) bool {
	o, f := t.(*Str[L])
	return f && s.Text == o.Text
}

func (c *Class[L]) Equal(t Term[L]) bool {
	o, f := t.(*Class[L])
	return f && c.Set.IsEqual(o.Set)
}

func (c *Choice[L]) Equal(t Term[L]) bool {
	o, f := t.(*Choice[L])
	return f && equalTerms(c.Terms, o.Terms)
}

func (s *Sequence[L]) Equal(t Term[L]) bool {
	o, f := t.(*Sequence[L])
	return f && equalTerms(s.Terms, o.Terms)
}

func (p *Option[L]) Equal(t Term[L]) bool {
	o, f := t.(*Option[L])
	return f && p.Term.Equal(o.Term)
}

func (r *Repeat[L]) Equal(t Term[L]) bool {
	o, f := t.(*Repeat[L])
	return f && r.Term.Equal(o.Term)
}

func (fl *Flatten[L]) Equal(t Term[L]) bool {
	o, f := t.(*Flatten[L])
	return f && fl.Term.Equal(o.Term)
}

func (d *Discard[L]) Equal(t Term[L]) bool {
	o, f := t.(*Discard[L])
	return f && d.Term.Equal(o.Term)
}

func (r *Replace[L]) Equal(t Term[L]) bool {
	o, f := t.(*Replace[L])
	return f && r.Text == o.Text && r.Term.Equal(o.Term)
}

func (l *Label[L]) Equal(t Term[L]) bool {
	o, f := t.(*Label[L])
	return f && l.Name == o.Name && l.Term.Equal(o.Term)
}

func (r *Reference[L]) Equal(t Term[L]) bool {
	o, f := t.(*Reference[L])
	return f && r.Name == o.Name
}
