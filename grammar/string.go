package grammar

import (
	"fmt"
	"strconv"
	"strings"
)

// Renderings follow the notation of EBNF-like grammar descriptions:
// "lit", [a-z], (a | b), (a, b), [opt], {rep}. Labels and references
// render as the label name. These strings appear in error messages and
// are not meant to be parsed back.

func (s *Str[L]) String() string {
	return strconv.Quote(s.Text)
}

func (c *Class[L]) String() string {
	return c.Set.String()
}

func joinTerms[L comparable](terms []Term[L], sep string) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

func (c *Choice[L]) String() string {
	return joinTerms(c.Terms, " | ")
}

func (s *Sequence[L]) String() string {
	return joinTerms(s.Terms, ", ")
}

func (p *Option[L]) String() string {
	return "[" + p.Term.String() + "]"
}

func (r *Repeat[L]) String() string {
	return "{" + r.Term.String() + "}"
}

func (f *Flatten[L]) String() string {
	return f.Term.String()
}

func (d *Discard[L]) String() string {
	return d.Term.String()
}

func (r *Replace[L]) String() string {
	return r.Term.String()
}

func (l *Label[L]) String() string {
	return fmt.Sprintf("%v", l.Name)
}

func (r *Reference[L]) String() string {
	return fmt.Sprintf("%v", r.Name)
}

// IsOptional reports whether term may succeed without consuming input:
// options and repetitions are optional, a sequence is optional when all its
// subterms are, a choice when any alternative is. Labels and the structural
// transforms pass through to the wrapped term. A reference is never treated
// as optional, the check does not track cycles.
// Used for diagnostics only, matching never consults it.
func IsOptional[L comparable](term Term[L]) bool {
	switch t := term.(type) {
	case *Option[L], *Repeat[L]:
		return true
	case *Sequence[L]:
		for _, s := range t.Terms {
			if !IsOptional(s) {
				return false
			}
		}
		return true
	case *Choice[L]:
		for _, s := range t.Terms {
			if IsOptional(s) {
				return true
			}
		}
		return false
	case *Label[L]:
		return IsOptional(t.Term)
	case *Flatten[L]:
		return IsOptional(t.Term)
	case *Discard[L]:
		return IsOptional(t.Term)
	case *Replace[L]:
		return IsOptional(t.Term)
	default:
		return false
	}
}
