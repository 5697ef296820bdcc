package tree

import (
	"fmt"

	"github.com/ava12/pex"
)

// CustomError wraps an error returned by a Reducer.
const CustomError = pex.TransformErrors

// Reducer folds the values produced by the children of a labeled node into
// a single value. A nil result (with nil error) is treated as absent and
// contributes nothing to the enclosing node.
type Reducer[L comparable] func(label L, values []any) (any, error)

// Transform folds a match tree into an application value.
//
// A token yields its text. An unlabeled node yields the slice of its
// children's values, so a tree without labels folds into a nested mirror
// of itself. A labeled node yields the result of reduce applied to its
// label and children's values; reduce is never called anywhere else.
//
// An error returned by reduce is attached to the input position of the
// node that produced it: a *pex.Error missing an offset gets the node's
// start offset, any other error is wrapped into a *pex.Error with code
// CustomError.
func Transform[L comparable](m Match[L], reduce Reducer[L]) (any, error) {
	switch t := m.(type) {
	case *Token[L]:
		return t.Text, nil
	case *Node[L]:
		values := make([]any, 0, len(t.Children))
		for _, c := range t.Children {
			v, e := Transform(c, reduce)
			if e != nil {
				return nil, e
			}
			if v != nil {
				values = append(values, v)
			}
		}
		if t.Label == nil {
			return values, nil
		}

		res, e := reduce(*t.Label, values)
		if e != nil {
			return nil, customError(e, t.Span())
		}
		return res, nil
	default:
		return nil, nil
	}
}

func customError(e error, span *Range) *pex.Error {
	offset := pex.NoOffset
	if span != nil {
		offset = span.Start
	}

	if pe, f := e.(*pex.Error); f {
		if pe.Offset != pex.NoOffset || offset == pex.NoOffset {
			return pe
		}
		res := *pe
		res.Offset = offset
		return &res
	}

	msg := e.Error()
	if offset != pex.NoOffset {
		msg = fmt.Sprintf("%s at %d", msg, offset)
	}
	res := pex.NewError(CustomError, msg)
	res.Offset = offset
	res.Err = e
	return res
}
