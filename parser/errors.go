package parser

import (
	"fmt"

	"github.com/ava12/pex"
	"github.com/ava12/pex/grammar"
	"github.com/ava12/pex/source"
)

const (
	// ExpectedError indicates that the matcher exhausted all options;
	// the expectation at the farthest failure site is reported.
	ExpectedError = iota + pex.SyntaxErrors

	// UnexpectedTokenError indicates that the grammar matched but input remained.
	UnexpectedTokenError
)

// Programmer errors reported via panic:
const (
	// UnboundRefError indicates a reference to a label that was never bound.
	UnboundRefError = iota + pex.GrammarErrors + 10

	// WrongTermError indicates a grammar term of an unknown concrete type.
	WrongTermError
)

func expectedError[L comparable](src *source.Source, offset int, expected grammar.Term[L]) *pex.Error {
	var msg string
	if offset >= src.Len() {
		msg = fmt.Sprintf("expected %s", expected)
	} else {
		msg = fmt.Sprintf("unexpected token %q (expected %s) at %d", shownToken(src, offset), expected, offset)
	}

	e := pex.FormatErrorPos(source.NewPos(src, offset), ExpectedError, msg)
	e.Offset = offset
	e.Rest = src.Slice(offset, src.Len())
	return e
}

func unexpectedTokenError(src *source.Source, offset int) *pex.Error {
	msg := fmt.Sprintf("unexpected token %q at %d", shownToken(src, offset), offset)
	e := pex.FormatErrorPos(source.NewPos(src, offset), UnexpectedTokenError, msg)
	e.Offset = offset
	e.Rest = src.Slice(offset, src.Len())
	return e
}
