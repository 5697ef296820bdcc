package parser

import (
	"unicode"

	"github.com/ava12/pex/source"
)

// shownToken picks the piece of input quoted in error messages: the first
// scalar if it is whitespace, the longest run of non-whitespace scalars
// otherwise.
func shownToken(src *source.Source, pos int) string {
	if pos >= src.Len() {
		return ""
	}

	if unicode.IsSpace(src.At(pos)) {
		return string(src.At(pos))
	}

	end := pos
	for end < src.Len() && !unicode.IsSpace(src.At(end)) {
		end++
	}
	return src.Slice(pos, end)
}
