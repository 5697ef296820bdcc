package source

import (
	"testing"
)

type result struct {
	pos, line, col int
}

func TestSourceLineCol(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 1, 1},
			{100, 1, 1},
			{100, 1, 1},
		},
		"\n": {
			{0, 1, 1},
			{1, 2, 1},
			{1, 2, 1},
			{100, 2, 1},
		},
		"0\n2\n4\n6789abcde\ng\ni\n": {
			{4, 3, 1},
			{5, 3, 2},
			{6, 4, 1},
			{7, 4, 2},
			{14, 4, 9},
			{19, 6, 2},
			{20, 7, 1},
			{9, 4, 4},
			{5, 3, 2},
		},
	}

	for text, results := range samples {
		src := New("", text)
		for _, res := range results {
			l, c := src.LineCol(res.pos)
			if l != res.line || c != res.col {
				t.Errorf("sample %q pos %d: expected %v, got line: %d, col: %d", text, res.pos, res, l, c)
			}
		}
	}
}

func TestSourceScalarOffsets(t *testing.T) {
	// offsets count scalars, not bytes
	src := New("", "дом\nик")
	if src.Len() != 6 {
		t.Fatalf("expecting 6 scalars, got %d", src.Len())
	}
	if src.At(0) != 'д' || src.At(4) != 'и' {
		t.Errorf("unexpected scalars: %q, %q", src.At(0), src.At(4))
	}
	if got := src.Slice(1, 3); got != "ом" {
		t.Errorf("expecting %q, got %q", "ом", got)
	}

	l, c := src.LineCol(5)
	if l != 2 || c != 2 {
		t.Errorf("expecting line 2 col 2, got line %d col %d", l, c)
	}
}

func TestPos(t *testing.T) {
	src := New("cfg", "ab\ncd")
	p := NewPos(src, 4)
	if p.SourceName() != "cfg" || p.Pos() != 4 || p.Line() != 2 || p.Col() != 2 {
		t.Errorf("unexpected pos: name %q pos %d line %d col %d", p.SourceName(), p.Pos(), p.Line(), p.Col())
	}
	if p.Source() != src {
		t.Error("expecting the source to be kept")
	}
}
