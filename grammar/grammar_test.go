package grammar

import (
	"testing"

	"github.com/ava12/pex/runeset"
)

type g = Term[string]

func lit(text string) g {
	return S[string](text)
}

func cls(text string) g {
	return C[string](runeset.FromString(text))
}

func TestOrFlattening(t *testing.T) {
	a, b, c, d := lit("a"), lit("b"), lit("c"), lit("d")

	samples := []struct {
		got, want g
	}{
		{Or(a, b), Any(a, b)},
		{Or(Any(a, b), c), Any(a, b, c)},
		{Or(a, Any(b, c)), Any(a, b, c)},
		{Or(Any(a, b), Any(c, d)), Any(a, b, c, d)},
		{Or(Opt(a), b), Any(Opt(a), b)},
	}

	for i, s := range samples {
		if !s.got.Equal(s.want) {
			t.Errorf("sample #%d: expecting %s, got %s", i, s.want, s.got)
		}
	}
}

func TestOrDoesNotNestOtherTerms(t *testing.T) {
	// only direct choices are flattened
	inner := Seq(Any(lit("a"), lit("b")), lit("c"))
	got := Or(inner, lit("d"))
	want := Any(inner, lit("d"))
	if !got.Equal(want) {
		t.Errorf("expecting %s, got %s", want, got)
	}
}

func TestOrUnitesClasses(t *testing.T) {
	got := Or(cls("ab"), cls("bc"))
	c, f := got.(*Class[string])
	if !f {
		t.Fatalf("expecting a class, got %s", got)
	}
	if !c.Set.IsEqual(runeset.FromString("abc")) {
		t.Errorf("expecting set for %q, got %s", "abc", c.Set)
	}

	// a one-scalar literal is not a class and keeps the choice structure
	got = Or(lit("a"), cls("bc"))
	if _, f = got.(*Choice[string]); !f {
		t.Errorf("expecting a choice, got %s", got)
	}
}

func TestEqual(t *testing.T) {
	samples := []struct {
		a, b  g
		equal bool
	}{
		{lit("a"), lit("a"), true},
		{lit("a"), lit("b"), false},
		{lit("a"), cls("a"), false},
		{cls("ab"), cls("ba"), true},
		{cls("ab"), cls("ac"), false},
		{Seq(lit("a"), lit("b")), Seq(lit("a"), lit("b")), true},
		{Seq(lit("a")), Seq(lit("a"), lit("b")), false},
		{Seq(lit("a")), Any(lit("a")), false},
		{Opt(lit("a")), Opt(lit("a")), true},
		{Rep(lit("a")), Opt(lit("a")), false},
		{Flat(lit("a")), Flat(lit("a")), true},
		{Omit(lit("a")), Flat(lit("a")), false},
		{Subst(lit("a"), "x"), Subst(lit("a"), "x"), true},
		{Subst(lit("a"), "x"), Subst(lit("a"), "y"), false},
		{Name("n", lit("a")), Name("n", lit("a")), true},
		{Name("n", lit("a")), Name("m", lit("a")), false},
		{Ref[string]("n"), Ref[string]("n"), true},
		{Ref[string]("n"), Ref[string]("m"), false},
	}

	for i, s := range samples {
		if s.a.Equal(s.b) != s.equal {
			t.Errorf("sample #%d (%s vs %s): expecting equal = %v", i, s.a, s.b, s.equal)
		}
		if s.b.Equal(s.a) != s.equal {
			t.Errorf("sample #%d (%s vs %s): equality is not symmetric", i, s.a, s.b)
		}
	}
}

func TestDerivedTerms(t *testing.T) {
	x, s := lit("x"), lit(",")

	if !Rep1(x).Equal(Seq(x, Rep(x))) {
		t.Errorf("unexpected one-or-more shape: %s", Rep1(x))
	}
	if !List(x, s).Equal(Seq(Rep(Seq(x, s)), x)) {
		t.Errorf("unexpected list shape: %s", List(x, s))
	}
}

func TestSharedSubterms(t *testing.T) {
	// combining grammars aliases subterms instead of copying
	x := lit("x")
	seq := Seq(x, x).(*Sequence[string])
	if seq.Terms[0] != seq.Terms[1] {
		t.Error("expecting both sequence slots to alias the same term")
	}
}

func TestIsOptional(t *testing.T) {
	samples := []struct {
		term g
		want bool
	}{
		{lit("a"), false},
		{cls("a"), false},
		{Opt(lit("a")), true},
		{Rep(lit("a")), true},
		{Seq(Opt(lit("a")), Rep(lit("b"))), true},
		{Seq(Opt(lit("a")), lit("b")), false},
		{Seq[string](), true},
		{Any(lit("a"), Opt(lit("b"))), true},
		{Any(lit("a"), lit("b")), false},
		{Name("n", Opt(lit("a"))), true},
		{Flat(Rep(cls("a"))), true},
		{Omit(Opt(lit("a"))), true},
		{Subst(Opt(lit("a")), "x"), true},
		{Subst(lit("a"), "x"), false},
		{Ref[string]("n"), false},
	}

	for i, s := range samples {
		if IsOptional(s.term) != s.want {
			t.Errorf("sample #%d (%s): expecting %v", i, s.term, s.want)
		}
	}
}

func TestString(t *testing.T) {
	samples := []struct {
		term g
		want string
	}{
		{lit("a"), `"a"`},
		{Seq(lit("a"), lit("b")), `("a", "b")`},
		{Any(lit("a"), lit("b")), `("a" | "b")`},
		{Opt(lit("a")), `["a"]`},
		{Rep(lit("a")), `{"a"}`},
		{Name("expr", lit("a")), "expr"},
		{Ref[string]("expr"), "expr"},
		{Flat(Seq(lit("a"), lit("b"))), `("a", "b")`},
	}

	for i, s := range samples {
		if got := s.term.String(); got != s.want {
			t.Errorf("sample #%d: expecting %s, got %s", i, s.want, got)
		}
	}
}
