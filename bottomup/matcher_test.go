package bottomup

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/parsekit/pika/grammar"
)

func TestDirectLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pika.bottomup")
	defer teardown()

	num := grammar.Rgx(`[0-9]+`)
	expr := grammar.NewRule("expr", nil)
	expr.Body = grammar.Alt(
		grammar.Seq(grammar.Ref("expr"), grammar.Str("+"), num),
		num,
	)
	g, err := grammar.Compile(expr)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	tree, ok := Parse(g, "1+2+3")
	if !ok {
		t.Fatalf("expected 1+2+3 to parse")
	}
	got := grammar.Yield(tree)
	want := []interface{}{[]interface{}{"1", "+", "2"}, "+", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("yield = %#v, want %#v", got, want)
	}
}

func TestMutualLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pika.bottomup")
	defer teardown()

	num := grammar.Rgx(`[0-9]+`)
	a := grammar.NewRule("a", nil)
	b := grammar.NewRule("b", nil)
	a.Body = grammar.Alt(grammar.Seq(grammar.Ref("b"), grammar.Str("x")), num)
	b.Body = grammar.Alt(grammar.Seq(grammar.Ref("a"), grammar.Str("y")), num)

	g, err := grammar.Compile(a, b)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	tree, ok := Parse(g, "1yx")
	if !ok {
		t.Fatalf("expected 1yx to parse as a-rule")
	}
	got := grammar.Yield(tree)
	want := []interface{}{[]interface{}{"1", "y"}, "x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("yield = %#v, want %#v", got, want)
	}
}

func TestNegativeLookahead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pika.bottomup")
	defer teardown()

	// ident <- !keyword [a-z]+
	keyword := grammar.Rgx(`if\b`)
	ident := grammar.NewRule("ident", grammar.Seq(grammar.NLook(keyword), grammar.Rgx(`[a-z]+`)))
	g, err := grammar.Compile(ident)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if _, ok := Parse(g, "if"); ok {
		t.Errorf("expected \"if\" to be rejected by negative lookahead")
	}
	tree, ok := Parse(g, "iffy")
	if !ok {
		t.Fatalf("expected \"iffy\" to parse")
	}
	got := grammar.Yield(tree)
	want := []interface{}{nil, "iffy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("yield = %#v, want %#v", got, want)
	}
}

func TestPositiveLookahead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pika.bottomup")
	defer teardown()

	// guarded <- &[0-9]+ [0-9]+
	digits := grammar.Rgx(`[0-9]+`)
	guarded := grammar.NewRule("guarded", grammar.Seq(grammar.Look(digits), digits))
	g, err := grammar.Compile(guarded)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	tree, ok := Parse(g, "42")
	if !ok {
		t.Fatalf("expected \"42\" to parse")
	}
	// a successful Look carries its child's content forward as a zero-length
	// match, rather than discarding it.
	got := grammar.Yield(tree)
	want := []interface{}{"42", "42"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("yield = %#v, want %#v", got, want)
	}

	if _, ok := Parse(g, "x"); ok {
		t.Errorf("expected \"x\" to be rejected: lookahead does not match")
	}
}

func TestGreedyRepetition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pika.bottomup")
	defer teardown()

	// digits <- [0-9]+
	digits := grammar.NewRule("digits", grammar.MultClause(1, grammar.Rgx(`[0-9]`)))
	g, err := grammar.Compile(digits)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	tree, ok := Parse(g, "1234")
	if !ok {
		t.Fatalf("expected 1234 to parse")
	}
	got := grammar.Yield(tree)
	want := []interface{}{"1", "2", "3", "4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("yield = %#v, want %#v", got, want)
	}

	if _, ok := Parse(g, ""); ok {
		t.Errorf("expected empty input to fail a one-or-more repetition")
	}
}

func TestOptionalSharedPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pika.bottomup")
	defer teardown()

	// greeting <- "hello" " there"? "!"
	greeting := grammar.NewRule("greeting", grammar.Seq(
		grammar.Str("hello"),
		grammar.Opt(grammar.Str(" there")),
		grammar.Str("!"),
	))
	g, err := grammar.Compile(greeting)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if tree, ok := Parse(g, "hello there!"); !ok {
		t.Errorf("expected \"hello there!\" to parse")
	} else if got, want := grammar.Yield(tree), []interface{}{"hello", " there", "!"}; !reflect.DeepEqual(got, want) {
		t.Errorf("yield = %#v, want %#v", got, want)
	}

	if tree, ok := Parse(g, "hello!"); !ok {
		t.Errorf("expected \"hello!\" to parse")
	} else if got, want := grammar.Yield(tree), []interface{}{"hello", nil, "!"}; !reflect.DeepEqual(got, want) {
		t.Errorf("yield = %#v, want %#v", got, want)
	}
}
