package topdown

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/parsekit/pika/grammar"
)

func TestDirectLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pika.topdown")
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

func TestGreedyRepetitionAndOptional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pika.topdown")
	defer teardown()

	greeting := grammar.NewRule("greeting", grammar.Seq(
		grammar.Str("hello"),
		grammar.Opt(grammar.Str(" there")),
		grammar.MultClause(0, grammar.Str("!")),
	))
	g, err := grammar.Compile(greeting)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	tree, ok := Parse(g, "hello there!!!")
	if !ok {
		t.Fatalf("expected \"hello there!!!\" to parse")
	}
	got := grammar.Yield(tree)
	want := []interface{}{"hello", " there", []interface{}{"!", "!", "!"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("yield = %#v, want %#v", got, want)
	}

	if _, ok := Parse(g, "goodbye"); ok {
		t.Errorf("expected \"goodbye\" to be rejected")
	}
}

func TestNegativeLookahead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pika.topdown")
	defer teardown()

	keyword := grammar.Rgx(`if\b`)
	ident := grammar.NewRule("ident", grammar.Seq(grammar.NLook(keyword), grammar.Rgx(`[a-z]+`)))
	g, err := grammar.Compile(ident)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if _, ok := Parse(g, "if"); ok {
		t.Errorf("expected \"if\" to be rejected by negative lookahead")
	}
	if _, ok := Parse(g, "iffy"); !ok {
		t.Errorf("expected \"iffy\" to parse")
	}
}

func TestPositiveLookahead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pika.topdown")
	defer teardown()

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
	got := grammar.Yield(tree)
	want := []interface{}{"42", "42"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("yield = %#v, want %#v", got, want)
	}

	if _, ok := Parse(g, "x"); ok {
		t.Errorf("expected \"x\" to be rejected: lookahead does not match")
	}
}

// bottomup and topdown must produce identical parse trees for grammars that
// aren't ambiguous.
func TestAgreesWithBottomUpShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pika.topdown")
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
		t.Fatalf("expected 1yx to parse")
	}
	got := grammar.Yield(tree)
	want := []interface{}{[]interface{}{"1", "y"}, "x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("yield = %#v, want %#v", got, want)
	}
}
