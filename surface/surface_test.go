package surface

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/parsekit/pika"
)

func TestTokenize(t *testing.T) {
	toks, err := Tokenize(`expr <- expr "+" num | num`)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	want := []TokType{TokIdent, TokArrow, TokIdent, TokString, TokIdent, TokPipe, TokIdent}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestParseLeftRecursiveExpr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pika.surface")
	defer teardown()

	g, err := Parse(`expr <- expr "+" num | num
num <- /[0-9]+/`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	result, perr := pika.Parse(g, "1+2+3")
	if perr != nil {
		t.Fatalf("1+2+3 did not parse: %v", perr)
	}
	got := pika.Yield(result)
	want := []interface{}{[]interface{}{"1", "+", "2"}, "+", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("yield = %#v, want %#v", got, want)
	}
}

func TestParseRejectsUnknownRule(t *testing.T) {
	if _, err := Parse(`a <- b`); err == nil {
		t.Errorf("expected an error for an undeclared rule reference")
	}
}

func TestParseRejectsDuplicateRule(t *testing.T) {
	if _, err := Parse(`a <- "x"
a <- "y"`); err == nil {
		t.Errorf("expected an error for a duplicate rule declaration")
	}
}
