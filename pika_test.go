package pika

import (
	"reflect"
	"testing"
)

func TestParseAcceptsAndRejects(t *testing.T) {
	num := Rgx(`[0-9]+`)
	expr := Rule("expr", nil)
	expr.Body = Alt(Seq(Ref("expr"), Str("+"), num), num)

	g, err := Compile(expr)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if _, err := Parse(g, "1+2+3"); err != nil {
		t.Errorf("expected 1+2+3 to parse, got %v", err)
	}
	if _, err := Parse(g, "1+2+"); err == nil {
		t.Errorf("expected 1+2+ to be rejected")
	}
}

func TestParseStrategiesAgree(t *testing.T) {
	num := Rgx(`[0-9]+`)
	expr := Rule("expr", nil)
	expr.Body = Alt(Seq(Ref("expr"), Str("+"), num), num)

	g, err := Compile(expr)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	bu, err := Parse(g, "1+2+3", WithStrategy(BottomUp))
	if err != nil {
		t.Fatalf("bottom-up: %v", err)
	}
	td, err := Parse(g, "1+2+3", WithStrategy(TopDown))
	if err != nil {
		t.Fatalf("top-down: %v", err)
	}
	got, want := Yield(bu), Yield(td)
	if got == nil || want == nil {
		t.Fatalf("expected both strategies to produce a tree")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bottom-up and top-down disagree: %#v vs %#v", got, want)
	}
}

func TestSpan(t *testing.T) {
	s := Span{2, 5}
	if s.From() != 2 || s.To() != 5 || s.Len() != 3 {
		t.Errorf("span accessors wrong: %v", s)
	}
	if s.IsNull() {
		t.Errorf("non-zero span reported as null")
	}
	s = s.Extend(Span{4, 9})
	if s != (Span{2, 9}) {
		t.Errorf("extend = %v, want (2…9)", s)
	}
}
