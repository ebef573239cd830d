package memo

import (
	"testing"

	"github.com/parsekit/pika/grammar"
)

func TestPutFirstEntryAlwaysStores(t *testing.T) {
	tbl := New()
	c := grammar.Str("x")
	key := Key{Pos: 0, Clause: c}
	if !tbl.Put(key, Match(1, grammar.Leaf("x"), 0)) {
		t.Fatalf("expected first insert to store")
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
}

func TestPutRejectsShorterMatch(t *testing.T) {
	tbl := New()
	c := grammar.Str("x")
	key := Key{Pos: 0, Clause: c}
	tbl.Put(key, Match(3, "abc", 0))
	if tbl.Put(key, Match(2, "ab", 0)) {
		t.Errorf("expected a shorter match not to replace a longer one")
	}
	e, _ := tbl.Lookup(key)
	if e.Length != 3 {
		t.Errorf("Length = %d, want 3 (unchanged)", e.Length)
	}
}

func TestPutAcceptsLongerMatch(t *testing.T) {
	tbl := New()
	c := grammar.Str("x")
	key := Key{Pos: 0, Clause: c}
	tbl.Put(key, Match(2, "ab", 0))
	if !tbl.Put(key, Match(3, "abc", 0)) {
		t.Errorf("expected a longer match to replace a shorter one")
	}
	e, _ := tbl.Lookup(key)
	if e.Length != 3 {
		t.Errorf("Length = %d, want 3", e.Length)
	}
}

func TestPutNeverOverwritesSuccessWithFail(t *testing.T) {
	tbl := New()
	c := grammar.Str("x")
	key := Key{Pos: 0, Clause: c}
	tbl.Put(key, Match(1, grammar.Leaf("x"), 0))
	if tbl.Put(key, Fail("retried and failed", 0)) {
		t.Errorf("expected a fail to never overwrite a stored success")
	}
	e, _ := tbl.Lookup(key)
	if !e.Success {
		t.Errorf("expected the stored success to survive a later fail")
	}
}

func TestPutZeroLengthMatchReplacesFail(t *testing.T) {
	tbl := New()
	c := grammar.Opt(grammar.Str("x"))
	key := Key{Pos: 0, Clause: c}
	if !tbl.Put(key, Fail("not yet", 0)) {
		t.Fatalf("expected first fail to store")
	}
	if !tbl.Put(key, Match(0, nil, 0)) {
		t.Errorf("expected a zero-length match to replace a prior fail")
	}
}

func TestPutAltPrecedenceTiebreak(t *testing.T) {
	tbl := New()
	c := grammar.Alt(grammar.Str("a"), grammar.Str("ab"))
	key := Key{Pos: 0, Clause: c}
	// a lower-precedence (later, alt_prec=2) match of equal length must not
	// replace a higher-precedence (alt_prec=1) one already stored.
	tbl.Put(key, Match(2, "ab", 1))
	if tbl.Put(key, Match(2, "ab", 2)) {
		t.Errorf("expected a worse alt_prec to be rejected at equal length")
	}
	// but a strictly better alt_prec, even at equal length, must win.
	tbl2 := New()
	tbl2.Put(key, Match(2, "ab", 2))
	if !tbl2.Put(key, Match(2, "ab", 1)) {
		t.Errorf("expected a better alt_prec to replace a worse one")
	}
}
