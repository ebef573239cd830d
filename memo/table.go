package memo

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/parsekit/pika/grammar"
)

// tracer traces with key 'pika.memo'.
func tracer() tracing.Trace {
	return tracing.Select("pika.memo")
}

// Key identifies a memo table slot: an input position paired with a clause.
// Clause identity is the Go pointer. Compile does not hash-cons clauses:
// structurally equal sub-expressions built as separate nodes stay separate
// clauses and get separate keys.
type Key struct {
	Pos    int
	Clause *grammar.Clause
}

func (k Key) String() string {
	return fmt.Sprintf("(%d, %s)", k.Pos, k.Clause)
}

// Entry is one memo table slot: either a successful Match or a Fail. Content
// holds the matched value tree (see pika.ParseTree); AltPrec is the 1-based
// index of the chosen Alt branch, or 0 when the clause is not an Alt.
type Entry struct {
	Success bool
	Length  int
	Content interface{}
	Reason  string
	AltPrec int
}

// Match constructs a successful Entry.
func Match(length int, content interface{}, altPrec int) Entry {
	return Entry{Success: true, Length: length, Content: content, AltPrec: altPrec}
}

// Fail constructs a failed Entry.
func Fail(reason string, altPrec int) Entry {
	return Entry{Success: false, Reason: reason, AltPrec: altPrec}
}

// Table is the memo table for one parse: a flat map from Key to Entry. A
// Table is created per parse and discarded at its end; it is never shared
// between concurrent parses of the same Grammar.
type Table struct {
	entries map[Key]Entry
}

// New creates an empty memo table.
func New() *Table {
	return &Table{entries: make(map[Key]Entry)}
}

// Lookup returns the stored entry for key, if any.
func (t *Table) Lookup(key Key) (Entry, bool) {
	e, ok := t.entries[key]
	return e, ok
}

// Put attempts to install new as the entry for key, enforcing (I4): replacing
// an existing entry requires either a strictly longer match, or — when the
// key's clause is an Alt and both entries are matches — a strictly lower
// (better) alt_prec. A stored Fail is replaced by any match, even a
// zero-length one; a Fail never replaces a stored match. It reports whether
// the table actually changed.
func (t *Table) Put(key Key, next Entry) bool {
	old, exists := t.entries[key]
	if !exists {
		t.entries[key] = next
		tracer().Debugf("memo: first entry @ %s = %v", key, next)
		return true
	}
	if key.Clause.Kind == grammar.KAlt && old.Success && next.Success && next.AltPrec < old.AltPrec {
		t.entries[key] = next
		tracer().Debugf("memo: %s replaced by higher-precedence alt %d -> %d", key, old.AltPrec, next.AltPrec)
		return true
	}
	if next.Success && (!old.Success || next.Length > old.Length) {
		t.entries[key] = next
		tracer().Debugf("memo: %s replaced by longer match %d -> %d", key, old.Length, next.Length)
		return true
	}
	return false
}

// Len returns the number of keys currently stored; bounded by
// |input|+1 times |clauses|.
func (t *Table) Len() int {
	return len(t.entries)
}
