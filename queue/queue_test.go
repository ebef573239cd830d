package queue

import (
	"testing"

	"github.com/parsekit/pika/grammar"
)

func clauseWithPriority(p int) *grammar.Clause {
	c := grammar.Str("x")
	c.Priority = p
	return c
}

func TestPopOrdersByPriority(t *testing.T) {
	q := New()
	low := clauseWithPriority(5)
	mid := clauseWithPriority(2)
	high := clauseWithPriority(0)
	q.Schedule(low)
	q.Schedule(high)
	q.Schedule(mid)

	order := []*grammar.Clause{high, mid, low}
	for i, want := range order {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("pop %d: queue unexpectedly empty", i)
		}
		if got != want {
			t.Errorf("pop %d: got priority %d, want %d", i, got.Priority, want.Priority)
		}
	}
	if !q.Empty() {
		t.Errorf("expected queue to be empty after draining")
	}
}

func TestScheduleIsIdempotentWhileQueued(t *testing.T) {
	q := New()
	c := clauseWithPriority(1)
	q.Schedule(c)
	q.Schedule(c)
	q.Schedule(c)
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after duplicate schedules", q.Len())
	}
	q.Pop()
	if !q.Empty() {
		t.Errorf("expected queue empty after popping the single entry")
	}
}

func TestScheduleAfterPopReenqueues(t *testing.T) {
	q := New()
	c := clauseWithPriority(1)
	q.Schedule(c)
	q.Pop()
	q.Schedule(c)
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after re-scheduling a popped clause", q.Len())
	}
}

func TestPopOnEmptyQueue(t *testing.T) {
	q := New()
	if _, ok := q.Pop(); ok {
		t.Errorf("expected Pop on an empty queue to report false")
	}
}
