package queue

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"

	"github.com/parsekit/pika/grammar"
)

// Queue is a priority-ordered, deduplicating work queue of clauses. It is
// built from a gods min-binary-heap ordered by clause priority, plus a
// hashset tracking membership so that Schedule is idempotent while a clause
// is queued.
type Queue struct {
	heap    *binaryheap.Heap
	present *hashset.Set
}

func byPriority(a, b interface{}) int {
	ca, cb := a.(*grammar.Clause), b.(*grammar.Clause)
	return utils.IntComparator(ca.Priority, cb.Priority)
}

// New creates an empty scheduling queue.
func New() *Queue {
	return &Queue{
		heap:    binaryheap.NewWith(byPriority),
		present: hashset.New(),
	}
}

// Schedule enqueues c unless it is already present. Once c has been popped,
// it may be scheduled again — membership is cleared on Pop.
func (q *Queue) Schedule(c *grammar.Clause) {
	if q.present.Contains(c) {
		return
	}
	q.present.Add(c)
	q.heap.Push(c)
}

// Pop removes and returns the minimum-priority clause. It reports false when
// the queue is empty.
func (q *Queue) Pop() (*grammar.Clause, bool) {
	v, ok := q.heap.Pop()
	if !ok {
		return nil, false
	}
	c := v.(*grammar.Clause)
	q.present.Remove(c)
	return c, true
}

// Empty reports whether the queue currently holds no clauses.
func (q *Queue) Empty() bool {
	return q.heap.Empty()
}

// Len returns the number of clauses currently queued; bounded by the number
// of distinct clauses in the grammar.
func (q *Queue) Len() int {
	return q.heap.Size()
}
