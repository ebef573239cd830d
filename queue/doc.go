/*
Package queue implements the scheduling queue driving both the bottom-up and
top-down matchers: a priority queue ordered by ascending clause priority
(terminals first, the start rule last) with duplicate suppression — scheduling
an already-queued clause is a no-op, and once a clause is popped a later
schedule of the same clause is accepted again.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package queue
