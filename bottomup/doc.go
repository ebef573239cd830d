/*
Package bottomup implements the Pika bottom-up matcher: for each input
position, from the end of the input down to its start, it schedules every
terminal clause and every clause that can match empty, and drains a priority
queue, recomputing each popped clause's
match and propagating successes (and empty-matching failures) to its
saplings, until the queue at that position is empty. Left recursion is a
non-issue in this direction: a short match seeds its parent, which is then
re-evaluated once more input has become available to its right.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package bottomup
