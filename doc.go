/*
Package pika is a parser engine for Parsing Expression Grammars (PEGs) that
supports direct and indirect left recursion, arbitrary mutual recursion, and
full memoization.

It follows the Pika-parser approach: rather than recursing top-down from the
start rule, it schedules clauses in a priority queue derived from a topological
order of the grammar graph, seeded by terminal matches, and grows a memoization
table until a fixed point is reached at each input position. Package structure
is as follows:

■ grammar: clause model, rule resolver and grammar compiler — the DAG-with-cycles
of clauses plus the derived priority/matches_empty/seeds/saplings attributes.

■ memo: the per-parse memoization table with its monotonic replacement rule.

■ queue: the priority-ordered, deduplicating scheduling queue.

■ bottomup: the Pika bottom-up matcher.

■ topdown: the "grow-the-seed" top-down matcher, sharing the grammar model and
memo table with bottomup.

■ surface: a textual PEG grammar syntax, parsed by a grammar bootstrapped from
the engine itself.

The base package contains data types used across all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package pika
