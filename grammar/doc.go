/*
Package grammar implements the clause model for PEG grammars: the immutable
expression-tree node types (Rule, Seq, Alt, Mult, Opt, Look, NLook, Str, Rgx),
a rule resolver linking by-name references to their canonical rule nodes, and a
grammar compiler computing the derived attributes a parser needs — priority,
matches_empty, seeds and saplings — from a DAG-with-cycles of clauses.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package grammar
