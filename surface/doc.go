/*
Package surface parses the textual PEG grammar notation used to declare
grammars (`name <- body`, with `|`, sequencing, `*`/`+`/`?`, `&`/`!`
lookahead, string and regex terminals, and parenthesized grouping) into a
*pika.Grammar.

The notation's own grammar is declared using the engine's Clause
constructors and parsed by the bottom-up matcher — the surface syntax is
bootstrapped from the engine it feeds, rather than hand-written as a
separate recursive-descent parser. A separate lexmachine-based tokenizer is
provided alongside it for diagnostics (see Tokenize); it is not on Parse's
critical path — the bootstrap grammar matches surface syntax directly,
character by character, with its own Rgx terminals for identifiers, strings
and regex literals.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package surface
