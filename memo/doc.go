/*
Package memo implements the per-parse memoization table: at most one entry
per (position, clause) key, with a monotonic replacement rule ensuring a
parse's iteration terminates — replacing an entry requires either a strictly
longer match, or (for an Alt clause) a strictly better alt_prec. A stored
failure is replaced by any match.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package memo
