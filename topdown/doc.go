/*
Package topdown implements the "grow-the-seed" alternative to bottomup: rather
than sweeping every input position, it grows a single target clause on demand,
starting from its terminal seeds and following saplings edges no further than
the target's own priority. It shares the grammar model and memo table with
bottomup and is grounded on the same recursive grow/match algorithm,
adapted to this module's forward-indexed matching convention.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package topdown
