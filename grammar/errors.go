package grammar

import "fmt"

// ErrorKind tags the kind of a compile-time grammar error.
type ErrorKind int

// Error kinds raised by Resolve and Compile.
const (
	// UnresolvedRule: a Ref(name) could not be linked to a declared rule.
	UnresolvedRule ErrorKind = iota
	// LeftRecursiveEmptyLoop: Mult(1, c) with c.MatchesEmpty would loop forever.
	LeftRecursiveEmptyLoop
	// EmptyLookahead: Look/NLook wraps a clause that matches empty.
	EmptyLookahead
	// NoSeeds: a reachable clause has no terminal seeds.
	NoSeeds
)

func (k ErrorKind) String() string {
	switch k {
	case UnresolvedRule:
		return "UnresolvedRule"
	case LeftRecursiveEmptyLoop:
		return "LeftRecursiveEmptyLoop"
	case EmptyLookahead:
		return "EmptyLookahead"
	case NoSeeds:
		return "NoSeeds"
	}
	return "?"
}

// CompileError is returned by Resolve and Compile. It identifies the offending
// clause (and, for UnresolvedRule, the dangling name) alongside a Kind tag so
// callers can discriminate programmatically without string-matching.
type CompileError struct {
	Kind   ErrorKind
	Name   string // set for UnresolvedRule
	Clause *Clause
}

func (e *CompileError) Error() string {
	switch e.Kind {
	case UnresolvedRule:
		return fmt.Sprintf("grammar: cannot link rule %q: no such rule declared", e.Name)
	case LeftRecursiveEmptyLoop:
		return fmt.Sprintf("grammar: %s loops forever: its child can match empty", e.Clause)
	case EmptyLookahead:
		return fmt.Sprintf("grammar: %s is pointless: its child can match empty", e.Clause)
	case NoSeeds:
		if e.Clause == nil {
			return "grammar: no rules given to compile"
		}
		return fmt.Sprintf("grammar: %s has no terminal seeds and can never be triggered", e.Clause)
	}
	return "grammar: compile error"
}
