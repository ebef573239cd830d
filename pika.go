package pika

import (
	"fmt"

	"github.com/parsekit/pika/bottomup"
	"github.com/parsekit/pika/grammar"
	"github.com/parsekit/pika/topdown"
)

// --- Clause construction ----------------------------------------------

// Clause is a node in the grammar graph; see package grammar for the full
// variant set and their invariants.
type Clause = grammar.Clause

// Rule declares a named, canonical rule.
func Rule(name string, body *Clause) *Clause {
	return grammar.NewRule(name, body)
}

// Ref is an unresolved by-name reference to a rule, linked by Compile.
func Ref(name string) *Clause {
	return grammar.Ref(name)
}

// Seq matches every child in order; the result is the list of child results.
func Seq(cs ...*Clause) *Clause {
	return grammar.Seq(cs...)
}

// Alt matches the first child that matches.
func Alt(cs ...*Clause) *Clause {
	return grammar.Alt(cs...)
}

// Mult matches c greedily, min=0 ("zero or more") or min=1 ("one or more") times.
func Mult(min int, c *Clause) *Clause {
	return grammar.MultClause(min, c)
}

// Opt matches c, or an empty match if c fails.
func Opt(c *Clause) *Clause {
	return grammar.Opt(c)
}

// Look is positive lookahead.
func Look(c *Clause) *Clause {
	return grammar.Look(c)
}

// NLook is negative lookahead.
func NLook(c *Clause) *Clause {
	return grammar.NLook(c)
}

// Str is a literal string terminal.
func Str(s string) *Clause {
	return grammar.Str(s)
}

// Rgx is a regular-expression terminal, anchored at the current position.
func Rgx(pattern string) *Clause {
	return grammar.Rgx(pattern)
}

// --- ParseTree ----------------------------------------------------------

// ParseTree is the value produced by a successful parse: nil (the
// zero-length match of Opt/Look/NLook), a Leaf (a terminal match), a List (a
// Seq or Mult result), or a Choice (a tagged Alt result).
type ParseTree = grammar.Tree

// Leaf is the matched text of a Str or Rgx terminal.
type Leaf = grammar.Leaf

// List is the ordered result of a Seq or Mult match.
type List = grammar.List

// Choice wraps the value produced by the winning branch of an Alt match with
// that branch's 1-based precedence.
type Choice = grammar.Choice

// Yield strips Alt precedence tags from a ParseTree, producing the bare
// nested-list shape a grammar's surface syntax would suggest.
func Yield(t ParseTree) interface{} {
	return grammar.Yield(t)
}

// --- Grammar & Parser ----------------------------------------------------

// Grammar is a compiled, immutable set of clauses, safe to share between any
// number of concurrently running Parsers.
type Grammar struct {
	compiled *grammar.Grammar
}

// Compile runs the grammar compiler over rules — linking rule references,
// assigning priorities, and computing matches_empty/seeds/saplings — and
// returns the result, or the first *grammar.CompileError encountered.
// rules[0] becomes the grammar's start rule.
func Compile(rules ...*Clause) (*Grammar, error) {
	g, err := grammar.Compile(rules...)
	if err != nil {
		return nil, err
	}
	return &Grammar{compiled: g}, nil
}

// Strategy selects which matcher drives a Parser.
type Strategy int

const (
	// BottomUp sweeps every input position with the Pika algorithm (C6).
	// This is the default: it is the only strategy guaranteed to converge
	// on arbitrarily left-recursive grammars without growing the call
	// stack.
	BottomUp Strategy = iota
	// TopDown grows the start rule on demand from its seeds (C7).
	TopDown
)

func (s Strategy) String() string {
	if s == TopDown {
		return "top-down"
	}
	return "bottom-up"
}

// Option configures a Parser.
type Option func(*config)

type config struct {
	strategy Strategy
}

// WithStrategy selects the matcher a Parser uses. The default is BottomUp.
func WithStrategy(s Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// Parser binds a compiled Grammar to a matching strategy.
type Parser struct {
	g   *Grammar
	cfg config
}

// NewParser creates a Parser over g, configured by opts.
func NewParser(g *Grammar, opts ...Option) *Parser {
	cfg := config{strategy: BottomUp}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Parser{g: g, cfg: cfg}
}

// Parse matches input against the parser's grammar in full; it fails if the
// start rule does not produce a match spanning the entire input.
func (p *Parser) Parse(input string) (ParseTree, error) {
	var tree grammar.Tree
	var ok bool
	switch p.cfg.strategy {
	case TopDown:
		tree, ok = topdown.Parse(p.g.compiled, input)
	default:
		tree, ok = bottomup.Parse(p.g.compiled, input)
	}
	if !ok {
		return nil, fmt.Errorf("pika: %s parse of %q did not match the full input", p.cfg.strategy, input)
	}
	return tree, nil
}

// Parse is a convenience wrapper over NewParser(g, opts...).Parse(input).
func Parse(g *Grammar, input string, opts ...Option) (ParseTree, error) {
	return NewParser(g, opts...).Parse(input)
}

// --- Span ----------------------------------------------------------------

// Span captures a run of input covered by a match: a start position and the
// position just behind its end, both byte offsets into the original input.
type Span [2]int

// From returns the start offset of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end offset of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the length of the span.
func (s Span) Len() int {
	return s[1] - s[0]
}

// IsNull reports whether the span is the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend grows s to also cover other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
