package grammar

import (
	"fmt"
	"regexp"

	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pika.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("pika.grammar")
}

// Kind tags the variant of a Clause.
type Kind uint8

// The nine clause variants of the grammar model.
const (
	KRule Kind = iota
	KSeq
	KAlt
	KMult
	KOpt
	KLook
	KNLook
	KStr
	KRgx
)

func (k Kind) String() string {
	switch k {
	case KRule:
		return "Rule"
	case KSeq:
		return "Seq"
	case KAlt:
		return "Alt"
	case KMult:
		return "Mult"
	case KOpt:
		return "Opt"
	case KLook:
		return "Look"
	case KNLook:
		return "NLook"
	case KStr:
		return "Str"
	case KRgx:
		return "Rgx"
	}
	return "?"
}

// Clause is a node in the grammar graph. Clauses are created once at grammar
// construction and are never mutated after Compile has run, save for the
// derived fields below, which Compile fills in as it converges.
type Clause struct {
	Kind Kind

	Name string  // Rule: the rule's name; identifies it structurally
	Body *Clause // Rule: the rule's body; nil on an unresolved reference

	Subs []*Clause // Seq / Alt: ordered children
	Sub  *Clause   // Mult / Opt / Look / NLook: the single child
	Min  int       // Mult: 0 for "zero-or-more", 1 for "one-or-more"

	Text    string         // Str: the literal to match
	Pattern string         // Rgx: the regular expression source
	re      *regexp.Regexp // Rgx: compiled, anchored at position 0 of the slice passed to it

	// Derived attributes, computed by Compile and immutable thereafter.
	Priority     int
	MatchesEmpty bool
	Seeds        []*Clause
	Saplings     []*Clause

	hash string // memoized structural hash, see Hash()
}

// NewRule declares a named, canonical rule. Other clauses refer to it either by
// holding this very pointer, or via Ref(name), which Resolve replaces with it.
func NewRule(name string, body *Clause) *Clause {
	return &Clause{Kind: KRule, Name: name, Body: body}
}

// Ref is an unresolved by-name reference to a rule, to be linked by Resolve.
func Ref(name string) *Clause {
	return &Clause{Kind: KRule, Name: name}
}

// Seq matches every child in order; the result is the list of child results.
func Seq(cs ...*Clause) *Clause {
	return &Clause{Kind: KSeq, Subs: cs}
}

// Alt matches the first child that matches; precedence is child index.
func Alt(cs ...*Clause) *Clause {
	return &Clause{Kind: KAlt, Subs: cs}
}

// MultClause matches c greedily, min=0 or more times, or min=1 or more times.
func MultClause(min int, c *Clause) *Clause {
	return &Clause{Kind: KMult, Min: min, Sub: c}
}

// Opt matches c, or an empty match if c fails.
func Opt(c *Clause) *Clause {
	return &Clause{Kind: KOpt, Sub: c}
}

// Look is positive lookahead: succeeds with a zero-length match iff c matches.
func Look(c *Clause) *Clause {
	return &Clause{Kind: KLook, Sub: c}
}

// NLook is negative lookahead: succeeds with a zero-length match iff c does not match.
func NLook(c *Clause) *Clause {
	return &Clause{Kind: KNLook, Sub: c}
}

// Str is a literal string terminal.
func Str(s string) *Clause {
	return &Clause{Kind: KStr, Text: s}
}

// Rgx is a regular-expression terminal, anchored at the current position.
func Rgx(pattern string) *Clause {
	return &Clause{Kind: KRgx, Pattern: pattern, re: regexp.MustCompile(`\A(?:` + pattern + `)`)}
}

// Regexp returns the compiled, anchored matcher for a Rgx clause.
func (c *Clause) Regexp() *regexp.Regexp {
	return c.re
}

// Children returns this clause's direct children in canonical (declaration)
// order. Seq and the match logic share this order.
func (c *Clause) Children() []*Clause {
	switch c.Kind {
	case KRule:
		if c.Body == nil {
			return nil
		}
		return []*Clause{c.Body}
	case KSeq, KAlt:
		return c.Subs
	case KMult, KOpt, KLook, KNLook:
		return []*Clause{c.Sub}
	default: // KStr, KRgx
		return nil
	}
}

// Equal reports structural equality: Rule nodes compare by name only, as
// required to keep recursive grammars well-defined; every other variant
// compares by variant tag plus children/payload.
func (c *Clause) Equal(other *Clause) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil || c.Kind != other.Kind {
		return false
	}
	switch c.Kind {
	case KRule:
		return c.Name == other.Name
	case KStr:
		return c.Text == other.Text
	case KRgx:
		return c.Pattern == other.Pattern
	case KMult:
		return c.Min == other.Min && c.Sub.Equal(other.Sub)
	case KOpt, KLook, KNLook:
		return c.Sub.Equal(other.Sub)
	case KSeq, KAlt:
		if len(c.Subs) != len(other.Subs) {
			return false
		}
		for i, s := range c.Subs {
			if !s.Equal(other.Subs[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Hash returns a structural hash of the clause (variant tag, children, literal
// payload) suitable for hash-consing. Rule nodes hash by name only.
func (c *Clause) Hash() string {
	if c.hash != "" {
		return c.hash
	}
	var key interface{}
	switch c.Kind {
	case KRule:
		key = struct {
			K Kind
			N string
		}{c.Kind, c.Name}
	case KStr:
		key = struct {
			K Kind
			T string
		}{c.Kind, c.Text}
	case KRgx:
		key = struct {
			K Kind
			P string
		}{c.Kind, c.Pattern}
	case KMult:
		key = struct {
			K   Kind
			Min int
			Sub string
		}{c.Kind, c.Min, c.Sub.Hash()}
	case KOpt, KLook, KNLook:
		key = struct {
			K   Kind
			Sub string
		}{c.Kind, c.Sub.Hash()}
	case KSeq, KAlt:
		subs := make([]string, len(c.Subs))
		for i, s := range c.Subs {
			subs[i] = s.Hash()
		}
		key = struct {
			K    Kind
			Subs []string
		}{c.Kind, subs}
	}
	h, err := structhash.Hash(key, 1)
	if err != nil {
		panic(fmt.Sprintf("grammar: cannot hash clause %s: %v", c, err))
	}
	c.hash = h
	return h
}

// String renders the clause in PEG-ish surface notation, for tracing and
// error messages.
func (c *Clause) String() string {
	switch c.Kind {
	case KRule:
		return c.Name
	case KSeq:
		return joinSubs(c.Subs, " ")
	case KAlt:
		return joinSubs(c.Subs, " | ")
	case KMult:
		if c.Min == 0 {
			return fmt.Sprintf("%s*", paren(c.Sub))
		}
		return fmt.Sprintf("%s+", paren(c.Sub))
	case KOpt:
		return fmt.Sprintf("%s?", paren(c.Sub))
	case KLook:
		return fmt.Sprintf("&%s", paren(c.Sub))
	case KNLook:
		return fmt.Sprintf("!%s", paren(c.Sub))
	case KStr:
		return fmt.Sprintf("%q", c.Text)
	case KRgx:
		return fmt.Sprintf("/%s/", c.Pattern)
	}
	return "?"
}

func paren(c *Clause) string {
	if c.Kind == KSeq || c.Kind == KAlt {
		return "(" + c.String() + ")"
	}
	return c.String()
}

func joinSubs(subs []*Clause, sep string) string {
	s := ""
	for i, sub := range subs {
		if i > 0 {
			s += sep
		}
		s += sub.String()
	}
	return s
}
