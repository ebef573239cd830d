package topdown

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/parsekit/pika/grammar"
	"github.com/parsekit/pika/memo"
)

// tracer traces with key 'pika.topdown'.
func tracer() tracing.Trace {
	return tracing.Select("pika.topdown")
}

// driver holds the state of one top-down parse.
type driver struct {
	g     *grammar.Grammar
	input string
	table *memo.Table
}

// Run grows the start rule at position 0 over the whole input and returns the
// memo table accumulated while doing so.
func Run(g *grammar.Grammar, input string) *memo.Table {
	d := &driver{g: g, input: input, table: memo.New()}
	d.match(0, g.Start())
	return d.table
}

// Parse runs the top-down matcher and extracts the overall result, accepted
// only if the start rule's match at position 0 spans the whole input.
func Parse(g *grammar.Grammar, input string) (grammar.Tree, bool) {
	table := Run(g, input)
	e, ok := table.Lookup(memo.Key{Pos: 0, Clause: g.Start()})
	if !ok || !e.Success || e.Length != len(input) {
		return nil, false
	}
	return e.Content, true
}

// match returns clause's entry at pos, memoized if already computed, else
// grown from its seeds.
func (d *driver) match(pos int, c *grammar.Clause) memo.Entry {
	if e, ok := d.table.Lookup(memo.Key{Pos: pos, Clause: c}); ok {
		return e
	}
	return d.grow(pos, c)
}

// grow drives a LIFO worklist seeded by target's terminal descendants,
// re-evaluating each popped clause and pushing its saplings — bounded to
// those no higher in priority than target — until the worklist runs dry; a
// store of target itself does not end the growth, since a longer match of
// target may still follow. This is how left recursion converges on demand: a
// clause left-recursive through target keeps getting re-pushed as its seeds
// produce longer matches, exactly as in bottomup, but confined to a single
// (pos, target) growth instead of a whole-position sweep.
func (d *driver) grow(pos int, target *grammar.Clause) memo.Entry {
	if len(target.Seeds) == 0 {
		if target.MatchesEmpty {
			return memo.Match(0, nil, 0)
		}
		panic(fmt.Sprintf("topdown: cannot grow %s, no seeds", target))
	}
	tracer().Debugf("growing %s @ %d", target, pos)
	stack := make([]*grammar.Clause, len(target.Seeds))
	for i, seed := range target.Seeds {
		stack[len(target.Seeds)-1-i] = seed
	}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		key := memo.Key{Pos: pos, Clause: current}
		m := d.visit(current, pos)
		stored := d.table.Put(key, m)
		if stored {
			for i := len(current.Saplings) - 1; i >= 0; i-- {
				if parent := current.Saplings[i]; parent.Priority <= target.Priority {
					stack = append(stack, parent)
				}
			}
		} else {
			for i := len(current.Saplings) - 1; i >= 0; i-- {
				if parent := current.Saplings[i]; parent.MatchesEmpty && parent.Priority <= target.Priority {
					stack = append(stack, parent)
				}
			}
		}
	}
	if e, ok := d.table.Lookup(memo.Key{Pos: pos, Clause: target}); ok {
		return e
	}
	if target.MatchesEmpty {
		return memo.Match(0, nil, 0)
	}
	return memo.Fail(fmt.Sprintf("could not grow %s", target), 0)
}

// visit recomputes current's match at pos, recursing into d.match for its
// children — which may itself trigger a nested grow for a different target.
func (d *driver) visit(c *grammar.Clause, pos int) memo.Entry {
	switch c.Kind {
	case grammar.KStr:
		return matchStr(c, d.input, pos)
	case grammar.KRgx:
		return matchRgx(c, d.input, pos)
	case grammar.KRule:
		return d.match(pos, c.Body)
	case grammar.KSeq:
		return d.visitSeq(c, pos)
	case grammar.KAlt:
		return d.visitAlt(c, pos)
	case grammar.KMult:
		return d.visitMult(c, pos)
	case grammar.KOpt:
		return d.visitOpt(c, pos)
	case grammar.KLook:
		return d.visitLook(c, pos)
	case grammar.KNLook:
		return d.visitNLook(c, pos)
	}
	panic(fmt.Sprintf("topdown: unhandled clause kind %v", c.Kind))
}

func matchStr(c *grammar.Clause, input string, pos int) memo.Entry {
	end := pos + len(c.Text)
	if end > len(input) || input[pos:end] != c.Text {
		return memo.Fail(fmt.Sprintf("expected %q", c.Text), 0)
	}
	return memo.Match(len(c.Text), grammar.Leaf(c.Text), 0)
}

func matchRgx(c *grammar.Clause, input string, pos int) memo.Entry {
	loc := c.Regexp().FindStringIndex(input[pos:])
	if loc == nil {
		return memo.Fail(fmt.Sprintf("expected /%s/", c.Pattern), 0)
	}
	text := input[pos : pos+loc[1]]
	return memo.Match(len(text), grammar.Leaf(text), 0)
}

func (d *driver) visitSeq(c *grammar.Clause, pos int) memo.Entry {
	cur := pos
	content := make(grammar.List, 0, len(c.Subs))
	for _, sub := range c.Subs {
		e := d.match(cur, sub)
		if !e.Success {
			return memo.Fail(fmt.Sprintf("sequence failed at offset %d: %s", cur-pos, e.Reason), 0)
		}
		content = append(content, e.Content)
		cur += e.Length
	}
	return memo.Match(cur-pos, content, 0)
}

func (d *driver) visitAlt(c *grammar.Clause, pos int) memo.Entry {
	for i, sub := range c.Subs {
		e := d.match(pos, sub)
		if e.Success {
			prec := i + 1
			return memo.Match(e.Length, grammar.Choice{Prec: prec, Value: e.Content}, prec)
		}
	}
	return memo.Fail(fmt.Sprintf("no alternative of %s matched", c), 0)
}

func (d *driver) visitMult(c *grammar.Clause, pos int) memo.Entry {
	cur := pos
	content := grammar.List{}
	for {
		e := d.match(cur, c.Sub)
		if !e.Success {
			break
		}
		content = append(content, e.Content)
		cur += e.Length
		if e.Length == 0 {
			break
		}
	}
	if len(content) < c.Min {
		return memo.Fail("repetition matched fewer than the minimum", 0)
	}
	return memo.Match(cur-pos, content, 0)
}

func (d *driver) visitOpt(c *grammar.Clause, pos int) memo.Entry {
	e := d.match(pos, c.Sub)
	if e.Success {
		return memo.Match(e.Length, e.Content, 0)
	}
	return memo.Match(0, nil, 0)
}

func (d *driver) visitLook(c *grammar.Clause, pos int) memo.Entry {
	e := d.match(pos, c.Sub)
	if e.Success {
		return memo.Match(0, e.Content, 0)
	}
	return memo.Fail("lookahead not satisfied", 0)
}

func (d *driver) visitNLook(c *grammar.Clause, pos int) memo.Entry {
	e := d.match(pos, c.Sub)
	if e.Success {
		return memo.Fail("negative lookahead satisfied", 0)
	}
	return memo.Match(0, nil, 0)
}
