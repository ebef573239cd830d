package bottomup

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/parsekit/pika/grammar"
	"github.com/parsekit/pika/memo"
	"github.com/parsekit/pika/queue"
)

// tracer traces with key 'pika.bottomup'.
func tracer() tracing.Trace {
	return tracing.Select("pika.bottomup")
}

// driver holds the state of one bottom-up parse: the compiled grammar, the
// input being matched, and the memo table being filled in.
type driver struct {
	g     *grammar.Grammar
	input string
	table *memo.Table
}

// Run executes the Pika bottom-up algorithm over input for g's clauses,
// returning the filled memo table. pos runs from len(input) down to 0; at
// each position every terminal and every clause that can match empty is
// scheduled (the latter so that it gets its zero-length match even where its
// children fail), and the queue is drained to a fixed point before moving one
// position to the left, so that by the time a
// non-terminal at pos is evaluated, every clause anchored at a position to
// pos's right has already reached its final value for this parse.
func Run(g *grammar.Grammar, input string) *memo.Table {
	d := &driver{g: g, input: input, table: memo.New()}
	terms := g.Terminals()
	for pos := len(input); pos >= 0; pos-- {
		q := queue.New()
		for _, t := range terms {
			q.Schedule(t)
		}
		for _, c := range g.Clauses() {
			if c.MatchesEmpty {
				q.Schedule(c)
			}
		}
		for {
			c, ok := q.Pop()
			if !ok {
				break
			}
			next := d.match(c, pos)
			stored := false
			if next.Success {
				stored = d.table.Put(memo.Key{Pos: pos, Clause: c}, next)
			}
			if stored {
				tracer().Debugf("pos %d: %s stored (%v), scheduling %d saplings", pos, c, next, len(c.Saplings))
				for _, s := range c.Saplings {
					q.Schedule(s)
				}
			} else {
				for _, s := range c.Saplings {
					if s.MatchesEmpty {
						q.Schedule(s)
					}
				}
			}
		}
	}
	return d.table
}

// Parse runs the bottom-up matcher to completion and extracts the overall
// result: the start rule's match at position 0, accepted only if it spans
// the whole input.
func Parse(g *grammar.Grammar, input string) (grammar.Tree, bool) {
	table := Run(g, input)
	e, ok := table.Lookup(memo.Key{Pos: 0, Clause: g.Start()})
	if !ok || !e.Success || e.Length != len(input) {
		return nil, false
	}
	return e.Content, true
}

// lookup fetches c's entry at pos, treating an absent entry — c has not yet
// produced a match at this position during this position's round — as a
// (provisional) failure. It never itself writes to the table.
func (d *driver) lookup(pos int, c *grammar.Clause) memo.Entry {
	e, ok := d.table.Lookup(memo.Key{Pos: pos, Clause: c})
	if !ok {
		return memo.Fail("no match yet", 0)
	}
	return e
}

// match recomputes c's value at pos purely from already-stored memo entries
// (of c's children, at pos or to its right) — it never recurses into another
// clause's own match function.
func (d *driver) match(c *grammar.Clause, pos int) memo.Entry {
	switch c.Kind {
	case grammar.KStr:
		return matchStr(c, d.input, pos)
	case grammar.KRgx:
		return matchRgx(c, d.input, pos)
	case grammar.KRule:
		return d.lookup(pos, c.Body)
	case grammar.KSeq:
		return d.matchSeq(c, pos)
	case grammar.KAlt:
		return d.matchAlt(c, pos)
	case grammar.KMult:
		return d.matchMult(c, pos)
	case grammar.KOpt:
		return d.matchOpt(c, pos)
	case grammar.KLook:
		return d.matchLook(c, pos)
	case grammar.KNLook:
		return d.matchNLook(c, pos)
	}
	panic(fmt.Sprintf("bottomup: unhandled clause kind %v", c.Kind))
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

func (d *driver) matchSeq(c *grammar.Clause, pos int) memo.Entry {
	cur := pos
	content := make(grammar.List, 0, len(c.Subs))
	for _, sub := range c.Subs {
		e := d.lookup(cur, sub)
		if !e.Success {
			return memo.Fail(fmt.Sprintf("sequence failed at offset %d: %s", cur-pos, e.Reason), 0)
		}
		content = append(content, e.Content)
		cur += e.Length
	}
	return memo.Match(cur-pos, content, 0)
}

func (d *driver) matchAlt(c *grammar.Clause, pos int) memo.Entry {
	for i, sub := range c.Subs {
		e := d.lookup(pos, sub)
		if e.Success {
			prec := i + 1
			return memo.Match(e.Length, grammar.Choice{Prec: prec, Value: e.Content}, prec)
		}
	}
	return memo.Fail(fmt.Sprintf("no alternative of %s matched", c), 0)
}

// matchMult grows a Mult's match at pos from a single match of its child at
// pos plus Mult's own (already-final, since it lies further to the right)
// match at pos+length. This mirrors the end-anchored-to-forward conversion
// used by the repetition operator's growth rule.
func (d *driver) matchMult(c *grammar.Clause, pos int) memo.Entry {
	head := d.lookup(pos, c.Sub)
	if !head.Success {
		if c.Min == 0 {
			return memo.Match(0, grammar.List{}, 0)
		}
		return memo.Fail("repetition matched fewer than the minimum", 0)
	}
	length, content := head.Length, grammar.List{head.Content}
	if tail := d.lookup(pos+head.Length, c); tail.Success {
		if tailList, ok := tail.Content.(grammar.List); ok {
			length = head.Length + tail.Length
			content = append(grammar.List{head.Content}, tailList...)
		}
	}
	if len(content) < c.Min {
		return memo.Fail("repetition matched fewer than the minimum", 0)
	}
	return memo.Match(length, content, 0)
}

func (d *driver) matchOpt(c *grammar.Clause, pos int) memo.Entry {
	e := d.lookup(pos, c.Sub)
	if e.Success {
		return memo.Match(e.Length, e.Content, 0)
	}
	return memo.Match(0, nil, 0)
}

func (d *driver) matchLook(c *grammar.Clause, pos int) memo.Entry {
	e := d.lookup(pos, c.Sub)
	if e.Success {
		return memo.Match(0, e.Content, 0)
	}
	return memo.Fail("lookahead not satisfied", 0)
}

func (d *driver) matchNLook(c *grammar.Clause, pos int) memo.Entry {
	e := d.lookup(pos, c.Sub)
	if e.Success {
		return memo.Fail("negative lookahead satisfied", 0)
	}
	return memo.Match(0, nil, 0)
}
