package grammar

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/hashset"
)

// Compile runs the grammar compiler pipeline over a set of declared rules:
// link rule references, compute reachability, detect cycle heads, assign a
// cycle-aware topological priority to every clause, then propagate
// matches_empty and seeds/saplings to a fixed point. rules[0]'s rule becomes
// the returned Grammar's start rule.
//
// Compile fails fast with a *CompileError the first time it detects an
// unresolved rule reference, a Mult(1,·) wrapped around a clause that can
// match empty (which would loop forever during matching), a Look/NLook
// wrapped around a clause that can match empty, or a reachable clause with no
// terminal seeds.
func Compile(rules ...*Clause) (*Grammar, error) {
	if len(rules) == 0 {
		return nil, &CompileError{Kind: NoSeeds}
	}
	byName := make(map[string]*Clause, len(rules))
	for _, r := range rules {
		byName[r.Name] = r
	}
	if err := Resolve(byName); err != nil {
		return nil, err
	}

	all := topoSort(rules)

	for _, c := range all {
		determineMatchesEmpty(c)
	}
	// matches_empty may need several passes to converge when a rule's body
	// depends on a not-yet-finalized cyclic sibling; repeat until stable.
	for changed := true; changed; {
		changed = false
		for _, c := range all {
			before := c.MatchesEmpty
			determineMatchesEmpty(c)
			if c.MatchesEmpty != before {
				changed = true
			}
		}
	}

	for _, c := range all {
		if err := checkEmptyLoop(c); err != nil {
			return nil, err
		}
	}

	for _, c := range all {
		determineSaplings(c)
	}

	propagateSeeds(all)

	for _, c := range all {
		if c.Kind != KRule || c.Body != nil {
			if len(c.Seeds) == 0 {
				return nil, &CompileError{Kind: NoSeeds, Clause: c}
			}
		}
	}

	for _, c := range all {
		tracer().Debugf("compiled %s: priority=%d matches_empty=%v seeds=%d saplings=%d",
			c, c.Priority, c.MatchesEmpty, len(c.Seeds), len(c.Saplings))
	}

	return &Grammar{start: rules[0], clauses: all, byName: byName}, nil
}

// determineMatchesEmpty computes whether c can match the empty string:
// Opt and NLook are always true; Mult(0,·) is true, Mult(1,c)=matches_empty(c);
// Look is false by convention; Str("") is true, Rgx is false; Seq is true iff
// every child is true; Alt is true iff any child is true; Rule = body's value.
func determineMatchesEmpty(c *Clause) {
	switch c.Kind {
	case KRule:
		if c.Body != nil {
			c.MatchesEmpty = c.Body.MatchesEmpty
		}
	case KSeq:
		empty := true
		for _, s := range c.Subs {
			if !s.MatchesEmpty {
				empty = false
				break
			}
		}
		c.MatchesEmpty = empty
	case KAlt:
		empty := false
		for _, s := range c.Subs {
			if s.MatchesEmpty {
				empty = true
				break
			}
		}
		c.MatchesEmpty = empty
	case KMult:
		if c.Min == 0 {
			c.MatchesEmpty = true
		} else {
			c.MatchesEmpty = c.Sub.MatchesEmpty
		}
	case KOpt, KNLook:
		c.MatchesEmpty = true
	case KLook:
		c.MatchesEmpty = false
	case KStr:
		c.MatchesEmpty = c.Text == ""
	case KRgx:
		c.MatchesEmpty = false
	}
}

func checkEmptyLoop(c *Clause) error {
	switch c.Kind {
	case KMult:
		if c.Min == 1 && c.Sub.MatchesEmpty {
			return &CompileError{Kind: LeftRecursiveEmptyLoop, Clause: c}
		}
	case KLook, KNLook:
		if c.Sub.MatchesEmpty {
			return &CompileError{Kind: EmptyLookahead, Clause: c}
		}
	}
	return nil
}

// determineSaplings registers c on the saplings list of every child whose
// fresh match could advance c, following the prefix rule: for Seq, every
// child up through (and including) the first one that cannot match empty;
// for Alt, every child; for Rule/Mult/Opt/Look/NLook, the single child.
func determineSaplings(c *Clause) {
	switch c.Kind {
	case KRule:
		if c.Body != nil {
			addSapling(c.Body, c)
		}
	case KMult, KOpt, KLook, KNLook:
		addSapling(c.Sub, c)
	case KAlt:
		for _, s := range c.Subs {
			addSapling(s, c)
		}
	case KSeq:
		for _, s := range c.Subs {
			addSapling(s, c)
			if !s.MatchesEmpty {
				return
			}
		}
	}
}

func addSapling(child, parent *Clause) {
	for _, s := range child.Saplings {
		if s == parent {
			return
		}
	}
	child.Saplings = append(child.Saplings, parent)
}

// propagateSeeds runs the seeds computation to a fixed point: terminals seed
// themselves; every other clause recomputes its seeds from its children (Alt
// unions, Seq takes the prefix rule) and, if its seed set grew, re-schedules
// its own saplings. Converges because seeds only grows, over a finite
// universe of terminal clauses.
func propagateSeeds(all []*Clause) {
	work := hashset.New()
	for _, c := range all {
		if c.Kind == KStr || c.Kind == KRgx {
			c.Seeds = []*Clause{c}
			for _, s := range c.Saplings {
				work.Add(s)
			}
		}
	}
	for !work.Empty() {
		v := work.Values()[0]
		work.Remove(v)
		c := v.(*Clause)
		if recomputeSeeds(c) {
			for _, s := range c.Saplings {
				work.Add(s)
			}
		}
	}
}

func recomputeSeeds(c *Clause) bool {
	var next []*Clause
	switch c.Kind {
	case KRule:
		if c.Body == nil {
			return false
		}
		next = c.Body.Seeds
	case KMult, KOpt, KLook, KNLook:
		next = c.Sub.Seeds
	case KAlt:
		acc := arraylist.New()
		for _, s := range c.Subs {
			for _, seed := range s.Seeds {
				if !acc.Contains(seed) {
					acc.Add(seed)
				}
			}
		}
		next = toClauses(acc)
	case KSeq:
		if len(c.Subs) == 0 {
			return false
		}
		acc := arraylist.New()
		for _, s := range c.Subs {
			for _, seed := range s.Seeds {
				if !acc.Contains(seed) {
					acc.Add(seed)
				}
			}
			if !s.MatchesEmpty {
				break
			}
		}
		next = toClauses(acc)
	default:
		return false
	}
	if sameClauses(c.Seeds, next) {
		return false
	}
	c.Seeds = next
	return true
}

func toClauses(l *arraylist.List) []*Clause {
	out := make([]*Clause, l.Size())
	for i := 0; i < l.Size(); i++ {
		v, _ := l.Get(i)
		out[i] = v.(*Clause)
	}
	return out
}

func sameClauses(a, b []*Clause) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
