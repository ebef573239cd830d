package grammar

// Grammar is a compiled, immutable set of clauses: the result of Compile.
// A Grammar may be shared by any number of concurrently running parsers —
// the derived attributes on its clauses are never mutated after Compile
// returns.
type Grammar struct {
	start   *Clause
	clauses []*Clause
	byName  map[string]*Clause
}

// Start returns the grammar's start rule (the first rule passed to Compile).
func (g *Grammar) Start() *Clause {
	return g.start
}

// Clauses returns every clause in the grammar, ordered by ascending priority
// (along every non-cycle edge, a child comes before its parent).
func (g *Grammar) Clauses() []*Clause {
	return g.clauses
}

// Rule looks up a declared rule by name.
func (g *Grammar) Rule(name string) (*Clause, bool) {
	c, ok := g.byName[name]
	return c, ok
}

// Terminals returns every Str/Rgx clause in the grammar, the clauses that
// seed the bottom-up matcher's scheduling queue at each input position.
func (g *Grammar) Terminals() []*Clause {
	terms := make([]*Clause, 0)
	for _, c := range g.clauses {
		if c.Kind == KStr || c.Kind == KRgx {
			terms = append(terms, c)
		}
	}
	return terms
}
