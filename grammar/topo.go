package grammar

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/hashset"
)

// reachableFrom performs a post-order DFS from roots, returning every
// distinct clause reachable from them with children appearing before their
// parents. visited is shared across all roots so that overlapping subgraphs
// are only ever appended once.
func reachableFrom(roots []*Clause, visited *hashset.Set) []*Clause {
	order := arraylist.New()
	var visit func(c *Clause)
	visit = func(c *Clause) {
		if c == nil || visited.Contains(c) {
			return
		}
		visited.Add(c)
		for _, child := range c.Children() {
			visit(child)
		}
		order.Add(c)
	}
	for _, r := range roots {
		visit(r)
	}
	return toClauses(order)
}

// cycleHeadsIn runs a shared discovered/finished DFS from every clause in
// roots, returning the set of clauses that are the target of a back edge —
// i.e. the cycle heads of the grammar graph reachable from roots.
func cycleHeadsIn(roots []*Clause) *hashset.Set {
	discovered := hashset.New()
	finished := hashset.New()
	heads := hashset.New()
	var visit func(c *Clause)
	visit = func(c *Clause) {
		discovered.Add(c)
		for _, child := range c.Children() {
			if discovered.Contains(child) {
				heads.Add(child)
			} else if !finished.Contains(child) {
				visit(child)
			}
		}
		discovered.Remove(c)
		finished.Add(c)
	}
	for _, r := range roots {
		visit(r)
	}
	return heads
}

// topoSort numbers every reachable clause with a cycle-aware topological
// priority: top-level clauses (those with no parent among the reachable set)
// and cycle heads both seed a DFS whose post-order assigns priorities, so
// that every non-cycle edge parent->child ends up with priority(child) <
// priority(parent); cycles are broken by treating their head as an
// additional DFS root.
func topoSort(rules []*Clause) []*Clause {
	unordered := reachableFrom(rules, hashset.New())

	topClauses := hashset.New()
	for _, c := range unordered {
		topClauses.Add(c)
	}
	for _, c := range unordered {
		for _, child := range c.Children() {
			topClauses.Remove(child)
		}
	}

	cycleRoots := make([]*Clause, 0, topClauses.Size()+len(rules))
	for _, v := range topClauses.Values() {
		cycleRoots = append(cycleRoots, v.(*Clause))
	}
	cycleRoots = append(cycleRoots, rules...)
	heads := cycleHeadsIn(cycleRoots)

	dfsRoots := make([]*Clause, 0, topClauses.Size()+heads.Size())
	for _, v := range topClauses.Values() {
		dfsRoots = append(dfsRoots, v.(*Clause))
	}
	for _, v := range heads.Values() {
		dfsRoots = append(dfsRoots, v.(*Clause))
	}

	all := reachableFrom(dfsRoots, hashset.New())
	for i, c := range all {
		c.Priority = i
	}
	return all
}
