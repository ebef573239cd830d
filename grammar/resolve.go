package grammar

// resolve replaces every by-name placeholder Ref(name) occurrence reachable
// from root with the canonical *Clause from rules, recursing into children.
// Canonical Rule nodes (those with a non-nil Body) are left as-is: they ARE
// the link target, not a reference to be replaced.
//
// visited guards against revisiting the same clause twice within one call
// (the grammar graph may be a DAG, and rule bodies may be cyclic through
// further Rule indirections, which this function does not recurse into twice
// thanks to the visited set).
func resolve(root *Clause, rules map[string]*Clause, visited map[*Clause]bool) (*Clause, error) {
	if root == nil {
		return nil, nil
	}
	if root.Kind == KRule && root.Body == nil {
		canonical, ok := rules[root.Name]
		if !ok {
			return nil, &CompileError{Kind: UnresolvedRule, Name: root.Name}
		}
		return canonical, nil
	}
	if visited[root] {
		return root, nil
	}
	visited[root] = true
	switch root.Kind {
	case KRule:
		resolved, err := resolve(root.Body, rules, visited)
		if err != nil {
			return nil, err
		}
		root.Body = resolved
	case KSeq, KAlt:
		for i, s := range root.Subs {
			resolved, err := resolve(s, rules, visited)
			if err != nil {
				return nil, err
			}
			root.Subs[i] = resolved
		}
	case KMult, KOpt, KLook, KNLook:
		resolved, err := resolve(root.Sub, rules, visited)
		if err != nil {
			return nil, err
		}
		root.Sub = resolved
	}
	return root, nil
}

// Resolve links every by-name rule reference reachable from the declared
// rules to its canonical rule node. It fails with a CompileError{Kind:
// UnresolvedRule} the first time it encounters a reference to an undeclared
// name.
func Resolve(rules map[string]*Clause) error {
	visited := make(map[*Clause]bool)
	for _, rule := range rules {
		resolved, err := resolve(rule.Body, rules, visited)
		if err != nil {
			return err
		}
		rule.Body = resolved
	}
	return nil
}
