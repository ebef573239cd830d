package surface

import (
	"fmt"
	"strings"

	"github.com/parsekit/pika/grammar"
)

// buildGrammar walks the bootstrap parse tree of a full grammar document
// (the `grammar` rule's result) into the ordered list of declared rules, in
// declaration order, ready to hand to grammar.Compile.
func buildGrammar(tree grammar.Tree) ([]*grammar.Clause, error) {
	top, ok := tree.(grammar.List)
	if !ok || len(top) != 3 {
		return nil, fmt.Errorf("malformed grammar document")
	}
	byName := make(map[string]*grammar.Clause)
	var order []string

	declare := func(defTree grammar.Tree) error {
		name, body, err := buildRuleDef(defTree)
		if err != nil {
			return err
		}
		if _, dup := byName[name]; dup {
			return fmt.Errorf("rule %q declared more than once", name)
		}
		rule := grammar.NewRule(name, body)
		byName[name] = rule
		order = append(order, name)
		return nil
	}

	if err := declare(top[1]); err != nil {
		return nil, err
	}
	tail, _ := top[2].(grammar.List)
	for _, item := range tail {
		pair, ok := item.(grammar.List)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("malformed rule definition tail")
		}
		if err := declare(pair[1]); err != nil {
			return nil, err
		}
	}

	rules := make([]*grammar.Clause, len(order))
	for i, name := range order {
		rules[i] = byName[name]
	}
	return rules, nil
}

// buildRuleDef decodes `ident ws "<-" ws alt` into a rule name and its body
// clause (with unresolved Ref placeholders left for grammar.Compile to link).
func buildRuleDef(tree grammar.Tree) (string, *grammar.Clause, error) {
	lst, ok := tree.(grammar.List)
	if !ok || len(lst) != 5 {
		return "", nil, fmt.Errorf("malformed rule definition")
	}
	name, ok := lst[0].(grammar.Leaf)
	if !ok {
		return "", nil, fmt.Errorf("malformed rule name")
	}
	body, err := buildAlt(lst[4])
	if err != nil {
		return "", nil, fmt.Errorf("rule %q: %w", name, err)
	}
	return string(name), body, nil
}

// buildAlt decodes `seq (ws "|" ws seq)*` into an Alt of its branches,
// collapsing to the single branch directly when there is only one.
func buildAlt(tree grammar.Tree) (*grammar.Clause, error) {
	lst, ok := tree.(grammar.List)
	if !ok || len(lst) != 2 {
		return nil, fmt.Errorf("malformed alternation")
	}
	first, err := buildSeq(lst[0])
	if err != nil {
		return nil, err
	}
	branches := []*grammar.Clause{first}
	tail, _ := lst[1].(grammar.List)
	for _, item := range tail {
		pair, ok := item.(grammar.List)
		if !ok || len(pair) != 4 {
			return nil, fmt.Errorf("malformed alternation tail")
		}
		next, err := buildSeq(pair[3])
		if err != nil {
			return nil, err
		}
		branches = append(branches, next)
	}
	if len(branches) == 1 {
		return branches[0], nil
	}
	return grammar.Alt(branches...), nil
}

// buildSeq decodes `term (ws term)*` into a Seq of its elements, collapsing
// to the single element directly when there is only one.
func buildSeq(tree grammar.Tree) (*grammar.Clause, error) {
	lst, ok := tree.(grammar.List)
	if !ok || len(lst) != 2 {
		return nil, fmt.Errorf("malformed sequence")
	}
	first, err := buildTerm(lst[0])
	if err != nil {
		return nil, err
	}
	terms := []*grammar.Clause{first}
	tail, _ := lst[1].(grammar.List)
	for _, item := range tail {
		pair, ok := item.(grammar.List)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("malformed sequence tail")
		}
		next, err := buildTerm(pair[1])
		if err != nil {
			return nil, err
		}
		terms = append(terms, next)
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return grammar.Seq(terms...), nil
}

// buildTerm decodes `prefixed | atom suffix?`.
func buildTerm(tree grammar.Tree) (*grammar.Clause, error) {
	choice, ok := tree.(grammar.Choice)
	if !ok {
		return nil, fmt.Errorf("malformed term")
	}
	if choice.Prec == 1 {
		return buildPrefixed(choice.Value)
	}
	lst, ok := choice.Value.(grammar.List)
	if !ok || len(lst) != 2 {
		return nil, fmt.Errorf("malformed term")
	}
	c, err := buildAtom(lst[0])
	if err != nil {
		return nil, err
	}
	if lst[1] == nil {
		return c, nil
	}
	sfx, ok := lst[1].(grammar.Choice)
	if !ok {
		return nil, fmt.Errorf("malformed repetition suffix")
	}
	switch string(sfx.Value.(grammar.Leaf)) {
	case "*":
		return grammar.MultClause(0, c), nil
	case "+":
		return grammar.MultClause(1, c), nil
	case "?":
		return grammar.Opt(c), nil
	}
	return nil, fmt.Errorf("unrecognized repetition suffix")
}

// buildPrefixed decodes `("&" ws atom) | ("!" ws atom)` into Look/NLook.
func buildPrefixed(tree grammar.Tree) (*grammar.Clause, error) {
	choice, ok := tree.(grammar.Choice)
	if !ok {
		return nil, fmt.Errorf("malformed lookahead")
	}
	lst, ok := choice.Value.(grammar.List)
	if !ok || len(lst) != 3 {
		return nil, fmt.Errorf("malformed lookahead")
	}
	c, err := buildAtom(lst[2])
	if err != nil {
		return nil, err
	}
	if choice.Prec == 1 {
		return grammar.Look(c), nil
	}
	return grammar.NLook(c), nil
}

// buildAtom decodes `ident | strlit | rgxlit | "(" ws alt ws ")"`.
func buildAtom(tree grammar.Tree) (*grammar.Clause, error) {
	choice, ok := tree.(grammar.Choice)
	if !ok {
		return nil, fmt.Errorf("malformed atom")
	}
	switch choice.Prec {
	case 1:
		return grammar.Ref(string(choice.Value.(grammar.Leaf))), nil
	case 2:
		s, err := unquote(string(choice.Value.(grammar.Leaf)))
		if err != nil {
			return nil, err
		}
		return grammar.Str(s), nil
	case 3:
		return grammar.Rgx(unslash(string(choice.Value.(grammar.Leaf)))), nil
	case 4:
		lst, ok := choice.Value.(grammar.List)
		if !ok || len(lst) != 5 {
			return nil, fmt.Errorf("malformed parenthesized group")
		}
		return buildAlt(lst[2])
	}
	return nil, fmt.Errorf("unrecognized atom variant")
}

// unquote strips the surrounding double quotes from a strlit token and
// resolves its backslash escapes.
func unquote(lit string) (string, error) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return "", fmt.Errorf("malformed string literal %q", lit)
	}
	return unescape(lit[1 : len(lit)-1]), nil
}

// unslash strips the surrounding slashes from a rgxlit token, leaving the
// regular expression source untouched for regexp.Compile to interpret —
// only the literal-delimiter escapes (\/) are resolved, not backslash
// sequences with meaning to the regex engine itself.
func unslash(lit string) string {
	if len(lit) < 2 || lit[0] != '/' || lit[len(lit)-1] != '/' {
		return lit
	}
	return strings.ReplaceAll(lit[1:len(lit)-1], `\/`, `/`)
}

func unescape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
