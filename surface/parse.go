package surface

import (
	"fmt"

	"github.com/parsekit/pika"
)

// Parse compiles a grammar written in the textual PEG notation into a
// *pika.Grammar, ready for pika.NewParser. The first rule declared in source
// becomes the grammar's start rule.
func Parse(source string) (*pika.Grammar, error) {
	tree, err := pika.Parse(bootstrapGrammar, source)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	rules, err := buildGrammar(tree)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	g, err := pika.Compile(rules...)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	return g, nil
}
