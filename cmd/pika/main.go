/*
Command pika parses one or more input lines against a grammar given in the
textual PEG surface syntax (see package surface) and pretty-prints the
resulting parse trees.

Usage:

	pika -grammar file.peg input.txt
	pika -grammar file.peg -strategy topdown input.txt

With -strategy topdown, every line is parsed with the grow-the-seed driver (package
topdown) instead of the default Pika bottom-up driver (package bottomup);
both share the same compiled grammar and are expected to agree.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"

	"github.com/parsekit/pika"
	"github.com/parsekit/pika/surface"
)

func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	grammarFile := flag.String("grammar", "", "path to a .peg grammar file")
	topDown := flag.String("strategy", "bottomup", "parse strategy: bottomup|topdown")
	tlevel := flag.String("trace", "Info", "trace level [Debug|Info|Error]")
	flag.Parse()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	if *grammarFile == "" {
		pterm.Error.Println("a grammar file is required: -grammar file.peg")
		os.Exit(2)
	}
	src, err := os.ReadFile(*grammarFile)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	g, err := surface.Parse(string(src))
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	pterm.Info.Println("grammar compiled successfully")

	var opt pika.Option
	switch *topDown {
	case "topdown":
		opt = pika.WithStrategy(pika.TopDown)
	default:
		opt = pika.WithStrategy(pika.BottomUp)
	}

	lines, err := readLines(flag.Args())
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	results := parseAll(g, lines, opt)
	for i, r := range results {
		printResult(lines[i], r)
	}
}

// lineResult is the outcome of parsing a single input line.
type lineResult struct {
	tree pika.ParseTree
	err  error
}

// parseAll parses every line concurrently, one worker per GOMAXPROCS — the
// compiled grammar is immutable and safely shared, and every worker runs its
// own Parser (its own memo table and scheduling queue).
func parseAll(g *pika.Grammar, lines []string, opt pika.Option) []lineResult {
	results := make([]lineResult, len(lines))
	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	if workers > len(lines) {
		workers = len(lines)
	}
	if workers < 1 {
		workers = 1
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := pika.NewParser(g, opt)
			for i := range jobs {
				tree, err := p.Parse(lines[i])
				results[i] = lineResult{tree: tree, err: err}
			}
		}()
	}
	for i := range lines {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

func readLines(args []string) ([]string, error) {
	if len(args) == 0 {
		var lines []string
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			lines = append(lines, sc.Text())
		}
		return lines, sc.Err()
	}
	var lines []string
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			lines = append(lines, sc.Text())
		}
		f.Close()
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}
	return lines, nil
}

func printResult(input string, r lineResult) {
	if r.err != nil {
		pterm.Error.Printfln("%q: %s", input, r.err.Error())
		return
	}
	pterm.Success.Printfln("%q", input)
	root := treeNode(fmt.Sprintf("%q", input), pika.Yield(r.tree))
	pterm.DefaultTree.WithRoot(root).Render()
}

// treeNode converts the yield of a ParseTree (nested strings/[]interface{})
// into a pterm.TreeNode for pretty-printing.
func treeNode(label string, v interface{}) pterm.TreeNode {
	list, ok := v.([]interface{})
	if !ok {
		return pterm.TreeNode{Text: fmt.Sprintf("%s: %v", label, v)}
	}
	node := pterm.TreeNode{Text: label}
	for i, child := range list {
		node.Children = append(node.Children, treeNode(fmt.Sprintf("[%d]", i), child))
	}
	return node
}
