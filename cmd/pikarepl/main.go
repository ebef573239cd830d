/*
Command pikarepl is an interactive REPL for experimenting with PEG grammars,
mirroring terex/terexlang/trepl: load a grammar written in the textual PEG
surface syntax, then type input lines at the prompt and watch them parse.

Commands, typed at the prompt:

	:load file.peg   load (or reload) a grammar from file
	:strategy NAME   switch to "bottomup" (default) or "topdown"
	:quit            exit (also <ctrl>D)

Anything else typed at the prompt is parsed against the current grammar.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"

	"github.com/parsekit/pika"
	"github.com/parsekit/pika/surface"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// session holds the REPL's mutable state across prompt lines.
type session struct {
	grammar  *pika.Grammar
	strategy pika.Strategy
	repl     *readline.Instance
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "trace level [Debug|Info|Error]")
	grammarFile := flag.String("grammar", "", "initial grammar file to load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to pikarepl")

	repl, err := readline.New("pika> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	s := &session{repl: repl, strategy: pika.BottomUp}
	if *grammarFile != "" {
		s.load(*grammarFile)
	}
	tracer().Infof("Quit with <ctrl>D or :quit")
	s.run()
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{Text: "  >>", Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)}
	pterm.Error.Prefix = pterm.Prefix{Text: "  Error", Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack)}
}

func (s *session) run() {
	for {
		line, err := s.repl.Readline()
		if err != nil { // io.EOF, or <ctrl>C
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if s.command(line) {
				break
			}
			continue
		}
		s.parseLine(line)
	}
	pterm.Info.Println("Good bye!")
}

// command handles a ":"-prefixed REPL directive. It reports whether the REPL
// should exit.
func (s *session) command(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":load":
		if len(fields) != 2 {
			pterm.Error.Println("usage: :load file.peg")
			return false
		}
		s.load(fields[1])
	case ":strategy":
		if len(fields) != 2 {
			pterm.Error.Println("usage: :strategy bottomup|topdown")
			return false
		}
		switch fields[1] {
		case "bottomup":
			s.strategy = pika.BottomUp
		case "topdown":
			s.strategy = pika.TopDown
		default:
			pterm.Error.Printfln("unknown strategy %q", fields[1])
			return false
		}
		pterm.Info.Printfln("strategy set to %s", s.strategy)
	default:
		pterm.Error.Printfln("unknown command %q", fields[0])
	}
	return false
}

func (s *session) load(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	g, err := surface.Parse(string(src))
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	s.grammar = g
	pterm.Success.Printfln("grammar %q loaded", path)
}

func (s *session) parseLine(line string) {
	if s.grammar == nil {
		pterm.Error.Println("no grammar loaded — use :load file.peg")
		return
	}
	tree, err := pika.Parse(s.grammar, line, pika.WithStrategy(s.strategy))
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	fmt.Println(render(pika.Yield(tree)))
}

// render prints the yield of a ParseTree as an s-expression-ish string.
func render(v interface{}) string {
	list, ok := v.([]interface{})
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	parts := make([]string, len(list))
	for i, child := range list {
		parts[i] = render(child)
	}
	return "(" + strings.Join(parts, " ") + ")"
}
