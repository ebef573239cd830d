package surface

import (
	"fmt"

	"github.com/parsekit/pika"
)

// bootstrapGrammar recognizes the textual PEG notation itself. It is built
// from the same Clause constructors an application would use to build any
// other grammar, and parsed by the very matcher it feeds — the surface
// syntax is bootstrapped from the engine rather than hand-written as a
// separate recursive-descent parser.
var bootstrapGrammar *pika.Grammar

func init() {
	ws := pika.Rule("ws", pika.Mult(0, pika.Alt(pika.Rgx(`[ \t\r\n]+`), pika.Rgx(`#[^\n]*`))))
	ident := pika.Rule("ident", pika.Rgx(`[a-zA-Z_][a-zA-Z0-9_]*`))
	strlit := pika.Rule("strlit", pika.Rgx(`"([^"\\]|\\.)*"`))
	rgxlit := pika.Rule("rgxlit", pika.Rgx(`/([^/\\]|\\.)*/`))
	suffix := pika.Rule("suffix", pika.Alt(pika.Str("*"), pika.Str("+"), pika.Str("?")))

	atom := pika.Rule("atom", nil)
	prefixed := pika.Rule("prefixed", pika.Alt(
		pika.Seq(pika.Str("&"), pika.Ref("ws"), pika.Ref("atom")),
		pika.Seq(pika.Str("!"), pika.Ref("ws"), pika.Ref("atom")),
	))
	term := pika.Rule("term", pika.Alt(
		pika.Ref("prefixed"),
		pika.Seq(pika.Ref("atom"), pika.Opt(pika.Ref("suffix"))),
	))
	// A sequence element never starts where the next rule definition
	// (`name <-`) does, so that rules need no terminator between them.
	seqTail := pika.Rule("seqTail", pika.Seq(
		pika.Seq(pika.Ref("ws"), pika.NLook(pika.Rgx(`[a-zA-Z_][a-zA-Z0-9_]*[ \t\r\n]*<-`))),
		pika.Ref("term"),
	))
	seq := pika.Rule("seq", pika.Seq(pika.Ref("term"), pika.Mult(0, pika.Ref("seqTail"))))
	altTail := pika.Rule("altTail", pika.Seq(pika.Ref("ws"), pika.Str("|"), pika.Ref("ws"), pika.Ref("seq")))
	alt := pika.Rule("alt", pika.Seq(pika.Ref("seq"), pika.Mult(0, pika.Ref("altTail"))))

	atom.Body = pika.Alt(
		pika.Ref("ident"),
		pika.Ref("strlit"),
		pika.Ref("rgxlit"),
		pika.Seq(pika.Str("("), pika.Ref("ws"), pika.Ref("alt"), pika.Ref("ws"), pika.Str(")")),
	)

	ruleDef := pika.Rule("ruleDef", pika.Seq(pika.Ref("ident"), pika.Ref("ws"), pika.Str("<-"), pika.Ref("ws"), pika.Ref("alt")))
	defTail := pika.Rule("defTail", pika.Seq(pika.Ref("ws"), pika.Ref("ruleDef")))
	grammarRule := pika.Rule("grammar", pika.Seq(pika.Ref("ws"), pika.Ref("ruleDef"), pika.Mult(0, pika.Ref("defTail"))))

	g, err := pika.Compile(grammarRule, ruleDef, defTail, alt, altTail, seq, seqTail,
		term, prefixed, atom, suffix, ident, strlit, rgxlit, ws)
	if err != nil {
		panic(fmt.Sprintf("surface: bootstrap grammar failed to compile: %v", err))
	}
	bootstrapGrammar = g
}
