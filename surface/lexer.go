package surface

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'pika.surface'.
func tracer() tracing.Trace {
	return tracing.Select("pika.surface")
}

// TokType categorizes a surface-syntax token, for tooling that wants to show
// how lexmachine sees a grammar source without running the bootstrapped
// parser over it.
type TokType int

// Token categories recognized by the surface lexer.
const (
	TokIdent TokType = iota
	TokString
	TokRegex
	TokArrow
	TokPipe
	TokStar
	TokPlus
	TokQuestion
	TokAmp
	TokBang
	TokLParen
	TokRParen
)

func (t TokType) String() string {
	switch t {
	case TokIdent:
		return "IDENT"
	case TokString:
		return "STRING"
	case TokRegex:
		return "REGEX"
	case TokArrow:
		return "ARROW"
	case TokPipe:
		return "PIPE"
	case TokStar:
		return "STAR"
	case TokPlus:
		return "PLUS"
	case TokQuestion:
		return "QUESTION"
	case TokAmp:
		return "AMP"
	case TokBang:
		return "BANG"
	case TokLParen:
		return "LPAREN"
	case TokRParen:
		return "RPAREN"
	}
	return "?"
}

// Token is one lexed unit of surface-syntax source.
type Token struct {
	Type   TokType
	Lexeme string
	Pos    int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Type, t.Lexeme, t.Pos)
}

var theLexer *lexmachine.Lexer

func makeToken(tt TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{Type: tt, Lexeme: string(m.Bytes), Pos: m.TC}, nil
	}
}

func skip(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return nil, nil
}

func init() {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`[ \t\n\r]+`), skip)
	lexer.Add([]byte(`#[^\n]*`), skip)
	lexer.Add([]byte(`<-`), makeToken(TokArrow))
	lexer.Add([]byte(`\|`), makeToken(TokPipe))
	lexer.Add([]byte(`\*`), makeToken(TokStar))
	lexer.Add([]byte(`\+`), makeToken(TokPlus))
	lexer.Add([]byte(`\?`), makeToken(TokQuestion))
	lexer.Add([]byte(`&`), makeToken(TokAmp))
	lexer.Add([]byte(`!`), makeToken(TokBang))
	lexer.Add([]byte(`\(`), makeToken(TokLParen))
	lexer.Add([]byte(`\)`), makeToken(TokRParen))
	lexer.Add([]byte(`/([^/\\]|\\.)*/`), makeToken(TokRegex))
	lexer.Add([]byte(`"([^"\\]|\\.)*"`), makeToken(TokString))
	lexer.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), makeToken(TokIdent))
	if err := lexer.Compile(); err != nil {
		panic(fmt.Sprintf("surface: lexer DFA failed to compile: %v", err))
	}
	theLexer = lexer
}

// Tokenize lexes source into the full token stream, for diagnostics.
func Tokenize(source string) ([]Token, error) {
	scan, err := theLexer.Scanner([]byte(source))
	if err != nil {
		return nil, fmt.Errorf("surface: cannot start scanner: %w", err)
	}
	var toks []Token
	for {
		tok, err, eof := scan.Next()
		if err != nil {
			return nil, fmt.Errorf("surface: lex error: %w", err)
		}
		if eof {
			break
		}
		if tok == nil {
			continue // skipped (whitespace/comment)
		}
		t := tok.(Token)
		tracer().Debugf("token %s", t)
		toks = append(toks, t)
	}
	return toks, nil
}
