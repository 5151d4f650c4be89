package parser

import (
	"errors"
	"fmt"

	"github.com/gosuda/gobasic/ast"
	"github.com/gosuda/gobasic/lexer"
)

// ErrSyntax is wrapped by every *Error the parser returns.
var ErrSyntax = errors.New("syntax error")

// Error reports the first malformed construct. Parsing stops there; there
// is no recovery to a later line.
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *Error) Unwrap() error {
	return ErrSyntax
}

// ParseSource lexes and parses src.
func ParseSource(src string) (*ast.Program, error) {
	return Parse(lexer.Lex(src))
}

// Parse builds a Program from a token sequence produced by lexer.Lex.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	p := &parser{tokens: tokens}
	program := &ast.Program{}
	for {
		switch p.peek().Kind {
		case lexer.EOL:
			p.next()
			continue
		case lexer.EOF:
			return program, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Lines = append(program.Lines, ast.Line{Index: len(program.Lines), Stmt: stmt})
		if p.peek().Kind == lexer.EOL {
			p.next()
		}
	}
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

func (p *parser) peek() lexer.Token {
	if p.pos >= len(p.tokens) {
		line := 0
		if n := len(p.tokens); n > 0 {
			line = p.tokens[n-1].Line
		}
		return lexer.Token{Kind: lexer.EOF, Line: line}
	}
	return p.tokens[p.pos]
}

func (p *parser) next() lexer.Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

// accept consumes the next token when it has the given kind.
func (p *parser) accept(kind lexer.Kind) bool {
	if p.peek().Kind == kind {
		p.next()
		return true
	}
	return false
}

func (p *parser) errorf(tok lexer.Token, format string, args ...any) error {
	return &Error{Line: tok.Line, Msg: fmt.Sprintf(format, args...)}
}
