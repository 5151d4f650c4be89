package parser

import (
	"github.com/gosuda/gobasic/ast"
	"github.com/gosuda/gobasic/lexer"
)

const maxExprDepth = 1024

// Binary operator levels from loosest to tightest. Every level is left
// associative, power included.
var precedence = [][]lexer.Kind{
	{lexer.LessThan, lexer.GreaterThan, lexer.Equals, lexer.LessOrEqual, lexer.GreaterOrEqual, lexer.NotEqual},
	{lexer.Plus, lexer.Minus},
	{lexer.Multiply, lexer.Divide},
	{lexer.Power},
}

// ParseExpr parses a single expression from src. Trailing tokens other
// than the end of line are an error.
func ParseExpr(src string) (ast.Expr, error) {
	p := &parser{tokens: lexer.Lex(src)}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.accept(lexer.EOL)
	if tok := p.peek(); tok.Kind != lexer.EOF {
		return nil, p.errorf(tok, "unexpected token %s", tok)
	}
	return expr, nil
}

func (p *parser) parseExpr() (ast.Expr, error) {
	return p.parseLevel(0, 0)
}

func (p *parser) parseLevel(level, depth int) (ast.Expr, error) {
	if depth > maxExprDepth {
		return nil, p.errorf(p.peek(), "expression nesting too deep near %s", p.peek())
	}
	if level == len(precedence) {
		return p.parsePrimary(depth)
	}
	left, err := p.parseLevel(level+1, depth+1)
	if err != nil {
		return nil, err
	}
	for hasKind(precedence[level], p.peek().Kind) {
		op := p.next().Kind.String()
		right, err := p.parseLevel(level+1, depth+1)
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parsePrimary(depth int) (ast.Expr, error) {
	tok := p.next()
	switch tok.Kind {
	case lexer.Number:
		return ast.NumberLit{Value: tok.Num}, nil
	case lexer.String:
		return ast.StringLit{Value: tok.Text}, nil
	case lexer.Identifier:
		if p.accept(lexer.LParen) {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return ast.CallExpr{Name: tok.Text, Args: args}, nil
		}
		return ast.VarRef{Name: tok.Text}, nil
	case lexer.LParen:
		expr, err := p.parseLevel(0, depth+1)
		if err != nil {
			return nil, err
		}
		if !p.accept(lexer.RParen) {
			return nil, p.errorf(p.peek(), "expected closing parenthesis, got %s", p.peek())
		}
		return expr, nil
	case lexer.EOF:
		return nil, p.errorf(tok, "unexpected end of input")
	default:
		return nil, p.errorf(tok, "unexpected token in expression: %s", tok)
	}
}

// parseArgs reads a call's argument list; the opening parenthesis has
// already been consumed.
func (p *parser) parseArgs() ([]ast.Expr, error) {
	args := []ast.Expr{}
	for {
		if p.accept(lexer.RParen) {
			return args, nil
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		switch {
		case p.accept(lexer.Comma):
		case p.accept(lexer.RParen):
			return args, nil
		default:
			return nil, p.errorf(p.peek(), "expected ',' or ')' in function call, got %s", p.peek())
		}
	}
}

func hasKind(kinds []lexer.Kind, k lexer.Kind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}
