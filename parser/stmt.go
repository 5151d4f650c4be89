package parser

import (
	"github.com/gosuda/gobasic/ast"
	"github.com/gosuda/gobasic/lexer"
)

func (p *parser) parseStatement() (ast.Statement, error) {
	tok := p.next()
	switch tok.Kind {
	case lexer.Let:
		return p.parseLet()
	case lexer.Print:
		return p.parsePrint()
	case lexer.If:
		return p.parseIf()
	case lexer.For:
		return p.parseFor()
	case lexer.Input:
		name, err := p.expectVariable("INPUT")
		if err != nil {
			return nil, err
		}
		return ast.InputStmt{Var: name}, nil
	case lexer.Next:
		name, err := p.expectVariable("NEXT")
		if err != nil {
			return nil, err
		}
		return ast.NextStmt{Var: name}, nil
	case lexer.End:
		return ast.EndStmt{}, nil
	case lexer.Identifier:
		switch p.peek().Kind {
		case lexer.LParen:
			// A bare call stores its result in a variable named after the
			// function: "SQR(4)" behaves like "LET SQR = SQR(4)".
			p.next()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return ast.LetStmt{Var: tok.Text, Expr: ast.CallExpr{Name: tok.Text, Args: args}}, nil
		case lexer.Equals:
			p.next()
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			return ast.LetStmt{Var: tok.Text, Expr: expr}, nil
		default:
			return nil, p.errorf(p.peek(), "expected '=' after variable name %s, got %s", tok.Text, p.peek())
		}
	case lexer.EOF:
		return nil, p.errorf(tok, "unexpected end of input")
	default:
		return nil, p.errorf(tok, "unexpected token in statement: %s", tok)
	}
}

func (p *parser) expectVariable(keyword string) (string, error) {
	tok := p.next()
	if tok.Kind != lexer.Identifier {
		return "", p.errorf(tok, "expected variable name after %s, got %s", keyword, tok)
	}
	return tok.Text, nil
}

func (p *parser) parseLet() (ast.Statement, error) {
	name, err := p.expectVariable("LET")
	if err != nil {
		return nil, err
	}
	if !p.accept(lexer.Equals) {
		return nil, p.errorf(p.peek(), "expected '=' after variable name in LET, got %s", p.peek())
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.LetStmt{Var: name, Expr: expr}, nil
}

// parsePrint reads items up to the end of the line. Commas between items
// are optional; a semicolon ends the list and suppresses the newline. ELSE
// also ends the list so that "IF c THEN PRINT a ELSE PRINT b" parses.
func (p *parser) parsePrint() (ast.Statement, error) {
	stmt := ast.PrintStmt{}
	for {
		switch p.peek().Kind {
		case lexer.Semicolon:
			p.next()
			stmt.Semicolon = true
			return stmt, nil
		case lexer.EOL, lexer.EOF, lexer.Else:
			return stmt, nil
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Exprs = append(stmt.Exprs, expr)
		p.accept(lexer.Comma)
	}
}

func (p *parser) parseIf() (ast.Statement, error) {
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.accept(lexer.Then) {
		return nil, p.errorf(p.peek(), "expected THEN after IF condition, got %s", p.peek())
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt := ast.IfStmt{Cond: cond, Then: then}
	if p.accept(lexer.Else) {
		stmt.Else, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *parser) parseFor() (ast.Statement, error) {
	name, err := p.expectVariable("FOR")
	if err != nil {
		return nil, err
	}
	if !p.accept(lexer.Equals) {
		return nil, p.errorf(p.peek(), "expected '=' after variable name in FOR statement, got %s", p.peek())
	}
	start, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.accept(lexer.To) {
		return nil, p.errorf(p.peek(), "expected TO in FOR statement, got %s", p.peek())
	}
	end, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var step ast.Expr = ast.NumberLit{Value: 1}
	if p.accept(lexer.Step) {
		step, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	return ast.ForStmt{Loop: ast.ForLoop{Var: name, Start: start, End: end, Step: step}}, nil
}
