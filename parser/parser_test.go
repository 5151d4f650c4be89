package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gosuda/gobasic/ast"
	"github.com/gosuda/gobasic/parser"
)

func TestParseSkipsBlankLines(t *testing.T) {
	program, err := parser.ParseSource("\n\nLET A = 1\n\n\nPRINT A\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(program.Lines) != 2 {
		t.Fatalf("unexpected line count: %d", len(program.Lines))
	}
	for i, line := range program.Lines {
		if line.Index != i {
			t.Fatalf("line %d has index %d", i, line.Index)
		}
	}
}

func TestParsePrecedence(t *testing.T) {
	expr, err := parser.ParseExpr("1 + 2 * 3 ^ 2 < 20")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	cmp, ok := expr.(ast.BinaryExpr)
	if !ok || cmp.Op != "<" {
		t.Fatalf("expected comparison at the root, got %#v", expr)
	}
	sum, ok := cmp.Left.(ast.BinaryExpr)
	if !ok || sum.Op != "+" {
		t.Fatalf("expected addition under comparison, got %#v", cmp.Left)
	}
	prod, ok := sum.Right.(ast.BinaryExpr)
	if !ok || prod.Op != "*" {
		t.Fatalf("expected multiplication, got %#v", sum.Right)
	}
	if pow, ok := prod.Right.(ast.BinaryExpr); !ok || pow.Op != "^" {
		t.Fatalf("expected power, got %#v", prod.Right)
	}
}

func TestParseLeftAssociative(t *testing.T) {
	expr, err := parser.ParseExpr("8 - 4 - 2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	root := expr.(ast.BinaryExpr)
	if _, ok := root.Left.(ast.BinaryExpr); !ok {
		t.Fatalf("expected (8 - 4) - 2, got %#v", expr)
	}
	if n, ok := root.Right.(ast.NumberLit); !ok || n.Value != 2 {
		t.Fatalf("unexpected right operand: %#v", root.Right)
	}

	expr, err = parser.ParseExpr("2 ^ 3 ^ 2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, ok := expr.(ast.BinaryExpr).Left.(ast.BinaryExpr); !ok {
		t.Fatalf("power should group to the left: %#v", expr)
	}
}

func TestParseForDefaultsStep(t *testing.T) {
	program, err := parser.ParseSource("FOR I = 1 TO 10\nNEXT I\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	loop := program.Lines[0].Stmt.(ast.ForStmt).Loop
	if loop.Var != "I" {
		t.Fatalf("unexpected loop variable: %q", loop.Var)
	}
	if step, ok := loop.Step.(ast.NumberLit); !ok || step.Value != 1 {
		t.Fatalf("unexpected default step: %#v", loop.Step)
	}
	if next, ok := program.Lines[1].Stmt.(ast.NextStmt); !ok || next.Var != "I" {
		t.Fatalf("unexpected NEXT: %#v", program.Lines[1].Stmt)
	}
}

func TestParseIfElse(t *testing.T) {
	program, err := parser.ParseSource(`IF X = 1 THEN PRINT "one" ELSE LET Y = 2`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	stmt := program.Lines[0].Stmt.(ast.IfStmt)
	if p, ok := stmt.Then.(ast.PrintStmt); !ok || len(p.Exprs) != 1 {
		t.Fatalf("unexpected THEN branch: %#v", stmt.Then)
	}
	if l, ok := stmt.Else.(ast.LetStmt); !ok || l.Var != "Y" {
		t.Fatalf("unexpected ELSE branch: %#v", stmt.Else)
	}
}

func TestParsePrintItems(t *testing.T) {
	program, err := parser.ParseSource("PRINT \"A\", 1 2;\nPRINT\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	first := program.Lines[0].Stmt.(ast.PrintStmt)
	if len(first.Exprs) != 3 || !first.Semicolon {
		t.Fatalf("unexpected first PRINT: %#v", first)
	}
	second := program.Lines[1].Stmt.(ast.PrintStmt)
	if len(second.Exprs) != 0 || second.Semicolon {
		t.Fatalf("unexpected bare PRINT: %#v", second)
	}
}

func TestParseCallStatement(t *testing.T) {
	program, err := parser.ParseSource("SQR(16)\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	let, ok := program.Lines[0].Stmt.(ast.LetStmt)
	if !ok || let.Var != "SQR" {
		t.Fatalf("expected assignment to SQR, got %#v", program.Lines[0].Stmt)
	}
	call, ok := let.Expr.(ast.CallExpr)
	if !ok || call.Name != "SQR" || len(call.Args) != 1 {
		t.Fatalf("unexpected call: %#v", let.Expr)
	}
}

func TestParseImplicitLet(t *testing.T) {
	program, err := parser.ParseSource("A = (1 + 2) * 3\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if let, ok := program.Lines[0].Stmt.(ast.LetStmt); !ok || let.Var != "A" {
		t.Fatalf("unexpected statement: %#v", program.Lines[0].Stmt)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"LET = 1":            "expected variable name after LET",
		"FOR I = 1 10":       "expected TO",
		"IF 1 PRINT 2":       "expected THEN",
		"PRINT (1 + 2":       "closing parenthesis",
		"PRINT SQR(1 2)":     "expected ',' or ')'",
		"X 5":                "expected '='",
		"THEN":               "unexpected token in statement",
		"PRINT 1 +":          "unexpected token in expression",
		"IF 1 THEN":          "unexpected token in statement",
		"GOTO 10":            "expected '='",
		"NEXT":               "expected variable name after NEXT",
		"INPUT \"name\"":     "expected variable name after INPUT",
		"LET A = 1\nLET B =": "line 2",
	}
	for src, want := range cases {
		_, err := parser.ParseSource(src)
		if err == nil {
			t.Fatalf("%q: expected an error", src)
		}
		if !errors.Is(err, parser.ErrSyntax) {
			t.Fatalf("%q: error does not wrap ErrSyntax: %v", src, err)
		}
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("%q: error %q does not mention %q", src, err.Error(), want)
		}
	}
}

func TestParseDeepNestingFails(t *testing.T) {
	src := "PRINT " + strings.Repeat("(", 5000) + "1" + strings.Repeat(")", 5000)
	if _, err := parser.ParseSource(src); !errors.Is(err, parser.ErrSyntax) {
		t.Fatalf("expected a syntax error for deep nesting, got %v", err)
	}
}
