package main

import (
	"fmt"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/gosuda/gobasic/ast"
	"github.com/gosuda/gobasic/lexer"
	"github.com/gosuda/gobasic/parser"
)

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "t")
	if err != nil || len(os.Args[optind:]) != 1 {
		fmt.Fprintln(os.Stderr, "usage: debug_ast [-t] file")
		os.Exit(2)
	}
	showTokens := false
	for _, opt := range opts {
		if opt.Option == 't' {
			showTokens = true
		}
	}

	b, err := os.ReadFile(os.Args[optind])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	toks := lexer.Lex(string(b))
	if showTokens {
		for _, tok := range toks {
			fmt.Printf("%4d  %s\n", tok.Line, tok)
		}
		fmt.Println()
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, line := range prog.Lines {
		fmt.Printf("%3d  %s\n", line.Index, stmtString(line.Stmt))
	}
}

func stmtString(st ast.Statement) string {
	switch s := st.(type) {
	case ast.LetStmt:
		return fmt.Sprintf("Let %s = %s", s.Var, exprString(s.Expr))
	case ast.PrintStmt:
		items := make([]string, len(s.Exprs))
		for i, e := range s.Exprs {
			items[i] = exprString(e)
		}
		suffix := ""
		if s.Semicolon {
			suffix = ";"
		}
		return "Print [" + strings.Join(items, ", ") + "]" + suffix
	case ast.IfStmt:
		out := fmt.Sprintf("If %s Then { %s }", exprString(s.Cond), stmtString(s.Then))
		if s.Else != nil {
			out += fmt.Sprintf(" Else { %s }", stmtString(s.Else))
		}
		return out
	case ast.InputStmt:
		return "Input " + s.Var
	case ast.ForStmt:
		l := s.Loop
		return fmt.Sprintf("For %s = %s To %s Step %s", l.Var, exprString(l.Start), exprString(l.End), exprString(l.Step))
	case ast.NextStmt:
		return "Next " + s.Var
	case ast.EndStmt:
		return "End"
	default:
		return fmt.Sprintf("%T", st)
	}
}

func exprString(e ast.Expr) string {
	switch x := e.(type) {
	case ast.NumberLit:
		return fmt.Sprintf("%g", x.Value)
	case ast.StringLit:
		return fmt.Sprintf("%q", x.Value)
	case ast.VarRef:
		return x.Name
	case ast.BinaryExpr:
		return "(" + exprString(x.Left) + " " + x.Op + " " + exprString(x.Right) + ")"
	case ast.CallExpr:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = exprString(a)
		}
		return x.Name + "(" + strings.Join(args, ", ") + ")"
	default:
		return fmt.Sprintf("%T", e)
	}
}
