package compiler

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gosuda/gobasic/ast"
	bruntime "github.com/gosuda/gobasic/runtime"
)

type exprKind int

const (
	numberExpr exprKind = iota
	stringExpr
)

var arithmetic = map[string]string{
	"+": "add",
	"-": "sub",
	"*": "mul",
	"^": "math.Pow",
}

var comparisons = map[string]string{
	"<":  "<",
	">":  ">",
	"=":  "==",
	"<=": "<=",
	">=": ">=",
	"<>": "!=",
}

var mathFuncs = map[string]string{
	"ABS": "math.Abs",
	"SIN": "math.Sin",
	"COS": "math.Cos",
	"TAN": "math.Tan",
	"INT": "math.Floor",
}

// genExpr returns a Go expression for e and its static kind. String
// expressions are only ever literals; every other form is a number.
// Arithmetic goes through helper calls so that constant operands are never
// folded (and rejected) by the Go compiler.
func (cg *context) genExpr(e ast.Expr) (string, exprKind, error) {
	switch ex := e.(type) {
	case ast.NumberLit:
		return floatLiteral(ex.Value), numberExpr, nil
	case ast.StringLit:
		return strconv.Quote(ex.Value), stringExpr, nil
	case ast.VarRef:
		return fmt.Sprintf("load(%d, %s)", cg.srcLine, strconv.Quote(ex.Name)), numberExpr, nil
	case ast.BinaryExpr:
		return cg.genBinary(ex)
	case ast.CallExpr:
		return cg.genCall(ex)
	default:
		return "", 0, cg.unsupported("expression %T", e)
	}
}

func (cg *context) genBinary(ex ast.BinaryExpr) (string, exprKind, error) {
	left, lk, err := cg.genExpr(ex.Left)
	if err != nil {
		return "", 0, err
	}
	right, rk, err := cg.genExpr(ex.Right)
	if err != nil {
		return "", 0, err
	}
	_, isArith := arithmetic[ex.Op]
	_, isCmp := comparisons[ex.Op]
	if !isArith && !isCmp && ex.Op != "/" {
		return "", 0, cg.unsupported("operator %q", ex.Op)
	}
	if lk == stringExpr || rk == stringExpr {
		// Numeric operands are still evaluated first, as the interpreter does.
		args := []string{strconv.Itoa(cg.srcLine), strconv.Quote(mismatch(bruntime.MsgInvalidOperation))}
		if lk == numberExpr {
			args = append(args, left)
		}
		if rk == numberExpr {
			args = append(args, right)
		}
		return "failAfter(" + strings.Join(args, ", ") + ")", numberExpr, nil
	}
	switch {
	case ex.Op == "/":
		return fmt.Sprintf("div(%d, %s, %s)", cg.srcLine, left, right), numberExpr, nil
	case isArith:
		return fmt.Sprintf("%s(%s, %s)", arithmetic[ex.Op], left, right), numberExpr, nil
	default:
		return fmt.Sprintf("b2f(%s %s %s)", left, comparisons[ex.Op], right), numberExpr, nil
	}
}

// genCall mirrors the interpreter: RND ignores its arguments, the other
// builtins use only the first one.
func (cg *context) genCall(ex ast.CallExpr) (string, exprKind, error) {
	if ex.Name == "RND" {
		return "rnd()", numberExpr, nil
	}
	if !bruntime.IsBuiltin(ex.Name) {
		return cg.failExpr(fmt.Sprintf("%v: %s", bruntime.ErrUnknownFunction, ex.Name)), numberExpr, nil
	}
	if len(ex.Args) == 0 {
		return cg.failExpr(fmt.Sprintf("%v: %s", bruntime.ErrArgument, bruntime.MissingArgumentDetail(ex.Name))), numberExpr, nil
	}
	arg, kind, err := cg.genExpr(ex.Args[0])
	if err != nil {
		return "", 0, err
	}
	if kind == stringExpr {
		return cg.failExpr(mismatch(bruntime.ArgumentTypeDetail(ex.Name))), numberExpr, nil
	}
	if ex.Name == "SQR" {
		return fmt.Sprintf("sqr(%d, %s)", cg.srcLine, arg), numberExpr, nil
	}
	return fmt.Sprintf("%s(%s)", mathFuncs[ex.Name], arg), numberExpr, nil
}

// failExpr is an expression of type float64 that aborts the program.
func (cg *context) failExpr(msg string) string {
	return fmt.Sprintf("failAfter(%d, %s)", cg.srcLine, strconv.Quote(msg))
}

// floatLiteral spells n so that Go types it as float64.
func floatLiteral(n float64) string {
	if math.IsInf(n, 0) {
		if n < 0 {
			return "math.Inf(-1)"
		}
		return "math.Inf(1)"
	}
	s := strconv.FormatFloat(n, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
