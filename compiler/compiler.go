// Package compiler translates a parsed BASIC program into the source of an
// equivalent stand-alone Go program.
//
// The generated program prints exactly what the interpreter prints for the
// same input and fails with the same "error at line N: ..." message on
// standard error, exiting with status 1.
package compiler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gosuda/gobasic/ast"
	bruntime "github.com/gosuda/gobasic/runtime"
)

// ErrUnsupported marks programs the generator cannot express as structured
// Go code.
var ErrUnsupported = errors.New("unsupported construct")

// context holds the translation state of one Compile call.
type context struct {
	out       strings.Builder
	depth     int
	nextTemp  int
	loopStack []ast.ForLoop
	srcLine   int
}

// Compile returns the Go source of program. Each call uses a fresh context,
// so concurrent calls on different programs are independent.
func Compile(program *ast.Program) (string, error) {
	if program == nil {
		program = &ast.Program{}
	}
	cg := &context{}
	writePrelude(&cg.out)

	cg.line("func main() {")
	cg.depth++
	for _, line := range program.Lines {
		cg.srcLine = line.Index
		if err := cg.genStmt(line.Stmt, false); err != nil {
			return "", err
		}
	}
	// A loop still open here has run its body once; the interpreter falls
	// off the end of the program at the same point.
	for len(cg.loopStack) > 0 {
		cg.loopStack = cg.loopStack[:len(cg.loopStack)-1]
		cg.line("break")
		cg.depth--
		cg.line("}")
	}
	cg.depth--
	cg.line("}")
	return cg.out.String(), nil
}

func (cg *context) line(format string, args ...any) {
	cg.out.WriteString(strings.Repeat("\t", cg.depth))
	fmt.Fprintf(&cg.out, format, args...)
	cg.out.WriteByte('\n')
}

func (cg *context) temp(prefix string) string {
	name := fmt.Sprintf("%s%d", prefix, cg.nextTemp)
	cg.nextTemp++
	return name
}

func (cg *context) unsupported(format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", cg.srcLine, ErrUnsupported, fmt.Sprintf(format, args...))
}

// fail emits a statement that aborts the program with msg.
func (cg *context) fail(msg string) {
	cg.line("fail(%d, %s)", cg.srcLine, strconv.Quote(msg))
}

func (cg *context) genStmt(stmt ast.Statement, nested bool) error {
	switch s := stmt.(type) {
	case ast.PrintStmt:
		for i, expr := range s.Exprs {
			if i > 0 {
				cg.line(`fmt.Print(" ")`)
			}
			code, kind, err := cg.genExpr(expr)
			if err != nil {
				return err
			}
			if kind == stringExpr {
				cg.line("fmt.Print(%s)", code)
			} else {
				cg.line("fmt.Print(formatNumber(%s))", code)
			}
		}
		if !s.Semicolon {
			cg.line("fmt.Println()")
		}
	case ast.LetStmt:
		code, kind, err := cg.genExpr(s.Expr)
		if err != nil {
			return err
		}
		if kind == stringExpr {
			cg.fail(mismatch(bruntime.MsgStoreString))
			return nil
		}
		cg.line("vars[%s] = %s", strconv.Quote(s.Var), code)
	case ast.InputStmt:
		cg.line("vars[%s] = input(%d, %s)", strconv.Quote(s.Var), cg.srcLine, strconv.Quote(s.Var))
	case ast.IfStmt:
		return cg.genIf(s)
	case ast.ForStmt:
		if nested {
			return cg.unsupported("FOR inside IF")
		}
		return cg.genFor(s.Loop)
	case ast.NextStmt:
		if nested {
			return cg.unsupported("NEXT inside IF")
		}
		return cg.genNext(s.Var)
	case ast.EndStmt:
		cg.line("return")
	case ast.GotoStmt:
		return cg.unsupported("GOTO")
	case ast.RemStmt:
		return cg.unsupported("REM")
	default:
		return cg.unsupported("%T", stmt)
	}
	return nil
}

func (cg *context) genIf(s ast.IfStmt) error {
	cond, kind, err := cg.genExpr(s.Cond)
	if err != nil {
		return err
	}
	if kind == stringExpr {
		cg.fail(mismatch(bruntime.MsgCondition))
		return nil
	}
	cg.line("if %s != 0 {", cond)
	cg.depth++
	if err := cg.genStmt(s.Then, true); err != nil {
		return err
	}
	cg.depth--
	if s.Else != nil {
		cg.line("} else {")
		cg.depth++
		if err := cg.genStmt(s.Else, true); err != nil {
			return err
		}
		cg.depth--
	}
	cg.line("}")
	return nil
}

// genFor evaluates start, end and step in that order, stores start and
// opens an unconditional Go loop. The exit test lives in the matching NEXT,
// so the body is always entered once.
func (cg *context) genFor(loop ast.ForLoop) error {
	parts := []ast.Expr{loop.Start, loop.End, loop.Step}
	codes := make([]string, len(parts))
	numeric := true
	for i, part := range parts {
		code, kind, err := cg.genExpr(part)
		if err != nil {
			return err
		}
		codes[i] = code
		if kind == stringExpr {
			numeric = false
		}
	}
	if !numeric {
		for _, code := range codes {
			cg.line("_ = %s", code)
		}
		cg.fail(mismatch(bruntime.MsgLoopBounds))
	} else {
		start := cg.temp("start")
		cg.line("%s := %s", start, codes[0])
		cg.line("_ = %s", codes[1])
		cg.line("_ = %s", codes[2])
		cg.line("vars[%s] = %s", strconv.Quote(loop.Var), start)
	}
	cg.line("for {")
	cg.depth++
	cg.loopStack = append(cg.loopStack, loop)
	return nil
}

func (cg *context) genNext(name string) error {
	if len(cg.loopStack) == 0 {
		return cg.unsupported("%s", bruntime.ErrNextWithoutFor)
	}
	loop := cg.loopStack[len(cg.loopStack)-1]
	if loop.Var != name {
		return cg.unsupported("%v: %s", bruntime.ErrLoopMismatch, bruntime.LoopMismatchDetail(name, loop.Var))
	}
	cg.loopStack = cg.loopStack[:len(cg.loopStack)-1]

	step, next, end := cg.temp("step"), cg.temp("next"), cg.temp("end")
	stepCode, stepKind, err := cg.genExpr(loop.Step)
	if err != nil {
		return err
	}
	if stepKind == stringExpr {
		stepCode = cg.failExpr(mismatch(bruntime.MsgStep))
	}
	endCode, endKind, err := cg.genExpr(loop.End)
	if err != nil {
		return err
	}
	if endKind == stringExpr {
		endCode = cg.failExpr(mismatch(bruntime.MsgEnd))
	}
	cg.line("%s := %s", step, stepCode)
	cg.line("%s := load(%d, %s) + %s", next, cg.srcLine, strconv.Quote(name), step)
	cg.line("%s := %s", end, endCode)
	cg.line("if !((%[1]s > 0 && %[2]s <= %[3]s) || (%[1]s < 0 && %[2]s >= %[3]s)) {", step, next, end)
	cg.line("\tbreak")
	cg.line("}")
	cg.line("vars[%s] = %s", strconv.Quote(name), next)
	cg.depth--
	cg.line("}")
	return nil
}

func mismatch(detail string) string {
	return fmt.Sprintf("%v: %s", bruntime.ErrTypeMismatch, detail)
}
