package gobasic_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gosuda/gobasic"
	"github.com/gosuda/gobasic/compiler"
	"github.com/gosuda/gobasic/parser"
	bruntime "github.com/gosuda/gobasic/runtime"
)

func mustRun(t *testing.T, src string, inputs ...string) string {
	t.Helper()
	out, err := gobasic.Run(src, inputs...)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return out
}

func TestLetAndPrint(t *testing.T) {
	out := mustRun(t, "LET X = 5\nPRINT X\nEND\n")
	if out != "5\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestHugeLiteralPrintsInf(t *testing.T) {
	out := mustRun(t, "PRINT 1"+strings.Repeat("0", 400)+"\n")
	if out != "inf\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestForLoopCountsUp(t *testing.T) {
	out := mustRun(t, "FOR I = 1 TO 3\nPRINT I\nNEXT I\nEND\n")
	if out != "1\n2\n3\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestComparisonPrintsOne(t *testing.T) {
	out := mustRun(t, "PRINT 3 > 2\nEND\n")
	if out != "1\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestDivisionByZeroStopsRun(t *testing.T) {
	out, err := gobasic.Run("PRINT 1/0\nPRINT 2\nEND\n")
	if !errors.Is(err, bruntime.ErrDivisionByZero) {
		t.Fatalf("expected division by zero, got %v", err)
	}
	var lineErr *bruntime.LineError
	if !errors.As(err, &lineErr) || lineErr.Line != 0 {
		t.Fatalf("expected failure on line 0, got %v", err)
	}
	if out != "" {
		t.Fatalf("unexpected output after failure: %q", out)
	}
	if err.Error() != "error at line 0: division by zero" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestComparisonsAreZeroOrOne(t *testing.T) {
	src := `PRINT 1 < 2, 2 < 1, 2 = 2, 2 <> 2, 3 >= 3, 3 <= 2, 5 > 4
`
	out := mustRun(t, src)
	if out != "1 0 1 0 1 0 1\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestForBodyRunsAtLeastOnce(t *testing.T) {
	out := mustRun(t, "FOR I = 5 TO 1\nPRINT I\nNEXT I\nPRINT \"after\", I\n")
	if out != "5\nafter 5\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestForNegativeStep(t *testing.T) {
	out := mustRun(t, "FOR I = 3 TO 1 STEP 0 - 1\nPRINT I;\nNEXT I\nPRINT\n")
	if out != "321\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestNestedLoops(t *testing.T) {
	src := `FOR I = 1 TO 2
FOR J = 1 TO 3
PRINT I * J;
NEXT J
PRINT
NEXT I
`
	out := mustRun(t, src)
	if out != "123\n246\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestNextMismatchFails(t *testing.T) {
	_, err := gobasic.Run("FOR I = 1 TO 2\nFOR J = 1 TO 2\nNEXT I\n")
	if !errors.Is(err, bruntime.ErrLoopMismatch) {
		t.Fatalf("expected loop mismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "NEXT I doesn't match FOR J") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestNextWithoutFor(t *testing.T) {
	_, err := gobasic.Run("NEXT I\n")
	if !errors.Is(err, bruntime.ErrNextWithoutFor) {
		t.Fatalf("expected NEXT without FOR, got %v", err)
	}
}

func TestIfElse(t *testing.T) {
	src := `LET A = 4
IF A > 3 THEN PRINT "big" ELSE PRINT "small"
IF A > 9 THEN PRINT "huge" ELSE PRINT "not huge"
IF 0 THEN PRINT "never"
`
	out := mustRun(t, src)
	if out != "big\nnot huge\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestInputUsesQueuedAnswers(t *testing.T) {
	out := mustRun(t, "INPUT X\nPRINT X * 2\n", " 21 ")
	if out != "Enter X: 42\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestInputRejectsText(t *testing.T) {
	out, err := gobasic.Run("INPUT X\nPRINT X\n", "abc")
	if !errors.Is(err, bruntime.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if out != "Enter X: " {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCallStatementStoresIntoFunctionName(t *testing.T) {
	out := mustRun(t, "ABS(0 - 5)\nPRINT ABS\n")
	if out != "5\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestSemicolonSuppressesNewline(t *testing.T) {
	out := mustRun(t, "PRINT \"A\";\nPRINT \"B\", 1.5\n")
	if out != "AB 1.5\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestParseErrorIsReported(t *testing.T) {
	_, err := gobasic.Parse("LET X = 1\nLET = 5\n")
	if !errors.Is(err, parser.ErrSyntax) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	var perr *parser.Error
	if !errors.As(err, &perr) || perr.Line != 2 {
		t.Fatalf("expected error on source line 2, got %v", err)
	}
}

func TestTranspileProducesMainPackage(t *testing.T) {
	src, err := gobasic.Transpile("LET X = 5\nPRINT X\nEND\n")
	if err != nil {
		t.Fatalf("transpile failed: %v", err)
	}
	if !strings.Contains(src, "package main") || !strings.Contains(src, "func main() {") {
		t.Fatalf("generated source lacks a main function:\n%s", src)
	}
}

func TestTranspileRejectsMismatchedNext(t *testing.T) {
	_, err := gobasic.Transpile("FOR I = 1 TO 2\nNEXT J\n")
	if !errors.Is(err, compiler.ErrUnsupported) {
		t.Fatalf("expected unsupported construct, got %v", err)
	}
}
