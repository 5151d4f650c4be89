package compiler

import (
	"fmt"
	"strconv"
	"strings"

	bruntime "github.com/gosuda/gobasic/runtime"
)

const preludeHeader = `// Code generated by gobasic. DO NOT EDIT.

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

var vars = map[string]float64{}

var stdin = bufio.NewReader(os.Stdin)

`

const preludeHelpers = `
func fail(line int, msg string) {
	fmt.Fprintf(os.Stderr, "error at line %d: %s\n", line, msg)
	os.Exit(1)
}

// failAfter aborts once its trailing operands have been evaluated.
func failAfter(line int, msg string, _ ...float64) float64 {
	fail(line, msg)
	return 0
}

func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func load(line int, name string) float64 {
	v, ok := vars[name]
	if !ok {
		fail(line, msgUndefined+": "+name)
	}
	return v
}

func add(a, b float64) float64 { return a + b }
func sub(a, b float64) float64 { return a - b }
func mul(a, b float64) float64 { return a * b }

func div(line int, a, b float64) float64 {
	if b == 0 {
		fail(line, msgDivision)
	}
	return a / b
}

func rnd() float64 { return rand.Float64() }

func b2f(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}

func sqr(line int, n float64) float64 {
	if n < 0 {
		fail(line, msgSqrt)
	}
	return math.Sqrt(n)
}

func input(line int, name string) float64 {
	fmt.Print("Enter " + name + ": ")
	text, err := stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		fail(line, "failed to read input: "+err.Error())
	}
	text = strings.TrimSpace(text)
	n, err := strconv.ParseFloat(text, 64)
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		err = nil
	}
	digits := strings.ToLower(strings.TrimLeft(text, "+-"))
	if err != nil || strings.HasPrefix(digits, "0x") {
		fail(line, msgInput+": "+strconv.Quote(text))
	}
	return n
}

`

// writePrelude writes the package clause, imports and runtime helpers the
// generated main function relies on. Every import is used by a helper, so
// the output compiles whatever the program uses.
func writePrelude(b *strings.Builder) {
	b.WriteString(preludeHeader)
	b.WriteString("const (\n")
	fmt.Fprintf(b, "\tmsgUndefined = %s\n", strconv.Quote(bruntime.ErrUndefinedVariable.Error()))
	fmt.Fprintf(b, "\tmsgDivision  = %s\n", strconv.Quote(bruntime.ErrDivisionByZero.Error()))
	fmt.Fprintf(b, "\tmsgSqrt      = %s\n", strconv.Quote(bruntime.ErrDomain.Error()+": "+bruntime.MsgNegativeSqrt))
	fmt.Fprintf(b, "\tmsgInput     = %s\n", strconv.Quote(bruntime.ErrInvalidInput.Error()))
	b.WriteString(")\n")
	b.WriteString(preludeHelpers)
}
