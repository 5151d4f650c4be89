package bruntime

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

type ValueKind int

const (
	NumberKind ValueKind = iota
	StringKind
)

func (k ValueKind) String() string {
	if k == StringKind {
		return "string"
	}
	return "number"
}

// Value is the result of evaluating an expression. Strings can be printed
// and passed around but never stored in a variable.
type Value struct {
	kind ValueKind
	n    float64
	s    string
}

func Number(v float64) Value {
	return Value{kind: NumberKind, n: v}
}

func Str(v string) Value {
	return Value{kind: StringKind, s: v}
}

func Bool(b bool) Value {
	if b {
		return Number(1)
	}
	return Number(0)
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) Float64() float64 {
	return v.n
}

func (v Value) String() string {
	if v.kind == StringKind {
		return v.s
	}
	return FormatNumber(v.n)
}

// FormatNumber renders n the way PRINT shows it: the shortest decimal that
// round-trips, never in exponent form and without a trailing ".0".
func FormatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// ParseNumber reads an INPUT answer. Decimal and exponent forms are
// accepted, and so are "inf" and "nan". Hexadecimal floats are not. A value
// beyond float64 range reads as an infinity.
func ParseNumber(s string) (float64, bool) {
	if hasHexPrefix(s) {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}

func hasHexPrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
