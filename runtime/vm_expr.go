package bruntime

import (
	"fmt"
	"math"

	"github.com/gosuda/gobasic/ast"
)

func (vm *VM) evalExpr(e ast.Expr) (Value, error) {
	switch ex := e.(type) {
	case ast.NumberLit:
		return Number(ex.Value), nil
	case ast.StringLit:
		return Str(ex.Value), nil
	case ast.VarRef:
		n, ok := vm.vars[ex.Name]
		if !ok {
			return Value{}, undefinedVariable(ex.Name)
		}
		return Number(n), nil
	case ast.BinaryExpr:
		left, err := vm.evalExpr(ex.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := vm.evalExpr(ex.Right)
		if err != nil {
			return Value{}, err
		}
		return evalBinary(ex.Op, left, right)
	case ast.CallExpr:
		return vm.callBuiltin(ex.Name, ex.Args)
	default:
		return Value{}, fmt.Errorf("unsupported expression %T", e)
	}
}

// EvalBinary applies op to two values. Only numbers are accepted; the six
// comparisons yield exactly 1 or 0.
func EvalBinary(op string, left, right Value) (Value, error) {
	return evalBinary(op, left, right)
}

func evalBinary(op string, left, right Value) (Value, error) {
	if left.Kind() != NumberKind || right.Kind() != NumberKind {
		return Value{}, typeMismatch(MsgInvalidOperation)
	}
	l, r := left.Float64(), right.Float64()
	switch op {
	case "+":
		return Number(l + r), nil
	case "-":
		return Number(l - r), nil
	case "*":
		return Number(l * r), nil
	case "/":
		if r == 0 {
			return Value{}, ErrDivisionByZero
		}
		return Number(l / r), nil
	case "^":
		return Number(math.Pow(l, r)), nil
	case "<":
		return Bool(l < r), nil
	case ">":
		return Bool(l > r), nil
	case "=":
		return Bool(l == r), nil
	case "<=":
		return Bool(l <= r), nil
	case ">=":
		return Bool(l >= r), nil
	case "<>":
		return Bool(l != r), nil
	default:
		return Value{}, typeMismatch(MsgInvalidOperation)
	}
}

var builtins = map[string]func(float64) (float64, error){
	"ABS": func(n float64) (float64, error) { return math.Abs(n), nil },
	"SQR": func(n float64) (float64, error) {
		if n < 0 {
			return 0, fmt.Errorf("%w: %s", ErrDomain, MsgNegativeSqrt)
		}
		return math.Sqrt(n), nil
	},
	"SIN": func(n float64) (float64, error) { return math.Sin(n), nil },
	"COS": func(n float64) (float64, error) { return math.Cos(n), nil },
	"TAN": func(n float64) (float64, error) { return math.Tan(n), nil },
	"INT": func(n float64) (float64, error) { return math.Floor(n), nil },
}

// IsBuiltin reports whether name is a function the interpreter knows.
func IsBuiltin(name string) bool {
	if name == "RND" {
		return true
	}
	_, ok := builtins[name]
	return ok
}

// callBuiltin evaluates only the first argument of a one-argument builtin;
// RND evaluates none of its arguments.
func (vm *VM) callBuiltin(name string, args []ast.Expr) (Value, error) {
	if name == "RND" {
		return Number(vm.rng.Float64()), nil
	}
	fn, ok := builtins[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	if len(args) == 0 {
		return Value{}, fmt.Errorf("%w: %s", ErrArgument, MissingArgumentDetail(name))
	}
	arg, err := vm.evalExpr(args[0])
	if err != nil {
		return Value{}, err
	}
	if arg.Kind() != NumberKind {
		return Value{}, typeMismatch(ArgumentTypeDetail(name))
	}
	n, err := fn(arg.Float64())
	if err != nil {
		return Value{}, err
	}
	return Number(n), nil
}
