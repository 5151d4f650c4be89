package bruntime

import (
	"errors"
	"fmt"
)

// Runtime error categories. Every error returned by VM.Run is a *LineError
// whose chain contains exactly one of these.
var (
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrDomain            = errors.New("domain error")
	ErrInvalidInput      = errors.New("invalid number input")
	ErrLoopMismatch      = errors.New("loop variable mismatch")
	ErrNextWithoutFor    = errors.New("NEXT without FOR")
	ErrUnknownFunction   = errors.New("unknown function")
	ErrArgument          = errors.New("missing argument")
	ErrNotImplemented    = errors.New("statement not implemented")
)

// Detail messages shared with the Go code generator so that a compiled
// program fails with the same text as the interpreter.
const (
	MsgInvalidOperation = "invalid operation"
	MsgStoreString      = "can only store numbers in variables"
	MsgCondition        = "condition must evaluate to a number"
	MsgLoopBounds       = "loop bounds must be numbers"
	MsgStep             = "step must be a number"
	MsgEnd              = "end must be a number"
	MsgNegativeSqrt     = "cannot take square root of negative number"
)

// LineError tags a runtime failure with the index of the line that was
// executing when it happened.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("error at line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func undefinedVariable(name string) error {
	return fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
}

func typeMismatch(detail string) error {
	return fmt.Errorf("%w: %s", ErrTypeMismatch, detail)
}

// ArgumentTypeDetail is the type-mismatch detail for a builtin called with
// a string argument.
func ArgumentTypeDetail(fn string) string {
	return fn + " requires a number argument"
}

// MissingArgumentDetail is the detail for a builtin called without its
// argument.
func MissingArgumentDetail(fn string) string {
	return fn + " requires 1 argument"
}

// LoopMismatchDetail describes a NEXT whose variable differs from the
// innermost active FOR.
func LoopMismatchDetail(next, loop string) string {
	return fmt.Sprintf("NEXT %s doesn't match FOR %s", next, loop)
}
