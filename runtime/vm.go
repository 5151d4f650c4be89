package bruntime

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/edwingeng/deque"
	"github.com/gosuda/gobasic/ast"
)

// Output is one fragment of printed text. NewLine marks fragments that
// end the current output line.
type Output struct {
	Text    string
	NewLine bool
}

// VM executes a parsed program line by line. A VM is not safe for
// concurrent use; give every concurrent run its own instance.
type VM struct {
	program    *ast.Program
	vars       map[string]float64
	loops      deque.Deque // ast.ForLoop, innermost at the back
	resume     deque.Deque // int, index of the FOR line for each entry in loops
	pc         int
	running    bool
	rng        *rand.Rand
	outputs    []Output
	outputHook func(Output)
	input      inputState
}

type resultKind int

const (
	resultNone resultKind = iota
	resultJump
	resultEnd
)

type execResult struct {
	kind  resultKind
	index int
}

func New(program *ast.Program) *VM {
	if program == nil {
		program = &ast.Program{}
	}
	return &VM{
		program: program,
		vars:    map[string]float64{},
		loops:   deque.NewDeque(),
		resume:  deque.NewDeque(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (vm *VM) Program() *ast.Program {
	return vm.program
}

// SetOutputHook registers fn to receive every fragment as soon as it is
// printed, in addition to the slice Run returns.
func (vm *VM) SetOutputHook(fn func(Output)) {
	vm.outputHook = fn
}

// SetSeed makes RND deterministic.
func (vm *VM) SetSeed(seed int64) {
	vm.rng = rand.New(rand.NewSource(seed))
}

// Run executes the program from its first line with a fresh variable store
// and empty loop stacks. It stops at END, after the last line, or at the
// first runtime error, which is returned as a *LineError together with the
// output produced so far.
func (vm *VM) Run() ([]Output, error) {
	vm.vars = map[string]float64{}
	vm.loops = deque.NewDeque()
	vm.resume = deque.NewDeque()
	vm.outputs = vm.outputs[:0]
	vm.pc = 0
	vm.running = true

	lines := vm.program.Lines
	for vm.running && vm.pc < len(lines) {
		line := lines[vm.pc]
		res, err := vm.runStatement(line.Stmt)
		if err != nil {
			vm.running = false
			return vm.snapshotOutputs(), &LineError{Line: line.Index, Err: err}
		}
		switch res.kind {
		case resultJump:
			vm.pc = res.index
			continue
		case resultEnd:
			vm.running = false
		}
		vm.pc++
	}
	vm.running = false
	return vm.snapshotOutputs(), nil
}

// Variables returns a copy of the variable store.
func (vm *VM) Variables() map[string]float64 {
	cp := make(map[string]float64, len(vm.vars))
	for k, v := range vm.vars {
		cp[k] = v
	}
	return cp
}

func (vm *VM) snapshotOutputs() []Output {
	return append([]Output(nil), vm.outputs...)
}

func (vm *VM) emit(out Output) {
	vm.outputs = append(vm.outputs, out)
	if vm.outputHook != nil {
		vm.outputHook(out)
	}
}

func (vm *VM) runStatement(stmt ast.Statement) (execResult, error) {
	switch s := stmt.(type) {
	case ast.PrintStmt:
		var b strings.Builder
		for i, expr := range s.Exprs {
			if i > 0 {
				b.WriteByte(' ')
			}
			v, err := vm.evalExpr(expr)
			if err != nil {
				if b.Len() > 0 {
					vm.emit(Output{Text: b.String()})
				}
				return execResult{}, err
			}
			b.WriteString(v.String())
		}
		vm.emit(Output{Text: b.String(), NewLine: !s.Semicolon})
		return execResult{kind: resultNone}, nil
	case ast.LetStmt:
		v, err := vm.evalExpr(s.Expr)
		if err != nil {
			return execResult{}, err
		}
		if v.Kind() != NumberKind {
			return execResult{}, typeMismatch(MsgStoreString)
		}
		vm.vars[s.Var] = v.Float64()
		return execResult{kind: resultNone}, nil
	case ast.IfStmt:
		cond, err := vm.evalExpr(s.Cond)
		if err != nil {
			return execResult{}, err
		}
		if cond.Kind() != NumberKind {
			return execResult{}, typeMismatch(MsgCondition)
		}
		if cond.Float64() != 0 {
			return vm.runStatement(s.Then)
		}
		if s.Else != nil {
			return vm.runStatement(s.Else)
		}
		return execResult{kind: resultNone}, nil
	case ast.InputStmt:
		req := InputRequest{Variable: s.Var, Prompt: fmt.Sprintf("Enter %s: ", s.Var)}
		vm.emit(Output{Text: req.Prompt})
		n, err := vm.readNumber(req)
		if err != nil {
			return execResult{}, err
		}
		vm.vars[s.Var] = n
		return execResult{kind: resultNone}, nil
	case ast.ForStmt:
		return vm.enterLoop(s.Loop)
	case ast.NextStmt:
		return vm.nextIteration(s.Var)
	case ast.EndStmt:
		return execResult{kind: resultEnd}, nil
	case ast.GotoStmt:
		return execResult{}, fmt.Errorf("%w: GOTO", ErrNotImplemented)
	case ast.RemStmt:
		return execResult{}, fmt.Errorf("%w: REM", ErrNotImplemented)
	default:
		return execResult{}, fmt.Errorf("%w: %T", ErrNotImplemented, stmt)
	}
}

// Render joins output fragments into the text a terminal would show.
func Render(outputs []Output) string {
	var b strings.Builder
	for _, out := range outputs {
		b.WriteString(out.Text)
		if out.NewLine {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
