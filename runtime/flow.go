package bruntime

import (
	"fmt"

	"github.com/gosuda/gobasic/ast"
)

// enterLoop stores the start value and pushes the loop. The body always
// runs at least once; bounds are only checked by NEXT.
func (vm *VM) enterLoop(loop ast.ForLoop) (execResult, error) {
	start, err := vm.evalExpr(loop.Start)
	if err != nil {
		return execResult{}, err
	}
	end, err := vm.evalExpr(loop.End)
	if err != nil {
		return execResult{}, err
	}
	step, err := vm.evalExpr(loop.Step)
	if err != nil {
		return execResult{}, err
	}
	if start.Kind() != NumberKind || end.Kind() != NumberKind || step.Kind() != NumberKind {
		return execResult{}, typeMismatch(MsgLoopBounds)
	}
	vm.vars[loop.Var] = start.Float64()
	vm.loops.PushBack(loop)
	vm.resume.PushBack(vm.pc)
	return execResult{kind: resultNone}, nil
}

// nextIteration closes one pass of the innermost loop. Step and end are
// evaluated again on every pass, so they may depend on variables the body
// changed. Only the innermost loop is considered.
func (vm *VM) nextIteration(name string) (execResult, error) {
	if vm.loops.Empty() {
		return execResult{}, ErrNextWithoutFor
	}
	loop := vm.loops.Back().(ast.ForLoop)
	if loop.Var != name {
		return execResult{}, fmt.Errorf("%w: %s", ErrLoopMismatch, LoopMismatchDetail(name, loop.Var))
	}
	current, ok := vm.vars[name]
	if !ok {
		return execResult{}, undefinedVariable(name)
	}
	step, err := vm.evalNumber(loop.Step, MsgStep)
	if err != nil {
		return execResult{}, err
	}
	next := current + step
	end, err := vm.evalNumber(loop.End, MsgEnd)
	if err != nil {
		return execResult{}, err
	}
	if (step > 0 && next <= end) || (step < 0 && next >= end) {
		vm.vars[name] = next
		return execResult{kind: resultJump, index: vm.resume.Back().(int) + 1}, nil
	}
	vm.loops.PopBack()
	vm.resume.PopBack()
	return execResult{kind: resultNone}, nil
}

// LoopDepth reports how many FOR loops are active.
func (vm *VM) LoopDepth() int {
	return vm.loops.Len()
}

func (vm *VM) evalNumber(e ast.Expr, detail string) (float64, error) {
	v, err := vm.evalExpr(e)
	if err != nil {
		return 0, err
	}
	if v.Kind() != NumberKind {
		return 0, typeMismatch(detail)
	}
	return v.Float64(), nil
}
