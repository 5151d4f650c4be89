package gobasic

import (
	"github.com/gosuda/gobasic/ast"
	"github.com/gosuda/gobasic/compiler"
	"github.com/gosuda/gobasic/parser"
	bruntime "github.com/gosuda/gobasic/runtime"
)

// Load parses BASIC source and builds a VM ready to Run it.
func Load(src string) (*bruntime.VM, error) {
	program, err := parser.ParseSource(src)
	if err != nil {
		return nil, err
	}
	return bruntime.New(program), nil
}

// Parse only returns the AST program for tooling use.
func Parse(src string) (*ast.Program, error) {
	return parser.ParseSource(src)
}

// Transpile parses BASIC source and returns an equivalent Go program.
func Transpile(src string) (string, error) {
	program, err := parser.ParseSource(src)
	if err != nil {
		return "", err
	}
	return compiler.Compile(program)
}

// Run interprets src with the given INPUT answers and returns everything it
// printed. On a runtime error the text printed before the failure is
// returned together with the error. INPUT statements beyond the supplied
// answers read an empty line.
func Run(src string, inputs ...string) (string, error) {
	vm, err := Load(src)
	if err != nil {
		return "", err
	}
	vm.EnqueueInput(inputs...)
	vm.SetInputProvider(func(bruntime.InputRequest) (string, error) {
		return "", nil
	})
	out, err := vm.Run()
	return bruntime.Render(out), err
}
