package mobile

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gosuda/gobasic"
	"github.com/gosuda/gobasic/parser"
	bruntime "github.com/gosuda/gobasic/runtime"
)

type runResult struct {
	Outputs []bruntime.Output `json:"outputs"`
	Error   string            `json:"error,omitempty"`
}

type transpileResult struct {
	Source string `json:"source,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Run executes BASIC source and returns a JSON result. Output printed
// before a runtime error is kept.
// inputsJSON format: ["1","42", ...]; answers beyond the list read as empty
// lines.
func Run(source, inputsJSON string) string {
	result := runResult{Outputs: nil}

	var queued []string
	if strings.TrimSpace(inputsJSON) != "" {
		if err := json.Unmarshal([]byte(inputsJSON), &queued); err != nil {
			result.Error = fmt.Sprintf("invalid inputs json: %v", err)
			b, _ := json.Marshal(result)
			return string(b)
		}
	}

	vm, err := gobasic.Load(source)
	if err != nil {
		result.Error = fmt.Sprintf("parse: %v", err)
		b, _ := json.Marshal(result)
		return string(b)
	}
	vm.EnqueueInput(queued...)
	vm.SetInputProvider(func(bruntime.InputRequest) (string, error) {
		return "", nil
	})

	out, err := vm.Run()
	result.Outputs = out
	if err != nil {
		result.Error = fmt.Sprintf("runtime: %v", err)
	}

	b, _ := json.Marshal(result)
	return string(b)
}

// Transpile returns the Go translation of BASIC source as JSON.
func Transpile(source string) string {
	var result transpileResult
	src, err := gobasic.Transpile(source)
	switch {
	case errors.Is(err, parser.ErrSyntax):
		result.Error = fmt.Sprintf("parse: %v", err)
	case err != nil:
		result.Error = fmt.Sprintf("compile: %v", err)
	default:
		result.Source = src
	}
	b, _ := json.Marshal(result)
	return string(b)
}
