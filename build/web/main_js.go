//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"syscall/js"

	"github.com/gosuda/gobasic"
	bruntime "github.com/gosuda/gobasic/runtime"
)

type runResult struct {
	Outputs []bruntime.Output `json:"outputs"`
	Error   string            `json:"error,omitempty"`
}

type inputRequestPayload struct {
	Variable string `json:"variable"`
	Prompt   string `json:"prompt"`
}

const abortSentinel = "__GOBASIC_ABORT__"

// inputPrompt asks the page for an INPUT line through basicInputNext. A
// missing callback or an undefined answer reads as an empty line.
func inputPrompt(req bruntime.InputRequest) (string, error) {
	fn := js.Global().Get("basicInputNext")
	if fn.Type() != js.TypeFunction {
		return "", nil
	}
	b, _ := json.Marshal(inputRequestPayload{Variable: req.Variable, Prompt: req.Prompt})
	v := fn.Invoke(string(b))
	if v.IsUndefined() || v.IsNull() {
		return "", nil
	}
	out := strings.TrimSpace(v.String())
	if out == abortSentinel {
		return "", fmt.Errorf("input queue is empty for %s (add input and run again)", req.Variable)
	}
	return out, nil
}

func runProgram(this js.Value, args []js.Value) any {
	result := runResult{Outputs: nil}
	if len(args) < 1 {
		result.Error = "basicRun requires program source"
		b, _ := json.Marshal(result)
		return string(b)
	}

	var queued []string
	if len(args) > 1 {
		if strings.TrimSpace(args[1].String()) != "" {
			_ = json.Unmarshal([]byte(args[1].String()), &queued)
		}
	}

	vm, err := gobasic.Load(args[0].String())
	if err != nil {
		result.Error = fmt.Sprintf("parse: %v", err)
		b, _ := json.Marshal(result)
		return string(b)
	}
	vm.EnqueueInput(queued...)
	vm.SetInputProvider(inputPrompt)

	out, err := vm.Run()
	result.Outputs = out
	if err != nil {
		result.Error = fmt.Sprintf("runtime: %v", err)
	}

	b, _ := json.Marshal(result)
	return string(b)
}

func transpile(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf(map[string]any{"error": "basicTranspile requires program source"})
	}
	src, err := gobasic.Transpile(args[0].String())
	if err != nil {
		return js.ValueOf(map[string]any{"error": err.Error()})
	}
	return js.ValueOf(map[string]any{"source": src})
}

func main() {
	js.Global().Set("basicRun", js.FuncOf(runProgram))
	js.Global().Set("basicTranspile", js.FuncOf(transpile))
	select {}
}
