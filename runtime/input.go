package bruntime

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// InputRequest describes an INPUT statement waiting for a line of text.
// Prompt has already been emitted as output when the request is made.
type InputRequest struct {
	Variable string
	Prompt   string
}

type inputState struct {
	queue    []string
	provider func(InputRequest) (string, error)
	reader   *bufio.Reader
}

// EnqueueInput queues answers for upcoming INPUT statements. Queued values
// are consumed before the input provider is asked.
func (vm *VM) EnqueueInput(values ...string) {
	vm.input.queue = append(vm.input.queue, values...)
}

// SetInputProvider installs fn as the source of INPUT lines once the queue
// is empty. Without a provider the VM reads standard input.
func (vm *VM) SetInputProvider(fn func(InputRequest) (string, error)) {
	vm.input.provider = fn
}

// SetInputReader makes the VM read INPUT lines from r when no provider is
// installed.
func (vm *VM) SetInputReader(r io.Reader) {
	vm.input.reader = bufio.NewReader(r)
}

func (vm *VM) readLine(req InputRequest) (string, error) {
	if len(vm.input.queue) > 0 {
		line := vm.input.queue[0]
		vm.input.queue = vm.input.queue[1:]
		return line, nil
	}
	if vm.input.provider != nil {
		return vm.input.provider(req)
	}
	if vm.input.reader == nil {
		vm.input.reader = bufio.NewReader(os.Stdin)
	}
	line, err := vm.input.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

// readNumber blocks for one line and parses it. A line that is not a
// number fails the run; there is no second prompt.
func (vm *VM) readNumber(req InputRequest) (float64, error) {
	line, err := vm.readLine(req)
	if err != nil {
		return 0, err
	}
	text := strings.TrimSpace(line)
	n, ok := ParseNumber(text)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, text)
	}
	return n, nil
}
