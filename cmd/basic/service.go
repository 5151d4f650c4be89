package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gosuda/gobasic"
	bruntime "github.com/gosuda/gobasic/runtime"
)

var errInputCanceled = errors.New("input canceled")

// runVM runs the program on its own goroutine and reports everything it
// does as messages on events. INPUT blocks until the UI answers on the
// response channel of the prompt message.
func runVM(cfg appConfig, events chan<- tea.Msg) {
	defer close(events)
	src, err := loadSource(cfg.source)
	if err != nil {
		events <- vmDoneMsg{err: err}
		return
	}
	vm, err := gobasic.Load(src)
	if err != nil {
		events <- vmDoneMsg{err: fmt.Errorf("parse %s: %w", cfg.source, err)}
		return
	}

	vm.SetOutputHook(func(out bruntime.Output) {
		events <- vmOutputMsg{out: out}
	})
	vm.SetInputProvider(func(req bruntime.InputRequest) (string, error) {
		resp := make(chan vmInputResp, 1)
		events <- vmPromptMsg{req: req, resp: resp}
		r := <-resp
		if r.canceled {
			return "", errInputCanceled
		}
		return r.value, nil
	})

	_, err = vm.Run()
	events <- vmDoneMsg{err: err}
}
