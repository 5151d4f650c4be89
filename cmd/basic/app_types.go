package main

import (
	tea "github.com/charmbracelet/bubbletea"
	bruntime "github.com/gosuda/gobasic/runtime"
)

type vmStartedMsg struct {
	events <-chan tea.Msg
}

type vmOutputMsg struct {
	out bruntime.Output
}

type vmDoneMsg struct {
	err error
}

type vmInputResp struct {
	value    string
	canceled bool
}

type vmPromptMsg struct {
	req  bruntime.InputRequest
	resp chan vmInputResp
}

type vmPollMsg struct{}

type pendingInput struct {
	req  bruntime.InputRequest
	resp chan vmInputResp
}
