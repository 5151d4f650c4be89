package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
)

var errColor = color.New(color.FgRed, color.Bold)

func main() {
	cfg, err := parseArgs(os.Args)
	if errors.Is(err, errHelp) {
		fmt.Print(usage)
		return
	}
	if err != nil {
		errColor.Fprintf(os.Stderr, "basic: %v\n", err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	switch {
	case cfg.compile || cfg.emit:
		err = runCompile(cfg)
	case cfg.tui:
		p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "tui: %v\n", err)
			os.Exit(1)
		}
		return
	default:
		err = runPlain(cfg)
	}
	if err != nil {
		errColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
