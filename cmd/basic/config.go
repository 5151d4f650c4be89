package main

import (
	"errors"
	"fmt"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/xyproto/env/v2"
)

const usage = `usage: basic [-c] [-S] [-t] [-f] [-o output] [-g go] [file]

Runs a BASIC program with the interpreter, or compiles it to a native
executable through generated Go source.

options:
  -c         compile instead of interpreting
  -S         print the generated Go source and exit
  -t         run the interpreter in a terminal UI
  -f         rebuild even if the output is up to date
  -o output  executable to write (default $BASIC_OUTPUT or code.exe)
  -g go      Go toolchain binary (default $BASIC_GO or go)
  -h         show this help

file defaults to $BASIC_SOURCE or code.bs.
`

var errHelp = errors.New("help requested")

type appConfig struct {
	source   string
	output   string
	goBinary string
	compile  bool
	emit     bool
	tui      bool
	force    bool
}

// defaultConfig reads the BASIC_* variables. env caches the environment on
// first use, so it is reloaded here to see values set since then.
func defaultConfig() appConfig {
	env.Load()
	return appConfig{
		source:   env.Str("BASIC_SOURCE", "code.bs"),
		output:   env.Str("BASIC_OUTPUT", "code.exe"),
		goBinary: env.Str("BASIC_GO", "go"),
		tui:      env.Bool("BASIC_TUI"),
	}
}

// parseArgs reads the command line over the environment defaults. args
// includes the program name.
func parseArgs(args []string) (appConfig, error) {
	cfg := defaultConfig()
	opts, optind, err := getopt.Getopts(args, "cSthfo:g:")
	if err != nil {
		return cfg, err
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			cfg.compile = true
		case 'S':
			cfg.emit = true
		case 't':
			cfg.tui = true
		case 'f':
			cfg.force = true
		case 'o':
			cfg.output = opt.Value
		case 'g':
			cfg.goBinary = opt.Value
		case 'h':
			return cfg, errHelp
		}
	}
	rest := args[optind:]
	switch len(rest) {
	case 0:
	case 1:
		cfg.source = rest[0]
	default:
		return cfg, fmt.Errorf("expected at most one source file, got %d", len(rest))
	}
	if cfg.tui && (cfg.compile || cfg.emit) {
		return cfg, errors.New("-t cannot be combined with -c or -S")
	}
	return cfg, nil
}
