package main

import (
	"errors"
	"testing"
)

func TestParseArgsDefaultsFromEnvironment(t *testing.T) {
	t.Setenv("BASIC_SOURCE", "prog.bs")
	t.Setenv("BASIC_OUTPUT", "prog")
	t.Setenv("BASIC_GO", "go1.25")
	cfg, err := parseArgs([]string{"basic"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.source != "prog.bs" || cfg.output != "prog" || cfg.goBinary != "go1.25" {
		t.Fatalf("environment defaults not applied: %+v", cfg)
	}
	if cfg.compile || cfg.emit || cfg.tui || cfg.force {
		t.Fatalf("unexpected mode flags: %+v", cfg)
	}
}

func TestParseArgsBuiltinDefaults(t *testing.T) {
	t.Setenv("BASIC_SOURCE", "")
	t.Setenv("BASIC_OUTPUT", "")
	t.Setenv("BASIC_GO", "")
	cfg, err := parseArgs([]string{"basic"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.source != "code.bs" || cfg.output != "code.exe" || cfg.goBinary != "go" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseArgsSeesEnvironmentChanges(t *testing.T) {
	t.Setenv("BASIC_OUTPUT", "first")
	t.Setenv("BASIC_TUI", "1")
	cfg, err := parseArgs([]string{"basic"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.output != "first" || !cfg.tui {
		t.Fatalf("first read: %+v", cfg)
	}

	t.Setenv("BASIC_OUTPUT", "second")
	t.Setenv("BASIC_TUI", "")
	cfg, err = parseArgs([]string{"basic"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.output != "second" || cfg.tui {
		t.Fatalf("stale environment after change: %+v", cfg)
	}
}

func TestParseArgsOptions(t *testing.T) {
	cfg, err := parseArgs([]string{"basic", "-c", "-f", "-o", "hello", "-g", "/usr/local/go/bin/go", "hello.bs"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !cfg.compile || !cfg.force {
		t.Fatalf("mode flags not set: %+v", cfg)
	}
	if cfg.output != "hello" || cfg.goBinary != "/usr/local/go/bin/go" || cfg.source != "hello.bs" {
		t.Fatalf("unexpected values: %+v", cfg)
	}
}

func TestParseArgsRejectsBadCombinations(t *testing.T) {
	if _, err := parseArgs([]string{"basic", "-t", "-S"}); err == nil {
		t.Fatalf("expected -t with -S to fail")
	}
	if _, err := parseArgs([]string{"basic", "a.bs", "b.bs"}); err == nil {
		t.Fatalf("expected two source files to fail")
	}
	if _, err := parseArgs([]string{"basic", "-x"}); err == nil {
		t.Fatalf("expected an unknown option to fail")
	}
	if _, err := parseArgs([]string{"basic", "-h"}); !errors.Is(err, errHelp) {
		t.Fatalf("expected help, got %v", err)
	}
}
