package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/gosuda/gobasic"
	bruntime "github.com/gosuda/gobasic/runtime"
	"github.com/gosuda/gobasic/toolchain"
)

var statusColor = color.New(color.FgGreen)

func loadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load source: %w", err)
	}
	return string(b), nil
}

// runPlain interprets the program on the current terminal. INPUT reads
// standard input.
func runPlain(cfg appConfig) error {
	src, err := loadSource(cfg.source)
	if err != nil {
		return err
	}
	vm, err := gobasic.Load(src)
	if err != nil {
		return fmt.Errorf("parse %s: %w", cfg.source, err)
	}
	vm.SetOutputHook(func(out bruntime.Output) {
		if out.NewLine {
			fmt.Println(out.Text)
		} else {
			fmt.Print(out.Text)
		}
	})
	_, err = vm.Run()
	return err
}

// runCompile translates the program to Go and either prints the source
// (-S) or builds it into cfg.output.
func runCompile(cfg appConfig) error {
	src, err := loadSource(cfg.source)
	if err != nil {
		return err
	}
	goSrc, err := gobasic.Transpile(src)
	if err != nil {
		return fmt.Errorf("compile %s: %w", cfg.source, err)
	}
	if cfg.emit {
		_, err := fmt.Print(goSrc)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, err := toolchain.Build(ctx, goSrc, toolchain.Options{
		Output:   cfg.output,
		GoBinary: cfg.goBinary,
		Force:    cfg.force,
	})
	if err != nil {
		return err
	}
	if res.Skipped {
		statusColor.Fprintf(os.Stderr, "%s is up to date\n", res.Output)
		return nil
	}
	statusColor.Fprintf(os.Stderr, "built %s\n", res.Output)
	return nil
}
