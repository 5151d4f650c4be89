// Package toolchain turns generated Go source into an executable by running
// the Go toolchain on an intermediate file.
package toolchain

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
)

const stampSuffix = ".b3"

// Options controls a Build. Output is required; GoBinary defaults to "go"
// and Dir to the directory of Output.
type Options struct {
	Output   string
	GoBinary string
	Dir      string
	Force    bool
}

// Result describes a finished build. Skipped is set when the stamp next to
// the output matched and the toolchain was not run.
type Result struct {
	Output  string
	Digest  string
	Skipped bool
}

// BuildError reports a toolchain run that exited with a non-zero status.
// The intermediate file is left in place so it can be inspected.
type BuildError struct {
	Source string
	Status int
	Stderr string
}

func (e *BuildError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("go build %s: exit status %d", e.Source, e.Status)
	}
	return fmt.Sprintf("go build %s: exit status %d\n%s", e.Source, e.Status, msg)
}

// Digest identifies a build input: the generated source and the toolchain
// that compiles it.
func Digest(source, goBinary string) string {
	h := blake3.New()
	fmt.Fprintf(h, "%s\n", goBinary)
	h.Write([]byte(source))
	return hex.EncodeToString(h.Sum(nil))
}

// Build writes source to basic_<uuid>.go, runs "go build -o Output" on it
// and removes the file again on success. Unless opts.Force is set, a build
// whose digest matches the stamp of an existing output is skipped.
func Build(ctx context.Context, source string, opts Options) (Result, error) {
	if opts.Output == "" {
		return Result{}, errors.New("toolchain: no output path")
	}
	goBin := opts.GoBinary
	if goBin == "" {
		goBin = "go"
	}
	output, err := filepath.Abs(opts.Output)
	if err != nil {
		return Result{}, fmt.Errorf("resolve output path: %w", err)
	}
	dir := opts.Dir
	if dir == "" {
		dir = filepath.Dir(output)
	}
	res := Result{Output: output, Digest: Digest(source, goBin)}
	stamp := output + stampSuffix

	if !opts.Force && upToDate(output, stamp, res.Digest) {
		res.Skipped = true
		return res, nil
	}

	file := filepath.Join(dir, "basic_"+uuid.NewString()+".go")
	if err := os.WriteFile(file, []byte(source), 0o644); err != nil {
		return Result{}, fmt.Errorf("write intermediate source: %w", err)
	}

	var stderr bytes.Buffer
	// Run inside dir so the file is never outside the current module.
	cmd := exec.CommandContext(ctx, goBin, "build", "-o", output, filepath.Base(file))
	cmd.Dir = dir
	cmd.Stdout = &stderr
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{}, &BuildError{Source: file, Status: exitErr.ExitCode(), Stderr: stderr.String()}
		}
		os.Remove(file)
		return Result{}, fmt.Errorf("run %s: %w", goBin, err)
	}

	if err := os.Remove(file); err != nil {
		return Result{}, fmt.Errorf("remove intermediate source: %w", err)
	}
	if err := os.WriteFile(stamp, []byte(res.Digest+"\n"), 0o644); err != nil {
		return Result{}, fmt.Errorf("write build stamp: %w", err)
	}
	return res, nil
}

func upToDate(output, stamp, digest string) bool {
	if _, err := os.Stat(output); err != nil {
		return false
	}
	data, err := os.ReadFile(stamp)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == digest
}
