// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine runs the external programs that perform document
// conversions and reports their failures with the program's own stderr.
package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Run waits for an engine's output pipes to close
// after the engine was killed. Office suites leave helper processes behind
// that hold stderr open.
const waitDelay = 5 * time.Second

// Executor abstracts command execution so backends can be tested without
// real engines installed.
type Executor interface {
	// LookPath resolves an executable name against PATH.
	LookPath(file string) (string, error)

	// RunSilent runs a command, discarding its output.
	RunSilent(ctx context.Context, name string, args ...string) error

	// Run runs a command with the given stdin, stdout and stderr. Any may be
	// nil. Stderr receives the engine's error output whether or not the
	// command succeeds. A non-nil error is an *Error carrying that output.
	Run(ctx context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error
}

// Error describes a failed engine invocation. Stderr is the engine's error
// output as written, trimmed of surrounding whitespace.
type Error struct {
	Command string
	Args    []string
	Stderr  string
	Err     error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Command, e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// OSExecutor is the production Executor backed by os/exec.
type OSExecutor struct{}

func (OSExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (OSExecutor) RunSilent(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

func (OSExecutor) Run(ctx context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var captured bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = &captured
	if stderr != nil {
		cmd.Stderr = io.MultiWriter(&captured, stderr)
	}
	cmd.WaitDelay = waitDelay
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w (%v)", ctxErr, err)
		}
		return &Error{
			Command: name,
			Args:    args,
			Stderr:  strings.TrimSpace(captured.String()),
			Err:     err,
		}
	}
	return nil
}

// Default is the executor used when none is injected.
var Default Executor = OSExecutor{}

// FindBinary returns the first candidate that resolves on PATH.
func FindBinary(e Executor, candidates ...string) (string, error) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if path, err := e.LookPath(c); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("none of %s found on PATH", strings.Join(candidates, ", "))
}
