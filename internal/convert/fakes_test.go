// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/pdiddy/docconv/pkg/types"
)

// fakeBackend implements Backend for testing. It writes canned content to
// the output path or returns an error.
type fakeBackend struct {
	output string
	err    error

	gotDir   types.Direction
	gotInput string
	calls    int
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) Convert(_ context.Context, dir types.Direction, input, output string) error {
	f.calls++
	f.gotDir = dir
	f.gotInput = input
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(output, []byte(f.output), 0o644)
}

// fakeSelector copies input to output, recording the requested range.
type fakeSelector struct {
	err      error
	gotPages types.PageRange
}

func (f *fakeSelector) Select(_ context.Context, input string, pages types.PageRange, output string) error {
	f.gotPages = pages
	if f.err != nil {
		return f.err
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	return os.WriteFile(output, data, 0o644)
}

// memRecorder keeps journal records in memory.
type memRecorder struct {
	records []types.ConversionRecord
	err     error
}

func (m *memRecorder) Record(_ context.Context, rec types.ConversionRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

// fakeExecutor implements engine.Executor. Available binaries resolve on
// PATH; runFunc handles Run calls.
type fakeExecutor struct {
	available map[string]bool
	runFunc   func(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error

	gotName string
	gotArgs []string
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.available[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (f *fakeExecutor) RunSilent(_ context.Context, name string, args ...string) error {
	return nil
}

func (f *fakeExecutor) Run(_ context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	f.gotName = name
	f.gotArgs = args
	if f.runFunc != nil {
		return f.runFunc(name, args, stdin, stdout, stderr)
	}
	return nil
}

// writeFile creates a file with content and returns its path.
func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// argAfter returns the argument following flag, or "".
func argAfter(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func hasArgPrefix(args []string, prefix string) bool {
	for _, a := range args {
		if strings.HasPrefix(a, prefix) {
			return true
		}
	}
	return false
}
