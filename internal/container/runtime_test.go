// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package container

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docconv/internal/engine"
)

type ctxKey struct{}

// fakeExec answers LookPath from onPath and RunSilent from okCmds, keyed
// by the joined command line. It records every command and context it saw.
type fakeExec struct {
	onPath map[string]bool
	okCmds map[string]bool
	run    func(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error

	cmds []string
	ctxs []context.Context
}

func (f *fakeExec) LookPath(file string) (string, error) {
	if f.onPath[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (f *fakeExec) RunSilent(ctx context.Context, name string, args ...string) error {
	key := strings.Join(append([]string{name}, args...), " ")
	f.cmds = append(f.cmds, key)
	f.ctxs = append(f.ctxs, ctx)
	if f.okCmds[key] {
		return nil
	}
	return errors.New("exit status 1")
}

func (f *fakeExec) Run(ctx context.Context, name string, args []string, stdin io.Reader, stdout, _ io.Writer) error {
	f.cmds = append(f.cmds, strings.Join(append([]string{name}, args...), " "))
	f.ctxs = append(f.ctxs, ctx)
	if f.run != nil {
		return f.run(ctx, name, args, stdin, stdout)
	}
	return nil
}

func installed(bins ...string) *fakeExec {
	f := &fakeExec{onPath: map[string]bool{}, okCmds: map[string]bool{}}
	for _, b := range bins {
		f.onPath[b] = true
		f.okCmds[b+" info"] = true
	}
	return f
}

func TestDetectRuntime(t *testing.T) {
	brokenDocker := installed("podman")
	brokenDocker.onPath["docker"] = true

	tests := []struct {
		name     string
		exec     *fakeExec
		wantName string
		wantCmds []string
	}{
		{name: "docker preferred", exec: installed("docker", "podman"), wantName: "docker", wantCmds: []string{"docker info"}},
		{name: "podman when docker missing", exec: installed("podman"), wantName: "podman", wantCmds: []string{"podman info"}},
		{name: "podman when docker info fails", exec: brokenDocker, wantName: "podman", wantCmds: []string{"docker info", "podman info"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := detectRuntime(context.Background(), tt.exec)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, rt.Name())
			assert.Equal(t, tt.wantCmds, tt.exec.cmds)
		})
	}

	t.Run("none available", func(t *testing.T) {
		_, err := detectRuntime(context.Background(), installed())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no container runtime available")
	})
}

func TestImageExists(t *testing.T) {
	const image = "docconv-office:latest"
	tests := []struct {
		name    string
		mkRT    func(engine.Executor) *runtime
		wantCmd string
	}{
		{name: "docker", mkRT: newDockerRuntime, wantCmd: "docker image inspect " + image},
		{name: "podman", mkRT: newPodmanRuntime, wantCmd: "podman image exists " + image},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeExec{okCmds: map[string]bool{tt.wantCmd: true}}
			require.NoError(t, tt.mkRT(f).ImageExists(context.Background(), image))
			assert.Equal(t, []string{tt.wantCmd}, f.cmds)

			err := tt.mkRT(&fakeExec{}).ImageExists(context.Background(), image)
			require.Error(t, err)
			assert.Contains(t, err.Error(), image)
		})
	}
}

func TestRun(t *testing.T) {
	t.Run("pipes stdin to stdout without network", func(t *testing.T) {
		f := &fakeExec{run: func(_ context.Context, _ string, _ []string, stdin io.Reader, stdout io.Writer) error {
			_, err := io.Copy(stdout, stdin)
			return err
		}}
		var out bytes.Buffer
		err := newPodmanRuntime(f).Run(context.Background(), "docconv-office:latest", []string{"pdf"}, strings.NewReader("docx bytes"), &out)
		require.NoError(t, err)
		assert.Equal(t, "docx bytes", out.String())
		assert.Equal(t, []string{"podman run --rm -i --network=none docconv-office:latest pdf"}, f.cmds)
	})

	t.Run("context reaches the executor", func(t *testing.T) {
		f := &fakeExec{}
		ctx := context.WithValue(context.Background(), ctxKey{}, "conversion")
		require.NoError(t, newDockerRuntime(f).Run(ctx, "img", nil, strings.NewReader(""), io.Discard))
		require.Len(t, f.ctxs, 1)
		assert.Equal(t, "conversion", f.ctxs[0].Value(ctxKey{}))
	})

	t.Run("failure wraps executor error", func(t *testing.T) {
		engErr := errors.New("container exited with code 1")
		f := &fakeExec{run: func(context.Context, string, []string, io.Reader, io.Writer) error { return engErr }}
		err := newDockerRuntime(f).Run(context.Background(), "img", []string{"docx"}, strings.NewReader(""), io.Discard)
		require.ErrorIs(t, err, engErr)
		assert.Contains(t, err.Error(), "running docker container img")
	})

	t.Run("cancelled context is passed through", func(t *testing.T) {
		f := &fakeExec{run: func(ctx context.Context, _ string, _ []string, _ io.Reader, _ io.Writer) error { return ctx.Err() }}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := newDockerRuntime(f).Run(ctx, "img", nil, strings.NewReader(""), io.Discard)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewRuntime(t *testing.T) {
	tests := []struct {
		name     string
		runtime  string
		exec     *fakeExec
		wantName string
		wantErr  string
	}{
		{name: "empty name detects", runtime: "", exec: installed("docker", "podman"), wantName: "docker"},
		{name: "forced podman", runtime: "podman", exec: installed("docker", "podman"), wantName: "podman"},
		{name: "forced podman unavailable", runtime: "podman", exec: installed("docker"), wantErr: "not found or not operational"},
		{name: "unknown runtime", runtime: "lxc", exec: installed("docker"), wantErr: "unknown container runtime"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := newRuntime(context.Background(), tt.runtime, tt.exec)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, rt.Name())
		})
	}
}
