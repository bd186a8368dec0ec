// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestOSExecutor_Run(t *testing.T) {
	requireShell(t)

	tests := []struct {
		name       string
		script     string
		stdin      string
		wantOut    string
		wantErr    bool
		wantStderr string
	}{
		{
			name:    "pipes stdin to stdout",
			script:  "cat",
			stdin:   "document bytes",
			wantOut: "document bytes",
		},
		{
			name:       "failure carries stderr",
			script:     "echo 'broken input' >&2; exit 3",
			wantErr:    true,
			wantStderr: "broken input",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := OSExecutor{}.Run(context.Background(), "sh", []string{"-c", tt.script}, strings.NewReader(tt.stdin), &out, nil)
			if tt.wantErr {
				var engErr *Error
				require.ErrorAs(t, err, &engErr)
				assert.Equal(t, "sh", engErr.Command)
				assert.Equal(t, tt.wantStderr, engErr.Stderr)
				assert.Contains(t, err.Error(), tt.wantStderr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestOSExecutor_RunStderrOnSuccess(t *testing.T) {
	requireShell(t)

	var stdout, stderr bytes.Buffer
	err := OSExecutor{}.Run(context.Background(), "sh",
		[]string{"-c", "echo 'convert a.docx'; echo 'Error: source file could not be loaded' >&2"},
		nil, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "convert a.docx\n", stdout.String())
	assert.Equal(t, "Error: source file could not be loaded\n", stderr.String())
}

func TestOSExecutor_RunDeadline(t *testing.T) {
	requireShell(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := OSExecutor{}.Run(ctx, "sh", []string{"-c", "exec sleep 5"}, nil, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
}

type pathOnly map[string]bool

func (p pathOnly) LookPath(file string) (string, error) {
	if p[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (pathOnly) RunSilent(context.Context, string, ...string) error { return nil }

func (pathOnly) Run(context.Context, string, []string, io.Reader, io.Writer, io.Writer) error {
	return nil
}

func TestFindBinary(t *testing.T) {
	tests := []struct {
		name       string
		available  pathOnly
		candidates []string
		want       string
		wantErr    bool
	}{
		{
			name:       "first candidate wins",
			available:  pathOnly{"soffice": true, "libreoffice": true},
			candidates: []string{"soffice", "libreoffice"},
			want:       "/usr/bin/soffice",
		},
		{
			name:       "falls back to later candidate",
			available:  pathOnly{"libreoffice": true},
			candidates: []string{"soffice", "libreoffice"},
			want:       "/usr/bin/libreoffice",
		},
		{
			name:       "empty candidates are skipped",
			available:  pathOnly{"qpdf": true},
			candidates: []string{"", "qpdf"},
			want:       "/usr/bin/qpdf",
		},
		{
			name:       "nothing found",
			available:  pathOnly{},
			candidates: []string{"soffice", "libreoffice"},
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindBinary(tt.available, tt.candidates...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "soffice")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
