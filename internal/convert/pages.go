// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/pdiddy/docconv/internal/engine"
	"github.com/pdiddy/docconv/pkg/types"
)

// qpdfWarningExit is qpdf's exit status for "succeeded with warnings".
const qpdfWarningExit = 3

// QPDFSelector extracts page ranges with qpdf.
type QPDFSelector struct {
	bin  string
	exec engine.Executor
}

// NewQPDFSelector returns a selector running binary (default "qpdf").
func NewQPDFSelector(binary string) *QPDFSelector {
	if binary == "" {
		binary = "qpdf"
	}
	return &QPDFSelector{bin: binary, exec: engine.Default}
}

func (q *QPDFSelector) Select(ctx context.Context, input string, pages types.PageRange, output string) error {
	args := []string{"--empty", "--pages", input, qpdfRange(pages), "--", output}
	err := q.exec.Run(ctx, q.bin, args, nil, nil, nil)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == qpdfWarningExit {
		return nil
	}
	return err
}

// qpdfRange renders pages in qpdf's 1-based inclusive syntax; "z" is the
// last page.
func qpdfRange(r types.PageRange) string {
	if r.End == 0 {
		return fmt.Sprintf("%d-z", r.Start+1)
	}
	return fmt.Sprintf("%d-%d", r.Start+1, r.End)
}
