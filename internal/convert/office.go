// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/docconv/internal/engine"
	"github.com/pdiddy/docconv/pkg/types"
)

// officeFilters maps each direction to the soffice arguments selecting the
// import and export filters.
var officeFilters = map[types.Direction][]string{
	types.DocxToPDF: {"--convert-to", "pdf"},
	types.PDFToDocx: {"--infilter=writer_pdf_import", "--convert-to", "docx:MS Word 2007 XML"},
}

// OfficeBackend converts documents with a headless LibreOffice.
type OfficeBackend struct {
	bin  string
	exec engine.Executor
}

// NewOfficeBackend locates the LibreOffice binary. An empty binary searches
// PATH for soffice, then libreoffice.
func NewOfficeBackend(binary string) (*OfficeBackend, error) {
	return newOfficeBackend(binary, engine.Default)
}

func newOfficeBackend(binary string, exec engine.Executor) (*OfficeBackend, error) {
	candidates := []string{"soffice", "libreoffice"}
	if binary != "" {
		candidates = []string{binary}
	}
	bin, err := engine.FindBinary(exec, candidates...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineNotFound, err)
	}
	return &OfficeBackend{bin: bin, exec: exec}, nil
}

func (o *OfficeBackend) Name() string { return string(types.BackendOffice) }

// Convert runs soffice with a throwaway user profile so concurrent runs do
// not fight over the profile lock, then moves the produced file to output.
func (o *OfficeBackend) Convert(ctx context.Context, dir types.Direction, input, output string) error {
	filter, ok := officeFilters[dir]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupported, dir)
	}

	absInput, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", input, err)
	}

	outDir, err := stagingDir(output)
	if err != nil {
		return err
	}
	defer os.RemoveAll(outDir)

	profile, err := os.MkdirTemp("", "docconv-profile-")
	if err != nil {
		return fmt.Errorf("creating office profile: %w", err)
	}
	defer os.RemoveAll(profile)

	args := []string{
		"--headless", "--norestore", "--nologo", "--nolockcheck",
		"-env:UserInstallation=" + fileURL(profile),
	}
	args = append(args, filter...)
	args = append(args, "--outdir", outDir, absInput)

	var stdout, stderr bytes.Buffer
	if err := o.exec.Run(ctx, o.bin, args, nil, &stdout, &stderr); err != nil {
		return fmt.Errorf("converting %s to %s: %w", input, dir.TargetFormat(), err)
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	produced := filepath.Join(outDir, base+dir.TargetExt())
	if err := placeOutput(produced, output, engineMessages(stderr.String(), stdout.String())); err != nil {
		return fmt.Errorf("converting %s to %s: %w", input, dir.TargetFormat(), err)
	}
	return nil
}

// engineMessages joins what soffice printed, stderr first. soffice exits 0
// on load failures and only reports them there.
func engineMessages(streams ...string) string {
	var msgs []string
	for _, s := range streams {
		if s = strings.TrimSpace(s); s != "" {
			msgs = append(msgs, s)
		}
	}
	return strings.Join(msgs, "; ")
}

func fileURL(path string) string {
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}
