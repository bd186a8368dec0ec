// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/pdiddy/docconv/pkg/types"
)

const (
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var directions = []types.Direction{types.DocxToPDF, types.PDFToDocx}

// DirectionFor picks the conversion direction from the input and output
// file extensions. When the input extension is not .docx or .pdf, the
// input content is sniffed instead.
func DirectionFor(input, output string) (types.Direction, error) {
	inExt := strings.ToLower(filepath.Ext(input))
	outExt := strings.ToLower(filepath.Ext(output))

	if inExt != ".docx" && inExt != ".pdf" {
		sniffed, err := sniffExt(input)
		if err != nil {
			return "", err
		}
		inExt = sniffed
	}

	for _, d := range directions {
		if inExt == d.SourceExt() && outExt == d.TargetExt() {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %s to %s", ErrUnsupported, displayExt(inExt), displayExt(outExt))
}

func sniffExt(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("detecting type of %s: %w", path, err)
	}
	switch {
	case mt.Is(mimePDF):
		return ".pdf", nil
	case mt.Is(mimeDocx):
		return ".docx", nil
	}
	return mt.Extension(), nil
}

func displayExt(ext string) string {
	if ext == "" {
		return "(none)"
	}
	return ext
}
