// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Command docx-to-pdf converts a Word document to PDF.
//
//	docx-to-pdf input.docx output.pdf
package main

import (
	"os"

	"github.com/pdiddy/docconv/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewDocxToPDFCommand(cli.NewApp()), os.Stderr))
}
