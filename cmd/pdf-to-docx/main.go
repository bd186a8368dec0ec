// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Command pdf-to-docx converts a whole PDF to a Word document.
//
//	pdf-to-docx input.pdf output.docx
package main

import (
	"os"

	"github.com/pdiddy/docconv/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewPDFToDocxCommand(cli.NewApp()), os.Stderr))
}
