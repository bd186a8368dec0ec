// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docconv CLI, which bundles the
// docx-to-pdf and pdf-to-docx conversions with journal and helper commands.
package main

import (
	"os"

	"github.com/pdiddy/docconv/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(cli.Execute(cli.NewRootCommand(cli.NewApp(), version), os.Stderr))
}
