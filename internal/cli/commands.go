// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docconv/internal/convert"
	"github.com/pdiddy/docconv/internal/journal"
	"github.com/pdiddy/docconv/pkg/types"
)

// fullDocument is the page range pdf-to-docx always converts.
var fullDocument = types.PageRange{}

func newDocxToPDFCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "docx-to-pdf input.docx output.pdf",
		Short: "Convert a Word document to PDF",
		Args:  twoPaths("input.docx output.pdf"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd, convert.Request{
				Direction: types.DocxToPDF,
				Input:     args[0],
				Output:    args[1],
			})
		},
	}
}

func newPDFToDocxCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pdf-to-docx input.pdf output.docx",
		Short: "Convert a PDF to a Word document",
		Long: `Convert a PDF to a Word document. The whole document is converted;
pages cannot be selected from the command line.`,
		Args: twoPaths("input.pdf output.docx"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd, convert.Request{
				Direction: types.PDFToDocx,
				Input:     args[0],
				Output:    args[1],
				Pages:     fullDocument,
			})
		},
	}
}

func newConvertCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "convert input output",
		Short: "Convert between docx and PDF, choosing the direction from the file types",
		Long: `Convert picks the conversion from the input and output extensions:
.docx to .pdf, or .pdf to .docx. An input without a recognized extension is
identified by its content. Other combinations are rejected.`,
		Args: twoPaths("input output"),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := convert.DirectionFor(args[0], args[1])
			if err != nil {
				return err
			}
			return a.convert(cmd, convert.Request{
				Direction: dir,
				Input:     args[0],
				Output:    args[1],
				Pages:     fullDocument,
			})
		},
	}
}

func newHistoryCmd(a *App) *cobra.Command {
	var (
		limit  int
		format string
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent conversions from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Journal.Path == "" {
				return fmt.Errorf("journal disabled: set journal.path in the config or DOCCONV_JOURNAL_PATH")
			}
			store, err := journal.Open(a.cfg.Journal.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			switch format {
			case "table":
				return journal.WriteTable(cmd.OutOrStdout(), records)
			case "yaml":
				return journal.WriteYAML(cmd.OutOrStdout(), records)
			}
			return fmt.Errorf("unknown format %q: want table or yaml", format)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", journal.DefaultLimit, "maximum number of records")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table or yaml")
	return cmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of docconv",
		// Overrides the root hook: version needs no config or logger.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docconv %s\n", version)
		},
	}
}

// NewRootCommand returns the docconv command with all subcommands.
func NewRootCommand(a *App, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "docconv",
		Short: "Convert documents between docx and PDF",
		Long: `docconv converts documents between Word (.docx) and PDF by driving an
external engine: a headless LibreOffice, or a converter image run with docker
or podman. docconv itself does not parse or render documents.`,
		Version: version,
	}
	a.bindFlags(root)
	root.AddCommand(
		newDocxToPDFCmd(a),
		newPDFToDocxCmd(a),
		newConvertCmd(a),
		newHistoryCmd(a),
		newVersionCmd(version),
	)
	return root
}

// NewDocxToPDFCommand returns the standalone docx-to-pdf command.
func NewDocxToPDFCommand(a *App) *cobra.Command {
	cmd := newDocxToPDFCmd(a)
	a.bindFlags(cmd)
	return cmd
}

// NewPDFToDocxCommand returns the standalone pdf-to-docx command.
func NewPDFToDocxCommand(a *App) *cobra.Command {
	cmd := newPDFToDocxCmd(a)
	a.bindFlags(cmd)
	return cmd
}
