// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cli builds the cobra commands for the docx-to-pdf, pdf-to-docx,
// and docconv binaries.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/docconv/internal/config"
	"github.com/pdiddy/docconv/internal/container"
	"github.com/pdiddy/docconv/internal/convert"
	"github.com/pdiddy/docconv/internal/journal"
	"github.com/pdiddy/docconv/internal/logging"
	"github.com/pdiddy/docconv/pkg/types"
)

// ErrUsage is returned after a usage message has been printed.
var ErrUsage = errors.New("usage")

// BackendFactory builds the conversion backend selected by cfg.
type BackendFactory func(ctx context.Context, cfg types.Config) (convert.Backend, error)

// App carries state shared by all commands of one process.
type App struct {
	// NewBackend defaults to DefaultBackend.
	NewBackend BackendFactory

	configFile string
	verbose    bool

	cfg types.Config
	log *zap.Logger
}

// NewApp returns an App using the real engines.
func NewApp() *App {
	return &App{NewBackend: DefaultBackend}
}

// DefaultBackend builds the office or container backend.
func DefaultBackend(ctx context.Context, cfg types.Config) (convert.Backend, error) {
	switch cfg.Backend {
	case types.BackendOffice:
		b, err := convert.NewOfficeBackend(cfg.Office.Binary)
		if err != nil {
			return nil, err
		}
		return b, nil
	case types.BackendContainer:
		rt, err := container.NewRuntime(ctx, cfg.Container.Runtime)
		if err != nil {
			return nil, err
		}
		b, err := convert.NewContainerBackend(ctx, rt, cfg.Container.Image)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

// bindFlags registers the flags every root command carries.
func (a *App) bindFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./docconv.yaml or ~/.config/docconv/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup()
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if a.log != nil {
			_ = a.log.Sync()
		}
	}
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
}

func (a *App) setup() error {
	cfg, used, err := config.Load(config.New(a.configFile))
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log, a.verbose)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	if used != "" {
		a.log.Debug("using config file", zap.String("path", used))
	}
	return nil
}

// service builds a conversion service from the loaded config. The returned
// function releases the journal.
func (a *App) service(ctx context.Context) (*convert.Service, func(), error) {
	newBackend := a.NewBackend
	if newBackend == nil {
		newBackend = DefaultBackend
	}
	backend, err := newBackend(ctx, a.cfg)
	if err != nil {
		return nil, nil, err
	}

	opts := convert.Options{
		Pages:   convert.NewQPDFSelector(a.cfg.QPDF.Binary),
		Logger:  a.log,
		Timeout: a.cfg.Timeout,
	}
	release := func() {}
	if a.cfg.Journal.Path != "" {
		store, err := journal.Open(a.cfg.Journal.Path)
		if err != nil {
			return nil, nil, err
		}
		opts.Journal = store
		release = func() {
			if err := store.Close(); err != nil {
				a.log.Warn("closing journal", zap.Error(err))
			}
		}
	}
	return convert.NewService(backend, opts), release, nil
}

// convert runs one conversion and prints "success" on completion.
func (a *App) convert(cmd *cobra.Command, req convert.Request) error {
	svc, release, err := a.service(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	if err := svc.Convert(cmd.Context(), req); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "success")
	return nil
}

// twoPaths requires input and output path arguments. Extra arguments are
// ignored.
func twoPaths(argsUsage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			fmt.Fprintf(cmd.OutOrStdout(), "Usage: %s %s\n", cmd.CommandPath(), argsUsage)
			return ErrUsage
		}
		return nil
	}
}

// Execute runs cmd and returns the process exit status. Errors other than
// ErrUsage are printed to stderr. An interrupt cancels a running engine.
func Execute(cmd *cobra.Command, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, ErrUsage) {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}
