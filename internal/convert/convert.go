// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert converts documents between docx and PDF by delegating to
// pluggable engine backends (LibreOffice, a container image). Page ranges on
// PDF input are cut out by a separate PageSelector before conversion.
package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/docconv/pkg/types"
)

// Backend performs a complete format conversion of the file at input,
// writing the result to output. Different engines (office, container)
// implement this interface.
type Backend interface {
	// Name identifies the backend in logs and journal records.
	Name() string

	Convert(ctx context.Context, dir types.Direction, input, output string) error
}

// PageSelector writes the selected pages of the PDF at input to a new PDF
// at output.
type PageSelector interface {
	Select(ctx context.Context, input string, pages types.PageRange, output string) error
}

// Recorder persists one record per conversion.
type Recorder interface {
	Record(ctx context.Context, rec types.ConversionRecord) error
}

// Request describes a single conversion.
type Request struct {
	Direction types.Direction
	Input     string
	Output    string

	// Pages applies to PDF input only. The zero value converts the whole
	// document.
	Pages types.PageRange
}

// Options configures a Service. All fields are optional.
type Options struct {
	Pages   PageSelector
	Journal Recorder
	Logger  *zap.Logger

	// Timeout bounds each conversion; zero means no deadline beyond the
	// caller's context.
	Timeout time.Duration
}

// Service runs conversions through a Backend.
type Service struct {
	backend Backend
	pages   PageSelector
	journal Recorder
	log     *zap.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewService returns a Service that converts with backend.
func NewService(backend Backend, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		backend: backend,
		pages:   opts.Pages,
		journal: opts.Journal,
		log:     log,
		timeout: opts.Timeout,
		now:     time.Now,
	}
}

// Convert performs the conversion described by req. Engine errors are
// returned wrapped but otherwise untouched; there is no retry.
func (s *Service) Convert(ctx context.Context, req Request) error {
	if !req.Direction.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupported, req.Direction)
	}
	if err := req.Pages.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPageRange, err)
	}
	if !req.Pages.Full() && req.Direction != types.PDFToDocx {
		return fmt.Errorf("%w: page ranges apply to PDF input only", ErrInvalidPageRange)
	}

	started := s.now()
	log := s.log.With(
		zap.String("direction", string(req.Direction)),
		zap.String("backend", s.backend.Name()),
		zap.String("input", req.Input),
		zap.String("output", req.Output),
	)
	log.Debug("conversion started", zap.Stringer("pages", req.Pages))

	err := s.run(ctx, req)
	elapsed := s.now().Sub(started)

	if err != nil {
		log.Error("conversion failed", zap.Duration("elapsed", elapsed), zap.Error(err))
	} else {
		log.Info("conversion finished", zap.Duration("elapsed", elapsed))
	}
	s.record(ctx, req, started, elapsed, err)
	return err
}

func (s *Service) run(ctx context.Context, req Request) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	input := req.Input
	if !req.Pages.Full() {
		trimmed, cleanup, err := s.selectPages(ctx, req.Input, req.Pages)
		if err != nil {
			return err
		}
		defer cleanup()
		input = trimmed
	}

	return s.backend.Convert(ctx, req.Direction, input, req.Output)
}

// selectPages cuts pages out of input into a temporary PDF named after the
// input, so engines that derive output names from the input still work.
func (s *Service) selectPages(ctx context.Context, input string, pages types.PageRange) (string, func(), error) {
	if s.pages == nil {
		return "", nil, fmt.Errorf("selecting pages %s: %w", pages, ErrNoPageSelector)
	}

	dir, err := os.MkdirTemp("", "docconv-pages-")
	if err != nil {
		return "", nil, fmt.Errorf("creating page selection directory: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }

	trimmed := filepath.Join(dir, filepath.Base(input))
	if err := s.pages.Select(ctx, input, pages, trimmed); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("selecting pages %s of %s: %w", pages, input, err)
	}
	s.log.Debug("pages selected", zap.String("input", input), zap.Stringer("pages", pages))
	return trimmed, cleanup, nil
}

func (s *Service) record(ctx context.Context, req Request, started time.Time, elapsed time.Duration, convErr error) {
	if s.journal == nil {
		return
	}
	rec := types.ConversionRecord{
		ID:        uuid.NewString(),
		Direction: req.Direction,
		Backend:   s.backend.Name(),
		Input:     req.Input,
		Output:    req.Output,
		Pages:     req.Pages.String(),
		StartedAt: started.UTC(),
		Duration:  elapsed,
		Status:    types.ConversionSucceeded,
	}
	if convErr != nil {
		rec.Status = types.ConversionFailed
		rec.Error = convErr.Error()
	}
	if err := s.journal.Record(context.WithoutCancel(ctx), rec); err != nil {
		s.log.Warn("journal write failed", zap.String("id", rec.ID), zap.Error(err))
	}
}

// placeOutput moves an engine's result to its final path. An absent or
// empty result is ErrNoOutput and leaves dst untouched.
func placeOutput(src, dst, engineOutput string) error {
	info, err := os.Stat(src)
	if err != nil || info.Size() == 0 {
		if engineOutput != "" {
			return fmt.Errorf("%w: %s", ErrNoOutput, engineOutput)
		}
		return ErrNoOutput
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving result to %s: %w", dst, err)
	}
	return nil
}

// stagingDir creates a scratch directory next to output so the final
// rename never crosses filesystems.
func stagingDir(output string) (string, error) {
	dir, err := os.MkdirTemp(filepath.Dir(output), ".docconv-")
	if err != nil {
		return "", fmt.Errorf("creating staging directory for %s: %w", output, err)
	}
	return dir, nil
}
