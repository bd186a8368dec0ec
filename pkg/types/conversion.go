// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
	"time"
)

// Direction identifies which way a document is converted.
type Direction string

const (
	DocxToPDF Direction = "docx-to-pdf"
	PDFToDocx Direction = "pdf-to-docx"
)

// SourceExt returns the file extension (with dot) of the input format.
func (d Direction) SourceExt() string {
	switch d {
	case DocxToPDF:
		return ".docx"
	case PDFToDocx:
		return ".pdf"
	}
	return ""
}

// TargetExt returns the file extension (with dot) of the output format.
func (d Direction) TargetExt() string {
	switch d {
	case DocxToPDF:
		return ".pdf"
	case PDFToDocx:
		return ".docx"
	}
	return ""
}

// TargetFormat returns the target format name without the leading dot
// ("pdf" or "docx").
func (d Direction) TargetFormat() string {
	return strings.TrimPrefix(d.TargetExt(), ".")
}

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DocxToPDF || d == PDFToDocx
}

// PageRange selects pages of a PDF. Start is zero-based and inclusive, End
// is exclusive. End == 0 means through the last page, so the zero value
// selects the whole document.
type PageRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end,omitempty" yaml:"end,omitempty"`
}

// Full reports whether the range covers the whole document.
func (r PageRange) Full() bool {
	return r.Start == 0 && r.End == 0
}

// Validate returns an error when the range is malformed.
func (r PageRange) Validate() error {
	if r.Start < 0 {
		return fmt.Errorf("start page %d is negative", r.Start)
	}
	if r.End != 0 && r.End <= r.Start {
		return fmt.Errorf("end page %d is not after start page %d", r.End, r.Start)
	}
	return nil
}

// String renders the range in 1-based inclusive form ("3-5", "2-z", or
// "all").
func (r PageRange) String() string {
	if r.Full() {
		return "all"
	}
	last := "z"
	if r.End != 0 {
		last = fmt.Sprint(r.End)
	}
	return fmt.Sprintf("%d-%s", r.Start+1, last)
}

// ConversionStatus records the outcome of a conversion.
type ConversionStatus string

const (
	ConversionSucceeded ConversionStatus = "succeeded"
	ConversionFailed    ConversionStatus = "failed"
)

// ConversionRecord is one journal entry describing a single conversion.
type ConversionRecord struct {
	// ID is a random UUID assigned when the record is created.
	ID string `json:"id" yaml:"id"`

	Direction Direction `json:"direction" yaml:"direction"`

	// Backend names the engine adapter that ran ("office" or "container").
	Backend string `json:"backend" yaml:"backend"`

	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`

	// Pages is the page range in PageRange.String form.
	Pages string `json:"pages" yaml:"pages"`

	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	Duration  time.Duration `json:"duration" yaml:"duration"`

	Status ConversionStatus `json:"status" yaml:"status"`

	// Error holds the failure text when Status is ConversionFailed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}
