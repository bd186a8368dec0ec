// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionBackend identifies the engine adapter used for conversions.
type ConversionBackend string

const (
	BackendOffice    ConversionBackend = "office"
	BackendContainer ConversionBackend = "container"
)

// OfficeConfig holds settings for the LibreOffice backend.
type OfficeConfig struct {
	// Binary is the soffice executable. Empty means search PATH for
	// soffice, then libreoffice.
	Binary string `json:"binary" yaml:"binary" mapstructure:"binary"`
}

// ContainerConfig holds settings for the container backend.
type ContainerConfig struct {
	// Runtime forces "docker" or "podman". Empty means detect, docker first.
	Runtime string `json:"runtime" yaml:"runtime" mapstructure:"runtime" validate:"omitempty,oneof=docker podman"`

	// Image is the converter image; it must exist locally.
	Image string `json:"image" yaml:"image" mapstructure:"image" validate:"required"`
}

// QPDFConfig holds settings for the PDF page selector.
type QPDFConfig struct {
	Binary string `json:"binary" yaml:"binary" mapstructure:"binary" validate:"required"`
}

// JournalConfig holds settings for the conversion journal.
type JournalConfig struct {
	// Path is the SQLite database file. Empty disables the journal.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `json:"format" yaml:"format" mapstructure:"format" validate:"oneof=console json"`
}

// Config groups all docconv settings.
type Config struct {
	Backend ConversionBackend `json:"backend" yaml:"backend" mapstructure:"backend" validate:"oneof=office container"`

	// Timeout bounds a single conversion, engine start-up included.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	Office    OfficeConfig    `json:"office" yaml:"office" mapstructure:"office"`
	Container ContainerConfig `json:"container" yaml:"container" mapstructure:"container"`
	QPDF      QPDFConfig      `json:"qpdf" yaml:"qpdf" mapstructure:"qpdf"`
	Journal   JournalConfig   `json:"journal" yaml:"journal" mapstructure:"journal"`
	Log       LogConfig       `json:"log" yaml:"log" mapstructure:"log"`
}
