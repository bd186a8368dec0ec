// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "errors"

var (
	// ErrUnsupported is returned for input/output combinations no backend
	// converts.
	ErrUnsupported = errors.New("unsupported conversion type")

	// ErrInvalidPageRange is returned for malformed page ranges and for
	// page ranges on non-PDF input.
	ErrInvalidPageRange = errors.New("invalid page range")

	// ErrNoPageSelector is returned for a valid partial page range when the
	// Service was built without a PageSelector.
	ErrNoPageSelector = errors.New("no page selector configured")

	// ErrNoOutput is returned when an engine exits cleanly but leaves no
	// output document behind.
	ErrNoOutput = errors.New("engine produced no output")

	// ErrEngineNotFound is returned when the engine binary cannot be located.
	ErrEngineNotFound = errors.New("conversion engine not found")
)
