// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"os"

	"github.com/pdiddy/docconv/internal/container"
	"github.com/pdiddy/docconv/pkg/types"
)

// DefaultImage is the converter image used when none is configured. The
// image reads a document on stdin and writes the document converted to the
// format named by its single argument ("pdf" or "docx") to stdout.
const DefaultImage = "docconv-office:latest"

// ContainerBackend converts documents by piping them through a converter
// image. It depends on a container.Runtime (docker or podman) injected at
// construction time.
type ContainerBackend struct {
	runtime container.Runtime
	image   string
}

// NewContainerBackend creates a backend that runs image with rt. It verifies
// that the image exists locally before returning.
func NewContainerBackend(ctx context.Context, rt container.Runtime, image string) (*ContainerBackend, error) {
	if image == "" {
		image = DefaultImage
	}
	if err := rt.ImageExists(ctx, image); err != nil {
		return nil, fmt.Errorf("%w: converter image not available in %s: %v", ErrEngineNotFound, rt.Name(), err)
	}
	return &ContainerBackend{runtime: rt, image: image}, nil
}

func (c *ContainerBackend) Name() string { return string(types.BackendContainer) }

// Convert streams the input through the container and writes the result
// next to output before renaming it into place.
func (c *ContainerBackend) Convert(ctx context.Context, dir types.Direction, input, output string) error {
	if !dir.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupported, dir)
	}

	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening %s: %w", input, err)
	}
	defer in.Close()

	stage, err := stagingDir(output)
	if err != nil {
		return err
	}
	defer os.RemoveAll(stage)

	out, err := os.CreateTemp(stage, "result-*"+dir.TargetExt())
	if err != nil {
		return fmt.Errorf("creating staging file: %w", err)
	}

	runErr := c.runtime.Run(ctx, c.image, []string{dir.TargetFormat()}, in, out)
	if err := out.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("writing staging file: %w", err)
	}
	if runErr != nil {
		return fmt.Errorf("converting %s to %s: %w", input, dir.TargetFormat(), runErr)
	}

	if err := placeOutput(out.Name(), output, ""); err != nil {
		return fmt.Errorf("converting %s to %s: %w", input, dir.TargetFormat(), err)
	}
	return nil
}
