package kernel

import (
	"context"

	"github.com/nandofioretto/wcsplift/ccg"
	"github.com/nandofioretto/wcsplift/clock"
)

// NoOpKernelizer never resolves a vertex; it backs the CLI's
// --no-kernelization flag, letting the rest of the pipeline run
// unchanged with the MWVC solver seeing the full, unreduced graph.
type NoOpKernelizer struct{}

func (NoOpKernelizer) Classify(context.Context, *ccg.Graph, clock.Deadline) (map[int]bool, error) {
	return nil, nil
}
