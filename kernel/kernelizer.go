package kernel

import (
	"context"

	"github.com/nandofioretto/wcsplift/ccg"
	"github.com/nandofioretto/wcsplift/clock"
)

// Kernelizer performs one classification pass over g's current live
// vertices and reports which ones can be resolved this round, with their
// cover membership (true: in the cover; false: not in the cover). It must
// not mutate g; Run owns removal so every strategy shares one fixed-point
// driver.
type Kernelizer interface {
	Classify(ctx context.Context, g *ccg.Graph, deadline clock.Deadline) (map[int]bool, error)
}
