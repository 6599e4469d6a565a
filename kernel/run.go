package kernel

import (
	"context"

	"github.com/nandofioretto/wcsplift/ccg"
	"github.com/nandofioretto/wcsplift/clock"
)

// Run drives k to a fixed point: it classifies g's current vertices,
// removes every vertex a round resolves, and repeats until a round
// resolves nothing, the graph empties, or deadline is reached. Every
// vertex Run removes from g is recorded into out, keyed by its CCG
// handle, with its resolved cover membership; out is merged into, not
// reset, so the same map can accumulate decisions across multiple Run
// calls. Simplify's output is keyed by Boolean id, not handle, and is
// kept in a separate map.
func Run(ctx context.Context, g *ccg.Graph, k Kernelizer, out map[int]bool, deadline clock.Deadline) error {
	for {
		if deadline.Reached() || g.NumVertices() == 0 {
			return nil
		}
		round, err := k.Classify(ctx, g, deadline)
		if err != nil {
			return err
		}
		if len(round) == 0 {
			return nil
		}
		for h, cover := range round {
			out[h] = cover
			g.RemoveVertex(h)
		}
	}
}
