package kernel

import (
	"context"
	"errors"
	"fmt"

	"github.com/nandofioretto/wcsplift/ccg"
	"github.com/nandofioretto/wcsplift/clock"
	"github.com/nandofioretto/wcsplift/lp"
)

// resolveHigh and resolveLow band the relaxed LP values: a value at or
// above resolveHigh is treated as 1 (in the cover), at or below
// resolveLow as 0, and anything between is left unresolved (the
// half-integral relaxation's theoretical ½ case, plus numerical slack
// around it).
const (
	resolveHigh = 0.8
	resolveLow  = 0.2
)

// LPKernelizer classifies CCG vertices by solving the standard LP
// relaxation of vertex cover: minimize sum(w_v * x_v) subject to
// x_u + x_v >= 1 for every edge (u, v) and 0 <= x_v <= 1. This
// relaxation is known to be half-integral (every basic optimal solution
// has coordinates in {0, ½, 1}), which is what makes banding around 0.8
// and 0.2 a safe way to read off fully-resolved vertices without ever
// mistaking a genuine ½ for a rounding artifact.
type LPKernelizer struct {
	Solver lp.Solver
}

// NewLPKernelizer returns an LPKernelizer backed by solver. solver is
// reset and rebuilt from scratch on every Classify call.
func NewLPKernelizer(solver lp.Solver) *LPKernelizer {
	return &LPKernelizer{Solver: solver}
}

func (k *LPKernelizer) Classify(ctx context.Context, g *ccg.Graph, deadline clock.Deadline) (map[int]bool, error) {
	handles := g.Vertices()
	if len(handles) == 0 {
		return nil, nil
	}

	k.Solver.Reset()
	k.Solver.SetObjectiveSense(lp.Min)
	k.Solver.SetTimeLimit(deadline.Seconds())

	varOf := make(map[int]int, len(handles))
	for _, h := range handles {
		vid, err := k.Solver.AddVariable(g.VertexAt(h).Weight, lp.Continuous, 0, 1)
		if err != nil {
			return nil, fmt.Errorf("kernel: adding LP variable: %w", err)
		}
		varOf[h] = vid
	}

	for _, h := range handles {
		for _, n := range g.Neighbors(h) {
			if n < h {
				continue // visit each undirected edge once
			}
			if _, err := k.Solver.AddConstraint([]int{varOf[h], varOf[n]}, []float64{1, 1}, 1, lp.GE); err != nil {
				return nil, fmt.Errorf("kernel: adding LP constraint: %w", err)
			}
		}
	}

	_, primal, err := k.Solver.Solve(ctx)
	if err != nil {
		if errors.Is(err, lp.ErrTimeOut) {
			return nil, nil
		}
		return nil, fmt.Errorf("kernel: solving LP relaxation: %w", err)
	}

	resolved := make(map[int]bool)
	for _, h := range handles {
		x := primal[varOf[h]]
		switch {
		case x < -1e-6 || x > 1+1e-6:
			return nil, fmt.Errorf("%w: got %v", ErrUnexpectedLPSolution, x)
		case x >= resolveHigh:
			resolved[h] = true
		case x <= resolveLow:
			resolved[h] = false
		}
	}
	return resolved, nil
}
