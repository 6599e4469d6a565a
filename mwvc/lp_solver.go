package mwvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/nandofioretto/wcsplift/ccg"
	"github.com/nandofioretto/wcsplift/clock"
	"github.com/nandofioretto/wcsplift/lp"
)

// LPSolver finds an exact Minimum Weighted Vertex Cover by solving the
// binary ILP: minimize sum(w_v * x_v) subject to x_u + x_v >= 1 for every
// edge (u, v), x_v in {0, 1}.
type LPSolver struct {
	Solver lp.Solver
}

// NewLPSolver returns an LPSolver backed by solver.
func NewLPSolver(solver lp.Solver) *LPSolver {
	return &LPSolver{Solver: solver}
}

func (s *LPSolver) Solve(ctx context.Context, g *ccg.Graph, deadline clock.Deadline) (Result, error) {
	handles := g.Vertices()
	if len(handles) == 0 {
		return Result{Assignment: map[int]bool{}, Converged: true}, nil
	}

	s.Solver.Reset()
	s.Solver.SetObjectiveSense(lp.Min)
	s.Solver.SetTimeLimit(deadline.Seconds())

	varOf := make(map[int]int, len(handles))
	for _, h := range handles {
		vid, err := s.Solver.AddVariable(g.VertexAt(h).Weight, lp.Binary, 0, 1)
		if err != nil {
			return Result{}, fmt.Errorf("mwvc: adding ILP variable: %w", err)
		}
		varOf[h] = vid
	}

	for _, h := range handles {
		for _, n := range g.Neighbors(h) {
			if n < h {
				continue
			}
			if _, err := s.Solver.AddConstraint([]int{varOf[h], varOf[n]}, []float64{1, 1}, 1, lp.GE); err != nil {
				return Result{}, fmt.Errorf("mwvc: adding ILP constraint: %w", err)
			}
		}
	}

	obj, primal, err := s.Solver.Solve(ctx)
	if err != nil {
		if errors.Is(err, lp.ErrTimeOut) {
			// Any partial primal returned alongside a timeout is not
			// trusted; report the timeout with no cover so the caller
			// falls back to its best prior value.
			return Result{TimedOut: true, Iterations: 1}, nil
		}
		return Result{}, fmt.Errorf("mwvc: solving ILP: %w", err)
	}
	if primal == nil {
		return Result{}, ErrNoFeasibleCover
	}

	assignment := make(map[int]bool, len(handles))
	for _, h := range handles {
		assignment[h] = primal[varOf[h]] > 0.5
	}

	return Result{
		Assignment: assignment,
		Weight:     obj,
		Converged:  true,
		Iterations: 1,
	}, nil
}
