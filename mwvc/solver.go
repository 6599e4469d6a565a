package mwvc

import (
	"context"

	"github.com/nandofioretto/wcsplift/ccg"
	"github.com/nandofioretto/wcsplift/clock"
)

// Result is a Strategy's verdict: which CCG vertices it placed in the
// cover, what that cover weighs, and how confidently.
type Result struct {
	// Assignment maps every live CCG vertex handle to whether the
	// strategy placed it in the cover. Nil when LPSolver timed out: a
	// partial ILP primal is not trusted, so no cover is reported at all.
	// Empty when MessagePassing's deadline passed before its first round.
	Assignment map[int]bool
	// Weight is LPSolver's cover weight (the sum of the vertices
	// Assignment marks true). For MessagePassing it is whatever its
	// Scorer reported for Assignment's round -- the WCSP's own total
	// weight when a Scorer is configured, the CCG cover-weight sum
	// otherwise -- since Assignment there is chosen as the best-scoring
	// round seen, not necessarily the heaviest-cover one.
	Weight float64
	// Converged is true for LPSolver when the ILP solve finished within
	// its time limit (false on timeout, alongside a nil Assignment). For
	// MessagePassing it reports whether the message values stopped
	// changing by more than delta on the final iteration and that
	// iteration's decode saw only finite beliefs. A false here does not
	// discard Assignment, which is still the best-scoring round seen.
	Converged bool
	// TimedOut reports whether the deadline was reached before the
	// strategy finished on its own terms.
	TimedOut bool
	// Iterations is the number of message-passing rounds run; 1 for
	// LPSolver, or 0 when the graph is empty and nothing is solved.
	Iterations int
}

// Strategy computes a Minimum Weighted Vertex Cover (or an approximation
// of one) over g's current live vertices.
type Strategy interface {
	Solve(ctx context.Context, g *ccg.Graph, deadline clock.Deadline) (Result, error)
}
