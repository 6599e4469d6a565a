package lp

import (
	"context"
	"errors"
)

// Sentinel errors returned by Solver implementations.
var (
	// ErrTimeOut indicates the backend's time limit was reached before a
	// solution was confirmed optimal. Any partial primal returned alongside
	// this error must not be trusted by the caller.
	ErrTimeOut = errors.New("lp: time out")

	// ErrBackend indicates the backend reported an internal failure
	// unrelated to the model itself (infeasibility cannot occur for the
	// LPs this package builds, since every one is a relaxation or ILP of
	// a simple vertex-cover formulation on a non-empty graph).
	ErrBackend = errors.New("lp: backend error")
)

// VarKind selects the domain of an LP variable.
type VarKind int

const (
	// Continuous variables range over [lb, ub].
	Continuous VarKind = iota
	// Binary variables are restricted to {0, 1}; lb/ub are ignored.
	Binary
)

// ConstraintSense is the relational operator of a linear constraint.
type ConstraintSense int

const (
	LE ConstraintSense = iota
	GE
	EQ
)

// ObjectiveSense selects minimization or maximization.
type ObjectiveSense int

const (
	Min ObjectiveSense = iota
	Max
)

// Solver is the capability every MWVC/kernelization strategy depends on.
// Implementations need not be safe for concurrent use; the whole solve
// pipeline runs on a single goroutine.
type Solver interface {
	// Reset clears all variables and constraints, returning the solver to
	// a freshly-constructed state.
	Reset()

	// AddVariable registers a variable with the given objective
	// coefficient, kind, and bounds (bounds are ignored for Binary). It
	// returns a dense, zero-based variable id.
	AddVariable(coef float64, kind VarKind, lb, ub float64) (int, error)

	// AddConstraint adds sum(coefs[i] * vars[i]) <sense> rhs.
	AddConstraint(vars []int, coefs []float64, rhs float64, sense ConstraintSense) (int, error)

	// SetObjectiveSense must be called before Solve; there is no default.
	SetObjectiveSense(ObjectiveSense)

	// SetTimeLimit bounds the next Solve call. A non-positive value means
	// unbounded.
	SetTimeLimit(seconds float64)

	// Solve runs the solver and returns the objective value and the
	// primal values indexed by variable id. On ErrTimeOut, primal may be
	// nil or partial and must not be trusted.
	Solve(ctx context.Context) (objective float64, primal []float64, err error)
}
