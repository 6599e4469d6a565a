package golpa

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/costela/golpa"

	"github.com/nandofioretto/wcsplift/lp"
)

// varSpec and conSpec record a pending variable/constraint until Solve
// builds the backing golpa.Model. golpa's C-backed Model has no removal
// or reset primitive, so Solver rebuilds the model from scratch on every
// Solve rather than mutate a long-lived one; this keeps Reset a trivial,
// allocation-free operation between kernelization rounds.
type varSpec struct {
	kind   lp.VarKind
	coef   float64
	lb, ub float64
}

type conSpec struct {
	vars  []int
	coefs []float64
	rhs   float64
	sense lp.ConstraintSense
}

// Solver implements lp.Solver on top of github.com/costela/golpa.
type Solver struct {
	sense     lp.ObjectiveSense
	timeLimit float64
	vars      []varSpec
	cons      []conSpec
}

// New returns a Solver with no variables or constraints.
func New() *Solver {
	return &Solver{}
}

// Reset implements lp.Solver.
func (s *Solver) Reset() {
	s.vars = s.vars[:0]
	s.cons = s.cons[:0]
	s.sense = lp.Min
	s.timeLimit = 0
}

// AddVariable implements lp.Solver.
func (s *Solver) AddVariable(coef float64, kind lp.VarKind, lb, ub float64) (int, error) {
	s.vars = append(s.vars, varSpec{kind: kind, coef: coef, lb: lb, ub: ub})
	return len(s.vars) - 1, nil
}

// AddConstraint implements lp.Solver.
func (s *Solver) AddConstraint(vars []int, coefs []float64, rhs float64, sense lp.ConstraintSense) (int, error) {
	if len(vars) != len(coefs) {
		return 0, fmt.Errorf("golpa: %d vars but %d coefficients", len(vars), len(coefs))
	}
	cp := make([]int, len(vars))
	copy(cp, vars)
	cc := make([]float64, len(coefs))
	copy(cc, coefs)
	s.cons = append(s.cons, conSpec{vars: cp, coefs: cc, rhs: rhs, sense: sense})
	return len(s.cons) - 1, nil
}

// SetObjectiveSense implements lp.Solver.
func (s *Solver) SetObjectiveSense(sense lp.ObjectiveSense) {
	s.sense = sense
}

// SetTimeLimit implements lp.Solver.
func (s *Solver) SetTimeLimit(seconds float64) {
	s.timeLimit = seconds
}

// Solve implements lp.Solver, building a fresh golpa.Model from the
// recorded variables and constraints, solving it, and translating the
// result (or failure) back into the package's own vocabulary.
func (s *Solver) Solve(ctx context.Context) (float64, []float64, error) {
	dir := golpa.Minimize
	if s.sense == lp.Max {
		dir = golpa.Maximize
	}

	model, err := golpa.NewModel("wcsplift", dir)
	if err != nil {
		return 0, nil, fmt.Errorf("golpa: %w: %v", lp.ErrBackend, err)
	}

	gvars := make([]*golpa.Variable, len(s.vars))
	for i, vs := range s.vars {
		kind := golpa.ContinuousVariable
		lb, ub := vs.lb, vs.ub
		if vs.kind == lp.Binary {
			kind = golpa.BinaryVariable
			lb, ub = 0, 1
		}
		v, err := model.AddDefinedVariable(fmt.Sprintf("x%d", i), kind, vs.coef, lb, ub)
		if err != nil {
			return 0, nil, fmt.Errorf("golpa: %w: adding variable %d: %v", lp.ErrBackend, i, err)
		}
		gvars[i] = v
	}

	for _, c := range s.cons {
		vars := make([]*golpa.Variable, len(c.vars))
		for i, id := range c.vars {
			vars[i] = gvars[id]
		}
		lower, upper := boundsFor(c.sense, c.rhs)
		if err := model.AddConstraint(lower, upper, vars, c.coefs); err != nil {
			return 0, nil, fmt.Errorf("golpa: %w: adding constraint: %v", lp.ErrBackend, err)
		}
	}

	if s.timeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.timeLimit*float64(time.Second)))
		defer cancel()
	}

	res, err := model.SolveWithContext(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return 0, nil, lp.ErrTimeOut
		}
		return 0, nil, fmt.Errorf("golpa: %w: %v", lp.ErrBackend, err)
	}

	primal := make([]float64, len(gvars))
	for i, v := range gvars {
		primal[i] = res.Value(v)
	}

	if res.Status() == golpa.SolutionSuboptimal {
		return res.ObjectiveValue(), primal, lp.ErrTimeOut
	}
	return res.ObjectiveValue(), primal, nil
}

func boundsFor(sense lp.ConstraintSense, rhs float64) (lower, upper float64) {
	switch sense {
	case lp.LE:
		return math.Inf(-1), rhs
	case lp.GE:
		return rhs, math.Inf(1)
	default: // lp.EQ
		return rhs, rhs
	}
}
