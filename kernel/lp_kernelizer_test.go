package kernel

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandofioretto/wcsplift/ccg"
	"github.com/nandofioretto/wcsplift/clock"
	"github.com/nandofioretto/wcsplift/lp"
	"github.com/nandofioretto/wcsplift/poly"
)

// halfIntegralFakeSolver is a tiny lp.Solver fake that exploits the known
// half-integrality of the vertex-cover LP relaxation: the optimum is
// always attainable at a point with coordinates in {0, ½, 1}, so a brute
// search over that grid (rather than a real simplex) reproduces the
// solver's answer for the small graphs these tests build.
type halfIntegralFakeSolver struct {
	coefs []float64
	lb    []float64
	ub    []float64
	cons  []bfCon
}

type bfCon struct {
	vars  []int
	coefs []float64
	rhs   float64
	sense lp.ConstraintSense
}

func (s *halfIntegralFakeSolver) Reset() {
	s.coefs, s.lb, s.ub, s.cons = nil, nil, nil, nil
}

func (s *halfIntegralFakeSolver) AddVariable(coef float64, kind lp.VarKind, lb, ub float64) (int, error) {
	s.coefs = append(s.coefs, coef)
	s.lb = append(s.lb, lb)
	s.ub = append(s.ub, ub)
	return len(s.coefs) - 1, nil
}

func (s *halfIntegralFakeSolver) AddConstraint(vars []int, coefs []float64, rhs float64, sense lp.ConstraintSense) (int, error) {
	s.cons = append(s.cons, bfCon{vars: vars, coefs: coefs, rhs: rhs, sense: sense})
	return len(s.cons) - 1, nil
}

func (s *halfIntegralFakeSolver) SetObjectiveSense(lp.ObjectiveSense) {}
func (s *halfIntegralFakeSolver) SetTimeLimit(float64)                {}

func (s *halfIntegralFakeSolver) Solve(ctx context.Context) (float64, []float64, error) {
	n := len(s.coefs)
	grid := []float64{0, 0.5, 1}
	best := math.Inf(1)
	var bestX []float64

	var rec func(i int, x []float64)
	rec = func(i int, x []float64) {
		if i == n {
			for _, c := range s.cons {
				sum := 0.0
				for k, v := range c.vars {
					sum += c.coefs[k] * x[v]
				}
				ok := true
				switch c.sense {
				case lp.GE:
					ok = sum >= c.rhs-1e-9
				case lp.LE:
					ok = sum <= c.rhs+1e-9
				case lp.EQ:
					ok = math.Abs(sum-c.rhs) < 1e-9
				}
				if !ok {
					return
				}
			}
			obj := 0.0
			for k, c := range s.coefs {
				obj += c * x[k]
			}
			if obj < best {
				best = obj
				bestX = append([]float64{}, x...)
			}
			return
		}
		for _, v := range grid {
			x[i] = v
			rec(i+1, x)
		}
	}
	rec(0, make([]float64, n))

	if bestX == nil {
		return 0, nil, lp.ErrBackend
	}
	return best, bestX, nil
}

func buildGraph(weights []float64, edges [][2]int) *ccg.Graph {
	p := poly.New()
	for v, w := range weights {
		p.Add([]int{v}, w)
	}
	g := ccg.NewGraph()
	g.AddPolynomial(p)
	handles := make([]int, len(weights))
	for v := range weights {
		h, _ := g.Lookup(v)
		handles[v] = h
	}
	for _, e := range edges {
		g.AddEdge(handles[e[0]], handles[e[1]])
	}
	return g
}

// TestLPKernelizer_TriangleResolvesNothing checks the all-halves case: a
// triangle with unit weights has LP optimum (½, ½, ½) at cost 1.5 (every
// integral cover costs 2), and the kernelizer must remove nothing.
func TestLPKernelizer_TriangleResolvesNothing(t *testing.T) {
	g := buildGraph([]float64{1, 1, 1}, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	k := NewLPKernelizer(&halfIntegralFakeSolver{})

	resolved := make(map[int]bool)
	err := Run(context.Background(), g, k, resolved, clock.New(time.Second))
	require.NoError(t, err)
	assert.Empty(t, resolved)
	assert.Equal(t, 3, g.NumVertices())
}

// TestLPKernelizer_SingleEdgeResolvesBothEndpoints covers a graph whose
// LP relaxation is fully integral: a single edge where one endpoint is
// far cheaper than the other must be resolved to (in cover) / (not in
// cover) rather than left at ½.
func TestLPKernelizer_SingleEdgeResolvesBothEndpoints(t *testing.T) {
	g := buildGraph([]float64{1, 100}, [][2]int{{0, 1}})
	k := NewLPKernelizer(&halfIntegralFakeSolver{})

	h0, _ := g.Lookup(0)
	h1, _ := g.Lookup(1)

	resolved := make(map[int]bool)
	err := Run(context.Background(), g, k, resolved, clock.New(time.Second))
	require.NoError(t, err)
	assert.Equal(t, true, resolved[h0])
	assert.Equal(t, false, resolved[h1])
	assert.Equal(t, 0, g.NumVertices())
}

func TestLPKernelizer_RejectsOutOfRangeSolution(t *testing.T) {
	g := buildGraph([]float64{1, 1}, [][2]int{{0, 1}})
	k := NewLPKernelizer(&brokenSolver{})

	err := Run(context.Background(), g, k, make(map[int]bool), clock.New(time.Second))
	assert.ErrorIs(t, err, ErrUnexpectedLPSolution)
}

// brokenSolver always reports a primal value outside [0, 1], simulating
// a misbehaving backend.
type brokenSolver struct {
	n int
}

func (s *brokenSolver) Reset() { s.n = 0 }
func (s *brokenSolver) AddVariable(coef float64, kind lp.VarKind, lb, ub float64) (int, error) {
	s.n++
	return s.n - 1, nil
}
func (s *brokenSolver) AddConstraint([]int, []float64, float64, lp.ConstraintSense) (int, error) {
	return 0, nil
}
func (s *brokenSolver) SetObjectiveSense(lp.ObjectiveSense) {}
func (s *brokenSolver) SetTimeLimit(float64)                {}
func (s *brokenSolver) Solve(context.Context) (float64, []float64, error) {
	x := make([]float64, s.n)
	for i := range x {
		x[i] = 1.5
	}
	return 0, x, nil
}

func TestNoOpKernelizer_NeverResolves(t *testing.T) {
	g := buildGraph([]float64{1, 1}, [][2]int{{0, 1}})
	resolved := make(map[int]bool)
	err := Run(context.Background(), g, NoOpKernelizer{}, resolved, clock.New(time.Second))
	require.NoError(t, err)
	assert.Empty(t, resolved)
	assert.Equal(t, 2, g.NumVertices())
}
