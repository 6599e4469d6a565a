package wcsp

import (
	"context"

	"github.com/nandofioretto/wcsplift/clock"
	"github.com/nandofioretto/wcsplift/lp"
)

// SolveDirect solves the WCSP instance directly as an integer program,
// bypassing the CCG/kernelization/MWVC pipeline entirely (the CLI's
// -linear-programming flag): one binary LP variable per (constraint,
// tuple) pair, a sum-to-one constraint per constraint selecting exactly
// one tuple, and a marginal consistency constraint tying every
// constraint's partial sum over a variable's value back to that
// variable's unary selector.
//
// Variables with no declared unary constraint get a synthetic one with
// all-zero weights, purely so every variable has a selector to be
// checked for consistency against.
func SolveDirect(inst *Instance, solver lp.Solver, deadline clock.Deadline) (map[int]int, error) {
	solver.Reset()
	solver.SetTimeLimit(deadline.Seconds())
	solver.SetObjectiveSense(lp.Min)

	constraints := make([]*Constraint, len(inst.Constraints))
	copy(constraints, inst.Constraints)

	unaryIdx := make(map[int]int, len(inst.DomainSizes))
	for i, c := range constraints {
		if len(c.NonBooleanVars) == 1 {
			unaryIdx[c.NonBooleanVars[0]] = i
		}
	}
	for v := range inst.DomainSizes {
		if _, ok := unaryIdx[v]; ok {
			continue
		}
		constraints = append(constraints, NewConstraint([]int{v}, nil))
		unaryIdx[v] = len(constraints) - 1
	}

	lpVars := make([][]int, len(constraints))
	tuples := make([][][]int, len(constraints))

	for i, c := range constraints {
		domainSizes := make([]int, len(c.NonBooleanVars))
		for p, v := range c.NonBooleanVars {
			domainSizes[p] = inst.DomainSizes[v]
		}
		ts := cartesianProduct(domainSizes)
		tuples[i] = ts

		vars := make([]int, len(ts))
		coefs := make([]float64, len(ts))
		for t, vals := range ts {
			coef := c.NBWeight(vals)
			id, err := solver.AddVariable(coef, lp.Binary, 0, 1)
			if err != nil {
				return nil, err
			}
			vars[t] = id
			coefs[t] = 1
		}
		lpVars[i] = vars

		if _, err := solver.AddConstraint(vars, coefs, 1, lp.EQ); err != nil {
			return nil, err
		}
	}

	unarySelector := make(map[int][]int, len(inst.DomainSizes))
	for v, i := range unaryIdx {
		unarySelector[v] = lpVars[i]
	}

	for i, c := range constraints {
		if len(c.NonBooleanVars) <= 1 {
			continue
		}
		for p, v := range c.NonBooleanVars {
			d := inst.DomainSizes[v]
			for k := 0; k < d; k++ {
				var vars []int
				var coefs []float64
				for t, vals := range tuples[i] {
					if vals[p] == k {
						vars = append(vars, lpVars[i][t])
						coefs = append(coefs, 1)
					}
				}
				vars = append(vars, unarySelector[v][k])
				coefs = append(coefs, -1)
				if _, err := solver.AddConstraint(vars, coefs, 0, lp.EQ); err != nil {
					return nil, err
				}
			}
		}
	}

	_, primal, err := solver.Solve(context.Background())
	if err != nil {
		return nil, err
	}

	assignment := make(map[int]int, len(inst.DomainSizes))
	for v, d := range inst.DomainSizes {
		sel := unarySelector[v]
		for k := 0; k < d; k++ {
			if primal[sel[k]] > 0.5 {
				assignment[v] = k
				break
			}
		}
	}
	return assignment, nil
}

func cartesianProduct(domainSizes []int) [][]int {
	n := 1
	for _, d := range domainSizes {
		n *= d
	}
	out := make([][]int, n)
	for j := 0; j < n; j++ {
		vals := make([]int, len(domainSizes))
		j0 := j
		for i, d := range domainSizes {
			vals[i] = j0 % d
			j0 /= d
		}
		out[j] = vals
	}
	return out
}
