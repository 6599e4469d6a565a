// Package golpa implements lp.Solver on top of github.com/costela/golpa, a
// cgo binding over lp_solve. It is the sole concrete LP/ILP backend used by
// the kernelizer and the MWVC LP/ILP solver.
//
// golpa models a problem as lower/upper bound pairs per constraint rather
// than lp.ConstraintSense+rhs; Solver.AddConstraint translates between the
// two conventions at the call boundary so the rest of the module never sees
// a golpa type.
package golpa
