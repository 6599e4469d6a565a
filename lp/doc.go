// Package lp defines the abstract linear-program backend capability that
// the kernelizer and the MWVC LP/ILP solver depend on.
//
// The interface is deliberately narrow: add variables with a
// bound/type/objective-coefficient, add linear constraints, choose an
// objective sense, solve, and read back the primal. Package lp/golpa
// supplies the one concrete implementation, wired to
// github.com/costela/golpa (a cgo binding over lp_solve).
//
// Callers never construct a backend-specific error value; Solve returns
// the sentinel ErrTimeOut or ErrBackend so calling code can branch with
// errors.Is regardless of which Solver implementation is in play.
package lp
