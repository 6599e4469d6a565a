// Package wcsplift reduces Weighted Constraint Satisfaction Problems (WCSPs)
// to Minimum Weighted Vertex Cover (MWVC) on an auxiliary graph and solves
// them there.
//
// A WCSP is a set of finite-domain variables and weighted local
// constraints; the goal is a variable assignment minimizing total
// constraint weight. This module lifts each constraint's weight table into
// a multilinear polynomial over Boolean indicator variables (package
// poly), rewrites the polynomial into a Constraint Composite Graph whose
// Minimum Weighted Vertex Cover equals the WCSP optimum up to a known
// additive constant (package ccg), shrinks that graph with a half-integral
// LP relaxation (package kernel), and solves what remains either exactly
// via LP/ILP or heuristically via damped min-sum message passing (package
// mwvc). Package decode maps the resulting cover back onto the original
// finite-domain variables.
//
// Package map:
//
//	clock/      -- deadline tracking threaded explicitly through solves
//	lp/         -- abstract LP backend capability + a golpa-backed adapter
//	wcsp/       -- WCSP instance/constraint data model, DIMACS/UAI loaders
//	poly/       -- per-constraint Möbius inversion, ordered accumulation
//	ccg/        -- the Constraint Composite Graph and its construction
//	kernel/     -- half-integral LP kernelization
//	mwvc/       -- MWVC solving: LP/ILP and min-sum message passing
//	decode/     -- Boolean cover -> finite-domain assignment
//	cmd/wcsplift -- command-line entry point
//
// See DESIGN.md for the rationale behind each package's design choices.
package wcsplift
