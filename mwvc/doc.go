// Package mwvc solves the Minimum Weighted Vertex Cover problem over a
// (typically kernelized) *ccg.Graph.
//
// Strategy is the capability interface; two strategies implement it.
// LPSolver solves the binary ILP exactly via an lp.Solver backend;
// MessagePassing runs the damped min-sum message-passing heuristic, with
// an injected noise seed so tests can pin it while production runs seed
// from the wall clock. Both satisfy Strategy and are selected by the
// CLI's -m flag.
package mwvc
