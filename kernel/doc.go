// Package kernel implements CCG kernelization: repeatedly solving a
// relaxation of the vertex-cover problem over the live graph and removing
// every vertex the relaxation resolves definitively to 0 or 1, shrinking
// what the MWVC solver in package mwvc has to search.
//
// Kernelizer is the capability interface; two strategies implement it.
// LPKernelizer solves the half-integral LP relaxation of vertex cover
// and classifies each vertex's relaxed value into the 0/½/1 bands;
// NoOpKernelizer never resolves anything, backing the CLI's
// -no-kernelization flag. Run drives either strategy to a fixed point.
package kernel
