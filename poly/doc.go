// Package poly builds and accumulates the multilinear polynomial form of a
// WCSP constraint's Boolean weight table.
//
// A constraint over s Boolean indicators is, equivalently, a function
// w: {0,1}^s -> R. Möbius inversion on the Boolean subset lattice rewrites
// w as a sum of monomials, one coefficient per subset of the s indicators:
//
//	P(X_1,...,X_s) = sum_{S subseteq [s]} c_S * prod_{i in S} X_i
//
// Polynomial keeps every constraint's contribution in one shared
// accumulator, bucketed by term cardinality, because the CCG builder must
// visit terms strictly from highest cardinality to lowest: its rewrite
// rule mutates lower-cardinality coefficients as it processes each
// higher-cardinality term (see package ccg).
package poly
