// Package wcsp holds the Weighted Constraint Satisfaction Problem data
// model: constraints over finite-domain variables, the mapping from each
// finite-domain variable to its block of Boolean indicators, total-weight
// evaluation of a candidate assignment, and the DIMACS/UAI loaders.
//
// Variable identifiers. Two disjoint id spaces share Go's int
// representation: finite-domain variable ids index the WCSP's user
// variables directly; Boolean variable ids are the flattened indicator
// space an Instance hands to the Polynomial Builder and CCG packages.
// Instance.Blocks is the list, indexed by finite-domain id, of each
// variable's contiguous Boolean-id block.
//
// Boolean encoding. A finite-domain variable of domain size d occupies a
// block of d-1 Boolean ids. For d == 2 the block is a direct encoding:
// the single bit equals the value. For d > 2, value 0 sets every bit in
// the block to true; value k > 0 clears bit k-1 and sets the rest. Both
// loaders and package decode share this asymmetric convention; changing
// one without the other breaks the round trip.
package wcsp
