// Package ccg builds and maintains the Constraint Composite Graph (CCG):
// the auxiliary weighted undirected graph whose Minimum Weighted Vertex
// Cover, plus a residual constant, equals the optimum of a WCSP's
// accumulated polynomial.
//
// # Vertex kinds
//
// Every vertex is one of three kinds:
//
//   - Variable: carries the Boolean indicator id it represents. Exactly
//     one Variable vertex exists per Boolean id referenced by a
//     non-negligible polynomial term; AddCliques never creates one.
//   - AuxType1 ("flower root"): introduced by AddPolynomial to absorb a
//     negative-coefficient term, or as half of the gadget for a
//     non-negative higher-order term.
//   - AuxType2 ("thorn"): introduced only alongside an AuxType1 vertex,
//     as the other half of the non-negative higher-order gadget.
//
// Neither auxiliary kind carries an external id; only Variable vertices
// are addressable from outside the package (by Boolean id).
//
// # Graph representation
//
// Graph is an arena of vertex slots indexed by a stable integer handle:
// RemoveVertex tombstones a slot (clears its adjacency, marks it dead)
// rather than compacting the arena, so handles obtained before a removal
// remain valid identifiers (they simply stop appearing in Vertices).
// This is required because both Simplify and the kernelizer delete
// vertices mid-construction/mid-solve while other code continues to
// reference surviving vertices by handle.
//
// # Construction order
//
// AddPolynomial must run to completion (across every constraint sharing
// the passed-in *poly.Polynomial) before AddCliques, and AddCliques
// before Simplify -- each stage assumes the graph state the previous
// stage left behind. The full lifecycle is: WCSP instance -> constraints
// -> polynomial -> CCG -> simplify -> kernelize -> solve -> decode.
//
// # Dumps
//
// WriteDimacs and WriteGraphviz render a Graph for external tooling or
// debugging; ReadDimacs parses a WriteDimacs dump back into vertex
// weights, edges, and (for a renumbered dump) the dense-to-raw vertex-id
// mapping, without reconstructing a live Graph.
package ccg
