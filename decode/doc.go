// Package decode reconstructs a WCSP's finite-domain assignment from the
// Boolean indicator decisions made across the three stages that can
// resolve one: CCG simplification, kernelization, and the final MWVC
// solve.
package decode
