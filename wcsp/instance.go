package wcsp

import (
	"fmt"
	"io"
)

// Instance holds a WCSP's finite-domain variables (and their Boolean
// encodings) together with its list of weighted constraints.
type Instance struct {
	// DomainSizes[v] is the domain size of finite-domain variable v.
	DomainSizes []int

	// Constraints is the ordered list of weighted local constraints.
	Constraints []*Constraint

	blocks [][]int
}

// NewInstance allocates the Boolean-indicator blocks for the given
// per-variable domain sizes: variable v of domain size d occupies the
// next d-1 contiguous Boolean ids.
func NewInstance(domainSizes []int) *Instance {
	in := &Instance{
		DomainSizes: domainSizes,
		blocks:      make([][]int, len(domainSizes)),
	}
	next := 0
	for v, d := range domainSizes {
		block := make([]int, d-1)
		for i := range block {
			block[i] = next
			next++
		}
		in.blocks[v] = block
	}
	return in
}

// Blocks returns the Boolean-id block for every finite-domain variable,
// indexed by finite-domain id.
func (in *Instance) Blocks() [][]int {
	return in.blocks
}

// NumBoolVars returns the total number of Boolean indicator ids across
// every block.
func (in *Instance) NumBoolVars() int {
	n := 0
	for _, b := range in.blocks {
		n += len(b)
	}
	return n
}

// AddConstraint appends c to the instance's constraint list.
func (in *Instance) AddConstraint(c *Constraint) {
	in.Constraints = append(in.Constraints, c)
}

// WriteMapping writes the finite-domain to Boolean-indicator mapping in
// the delimited, tab-separated layout the CLI reports after loading an
// instance: one line per finite-domain variable, its id followed by the
// Boolean ids of its block.
func (in *Instance) WriteMapping(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "--- Non-Boolean Variable Mapping BEGINS ---"); err != nil {
		return err
	}
	for v, block := range in.blocks {
		if _, err := fmt.Fprintf(w, "%d\t", v); err != nil {
			return err
		}
		for _, id := range block {
			if _, err := fmt.Fprintf(w, "%d ", id); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "--- Non-Boolean Variable Mapping ENDS ---")
	return err
}

// ComputeTotalWeight sums, over every constraint, the weight of the
// tuple formed by assignment restricted to that constraint's
// finite-domain variables. A variable absent from assignment -- e.g. one
// eliminated from the CCG by Simplify -- is treated as value 0.
func (in *Instance) ComputeTotalWeight(assignment map[int]int) float64 {
	total := 0.0
	for _, c := range in.Constraints {
		vals := make([]int, len(c.NonBooleanVars))
		for i, v := range c.NonBooleanVars {
			vals[i] = assignment[v] // zero value on miss, matching the fallback
		}
		total += c.NBWeight(vals)
	}
	return total
}
