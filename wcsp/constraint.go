package wcsp

import (
	"strconv"
	"strings"
)

// Constraint is one weighted local constraint: an ordered tuple of
// finite-domain variables plus their concatenated Boolean-indicator
// blocks, and two equivalent weight tables over the same tuples --
// one indexed by finite-domain values (used by ComputeTotalWeight), one
// indexed by a Boolean bit-vector (used by the Polynomial Builder).
//
// A Constraint is built via NewConstraint then populated with
// SetNBWeight/SetBoolWeight calls; nothing after that point mutates it.
type Constraint struct {
	// NonBooleanVars is the ordered list of finite-domain variable ids
	// (arity a).
	NonBooleanVars []int

	// BoolVars is the ordered list of Boolean variable ids: the
	// concatenation of the corresponding blocks, in NonBooleanVars order.
	BoolVars []int

	nbWeights   map[string]float64
	boolWeights map[uint64]float64
}

// NewConstraint returns a Constraint over the given variable tuples with
// empty weight tables.
func NewConstraint(nonBooleanVars, boolVars []int) *Constraint {
	return &Constraint{
		NonBooleanVars: nonBooleanVars,
		BoolVars:       boolVars,
		nbWeights:      make(map[string]float64),
		boolWeights:    make(map[uint64]float64),
	}
}

func nbKey(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// SetNBWeight records the weight for a tuple of finite-domain values,
// one per entry of NonBooleanVars, in order.
func (c *Constraint) SetNBWeight(vals []int, w float64) {
	c.nbWeights[nbKey(vals)] = w
}

// NBWeight returns the weight recorded for vals, or 0 if unlisted.
func (c *Constraint) NBWeight(vals []int) float64 {
	return c.nbWeights[nbKey(vals)]
}

// SetBoolWeight records the weight for a Boolean bit-vector over
// BoolVars, packed one bit per index (bit i <=> BoolVars[i]).
func (c *Constraint) SetBoolWeight(mask uint64, w float64) {
	c.boolWeights[mask] = w
}

// BoolWeight returns the weight recorded for mask, or 0 if unlisted.
func (c *Constraint) BoolWeight(mask uint64) float64 {
	return c.boolWeights[mask]
}

// FillDefault sets every bit-vector over BoolVars to w, used by the
// DIMACS loader's non-zero default-cost tuples before specific entries
// are overridden. Only meaningful while len(BoolVars) fits a uint64.
func (c *Constraint) FillDefault(w float64) {
	n := uint64(1) << uint(len(c.BoolVars))
	for m := uint64(0); m < n; m++ {
		c.boolWeights[m] = w
	}
}
