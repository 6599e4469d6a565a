package wcsp

import (
	"io"
	"math"
)

// LoadDimacs parses a WCSP instance in the DIMACS format described at
// http://graphmod.ics.uci.edu/group/WCSP_file_format: a header line
// (name, variable count, max domain size, constraint count, global
// upper bound -- the max domain size and upper bound are read and
// discarded), a line of
// per-variable domain sizes, then one block per constraint: an arity
// line (arity, variable ids, default cost, tuple count) followed by
// that many (values..., cost) tuple lines.
//
// A non-zero default cost is filled across every finite-domain tuple and
// every Boolean bit-vector of the constraint before the listed tuples
// override their entries.
func LoadDimacs(r io.Reader) (*Instance, error) {
	tz := newTokenizer(r)

	if _, err := tz.next(); err != nil { // problem name
		return nil, err
	}
	nv, err := tz.nextInt()
	if err != nil {
		return nil, err
	}
	if _, err := tz.nextInt(); err != nil { // max domain size, unused: domain
		return nil, err // sizes are read explicitly below per variable
	}
	nc, err := tz.nextInt()
	if err != nil {
		return nil, err
	}
	if _, err := tz.next(); err != nil { // global upper bound, ignored
		return nil, err
	}

	domainSizes := make([]int, nv)
	for i := range domainSizes {
		d, err := tz.nextInt()
		if err != nil {
			return nil, err
		}
		domainSizes[i] = d
	}

	inst := NewInstance(domainSizes)
	blocks := inst.Blocks()

	for i := 0; i < nc; i++ {
		arity, err := tz.nextInt()
		if err != nil {
			return nil, err
		}

		nonBool := make([]int, arity)
		var boolVars []int
		for j := 0; j < arity; j++ {
			vid, err := tz.nextInt()
			if err != nil {
				return nil, err
			}
			nonBool[j] = vid
			boolVars = append(boolVars, blocks[vid]...)
		}

		c := NewConstraint(nonBool, boolVars)

		defaultCost, err := tz.nextFloat()
		if err != nil {
			return nil, err
		}
		if math.Abs(defaultCost) > 1e-6 {
			c.FillDefault(defaultCost)
			tupleDomains := make([]int, arity)
			for j, vid := range nonBool {
				tupleDomains[j] = domainSizes[vid]
			}
			for _, vals := range cartesianProduct(tupleDomains) {
				c.SetNBWeight(vals, defaultCost)
			}
		}

		ntuples, err := tz.nextInt()
		if err != nil {
			return nil, err
		}

		for j := 0; j < ntuples; j++ {
			vals := make([]int, arity)
			var bits []bool
			for k := 0; k < arity; k++ {
				val, err := tz.nextInt()
				if err != nil {
					return nil, err
				}
				vals[k] = val
				bits = append(bits, EncodeBlock(val, len(blocks[nonBool[k]]))...)
			}
			cost, err := tz.nextFloat()
			if err != nil {
				return nil, err
			}
			c.SetNBWeight(vals, cost)
			c.SetBoolWeight(packBits(bits), cost)
		}

		inst.AddConstraint(c)
	}

	return inst, nil
}
