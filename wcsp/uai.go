package wcsp

import (
	"io"
	"math"
)

// LoadUAI parses a WCSP instance in the UAI format described at
// http://www.hlt.utdallas.edu/~vgogate/uai14-competition/modelformat.html:
// a "MARKOV" marker, the variable count, per-variable domain sizes, the
// constraint (factor) count, one arity+scope line per constraint, then
// one probability table per constraint.
//
// UAI lists each constraint's scope "backwards" relative to how its
// table is mixed-radix indexed (the last declared variable changes
// fastest), so the scope is reversed once at load and the table walked
// with the reversed order's first variable as the fastest digit.
//
// Table entries are probabilities; they are converted to costs via
// -log(p / sum(row)), clamped to 1e6 when the result is not finite
// (p == 0).
func LoadUAI(r io.Reader) (*Instance, error) {
	tz := newTokenizer(r)

	if _, err := tz.next(); err != nil { // "MARKOV"
		return nil, err
	}
	nv, err := tz.nextInt()
	if err != nil {
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

	nc, err := tz.nextInt()
	if err != nil {
		return nil, err
	}

	inst := NewInstance(domainSizes)
	blocks := inst.Blocks()
	constraints := make([]*Constraint, nc)

	for i := 0; i < nc; i++ {
		arity, err := tz.nextInt()
		if err != nil {
			return nil, err
		}
		fileOrder := make([]int, arity)
		for j := 0; j < arity; j++ {
			vid, err := tz.nextInt()
			if err != nil {
				return nil, err
			}
			fileOrder[j] = vid
		}

		nonBool := make([]int, arity)
		var boolVars []int
		for j, vid := range fileOrder {
			nonBool[arity-1-j] = vid
		}
		for _, vid := range nonBool {
			boolVars = append(boolVars, blocks[vid]...)
		}

		constraints[i] = NewConstraint(nonBool, boolVars)
	}

	for i := 0; i < nc; i++ {
		c := constraints[i]

		ntuples, err := tz.nextInt()
		if err != nil {
			return nil, err
		}
		probs := make([]float64, ntuples)
		sum := 0.0
		for j := range probs {
			p, err := tz.nextFloat()
			if err != nil {
				return nil, err
			}
			probs[j] = p
			sum += p
		}

		for j := 0; j < ntuples; j++ {
			cost := -math.Log(probs[j] / sum)
			if math.IsInf(cost, 0) || math.IsNaN(cost) {
				cost = 1e6
			}

			vals := make([]int, len(c.NonBooleanVars))
			var bits []bool
			j0 := j
			for k, vid := range c.NonBooleanVars {
				d := len(blocks[vid]) + 1
				curVal := j0 % d
				vals[k] = curVal
				bits = append(bits, EncodeBlock(curVal, len(blocks[vid]))...)
				j0 /= d
			}

			c.SetNBWeight(vals, cost)
			c.SetBoolWeight(packBits(bits), cost)
		}

		inst.AddConstraint(c)
	}

	return inst, nil
}
