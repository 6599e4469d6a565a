package ccg

import (
	"math"

	"github.com/nandofioretto/wcsplift/poly"
)

// coefEpsilon is the floor below which a polynomial coefficient is
// treated as exactly zero, both while walking terms in AddPolynomial and
// later in Simplify.
const coefEpsilon = 1e-6

// AddPolynomial walks p from its highest term cardinality down to 1,
// rewriting every non-constant, non-negligible term into CCG vertices and
// edges, and returns the residual constant accumulated in p's constant
// term once every rewrite has fired.
//
// Terms are read fresh from p at the moment each cardinality is visited,
// not snapshotted up front: the |S|>=2, non-negative branch below pushes
// new mass onto lower-cardinality terms of the same Polynomial (coefficient
// L onto a singleton, w onto the rest of the tuple), and those pushes must
// be picked up when the loop reaches their cardinality. Because every
// rewrite strictly decreases the cardinality of the term it touches, a
// single descending pass with no cardinality visited twice is enough: a
// term can only be mutated by a rewrite that happens earlier in the pass.
//
// Multiple constraints sharing one Polynomial must each have contributed
// via poly.AccumulateConstraint before AddPolynomial runs, so this call
// sees the fully summed coefficients once, not per-constraint.
func (g *Graph) AddPolynomial(p *poly.Polynomial) float64 {
	cards := p.CardinalitiesDescending()
	maxCard := 0
	if len(cards) > 0 {
		maxCard = cards[0]
	}

	for card := maxCard; card >= 1; card-- {
		for _, term := range p.TermsAt(card) {
			w := term.Coef
			if math.Abs(w) < coefEpsilon {
				continue
			}
			vars := term.Vars

			if len(vars) == 1 {
				h := g.addOrGetVariable(vars[0])
				if w >= 0 {
					g.vertices[h].Weight += w
					continue
				}
				a := g.addAux(AuxType1, -w)
				g.AddEdge(h, a)
				continue
			}

			handles := make([]int, len(vars))
			for i, v := range vars {
				handles[i] = g.addOrGetVariable(v)
			}

			if w < 0 {
				weight := -w
				p.AddConstant(-weight)
				a := g.addAux(AuxType1, weight)
				for _, h := range handles {
					g.AddEdge(h, a)
				}
				continue
			}

			// Non-negative term on |S|>=2 variables: the "L-trick" gadget.
			// L is chosen strictly greater than w so the thorn vertex
			// always dominates the flower root in any optimal cover,
			// forcing the cover to pay for v1 through the thorn link
			// exactly when the original term would have.
			l := w + 1
			p.AddConstant(-(l + w))
			p.Add([]int{vars[0]}, l)
			p.Add(vars[1:], w)

			root := g.addAux(AuxType1, w)
			thorn := g.addAux(AuxType2, l)
			g.AddEdge(root, thorn)
			g.AddEdge(thorn, handles[0])
			for _, h := range handles[1:] {
				g.AddEdge(root, h)
			}
		}
	}

	return p.ConstantTerm()
}

// AddCliques turns every domain-variable's block of Boolean indicator ids
// into a clique of edges among their Variable vertices: at most one
// indicator in a block may be false in any consistent encoding, so every
// pair must be tied together. Blocks of size 0 or 1 need no
// clique and are skipped. A block referencing a Boolean id that was never
// created by AddPolynomial (the variable never appeared in any
// constraint) is skipped silently rather than aborting the remaining
// blocks.
func (g *Graph) AddCliques(blocks [][]int) {
	for _, block := range blocks {
		if len(block) <= 1 {
			continue
		}
		handles := make([]int, 0, len(block))
		skip := false
		for _, id := range block {
			h, ok := g.varIndex[id]
			if !ok {
				skip = true
				break
			}
			handles = append(handles, h)
		}
		if skip {
			continue
		}
		for i := 0; i < len(handles); i++ {
			for j := i + 1; j < len(handles); j++ {
				g.AddEdge(handles[i], handles[j])
			}
		}
	}
}

// Simplify removes every vertex whose weight has collapsed to (within
// coefEpsilon of) zero: such a vertex can never improve a minimum weighted
// vertex cover by being included, so it contributes nothing and is
// dropped to shrink the graph the kernelizer and MWVC solver see. Removed
// Variable vertices are recorded in out with value false: a zero-weight
// variable vertex is never selected by any MWVC, so its indicator decodes
// to 0 regardless of what the rest of the solve concludes.
func (g *Graph) Simplify(out map[int]bool) {
	for h, v := range g.vertices {
		if v == nil || !v.alive {
			continue
		}
		if math.Abs(v.Weight) >= coefEpsilon {
			continue
		}
		if v.Kind == Variable {
			out[v.BoolVar] = false
		}
		g.RemoveVertex(h)
	}
}
