package ccg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandofioretto/wcsplift/poly"
)

// TestAddPolynomial_SingleBinaryUnary checks the smallest case: a single
// binary variable, w(0)=0, w(1)=5, accumulates to a polynomial with a
// single linear term of coefficient 5, and should become one Variable
// vertex of weight 5 with no auxiliary vertices.
func TestAddPolynomial_SingleBinaryUnary(t *testing.T) {
	p := poly.New()
	p.Add([]int{0}, 5)

	g := NewGraph()
	residual := g.AddPolynomial(p)

	assert.Equal(t, 0.0, residual)
	require.Equal(t, 1, g.NumVertices())
	require.Equal(t, 0, g.NumEdges())

	h, ok := g.Lookup(0)
	require.True(t, ok)
	v := g.VertexAt(h)
	require.NotNil(t, v)
	assert.Equal(t, Variable, v.Kind)
	assert.Equal(t, 5.0, v.Weight)
}

// TestAddPolynomial_XORLikeTable covers both gadget branches at once: an
// XOR-like table over two binary variables accumulates to c_a=2, c_b=2,
// c_{a,b}=-4. The two linear terms become Variable vertices of weight 2
// each; the -4
// quadratic term becomes one AuxType1 vertex of weight 4 connected to
// both variables.
func TestAddPolynomial_XORLikeTable(t *testing.T) {
	p := poly.New()
	p.Add([]int{0}, 2)
	p.Add([]int{1}, 2)
	p.Add([]int{0, 1}, -4)

	g := NewGraph()
	residual := g.AddPolynomial(p)

	assert.Equal(t, -4.0, residual) // AddConstant(-4) fired once for the negative quadratic term
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 2, g.NumEdges())

	ha, _ := g.Lookup(0)
	hb, _ := g.Lookup(1)
	assert.Equal(t, 2.0, g.VertexAt(ha).Weight)
	assert.Equal(t, 2.0, g.VertexAt(hb).Weight)

	var auxHandle int
	found := false
	for _, h := range g.Vertices() {
		if g.VertexAt(h).Kind == AuxType1 {
			auxHandle = h
			found = true
		}
	}
	require.True(t, found)
	assert.Equal(t, 4.0, g.VertexAt(auxHandle).Weight)

	neighbors := g.Neighbors(auxHandle)
	assert.ElementsMatch(t, []int{ha, hb}, neighbors)
}

// TestAddPolynomial_NonNegativeHigherOrderTerm exercises the L-trick
// gadget for a non-negative term on 3 variables: it must push coefficient
// L=w+1 onto the first variable and w onto the rest of the tuple, both of
// which get picked up later in the same descending pass, and must wire an
// AuxType1/AuxType2 pair.
func TestAddPolynomial_NonNegativeHigherOrderTerm(t *testing.T) {
	p := poly.New()
	p.Add([]int{0, 1, 2}, 3) // w=3, non-negative, |S|=3

	g := NewGraph()
	g.AddPolynomial(p)

	h0, ok := g.Lookup(0)
	require.True(t, ok)
	h1, ok := g.Lookup(1)
	require.True(t, ok)
	h2, ok := g.Lookup(2)
	require.True(t, ok)

	// L = w+1 = 4 landed on var 0; w = 3 landed on the {1,2} pair, which
	// in turn rewrites again (negative? no, 3 is non-negative on |S|=2,
	// so it recurses through the L-trick once more at cardinality 2).
	assert.Equal(t, 4.0, g.VertexAt(h0).Weight)

	var aux1, aux2 []int
	for _, h := range g.Vertices() {
		switch g.VertexAt(h).Kind {
		case AuxType1:
			aux1 = append(aux1, h)
		case AuxType2:
			aux2 = append(aux2, h)
		}
	}
	// One gadget pair for the cardinality-3 term, one more for the
	// cardinality-2 {1,2} term it spawned.
	assert.Len(t, aux1, 2)
	assert.Len(t, aux2, 2)

	_ = h1
	_ = h2
}

// TestAddPolynomial_SkipsNegligibleCoefficients ensures a term whose
// coefficient falls below the epsilon floor never creates a vertex.
func TestAddPolynomial_SkipsNegligibleCoefficients(t *testing.T) {
	p := poly.New()
	p.Add([]int{0}, 1e-9)

	g := NewGraph()
	g.AddPolynomial(p)

	assert.Equal(t, 0, g.NumVertices())
}

func TestAddCliques_BuildsCliqueAmongBlockVariables(t *testing.T) {
	p := poly.New()
	p.Add([]int{0}, 1)
	p.Add([]int{1}, 1)
	p.Add([]int{2}, 1)

	g := NewGraph()
	g.AddPolynomial(p)
	g.AddCliques([][]int{{0, 1, 2}})

	assert.Equal(t, 3, g.NumEdges()) // triangle
}

// TestAddCliques_SkipsBlockWithUnreferencedVariable covers the "skipped
// silently" behavior: a block naming a Boolean id that never appeared in
// any polynomial term must not abort cliques for the blocks around it.
func TestAddCliques_SkipsBlockWithUnreferencedVariable(t *testing.T) {
	p := poly.New()
	p.Add([]int{0}, 1)
	p.Add([]int{1}, 1)

	g := NewGraph()
	g.AddPolynomial(p)

	// Block {0, 99} references an id (99) never seen by AddPolynomial;
	// block {0, 1} is well-formed and must still get its edge.
	g.AddCliques([][]int{{0, 99}, {0, 1}})

	h0, _ := g.Lookup(0)
	h1, _ := g.Lookup(1)
	assert.Equal(t, 1, g.NumEdges())
	assert.ElementsMatch(t, []int{h1}, g.Neighbors(h0))
}

func TestAddCliques_SkipsSingletonAndEmptyBlocks(t *testing.T) {
	p := poly.New()
	p.Add([]int{0}, 1)

	g := NewGraph()
	g.AddPolynomial(p)
	g.AddCliques([][]int{{0}, {}})

	assert.Equal(t, 0, g.NumEdges())
}

func TestSimplify_RemovesNearZeroWeightVertices(t *testing.T) {
	p := poly.New()
	p.Add([]int{0}, 1e-7) // below epsilon on its own, but see note below
	p.Add([]int{1}, 5)

	g := NewGraph()
	g.AddPolynomial(p) // the 1e-7 term never even creates a vertex

	// Force a vertex into existence with a weight that only becomes
	// negligible after the fact, mirroring a vertex whose weight was
	// whittled down by earlier rewrites.
	h := g.addOrGetVariable(2)
	g.vertices[h].Weight = 1e-8

	out := make(map[int]bool)
	g.Simplify(out)

	assert.False(t, g.IsAlive(h))
	assert.Equal(t, false, out[2])

	h1, _ := g.Lookup(1)
	assert.True(t, g.IsAlive(h1))
	assert.NotContains(t, out, 1)
}

func TestSimplify_LeavesAuxVerticesWithSubstantialWeightAlone(t *testing.T) {
	p := poly.New()
	p.Add([]int{0}, 2)
	p.Add([]int{1}, 2)
	p.Add([]int{0, 1}, -4)

	g := NewGraph()
	g.AddPolynomial(p)

	out := make(map[int]bool)
	g.Simplify(out)

	assert.Equal(t, 3, g.NumVertices())
	assert.Empty(t, out)
}

// TestWriteDimacs_RoundTripsVertexAndEdgeCounts round-trips a dump:
// dumping with renumber=true, then reloading with ReadDimacs, must
// recover a vertex count, edge count, and edge multiset (in the dump's
// own dense-id space) equal to the live graph's -- not merely consistent
// with the buffer WriteDimacs just produced.
func TestWriteDimacs_RoundTripsVertexAndEdgeCounts(t *testing.T) {
	p := poly.New()
	p.Add([]int{0}, 2)
	p.Add([]int{1}, 2)
	p.Add([]int{0, 1}, -4)

	g := NewGraph()
	g.AddPolynomial(p)

	var buf bytes.Buffer
	require.NoError(t, g.WriteDimacs(&buf, true))

	parsed, err := ReadDimacs(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.NumVertices(), parsed.NumVertices)
	assert.Equal(t, g.NumEdges(), parsed.NumEdges)
	assert.Len(t, parsed.Edges, g.NumEdges())
	assert.Len(t, parsed.Weights, g.NumVertices())

	// Recompute the same dense numbering WriteDimacs used (vertex-creation
	// order, 1-based) independently of the dump, and check the reloaded
	// edge multiset and weights agree with it vertex by vertex.
	handles := g.Vertices()
	dense := make(map[int]int, len(handles))
	for i, h := range handles {
		dense[h] = i + 1
	}
	for _, h := range handles {
		assert.InDelta(t, g.VertexAt(h).Weight, parsed.Weights[dense[h]], 1e-9)
	}

	wantEdges := make(map[edgeKey]bool)
	for _, e := range sortedEdges(g, handles) {
		a, b := dense[e[0]], dense[e[1]]
		if a > b {
			a, b = b, a
		}
		wantEdges[edgeKey{a, b}] = true
	}
	gotEdges := make(map[edgeKey]bool, len(parsed.Edges))
	for _, e := range parsed.Edges {
		gotEdges[e] = true
	}
	assert.Equal(t, wantEdges, gotEdges)

	// The vertex-type mapping block round-trips each dense id back to
	// the raw id WriteDimacs computed it from.
	for _, h := range handles {
		assert.Equal(t, rawID(g.VertexAt(h)), parsed.RawIDs[dense[h]])
	}
}

// TestReadDimacs_NonRenumberedHasNoMapping checks that a non-renumbered
// dump (raw, possibly negative ids on "v"/"e" lines, no type-mapping
// block) still parses, just without RawIDs populated.
func TestReadDimacs_NonRenumberedHasNoMapping(t *testing.T) {
	p := poly.New()
	p.Add([]int{0, 1}, -4)

	g := NewGraph()
	g.AddPolynomial(p)

	var buf bytes.Buffer
	require.NoError(t, g.WriteDimacs(&buf, false))

	parsed, err := ReadDimacs(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.NumVertices(), parsed.NumVertices)
	assert.Equal(t, g.NumEdges(), parsed.NumEdges)
	assert.Empty(t, parsed.RawIDs)
}

// TestReadDimacs_MalformedLineIsRejected checks that ReadDimacs surfaces
// ErrMalformedDump rather than silently ignoring or panicking on a
// corrupt line.
func TestReadDimacs_MalformedLineIsRejected(t *testing.T) {
	_, err := ReadDimacs(strings.NewReader("p edges 1 0\nv 1 notanumber\n"))
	assert.ErrorIs(t, err, ErrMalformedDump)
}

func TestWriteDimacs_NonRenumberedUsesRawSignedIDs(t *testing.T) {
	p := poly.New()
	p.Add([]int{0, 1}, -4) // negative quadratic term -> one AuxType1 vertex

	g := NewGraph()
	g.AddPolynomial(p)

	var buf bytes.Buffer
	require.NoError(t, g.WriteDimacs(&buf, false))
	assert.Contains(t, buf.String(), "v -1 ")
	assert.NotContains(t, buf.String(), "vertex types")
}
