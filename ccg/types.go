package ccg

// VertexKind distinguishes the Variable vertices of the CCG (one per
// Boolean indicator) from the two auxiliary kinds the polynomial-to-graph
// rewrite introduces.
type VertexKind int

const (
	// Variable carries a WCSP Boolean indicator id.
	Variable VertexKind = iota
	// AuxType1 is the "flower root" auxiliary vertex.
	AuxType1
	// AuxType2 is the "thorn" auxiliary vertex, only ever paired with an
	// AuxType1 vertex.
	AuxType2
)

func (k VertexKind) String() string {
	switch k {
	case Variable:
		return "variable"
	case AuxType1:
		return "aux1"
	case AuxType2:
		return "aux2"
	default:
		return "unknown"
	}
}

// Vertex is one slot of a Graph's arena. BoolVar is meaningful only when
// Kind is Variable.
type Vertex struct {
	Kind    VertexKind
	BoolVar int
	Weight  float64

	alive     bool
	neighbors map[int]struct{}
}

// Graph is the Constraint Composite Graph under construction. Vertices
// are addressed by a stable integer handle returned at creation; removing
// a vertex tombstones its slot rather than shifting other handles.
type Graph struct {
	vertices []*Vertex
	varIndex map[int]int // Boolean id -> handle, Variable vertices only
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{varIndex: make(map[int]int)}
}

func (g *Graph) addVertex(v Vertex) int {
	v.alive = true
	if v.neighbors == nil {
		v.neighbors = make(map[int]struct{})
	}
	g.vertices = append(g.vertices, &v)
	return len(g.vertices) - 1
}

// addOrGetVariable returns the handle of the Variable vertex for boolVar,
// creating it with zero weight on first reference.
func (g *Graph) addOrGetVariable(boolVar int) int {
	if h, ok := g.varIndex[boolVar]; ok {
		return h
	}
	h := g.addVertex(Vertex{Kind: Variable, BoolVar: boolVar})
	g.varIndex[boolVar] = h
	return h
}

// addAux creates a fresh auxiliary vertex of the given kind and weight.
func (g *Graph) addAux(kind VertexKind, weight float64) int {
	return g.addVertex(Vertex{Kind: kind, Weight: weight})
}

// AddEdge connects u and v. A self-loop is a no-op; an existing edge is
// left untouched.
func (g *Graph) AddEdge(u, v int) {
	if u == v {
		return
	}
	if _, ok := g.vertices[u].neighbors[v]; ok {
		return
	}
	g.vertices[u].neighbors[v] = struct{}{}
	g.vertices[v].neighbors[u] = struct{}{}
}

// RemoveVertex tombstones h: every incident edge is dropped and h stops
// appearing in Vertices, but h itself remains a valid (dead) handle.
func (g *Graph) RemoveVertex(h int) {
	v := g.vertices[h]
	if v == nil || !v.alive {
		return
	}
	for n := range v.neighbors {
		delete(g.vertices[n].neighbors, h)
	}
	v.alive = false
	v.neighbors = nil
}

// IsAlive reports whether h names a live vertex.
func (g *Graph) IsAlive(h int) bool {
	return h >= 0 && h < len(g.vertices) && g.vertices[h] != nil && g.vertices[h].alive
}

// VertexAt returns the vertex at handle h, or nil if h is out of range or
// dead. Callers in this package's own tests may mutate the returned
// pointer's Weight directly; external callers should prefer the
// accessor methods below.
func (g *Graph) VertexAt(h int) *Vertex {
	if !g.IsAlive(h) {
		return nil
	}
	return g.vertices[h]
}

// Lookup returns the handle of the Variable vertex for boolVar, if one
// has ever been created.
func (g *Graph) Lookup(boolVar int) (int, bool) {
	h, ok := g.varIndex[boolVar]
	return h, ok
}

// VertexInfo returns h's kind, Boolean id (meaningful only for Variable),
// and weight regardless of whether h is still alive: RemoveVertex clears
// a slot's adjacency but never its identity, so callers that need to
// resolve a handle decided by a kernelization or MWVC pass back to a
// Boolean indicator after the vertex was removed can still do so.
func (g *Graph) VertexInfo(h int) (kind VertexKind, boolVar int, weight float64, ok bool) {
	if h < 0 || h >= len(g.vertices) || g.vertices[h] == nil {
		return 0, 0, 0, false
	}
	v := g.vertices[h]
	return v.Kind, v.BoolVar, v.Weight, true
}

// Vertices returns the handles of every live vertex, in ascending handle
// (creation) order.
func (g *Graph) Vertices() []int {
	out := make([]int, 0, len(g.vertices))
	for h, v := range g.vertices {
		if v != nil && v.alive {
			out = append(out, h)
		}
	}
	return out
}

// Neighbors returns the handles adjacent to h.
func (g *Graph) Neighbors(h int) []int {
	v := g.vertices[h]
	out := make([]int, 0, len(v.neighbors))
	for n := range v.neighbors {
		out = append(out, n)
	}
	return out
}

// NumVertices returns the number of live vertices.
func (g *Graph) NumVertices() int {
	n := 0
	for _, v := range g.vertices {
		if v != nil && v.alive {
			n++
		}
	}
	return n
}

// NumEdges returns the number of live undirected edges.
func (g *Graph) NumEdges() int {
	total := 0
	for _, v := range g.vertices {
		if v != nil && v.alive {
			total += len(v.neighbors)
		}
	}
	return total / 2
}
