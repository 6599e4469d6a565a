package poly

import (
	"sort"
	"strconv"
	"strings"
)

// Term is one monomial of a Polynomial: a coefficient on the product of
// the indicator variables in Vars (ascending, deduplicated Boolean ids).
// An empty Vars slice is the constant term.
type Term struct {
	Vars []int
	Coef float64
}

// Polynomial accumulates monomials contributed by every constraint of a
// WCSP instance into one shared map, bucketed by term cardinality so the
// CCG builder can walk it from highest cardinality down to the constant
// term, descending with lexicographic tie-break within a cardinality.
// Terms are shared *Term pointers between the flat index
// and the per-cardinality buckets, so mutating a coefficient through
// either view is visible to the other.
type Polynomial struct {
	index  map[string]*Term
	byCard map[int]map[string]*Term
}

// New returns an empty Polynomial.
func New() *Polynomial {
	return &Polynomial{
		index:  make(map[string]*Term),
		byCard: make(map[int]map[string]*Term),
	}
}

func key(vars []int) string {
	if len(vars) == 0 {
		return ""
	}
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func sortedCopy(vars []int) []int {
	cp := make([]int, len(vars))
	copy(cp, vars)
	sort.Ints(cp)
	return cp
}

// Add accumulates delta onto the coefficient of the monomial over vars
// (order-independent; duplicates in vars are an error by the caller's
// construction, not deduplicated here). Creating a new term when one
// does not yet exist starts its coefficient at 0 before adding delta.
func (p *Polynomial) Add(vars []int, delta float64) {
	sorted := sortedCopy(vars)
	k := key(sorted)
	t, ok := p.index[k]
	if !ok {
		t = &Term{Vars: sorted}
		p.index[k] = t
		card := len(sorted)
		if p.byCard[card] == nil {
			p.byCard[card] = make(map[string]*Term)
		}
		p.byCard[card][k] = t
	}
	t.Coef += delta
}

// Set overwrites the coefficient of the monomial over vars, creating the
// term if absent.
func (p *Polynomial) Set(vars []int, coef float64) {
	sorted := sortedCopy(vars)
	k := key(sorted)
	t, ok := p.index[k]
	if !ok {
		t = &Term{Vars: sorted}
		p.index[k] = t
		card := len(sorted)
		if p.byCard[card] == nil {
			p.byCard[card] = make(map[string]*Term)
		}
		p.byCard[card][k] = t
	}
	t.Coef = coef
}

// Coef returns the coefficient of the monomial over vars, or 0 if the
// term has never been touched.
func (p *Polynomial) Coef(vars []int) float64 {
	t, ok := p.index[key(sortedCopy(vars))]
	if !ok {
		return 0
	}
	return t.Coef
}

// ConstantTerm returns the coefficient of the empty-set monomial.
func (p *Polynomial) ConstantTerm() float64 {
	return p.Coef(nil)
}

// AddConstant accumulates delta onto the constant term.
func (p *Polynomial) AddConstant(delta float64) {
	p.Add(nil, delta)
}

// CardinalitiesDescending returns every cardinality with at least one
// term, sorted from highest to lowest.
func (p *Polynomial) CardinalitiesDescending() []int {
	cards := make([]int, 0, len(p.byCard))
	for c := range p.byCard {
		cards = append(cards, c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(cards)))
	return cards
}

// TermsAt returns the terms of the given cardinality, ordered
// lexicographically by their (sorted) variable-id tuple -- the tie-break
// the CCG builder's iteration order depends on.
func (p *Polynomial) TermsAt(card int) []*Term {
	bucket := p.byCard[card]
	terms := make([]*Term, 0, len(bucket))
	for _, t := range bucket {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		return lexLess(terms[i].Vars, terms[j].Vars)
	})
	return terms
}

func lexLess(a, b []int) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
