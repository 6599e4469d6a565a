package mwvc

import (
	"context"
	"math"
	"math/rand"
	"sort"

	"github.com/nandofioretto/wcsplift/ccg"
	"github.com/nandofioretto/wcsplift/clock"
)

const (
	maxIterations          = 5000
	dampingEarly           = 0.9
	dampingLate            = 0.7
	dampingSwitchIteration = 200
)

// edgeDir is a directed message slot: the message vertex "from" sends to
// vertex "to".
type edgeDir struct {
	from, to int
}

// belief is the two-valued min-sum message/belief pair: index 0 is the
// cost contribution assuming the vertex is excluded from the cover,
// index 1 assuming it is included.
type belief struct {
	m0, m1 float64
}

// Scorer decodes a round's CCG-handle-keyed cover decision into the
// quantity Solve should minimize when picking the best-so-far round --
// normally the WCSP's own total weight for the finite-domain assignment
// that decision implies, via wcsp.Instance.ComputeTotalWeight. mwvc has
// no dependency on wcsp or decode, so the caller supplies this as a
// closure (see cmd/wcsplift/main.go) rather than Solve importing either
// package directly.
//
// If no Scorer is configured, Solve falls back to the sum of the CCG
// vertex weights the round's cover includes -- the same quantity the LP
// solver reports -- still a best-so-far policy, just over a coarser
// quantity than the WCSP's own objective.
type Scorer func(coverAssignment map[int]bool) float64

// MessagePassing approximates a Minimum Weighted Vertex Cover by damped
// min-sum message passing over the CCG's edges, injecting small uniform
// random noise each round to break symmetric ties between equally good
// local decisions.
//
// Every round decodes a full cover from the current messages and scores
// it with Scorer; Solve keeps the lowest-scoring round seen so far and
// reports that one, not whichever round happened to run last.
// Result.Converged and Result.TimedOut still describe the process as a
// whole (the final round's message-stability and finite-decode reads,
// and whether the deadline cut the loop short), not the best round
// specifically.
type MessagePassing struct {
	delta  float64
	rng    *rand.Rand
	scorer Scorer
}

// MessagePassingOption configures optional MessagePassing behavior.
type MessagePassingOption func(*MessagePassing)

// WithScorer supplies the function Solve uses to score each round's
// decoded cover when tracking the best-so-far result. Omitting it makes
// Solve fall back to the CCG cover-weight sum; see Scorer's doc comment.
func WithScorer(scorer Scorer) MessagePassingOption {
	return func(s *MessagePassing) { s.scorer = scorer }
}

// NewMessagePassing returns a MessagePassing with the given convergence
// threshold. A seed of 0 seeds the noise generator from the wall clock;
// pass a non-zero seed to pin it for reproducible tests.
func NewMessagePassing(delta float64, seed int64, opts ...MessagePassingOption) *MessagePassing {
	s := &MessagePassing{delta: delta, rng: seededRNG(seed)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MessagePassing) Solve(ctx context.Context, g *ccg.Graph, deadline clock.Deadline) (Result, error) {
	handles := g.Vertices()
	if len(handles) == 0 {
		return Result{Assignment: map[int]bool{}, Converged: true}, nil
	}

	msgs := make(map[edgeDir]belief)
	for _, h := range handles {
		for _, n := range g.Neighbors(h) {
			msgs[edgeDir{h, n}] = belief{}
			msgs[edgeDir{n, h}] = belief{}
		}
	}
	// Update messages in a fixed order so a pinned seed draws the same
	// noise for the same directed edge on every run.
	keys := make([]edgeDir, 0, len(msgs))
	for k := range msgs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].to < keys[j].to
	})

	bestAssignment := make(map[int]bool)
	var (
		bestScore  float64
		haveBest   bool
		converged  bool
		iterations int
	)

	for {
		if deadline.Reached() {
			break
		}
		iterations++

		prev := make(map[edgeDir]belief, len(msgs))
		for k, v := range msgs {
			prev[k] = v
		}
		next := make(map[edgeDir]belief, len(msgs))

		alpha := dampingEarly
		if iterations >= dampingSwitchIteration {
			alpha = dampingLate
		}

		msgConverged := true
		for _, key := range keys {
			vFrom, vTo := key.from, key.to
			w := g.VertexAt(vFrom).Weight

			// m0 prices vTo staying out of the cover, which forces vFrom
			// in: vFrom pays its own weight plus every other neighbor's
			// message for vFrom covered. m1 prices vTo covered, leaving
			// vFrom free to take the cheaper of its two states.
			m0 := w
			sum0 := 0.0
			for _, n := range g.Neighbors(vFrom) {
				if n == vTo {
					continue
				}
				nb := prev[edgeDir{n, vFrom}]
				m0 += nb.m1
				sum0 += nb.m0
			}
			m1 := math.Min(sum0, m0)

			old := prev[key]
			m0 = old.m0*alpha + m0*(1-alpha)
			m1 = old.m1*alpha + m1*(1-alpha)

			// Uniform {1, 2} noise breaks symmetric ties between
			// equally-weighted local decisions.
			m0 += float64(s.rng.Intn(2) + 1)
			m1 += float64(s.rng.Intn(2) + 1)

			floor := math.Min(m0, m1)
			m0 -= floor
			m1 -= floor

			next[key] = belief{m0, m1}

			if msgConverged && (math.Abs(old.m0-m0) > s.delta || math.Abs(old.m1-m1) > s.delta) {
				msgConverged = false
			}
		}
		msgs = next

		roundAssignment := make(map[int]bool, len(handles))
		var roundWeight float64
		decodeConverged := true
		for _, v := range handles {
			var min0, min1 float64
			for _, n := range g.Neighbors(v) {
				m := msgs[edgeDir{n, v}]
				min0 += m.m0
				min1 += m.m1
			}
			min1 += g.VertexAt(v).Weight

			if math.IsInf(min0, 0) || math.IsInf(min1, 0) {
				decodeConverged = false
			}
			if min0 > min1 {
				roundAssignment[v] = true
				roundWeight += g.VertexAt(v).Weight
			} else {
				roundAssignment[v] = false
			}
		}

		score := roundWeight
		if s.scorer != nil {
			score = s.scorer(roundAssignment)
		}
		if !haveBest || score < bestScore {
			bestAssignment = roundAssignment
			bestScore = score
			haveBest = true
		}

		// Report not-converged if either the message-update pass or the
		// decode pass says so.
		converged = msgConverged && decodeConverged

		if converged || iterations >= maxIterations {
			break
		}
	}

	return Result{
		Assignment: bestAssignment,
		Weight:     bestScore,
		Converged:  converged,
		TimedOut:   deadline.Reached(),
		Iterations: iterations,
	}, nil
}
