// RNG utilities for MessagePassing's symmetry-breaking noise injection.
//
// Determinism: the same seed produces the same sequence of perturbations
// across platforms, so tests can pin a seed; production seeds from the
// wall clock instead (see NewMessagePassing).
//
// math/rand.Rand is not goroutine-safe; MessagePassing is single-threaded
// by design (see lp.Solver's doc comment), so this is never shared.

package mwvc

import (
	"math/rand"
	"time"
)

// seededRNG returns a deterministic *rand.Rand from seed. A seed of 0
// seeds from the current time instead, matching the CLI's "no seed
// given" default of seeding production runs from the clock.
func seededRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
