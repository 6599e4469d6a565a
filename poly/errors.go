package poly

import "errors"

// ErrTooWide indicates a constraint's Boolean arity is too large for the
// Möbius expansion to be built in memory or reasonable time.
var ErrTooWide = errors.New("poly: constraint arity exceeds the Möbius expansion threshold")

// MaxBoolVars bounds the number of Boolean indicators a single constraint
// may expand over. The expansion is O(s*2^s); beyond this threshold it
// stops being practical regardless of available memory.
const MaxBoolVars = 28
