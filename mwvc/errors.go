package mwvc

import "errors"

// ErrNoFeasibleCover indicates a Strategy's backend could not produce any
// cover at all (distinct from a timeout, which LPSolver reports through
// Result.TimedOut with no cover, discarding any partial primal).
var ErrNoFeasibleCover = errors.New("mwvc: no feasible vertex cover found")
