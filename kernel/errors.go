package kernel

import "errors"

// ErrUnexpectedLPSolution indicates the LP relaxation returned a variable
// value outside [0, 1], which cannot happen for a well-formed vertex
// cover LP and signals a backend or model-construction bug rather than a
// legitimate solve outcome.
var ErrUnexpectedLPSolution = errors.New("kernel: unexpected LP solution value outside [0, 1]")
