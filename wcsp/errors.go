package wcsp

import "errors"

// ErrInputMalformed indicates a DIMACS/UAI loader could not parse a
// record in the input stream.
var ErrInputMalformed = errors.New("wcsp: malformed input")
