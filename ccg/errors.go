package ccg

import "errors"

// ErrMalformedDump indicates ReadDimacs encountered a line it could not
// parse as a header, vertex, edge, or vertex-type-mapping record.
var ErrMalformedDump = errors.New("ccg: malformed dimacs dump")
