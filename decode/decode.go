package decode

import (
	"github.com/nandofioretto/wcsplift/ccg"
	"github.com/nandofioretto/wcsplift/wcsp"
)

// Decode reconstructs the finite-domain assignment implied by every
// Boolean indicator decision made so far. simplifiedOut comes from
// (*ccg.Graph).Simplify and is already keyed by Boolean id; kernelized
// and solved come from kernel.Run and a mwvc.Strategy's Result.Assignment
// respectively, both keyed by CCG vertex handle against g. blocks is
// wcsp.Instance.Blocks(): each domain variable's ordered list of Boolean
// indicator ids.
//
// A domain variable whose block has one or more indicators with no
// recorded decision is omitted from the result -- either it was never
// referenced by any constraint, or an indicator was left unresolved
// because the MWVC solve was skipped or reported no cover. wcsp.Instance.ComputeTotalWeight
// already treats a missing variable as its index-0 (default) value, so
// this omission is safe to feed straight into total-weight reporting.
func Decode(g *ccg.Graph, simplifiedOut, kernelized, solved map[int]bool, blocks [][]int) map[int]int {
	bits := make(map[int]bool, len(simplifiedOut)+len(kernelized)+len(solved))
	for id, v := range simplifiedOut {
		bits[id] = v
	}
	mergeHandleKeyed(g, kernelized, bits)
	mergeHandleKeyed(g, solved, bits)

	assignment := make(map[int]int, len(blocks))
	for v, block := range blocks {
		values := make([]bool, len(block))
		complete := true
		for i, id := range block {
			val, ok := bits[id]
			if !ok {
				complete = false
				break
			}
			values[i] = val
		}
		if !complete {
			continue
		}
		assignment[v] = wcsp.DecodeBlock(values)
	}
	return assignment
}

// mergeHandleKeyed translates a CCG-handle-keyed decision map into the
// Boolean-id-keyed space out accumulates, dropping any non-Variable
// (auxiliary) vertex -- only Variable vertices carry a Boolean id that
// means anything to the WCSP layer.
func mergeHandleKeyed(g *ccg.Graph, handleKeyed map[int]bool, out map[int]bool) {
	for h, cover := range handleKeyed {
		kind, boolVar, _, ok := g.VertexInfo(h)
		if !ok || kind != ccg.Variable {
			continue
		}
		out[boolVar] = cover
	}
}
