// Package move implements interactive reordering of pipeline modules:
// "move operation A to just before/after operation B".
//
// Every move runs a feasibility check first — the mover must not be a
// fence, the walk between the two positions must not cross a fence module,
// and no catalog rule may forbid the implied pairwise swaps. Rejections are
// reported as a boolean outcome and leave the document untouched; a move is
// never partially applied.
package move
