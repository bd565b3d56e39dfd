// Package align implements curve-to-curve alignment: given a sequence of
// per-frame pixel paths and their pixel data, it mutates frames 1..end in
// place, choosing a cyclic rotation (and optional reversal) of each
// frame's path minimizing its dissimilarity to the preceding, already
// aligned frame.
//
// On a tie between the reversed and non-reversed candidate, the
// non-reversed one wins. When the reversed candidate wins, the path is
// reversed first and then rotated.
package align
