// Package pixgrid holds the fundamental types shared by the rest of this
// module: the pixel grid itself, the super-node lattice built over it, and
// the pure cycle-geometry functions that describe how two adjacent
// super-nodes' 4-cycles are surgically merged.
//
// Nothing in this package mutates a grid or runs an algorithm; it is the
// "core" of the module the way github.com/katalvlaran/lvlath/core is the
// core of that library — fundamental types and read-only geometry, with
// all the algorithmic weight living in sibling packages (cost, curvebuild).
package pixgrid
