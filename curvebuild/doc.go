// Package curvebuild implements the greedy minimum-spanning-tree
// construction over the super-node lattice that surgically rewires the
// underlying pixel graph as it grows, so that the final pixel graph is a
// single 2-regular cycle visiting every pixel exactly once — component D
// of this system, and its algorithmic core.
//
// Build runs Prim's algorithm from super-node (0,0), using a lazy-deletion
// min-heap exactly the way
// github.com/katalvlaran/lvlath/prim_kruskal.Prim does for ordinary graph
// MSTs, except every absorption additionally triggers the merge rewrite
// from package pixgrid against a live pixel adjacency structure. The
// resulting adjacency is then walked once to produce the output path.
package curvebuild
