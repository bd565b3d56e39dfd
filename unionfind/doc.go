// Package unionfind implements a path-compressed, union-by-size disjoint
// set structure over integer elements. curvebuild uses it once, after
// Prim's loop completes, purely as a post-hoc connectivity check: the
// final pixel graph is expected to be a single connected component. It is
// not on the algorithm's hot path.
package unionfind
