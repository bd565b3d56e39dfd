// Package adaptivecurve builds data-adaptive, Hamiltonian-like
// space-filling curves over pixel grids.
//
// A grid is split into 2x2 super-nodes wired into an (R/2)x(C/2) lattice.
// Prim's algorithm runs over that lattice; absorbing each super-node
// surgically rewires the underlying pixel adjacency graph (see package
// curvebuild) so that, once every super-node is absorbed, the pixel graph
// is a single 2-regular cycle visiting all R*C pixels exactly once. Edge
// cost is data-driven (package cost): a convex combination of the change
// in summed pixel difference along the curve and a regularizer pulling
// the curve toward block centers.
//
// For an image sequence, BuildPaths runs this per frame and then aligns
// frames 1..end to their predecessor by cyclic rotation and optional
// reversal (package align), using either brute-force L1 scoring or
// FFT-based circular cross-correlation (package fourier).
//
// Package layout:
//
//	pixgrid    grid/coordinate types and dual-graph geometry
//	cost       the Distance interface and the data-driven cost
//	unionfind  disjoint-set structure used for invariant checking
//	curvebuild Prim-with-rewiring core and path extraction
//	fourier    FFT and circular cross-correlation
//	align      curve-to-curve rotation/reversal alignment
//
// This package ties them together behind Build and BuildPaths.
package adaptivecurve
