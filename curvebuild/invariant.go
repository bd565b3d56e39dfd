package curvebuild

import "github.com/gabmei/spatio-temporal-data-driven-sfc/unionfind"

// checkInvariants scans the finished pixel graph for the two properties a
// correct Hamiltonian cycle must have: every vertex has degree exactly 2,
// and the graph is a single connected component. It returns the observed
// min/max degree and component count regardless of whether they satisfy
// the invariant, so callers can surface them as diagnostics even on
// failure.
func checkInvariants(adj *adjacency) (minDeg, maxDeg, components int) {
	n := adj.rows * adj.cols
	minDeg, maxDeg = 5, 0 // 5 is above any reachable degree, forcing the first sample to set it
	uf := unionfind.New(n)

	for u := 0; u < n; u++ {
		d := adj.degree(u)
		if d < minDeg {
			minDeg = d
		}
		if d > maxDeg {
			maxDeg = d
		}
		for _, v := range adj.neighbors(u) {
			uf.Union(u, int(v))
		}
	}

	return minDeg, maxDeg, uf.Components()
}
