package curvebuild

import "github.com/gabmei/spatio-temporal-data-driven-sfc/pixgrid"

// maxDegree bounds the number of neighbors any pixel ever has during the
// algorithm: every super-node starts as a 4-cycle (degree 2 per pixel),
// and the surgical rewrite never raises a pixel's degree above 2 once it
// settles — but during initialization every pixel briefly sees at most 2
// slots filled, so 4 is a conservative, allocation-free upper bound.
const maxDegree = 4

// adjacency is the pixel graph, stored as a fixed-size neighbor array per
// vertex rather than a per-vertex balanced set. Every vertex has degree
// <= 4 throughout the algorithm (settling at exactly 2), so a small flat
// array outperforms a tree-based set and needs no per-edge allocation.
// Vertices are addressed by flat row-major index (r*cols+c) rather than
// by pointer, avoiding the cyclic-reference problem the pixel graph would
// otherwise pose.
type adjacency struct {
	rows, cols int
	neigh      [][maxDegree]int32
	deg        []int8
}

func newAdjacency(rows, cols int) *adjacency {
	n := rows * cols
	a := &adjacency{
		rows:  rows,
		cols:  cols,
		neigh: make([][maxDegree]int32, n),
		deg:   make([]int8, n),
	}
	for i := range a.neigh {
		for k := range a.neigh[i] {
			a.neigh[i][k] = -1
		}
	}

	return a
}

func (a *adjacency) index(p pixgrid.PixelCoord) int {
	return p.R*a.cols + p.C
}

func (a *adjacency) coord(idx int) pixgrid.PixelCoord {
	return pixgrid.PixelCoord{R: idx / a.cols, C: idx % a.cols}
}

// addEdge inserts an undirected edge between u and v. Behavior is
// undefined if either endpoint already has 4 neighbors, which never
// happens for a well-formed grid.
func (a *adjacency) addEdge(u, v pixgrid.PixelCoord) {
	a.addDirected(a.index(u), int32(a.index(v)))
	a.addDirected(a.index(v), int32(a.index(u)))
}

func (a *adjacency) addDirected(u int, v int32) {
	slot := &a.neigh[u]
	slot[a.deg[u]] = v
	a.deg[u]++
}

// removeEdge deletes the undirected edge between u and v. It is a no-op on
// the missing side if the edge is not present (it always is, by
// construction, for the edges the merge rewrite removes).
func (a *adjacency) removeEdge(u, v pixgrid.PixelCoord) {
	a.removeDirected(a.index(u), int32(a.index(v)))
	a.removeDirected(a.index(v), int32(a.index(u)))
}

func (a *adjacency) removeDirected(u int, v int32) {
	slot := &a.neigh[u]
	n := int(a.deg[u])
	for k := 0; k < n; k++ {
		if slot[k] == v {
			slot[k] = slot[n-1]
			slot[n-1] = -1
			a.deg[u]--

			return
		}
	}
}

// degree returns the current number of neighbors of the pixel at flat
// index idx.
func (a *adjacency) degree(idx int) int {
	return int(a.deg[idx])
}

// neighbors returns the (up to 4) flat neighbor indices of idx, ignoring
// unused sentinel slots.
func (a *adjacency) neighbors(idx int) []int32 {
	return a.neigh[idx][:a.deg[idx]]
}

// applyMerge performs the merge rewrite against the live pixel graph: two
// cycle-face edges removed, two cross edges added.
func (a *adjacency) applyMerge(idA, idB pixgrid.SuperNodeID) {
	for _, e := range pixgrid.RemovedEdges(idA, idB) {
		a.removeEdge(e.U, e.V)
	}
	for _, e := range pixgrid.AddedEdges(idA, idB) {
		a.addEdge(e.U, e.V)
	}
}

// seedSuperNode lays down the initial 4-cycle owned by a super-node.
func (a *adjacency) seedSuperNode(id pixgrid.SuperNodeID) {
	corners := pixgrid.Corners(id)
	for k := 0; k < 4; k++ {
		nk := (k + 1) % 4
		a.addEdge(corners[k], corners[nk])
	}
}
