package cost

import (
	"math"

	"github.com/gabmei/spatio-temporal-data-driven-sfc/pixgrid"
)

// DataDriven is a convex combination of the exact delta in summed pixel
// differences induced by absorbing a candidate super-node, and a
// regularizer pulling the curve toward the geometric center of each
// BLOCK x BLOCK block of the image.
//
// DataDriven holds only an immutable *pixgrid.Grid view and two scalar
// parameters; it never mutates the grid, so a single instance is safe to
// share across concurrent frame builds.
type DataDriven[T pixgrid.Numeric] struct {
	grid   *pixgrid.Grid[T]
	alpha  float64
	block  int
	center float64 // (block-1)/2, precomputed once
}

// NewDataDriven constructs a DataDriven cost over grid with weight alpha in
// [0,1] and block size block >= 1. alpha=0 ignores the block-centering
// term entirely (pure pixel-coherence); alpha=1 ignores pixel data
// entirely (pure block-centering).
func NewDataDriven[T pixgrid.Numeric](grid *pixgrid.Grid[T], alpha float64, block int) (*DataDriven[T], error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if alpha < 0 || alpha > 1 {
		return nil, ErrAlphaOutOfRange
	}
	if block < 1 {
		return nil, ErrBadBlock
	}

	return &DataDriven[T]{
		grid:   grid,
		alpha:  alpha,
		block:  block,
		center: float64(block-1) / 2.0,
	}, nil
}

// Cost implements Distance. idA is the super-node already in the spanning
// tree; idB is the lattice-adjacent candidate.
func (d *DataDriven[T]) Cost(idA, idB pixgrid.SuperNodeID) float64 {
	return (1-d.alpha)*d.adjEdgeCost(idA, idB) + d.alpha*d.blockCenterCost(idB)
}

// pixelDiff sums the absolute per-channel difference between two pixels,
// accumulating in float64 regardless of the grid's storage type:
// intermediate values are cast to the distance type before subtraction,
// with no saturation.
func (d *DataDriven[T]) pixelDiff(u, v pixgrid.PixelCoord) float64 {
	pu, pv := d.grid.At(u), d.grid.At(v)
	var sum float64
	for i := range pu {
		sum += math.Abs(float64(pu[i]) - float64(pv[i]))
	}

	return sum
}

// adjEdgeCost is the exact delta in "sum of pixel differences along the
// cycle" induced by absorbing idB into the tree alongside idA: the edges of
// idB's own cycle that survive the merge, plus the newly added cross
// edges, minus the face removed from idA's side. idB's removed face is
// already left out of the surviving edges, so it is not subtracted.
func (d *DataDriven[T]) adjEdgeCost(idA, idB pixgrid.SuperNodeID) float64 {
	var total float64
	for _, e := range pixgrid.SurvivingBEdges(idA, idB) {
		total += d.pixelDiff(e.U, e.V)
	}
	for _, e := range pixgrid.RemovedEdges(idA, idB) {
		if (pixgrid.SuperNodeID{I: e.U.R / 2, J: e.U.C / 2}) != idA {
			continue // idB's face, already excluded above
		}
		total -= d.pixelDiff(e.U, e.V)
	}
	for _, e := range pixgrid.AddedEdges(idA, idB) {
		total += d.pixelDiff(e.U, e.V)
	}

	return total
}

// blockCenterCost pulls super-node idB toward the center of its enclosing
// BLOCK x BLOCK block of *super-nodes* (small circuits), breaking
// degeneracies and (at alpha>0) biasing the curve toward block-local
// traversal order. The modulus is taken on the super-node lattice
// coordinate itself, not on pixel coordinates.
func (d *DataDriven[T]) blockCenterCost(idB pixgrid.SuperNodeID) float64 {
	di := float64(mod(idB.I, d.block)) - d.center
	dj := float64(mod(idB.J, d.block)) - d.center

	return math.Sqrt(di*di + dj*dj)
}

// mod returns the non-negative remainder of a/b, for b >= 1.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}

	return m
}
