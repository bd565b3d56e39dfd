package curvebuild

import (
	"container/heap"
	"math"

	"github.com/gabmei/spatio-temporal-data-driven-sfc/cost"
	"github.com/gabmei/spatio-temporal-data-driven-sfc/pixgrid"
)

// item is one candidate entry in the super-node priority queue: the
// current best-known cost of absorbing super-node (I,J).
type item struct {
	cost float64
	i, j int
}

// nodePQ implements heap.Interface as a min-heap of item, ordered by cost.
// Mirrors github.com/katalvlaran/lvlath/prim_kruskal's edgePQ: entries are
// never decreased in place, and stale entries are filtered at pop via the
// selected[] check in Build's main loop (lazy deletion).
type nodePQ []item

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(item)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

// lattDR and lattDC give the four lattice-neighbor offsets of a
// super-node, in the same N,E,S,W order util.hpp's DIR_X/DIR_Y use.
var (
	lattDR = [4]int{1, 0, -1, 0}
	lattDC = [4]int{0, 1, 0, -1}
)

// Build runs Prim's algorithm over the (rows/2) x (cols/2) super-node
// lattice, starting from super-node (0,0), surgically rewiring the pixel
// graph on each absorption, and returns the resulting Hamiltonian cycle
// over all rows*cols pixels.
//
// dist must be non-nil; rows and cols must both be even and >= 2. Returns
// ErrInvariantViolation if CheckInvariants is enabled (the default) and
// the resulting pixel graph is not a single 2-regular cycle — this
// indicates a bug, either in this package or in a caller-supplied custom
// Distance.
func Build(rows, cols int, dist cost.Distance, opts ...Option) (Result, error) {
	if dist == nil {
		return Result{}, ErrNilDistance
	}
	if rows < 2 || cols < 2 || rows%2 != 0 || cols%2 != 0 {
		return Result{}, ErrInvalidDimensions
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	nodeR, nodeC := rows/2, cols/2
	adj := newAdjacency(rows, cols)
	for i := 0; i < nodeR; i++ {
		for j := 0; j < nodeC; j++ {
			adj.seedSuperNode(pixgrid.SuperNodeID{I: i, J: j})
		}
	}

	selected := make([][]bool, nodeR)
	minW := make([][]float64, nodeR)
	par := make([][]*pixgrid.SuperNodeID, nodeR)
	for i := range selected {
		selected[i] = make([]bool, nodeC)
		minW[i] = make([]float64, nodeC)
		par[i] = make([]*pixgrid.SuperNodeID, nodeC)
		for j := range minW[i] {
			minW[i][j] = math.Inf(1)
		}
	}

	pq := &nodePQ{}
	heap.Init(pq)
	minW[0][0] = 0
	heap.Push(pq, item{cost: 0, i: 0, j: 0})

	selectedCount := 0
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(item)
		i, j := cur.i, cur.j
		if selected[i][j] {
			continue // stale entry, per the lazy-deletion policy
		}
		selected[i][j] = true
		selectedCount++

		id := pixgrid.SuperNodeID{I: i, J: j}
		if p := par[i][j]; p != nil {
			adj.applyMerge(*p, id)
		}

		for d := 0; d < 4; d++ {
			ni, nj := i+lattDR[d], j+lattDC[d]
			if ni < 0 || nj < 0 || ni >= nodeR || nj >= nodeC || selected[ni][nj] {
				continue
			}
			c := dist.Cost(id, pixgrid.SuperNodeID{I: ni, J: nj})
			if c < minW[ni][nj] {
				minW[ni][nj] = c
				par[ni][nj] = &id
				heap.Push(pq, item{cost: c, i: ni, j: nj})
			}
		}
	}

	res := Result{SelectedSuperNodes: selectedCount}

	if o.CheckInvariants {
		minDeg, maxDeg, comps := checkInvariants(adj)
		res.MinDegree, res.MaxDegree, res.Components = minDeg, maxDeg, comps
		if minDeg != 2 || maxDeg != 2 || comps != 1 {
			return res, ErrInvariantViolation
		}
	}

	path, err := extractPath(adj)
	if err != nil {
		return res, err
	}
	res.Path = path

	return res, nil
}
