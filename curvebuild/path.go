package curvebuild

import "github.com/gabmei/spatio-temporal-data-driven-sfc/pixgrid"

// extractPath walks the finished pixel graph from (0,0), following the
// unique unvisited neighbor at each step, stopping when the only
// remaining neighbor is the start pixel (closing the cycle). On a
// well-formed 2-regular cycle there is never more than one unvisited
// neighbor to choose from; when there is (an invariant violation
// upstream) the first one found is taken, keeping the walk deterministic
// for a given adjacency layout.
func extractPath(adj *adjacency) ([]pixgrid.PixelCoord, error) {
	n := adj.rows * adj.cols
	visited := make([]bool, n)
	path := make([]pixgrid.PixelCoord, 0, n)

	cur := 0 // flat index of pixel (0,0)
	for {
		visited[cur] = true
		path = append(path, adj.coord(cur))

		next := -1
		for _, v := range adj.neighbors(cur) {
			if !visited[v] {
				next = int(v)
				break
			}
		}
		if next == -1 {
			break // every neighbor already visited; the cycle is closed
		}
		cur = next
	}

	if len(path) != n {
		return nil, ErrInvariantViolation
	}

	return path, nil
}
