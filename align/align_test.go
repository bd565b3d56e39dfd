package align_test

import (
	"testing"

	"github.com/gabmei/spatio-temporal-data-driven-sfc/align"
	"github.com/gabmei/spatio-temporal-data-driven-sfc/pixgrid"
)

// ring builds a path visiting n synthetic pixels in row-major order and a
// grid whose single channel holds vals in that same order, so linearizing
// path against grid reproduces vals exactly.
func ring(t *testing.T, vals []float64) (*pixgrid.Grid[float64], []pixgrid.PixelCoord) {
	t.Helper()

	n := len(vals)
	const cols = 2
	rows := (n + cols - 1) / cols
	if rows%2 != 0 {
		rows++
	}
	if rows < 2 {
		rows = 2
	}

	data := make([]float64, rows*cols)
	copy(data, vals)

	grid, err := pixgrid.NewGrid(rows, cols, 1, data)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	path := make([]pixgrid.PixelCoord, n)
	for i := range vals {
		path[i] = pixgrid.PixelCoord{R: i / cols, C: i % cols}
	}

	return grid, path
}

func rotated(vals []float64, shift int) []float64 {
	n := len(vals)
	out := make([]float64, n)
	for i := range out {
		out[i] = vals[(i+shift)%n]
	}

	return out
}

// sample reads back the single channel value at each step of path in grid,
// letting tests compare frames by content rather than by raw coordinate,
// since a winning rotation or reversal relabels coordinates but must
// reproduce the same value sequence as the frame it was aligned to.
func sample(grid *pixgrid.Grid[float64], path []pixgrid.PixelCoord) []float64 {
	out := make([]float64, len(path))
	for i, p := range path {
		out[i] = grid.At(p)[0]
	}

	return out
}

func TestAlign_L1_RecoversKnownRotation(t *testing.T) {
	base := []float64{10, 20, 30, 40, 50, 60}
	gridA, pathA := ring(t, base)
	gridB, pathB := ring(t, rotated(base, 2))

	grids := []*pixgrid.Grid[float64]{gridA, gridB}
	paths := [][]pixgrid.PixelCoord{pathA, pathB}

	if err := align.Align(grids, paths, align.L1); err != nil {
		t.Fatalf("Align: %v", err)
	}

	got := sample(gridB, paths[1])
	for i, v := range got {
		if v != base[i] {
			t.Fatalf("sample(paths[1])[%d] = %v, want %v (recovered rotation should reproduce frame 0's values)", i, v, base[i])
		}
	}
}

func TestAlign_L2_MatchesCircularCrossCorrelationArgmax(t *testing.T) {
	base := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	gridA, pathA := ring(t, base)
	gridB, pathB := ring(t, rotated(base, 5))

	grids := []*pixgrid.Grid[float64]{gridA, gridB}
	paths := [][]pixgrid.PixelCoord{pathA, pathB}

	if err := align.Align(grids, paths, align.L2); err != nil {
		t.Fatalf("Align: %v", err)
	}

	got := sample(gridB, paths[1])
	for i, v := range got {
		if v != base[i] {
			t.Fatalf("sample(paths[1])[%d] = %v, want %v", i, v, base[i])
		}
	}
}

func TestAlign_DetectsReversal(t *testing.T) {
	base := []float64{1, 5, 2, 9, 3, 7}
	reversedBase := make([]float64, len(base))
	for i, v := range base {
		reversedBase[len(base)-1-i] = v
	}

	gridA, pathA := ring(t, base)
	gridB, pathB := ring(t, reversedBase)

	grids := []*pixgrid.Grid[float64]{gridA, gridB}
	paths := [][]pixgrid.PixelCoord{pathA, pathB}

	if err := align.Align(grids, paths, align.L1); err != nil {
		t.Fatalf("Align: %v", err)
	}

	got := sample(gridB, paths[1])
	for i, v := range got {
		if v != base[i] {
			t.Fatalf("sample(paths[1])[%d] = %v, want %v (reversal should perfectly realign to frame 0)", i, v, base[i])
		}
	}
}

func TestAlign_IdenticalFrame_PrefersZeroShift(t *testing.T) {
	base := []float64{4, 4, 4, 4}
	gridA, pathA := ring(t, base)
	gridB, pathB := ring(t, base)

	grids := []*pixgrid.Grid[float64]{gridA, gridB}
	paths := [][]pixgrid.PixelCoord{pathA, pathB}

	if err := align.Align(grids, paths, align.L2); err != nil {
		t.Fatalf("Align: %v", err)
	}

	for i, p := range paths[1] {
		if p != pathA[i] {
			t.Fatalf("degenerate identical frame should tie-break to shift 0, got mismatch at %d", i)
		}
	}
}

func TestAlign_None_LeavesFramesUntouched(t *testing.T) {
	base := []float64{1, 2, 3, 4}
	gridA, pathA := ring(t, base)
	gridB, pathB := ring(t, rotated(base, 1))
	originalB := append([]pixgrid.PixelCoord(nil), pathB...)

	grids := []*pixgrid.Grid[float64]{gridA, gridB}
	paths := [][]pixgrid.PixelCoord{pathA, pathB}

	if err := align.Align(grids, paths, align.None); err != nil {
		t.Fatalf("Align: %v", err)
	}

	for i, p := range paths[1] {
		if p != originalB[i] {
			t.Fatalf("None strategy mutated frame 1 at %d", i)
		}
	}
}

func TestAlign_UnknownStrategy(t *testing.T) {
	gridA, pathA := ring(t, []float64{1, 2})
	gridB, pathB := ring(t, []float64{2, 1})

	err := align.Align(
		[]*pixgrid.Grid[float64]{gridA, gridB},
		[][]pixgrid.PixelCoord{pathA, pathB},
		align.Strategy(99),
	)
	if err != align.ErrUnknownStrategy {
		t.Fatalf("err = %v, want ErrUnknownStrategy", err)
	}
}

func TestAlign_LengthMismatch(t *testing.T) {
	gridA, pathA := ring(t, []float64{1, 2, 3})
	gridB, pathB := ring(t, []float64{1, 2})

	err := align.Align(
		[]*pixgrid.Grid[float64]{gridA, gridB},
		[][]pixgrid.PixelCoord{pathA, pathB},
		align.L1,
	)
	if err != align.ErrLengthMismatch {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
}
