package curvebuild

import (
	"testing"

	"github.com/gabmei/spatio-temporal-data-driven-sfc/pixgrid"
)

func TestAdjacency_SeedSuperNodeYieldsDegreeTwo(t *testing.T) {
	a := newAdjacency(2, 2)
	a.seedSuperNode(pixgrid.SuperNodeID{I: 0, J: 0})

	for idx := 0; idx < 4; idx++ {
		if got := a.degree(idx); got != 2 {
			t.Errorf("degree(%d) = %d, want 2", idx, got)
		}
	}
}

func TestAdjacency_AddRemoveEdge(t *testing.T) {
	a := newAdjacency(2, 2)
	u := pixgrid.PixelCoord{R: 0, C: 0}
	v := pixgrid.PixelCoord{R: 0, C: 1}

	a.addEdge(u, v)
	if a.degree(a.index(u)) != 1 || a.degree(a.index(v)) != 1 {
		t.Fatalf("expected degree 1 on both endpoints after addEdge")
	}

	a.removeEdge(u, v)
	if a.degree(a.index(u)) != 0 || a.degree(a.index(v)) != 0 {
		t.Fatalf("expected degree 0 on both endpoints after removeEdge")
	}
}

func TestAdjacency_ApplyMergePreservesDegreeTwo(t *testing.T) {
	a := newAdjacency(2, 4)
	idA := pixgrid.SuperNodeID{I: 0, J: 0}
	idB := pixgrid.SuperNodeID{I: 0, J: 1}
	a.seedSuperNode(idA)
	a.seedSuperNode(idB)

	a.applyMerge(idA, idB)

	for idx := 0; idx < 8; idx++ {
		if got := a.degree(idx); got != 2 {
			t.Errorf("degree(%d) = %d after merge, want 2", idx, got)
		}
	}
}
