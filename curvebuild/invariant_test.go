package curvebuild

import (
	"testing"

	"github.com/gabmei/spatio-temporal-data-driven-sfc/pixgrid"
)

func TestCheckInvariants_TwoDisjointCycles(t *testing.T) {
	a := newAdjacency(2, 4)
	a.seedSuperNode(pixgrid.SuperNodeID{I: 0, J: 0})
	a.seedSuperNode(pixgrid.SuperNodeID{I: 0, J: 1})

	minDeg, maxDeg, comps := checkInvariants(a)
	if minDeg != 2 || maxDeg != 2 {
		t.Fatalf("degrees = (%d,%d), want (2,2)", minDeg, maxDeg)
	}
	if comps != 2 {
		t.Fatalf("components = %d, want 2 (before merge)", comps)
	}
}

func TestCheckInvariants_MergedIntoOne(t *testing.T) {
	a := newAdjacency(2, 4)
	idA := pixgrid.SuperNodeID{I: 0, J: 0}
	idB := pixgrid.SuperNodeID{I: 0, J: 1}
	a.seedSuperNode(idA)
	a.seedSuperNode(idB)
	a.applyMerge(idA, idB)

	_, _, comps := checkInvariants(a)
	if comps != 1 {
		t.Fatalf("components = %d, want 1 (after merge)", comps)
	}
}
