package pixgrid

// cornerDR and cornerDC give the four corner offsets of a super-node's
// 4-cycle, in the fixed order used throughout this module: (2i,2j) ->
// (2i,2j+1) -> (2i+1,2j+1) -> (2i+1,2j) -> back to (2i,2j). RemovedEdges'
// cross-product thresholds are only valid for this exact orientation.
var (
	cornerDR = [4]int{0, 1, 0, -1}
	cornerDC = [4]int{1, 0, -1, 0}
)

// Corners returns the 4 pixel coordinates owned by super-node id, in the
// fixed order used throughout this module: p0=(2i,2j), p1=(2i,2j+1),
// p2=(2i+1,2j+1), p3=(2i+1,2j).
func Corners(id SuperNodeID) [4]PixelCoord {
	r, c := 2*id.I, 2*id.J
	var out [4]PixelCoord
	for k := 0; k < 4; k++ {
		out[k] = PixelCoord{R: r, C: c}
		r += cornerDR[k]
		c += cornerDC[k]
	}

	return out
}

// Cross computes the 2D cross product a.DR*b.DC - a.DC*b.DR.
func Cross(a, b Vec) int {
	return a.DR*b.DC - a.DC*b.DR
}

// direction returns the unit lattice vector from super-node a to
// lattice-adjacent super-node b. Behavior is undefined if a and b are not
// lattice-adjacent (|di|+|dj| != 1).
func direction(a, b SuperNodeID) Vec {
	return Vec{DR: b.I - a.I, DC: b.J - a.J}
}

// cycleEdgeVec returns the direction vector of the k-th edge of a 4-cycle
// returned by Corners: corners[k] -> corners[(k+1)%4].
func cycleEdgeVec(corners [4]PixelCoord, k int) Vec {
	nk := (k + 1) % 4
	return Vec{DR: corners[nk].R - corners[k].R, DC: corners[nk].C - corners[k].C}
}

// RemovedEdges returns the two cycle-face edges surgically removed from the
// pixel graph when super-node idB (already lattice-adjacent to idA, which
// is already in the spanning tree) is absorbed by merging into idA.
//
// One edge comes from idB's own cycle — the face whose edge vector has a
// strictly positive 2D cross product with the merge direction d (the
// counterclockwise face relative to d). The other comes from idA's cycle —
// the face whose edge vector has cross product exactly -1 with d (the
// clockwise face on the A side). The strict "-1" test, rather than "< 0",
// is valid only because d is always a unit lattice vector; see Cross.
//
// idA and idB must be lattice-adjacent (|di|+|dj| = 1); behavior is
// undefined otherwise.
func RemovedEdges(idA, idB SuperNodeID) []Edge {
	d := direction(idA, idB)
	cycleB := Corners(idB)
	cycleA := Corners(idA)

	removed := make([]Edge, 0, 2)
	for k := 0; k < 4; k++ {
		ev := cycleEdgeVec(cycleB, k)
		if Cross(d, ev) > 0 {
			nk := (k + 1) % 4
			removed = append(removed, Edge{U: cycleB[k], V: cycleB[nk]})
		}
	}
	for k := 0; k < 4; k++ {
		ev := cycleEdgeVec(cycleA, k)
		if Cross(d, ev) == -1 {
			nk := (k + 1) % 4
			removed = append(removed, Edge{U: cycleA[k], V: cycleA[nk]})
		}
	}

	return removed
}

// SurvivingBEdges returns the edges of idB's own 4-cycle that are *not*
// removed by the merge rule above — i.e. those whose edge vector has cross
// product <= 0 with the merge direction. These are the edges of idB's
// cycle that remain in the pixel graph after the merge, and are exactly
// the term cost.DataDriven sums directly from E(b) rather than by
// subtracting RemovedEdges.
func SurvivingBEdges(idA, idB SuperNodeID) []Edge {
	d := direction(idA, idB)
	cycleB := Corners(idB)

	surviving := make([]Edge, 0, 4)
	for k := 0; k < 4; k++ {
		ev := cycleEdgeVec(cycleB, k)
		if Cross(d, ev) <= 0 {
			nk := (k + 1) % 4
			surviving = append(surviving, Edge{U: cycleB[k], V: cycleB[nk]})
		}
	}

	return surviving
}

// AddedEdges returns the two cross edges added to the pixel graph when idB
// is merged into idA: for each corner u of idA, if u shifted by the merge
// direction lands on a corner of idB, the edge (u, u+d) is added.
//
// idA and idB must be lattice-adjacent; behavior is undefined otherwise.
func AddedEdges(idA, idB SuperNodeID) []Edge {
	d := direction(idA, idB)
	cycleA := Corners(idA)
	cycleB := Corners(idB)

	bSet := make(map[PixelCoord]struct{}, 4)
	for _, p := range cycleB {
		bSet[p] = struct{}{}
	}

	added := make([]Edge, 0, 2)
	for _, u := range cycleA {
		v := u.Add(d)
		if _, ok := bSet[v]; ok {
			added = append(added, Edge{U: u, V: v})
		}
	}

	return added
}
