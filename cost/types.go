package cost

import "github.com/gabmei/spatio-temporal-data-driven-sfc/pixgrid"

// Distance is the edge-cost contract consumed by curvebuild.Build. During
// Prim's algorithm, idA identifies a super-node already absorbed into the
// spanning tree and idB identifies a lattice-adjacent, not-yet-absorbed
// candidate. Implementations must be pure functions of (idA, idB) and the
// immutable pixel data they were constructed with — Build calls Cost from
// its hot loop and never mutates state on the caller's behalf.
type Distance interface {
	Cost(idA, idB pixgrid.SuperNodeID) float64
}

// Func adapts a plain function to the Distance interface, mirroring the
// http.HandlerFunc pattern: useful for tests and for custom costs that
// don't need any state beyond a closure.
type Func func(idA, idB pixgrid.SuperNodeID) float64

// Cost calls f(idA, idB).
func (f Func) Cost(idA, idB pixgrid.SuperNodeID) float64 { return f(idA, idB) }
