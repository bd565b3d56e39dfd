package unionfind

// UnionFind is a disjoint-set structure over the dense integer domain
// [0,n), with path compression and union by size. Shaped like the
// map-based union-find inlined in
// github.com/katalvlaran/lvlath/prim_kruskal.Kruskal: parent and size are
// tracked in parallel slices rather than an encoded single array, since
// this module's callers always know n up front (n = R*C pixels).
type UnionFind struct {
	parent []int
	size   []int
	// components counts the current number of disjoint sets; it starts at
	// n and decreases by one on every successful Union.
	components int
}

// New returns a UnionFind over n singleton elements {0, ..., n-1}.
func New(n int) *UnionFind {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}

	return &UnionFind{parent: parent, size: size, components: n}
}

// Find returns the representative of a's set, path-compressing along the
// way. Complexity: amortized O(alpha(n)).
func (u *UnionFind) Find(a int) int {
	for u.parent[a] != a {
		u.parent[a] = u.parent[u.parent[a]] // halving path compression
		a = u.parent[a]
	}

	return a
}

// Union merges the sets containing a and b, attaching the smaller set
// under the larger one's root. Returns true if a and b were previously in
// different sets (i.e. this call actually merged two components).
func (u *UnionFind) Union(a, b int) bool {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return false
	}
	if u.size[ra] < u.size[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	u.size[ra] += u.size[rb]
	u.components--

	return true
}

// Connected reports whether a and b are in the same set.
func (u *UnionFind) Connected(a, b int) bool {
	return u.Find(a) == u.Find(b)
}

// Components returns the current number of disjoint sets.
func (u *UnionFind) Components() int {
	return u.components
}
