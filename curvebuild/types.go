package curvebuild

import "github.com/gabmei/spatio-temporal-data-driven-sfc/pixgrid"

// Options configures a single Build run.
type Options struct {
	// CheckInvariants runs the post-Prim 2-regular/single-component check
	// before returning. It is O(R*C*alpha(R*C)) and on by default; disable
	// it only once a given Distance implementation is trusted, to shave
	// the extra pass off very large or very hot workloads.
	CheckInvariants bool
}

// DefaultOptions returns the recommended defaults: invariant checking on.
func DefaultOptions() Options {
	return Options{CheckInvariants: true}
}

// Option mutates an Options value.
type Option func(*Options)

// WithCheckInvariants toggles the post-run invariant check.
func WithCheckInvariants(enabled bool) Option {
	return func(o *Options) { o.CheckInvariants = enabled }
}

// Result is the outcome of a single Build run.
type Result struct {
	// Path is the ordered pixel cycle, length rows*cols: a permutation of
	// every pixel in the grid where consecutive entries (including the
	// last back to the first) are always orthogonal lattice neighbors.
	Path []pixgrid.PixelCoord
	// SelectedSuperNodes is the number of super-nodes absorbed by Prim's
	// loop; equals (rows/2)*(cols/2) on success.
	SelectedSuperNodes int
	// MinDegree and MaxDegree are the pixel graph's degree extremes after
	// the run, expected to both be 2.
	MinDegree, MaxDegree int
	// Components is the number of connected components in the final
	// pixel graph, expected to be 1.
	Components int
}
