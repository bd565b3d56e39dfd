package align

// Strategy selects how a frame's path is scored against its predecessor.
type Strategy int

const (
	// None performs no alignment; frames are left exactly as produced by
	// curvebuild.Build.
	None Strategy = iota
	// L1 scores a rotation by the sum of per-step L1 pixel distance to
	// the previous frame; lower is better. Brute-force O(N^2 * channels).
	L1
	// L2 scores a rotation by circular cross-correlation via FFT; higher
	// is better.
	L2
)

// String renders the strategy name for diagnostics and error messages.
func (s Strategy) String() string {
	switch s {
	case None:
		return "None"
	case L1:
		return "L1"
	case L2:
		return "L2"
	default:
		return "Unknown"
	}
}

// result pairs a candidate rotation's score with whether higher or lower
// is better.
type result struct {
	score    float64
	shift    int
	maximize bool // true for L2 (correlation, higher better), false for L1
}

// isBetterThan reports whether r should be preferred over other. Uses a
// strict comparison, so an exact tie leaves other (the non-reversed
// candidate, by call order in Align) in place.
func (r result) isBetterThan(other result) bool {
	if r.maximize {
		return r.score > other.score
	}

	return r.score < other.score
}
