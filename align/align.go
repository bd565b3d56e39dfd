package align

import (
	"math"

	"github.com/gabmei/spatio-temporal-data-driven-sfc/fourier"
	"github.com/gabmei/spatio-temporal-data-driven-sfc/pixgrid"
)

// Align reorders frames 1..len(paths)-1 in place, choosing for each frame
// the cyclic rotation (and, if it scores better, reversal) of its path
// that best matches the already-aligned predecessor frame. Frame 0 is
// never touched; it anchors the sequence.
//
// grids[i] must be the pixel data path[i] was built over. All paths must
// share the same non-zero length and grids must agree on channel count.
func Align[T pixgrid.Numeric](grids []*pixgrid.Grid[T], paths [][]pixgrid.PixelCoord, strategy Strategy) error {
	if strategy == None {
		return nil
	}
	if strategy != L1 && strategy != L2 {
		return ErrUnknownStrategy
	}
	if len(grids) != len(paths) {
		return ErrLengthMismatch
	}
	if len(paths) < 2 {
		return nil
	}

	n := len(paths[0])
	if n == 0 {
		return ErrLengthMismatch
	}
	for _, p := range paths {
		if len(p) != n {
			return ErrLengthMismatch
		}
	}

	prev := linearize(grids[0], paths[0])
	for i := 1; i < len(paths); i++ {
		cur := linearize(grids[i], paths[i])

		forward, err := bestRotation(cur, prev, strategy, false)
		if err != nil {
			return err
		}
		reversed, err := bestRotation(cur, prev, strategy, true)
		if err != nil {
			return err
		}

		if reversed.isBetterThan(forward) {
			reverseSlice(paths[i])
			rotateSlice(paths[i], reversed.shift)
			reverseSlice(cur)
			rotateSlice(cur, reversed.shift)
		} else {
			rotateSlice(paths[i], forward.shift)
			rotateSlice(cur, forward.shift)
		}

		prev = cur
	}

	return nil
}

// linearize samples grid along path, producing one channel vector per
// step in path order.
func linearize[T pixgrid.Numeric](grid *pixgrid.Grid[T], path []pixgrid.PixelCoord) [][]float64 {
	out := make([][]float64, len(path))
	for i, p := range path {
		values := grid.At(p)
		row := make([]float64, len(values))
		for k, v := range values {
			row[k] = float64(v)
		}
		out[i] = row
	}

	return out
}

// bestRotation scores every cyclic rotation of cur against prev under
// strategy, optionally reversing a private copy of cur first. cur itself
// is never mutated.
func bestRotation(cur, prev [][]float64, strategy Strategy, tryReverse bool) (result, error) {
	work := cur
	if tryReverse {
		work = cloneRows(cur)
		reverseSlice(work)
	}

	switch strategy {
	case L1:
		shift, score := bestRotationL1(work, prev)
		return result{score: score, shift: shift, maximize: false}, nil
	case L2:
		shift, score, err := bestRotationL2(work, prev)
		if err != nil {
			return result{}, err
		}
		return result{score: score, shift: shift, maximize: true}, nil
	default:
		return result{}, ErrUnknownStrategy
	}
}

// bestRotationL1 brute-forces every shift, scoring by summed L1 pixel
// distance to prev; lower is better.
func bestRotationL1(cur, prev [][]float64) (shift int, score float64) {
	n := len(cur)
	best := l1ScoreAt(cur, prev, 0)
	bestShift := 0
	for r := 1; r < n; r++ {
		s := l1ScoreAt(cur, prev, r)
		if s < best {
			best = s
			bestShift = r
		}
	}

	return bestShift, best
}

func l1ScoreAt(cur, prev [][]float64, rot int) float64 {
	n := len(cur)
	var score float64
	for k := 0; k < n; k++ {
		c := cur[(k+rot)%n]
		p := prev[k]
		for ch := range p {
			d := c[ch] - p[ch]
			if d < 0 {
				d = -d
			}
			score += d
		}
	}

	return score
}

// bestRotationL2 scores every shift by circular cross-correlation
// (summed over channels) via fourier.CorrelateValid, using the doubled-
// signal trick to turn a linear valid-mode correlation into a circular
// one; higher is better.
func bestRotationL2(cur, prev [][]float64) (shift int, score float64, err error) {
	n := len(cur)
	if n == 0 {
		return 0, 0, ErrLengthMismatch
	}
	channels := len(cur[0])

	doubled := make([][]float64, 2*n)
	copy(doubled, cur)
	copy(doubled[n:], cur)

	totals := make([]float64, n)
	for ch := 0; ch < channels; ch++ {
		a := column(doubled, ch)
		b := column(prev, ch)

		corr, cerr := fourier.CorrelateValid(a, b)
		if cerr != nil {
			return 0, 0, cerr
		}
		for i := 0; i < n; i++ {
			totals[i] += corr[i]
		}
	}

	// FFT round-off leaves equal correlations differing in their last bits.
	// Snapping the totals to a grid about 2^-30 of their magnitude keeps
	// exact ties tied, so ties go to the smallest shift here and to the
	// non-reversed candidate in Align.
	maxAbs := 0.0
	for _, v := range totals {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	_, exp := math.Frexp(maxAbs)
	q := math.Ldexp(1, exp-30)
	for i := range totals {
		totals[i] = math.Round(totals[i]/q) * q
	}

	bestShift := 0
	bestScore := totals[0]
	for i := 1; i < n; i++ {
		if totals[i] > bestScore {
			bestScore = totals[i]
			bestShift = i
		}
	}

	return bestShift, bestScore, nil
}

func column(rows [][]float64, ch int) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r[ch]
	}

	return out
}

func cloneRows(rows [][]float64) [][]float64 {
	return append([][]float64(nil), rows...)
}

// rotateSlice replaces s with the rotation new[i] = old[(i+shift) mod n],
// matching std::rotate(begin, begin+shift, end) semantics.
func rotateSlice[E any](s []E, shift int) {
	n := len(s)
	if n == 0 {
		return
	}
	shift = ((shift % n) + n) % n
	if shift == 0 {
		return
	}

	rotated := make([]E, n)
	for i := 0; i < n; i++ {
		rotated[i] = s[(i+shift)%n]
	}
	copy(s, rotated)
}

func reverseSlice[E any](s []E) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
