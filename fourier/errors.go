package fourier

import "errors"

// ErrEmptySequence indicates one of the input sequences to ConvolveReal or
// CorrelateValid has zero length.
var ErrEmptySequence = errors.New("fourier: sequences must be non-empty")

// ErrTooShort indicates CorrelateValid was called with len(a) < len(b),
// violating its precondition that a be at least as long as b.
var ErrTooShort = errors.New("fourier: len(a) must be >= len(b)")
