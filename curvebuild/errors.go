package curvebuild

import "errors"

// ErrNilDistance indicates Build was called with a nil cost.Distance.
var ErrNilDistance = errors.New("curvebuild: distance must not be nil")

// ErrInvalidDimensions indicates R or C is odd, zero, or negative.
var ErrInvalidDimensions = errors.New("curvebuild: rows and columns must both be even and >= 2")

// ErrInvariantViolation indicates the post-Prim pixel graph failed the
// 2-regular, single-component check. This can only happen if there is a
// bug in the merge rewrite or in the caller's custom Distance
// implementation corrupting shared state; it is always fatal.
var ErrInvariantViolation = errors.New("curvebuild: internal invariant violation: pixel graph is not a single Hamiltonian cycle")
