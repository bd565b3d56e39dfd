package adaptivecurve

import "errors"

// ErrInvalidShape indicates a grid or batch shape that violates the
// dimension constraints the algorithm requires: odd R/C, R or C < 2, or
// mismatched frame shapes within a batch.
var ErrInvalidShape = errors.New("adaptivecurve: invalid grid shape")

// ErrInvalidParameter indicates an out-of-range constructor parameter
// (alpha outside [0,1], block < 1, an empty frame batch).
var ErrInvalidParameter = errors.New("adaptivecurve: invalid parameter")

// ErrUnsupportedDtype indicates a pixel channel type outside the accepted
// dtype set (see pixgrid.Numeric).
var ErrUnsupportedDtype = errors.New("adaptivecurve: unsupported pixel dtype")

// ErrInternalInvariantViolation wraps curvebuild.ErrInvariantViolation at
// the package boundary: the constructed path failed the post-run
// 2-regular/single-component check.
var ErrInternalInvariantViolation = errors.New("adaptivecurve: internal invariant violation")
