package pixgrid

import "errors"

// ErrEmptyGrid indicates the grid has zero rows or zero columns.
var ErrEmptyGrid = errors.New("pixgrid: grid must have at least one row and one column")

// ErrOddDimension indicates a row or column count is not even. This system's
// dual-graph construction requires every pixel to belong to exactly one
// 2x2 super-node, which is impossible when R or C is odd.
var ErrOddDimension = errors.New("pixgrid: rows and columns must both be even")

// ErrDegenerateDimension indicates a 1xN or Nx1 grid. A single-row or
// single-column grid cannot form 2x2 super-nodes at all.
var ErrDegenerateDimension = errors.New("pixgrid: grid must have at least 2 rows and 2 columns")

// ErrDataLength indicates the flat backing slice does not have exactly
// R*C*K elements.
var ErrDataLength = errors.New("pixgrid: data length does not match rows*cols*channels")

// ErrBadChannelCount indicates a non-positive channel count was requested.
var ErrBadChannelCount = errors.New("pixgrid: channel count must be >= 1")
