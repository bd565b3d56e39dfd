package cost

import "errors"

// ErrNilGrid indicates NewDataDriven was called with a nil grid.
var ErrNilGrid = errors.New("cost: grid must not be nil")

// ErrAlphaOutOfRange indicates alpha is outside [0,1].
var ErrAlphaOutOfRange = errors.New("cost: alpha must be in [0,1]")

// ErrBadBlock indicates a block size less than 1.
var ErrBadBlock = errors.New("cost: block must be >= 1")
