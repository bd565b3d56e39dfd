package align

import "errors"

// ErrUnknownStrategy indicates an unrecognized Strategy value.
var ErrUnknownStrategy = errors.New("align: unknown alignment strategy")

// ErrLengthMismatch indicates that grids and paths hold a different number
// of frames, or that the frames' paths do not share one non-zero length.
// Channel counts are not checked.
var ErrLengthMismatch = errors.New("align: frame paths must have equal, non-zero length")
