package adaptivecurve

import (
	"context"

	"github.com/gabmei/spatio-temporal-data-driven-sfc/pixgrid"
)

// Dtype tags which field of a PixelBuffer holds the pixel data, letting
// BuildAny/BuildPathsAny normalize an untyped buffer to the matching
// pixgrid.Grid element type before dispatching into the generic core.
type Dtype int

const (
	Uint8   Dtype = iota // 8-bit unsigned
	Uint16               // 16-bit unsigned
	Float32              // 32-bit float
	Float64              // 64-bit float
)

// String renders the dtype name for diagnostics and error messages.
func (d Dtype) String() string {
	switch d {
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// PixelBuffer is a dtype-tagged flat pixel buffer, row-major and
// channel-minor like pixgrid.Grid.Data. Exactly one of the typed slices
// is populated, selected by Dtype; the others are left nil. This is the
// boundary type callers whose pixel data doesn't already carry a Go type
// parameter (data read from an image file, a numpy-style buffer bridged
// over cgo, etc.) construct before calling BuildAny/BuildPathsAny.
type PixelBuffer struct {
	Dtype   Dtype
	Uint8   []uint8
	Uint16  []uint16
	Float32 []float32
	Float64 []float64
}

// BuildAny is the dtype-normalizing counterpart of Build: it wraps buf in
// a pixgrid.Grid of the matching element type and runs Build against it.
// Returns ErrUnsupportedDtype for any Dtype outside the accepted set.
func BuildAny(buf PixelBuffer, rows, cols, channels int, alpha float64, block int, opts ...Option) ([]pixgrid.PixelCoord, Metrics, error) {
	switch buf.Dtype {
	case Uint8:
		return buildFromBuffer(buf.Uint8, rows, cols, channels, alpha, block, opts...)
	case Uint16:
		return buildFromBuffer(buf.Uint16, rows, cols, channels, alpha, block, opts...)
	case Float32:
		return buildFromBuffer(buf.Float32, rows, cols, channels, alpha, block, opts...)
	case Float64:
		return buildFromBuffer(buf.Float64, rows, cols, channels, alpha, block, opts...)
	default:
		return nil, Metrics{}, ErrUnsupportedDtype
	}
}

// BuildPathsAny is the dtype-normalizing counterpart of BuildPaths. Every
// buffer in bufs must share the same Dtype; a mixed-dtype batch is
// rejected with ErrUnsupportedDtype rather than silently promoting to a
// common type.
func BuildPathsAny(ctx context.Context, bufs []PixelBuffer, rows, cols, channels int, alpha float64, block int, opts ...Option) ([][]pixgrid.PixelCoord, Metrics, error) {
	if len(bufs) == 0 {
		return nil, Metrics{}, ErrInvalidParameter
	}

	dtype := bufs[0].Dtype
	for _, b := range bufs {
		if b.Dtype != dtype {
			return nil, Metrics{}, ErrUnsupportedDtype
		}
	}

	switch dtype {
	case Uint8:
		return buildPathsFromBuffers(ctx, collect(bufs, func(b PixelBuffer) []uint8 { return b.Uint8 }), rows, cols, channels, alpha, block, opts...)
	case Uint16:
		return buildPathsFromBuffers(ctx, collect(bufs, func(b PixelBuffer) []uint16 { return b.Uint16 }), rows, cols, channels, alpha, block, opts...)
	case Float32:
		return buildPathsFromBuffers(ctx, collect(bufs, func(b PixelBuffer) []float32 { return b.Float32 }), rows, cols, channels, alpha, block, opts...)
	case Float64:
		return buildPathsFromBuffers(ctx, collect(bufs, func(b PixelBuffer) []float64 { return b.Float64 }), rows, cols, channels, alpha, block, opts...)
	default:
		return nil, Metrics{}, ErrUnsupportedDtype
	}
}

func buildFromBuffer[T pixgrid.Numeric](data []T, rows, cols, channels int, alpha float64, block int, opts ...Option) ([]pixgrid.PixelCoord, Metrics, error) {
	grid, err := pixgrid.NewGrid(rows, cols, channels, data)
	if err != nil {
		return nil, Metrics{}, translateGridErr(err)
	}

	return Build(grid, alpha, block, opts...)
}

// buildPathsFromBuffers builds one grid per buffer against the shared
// rows/cols/channels and checks them for uniform shape before dispatch,
// even though buffers built from a single shared shape triple can't
// actually diverge today — the check stays in sync with BuildPaths' own
// so a future per-frame shape parameter doesn't silently reopen the gap.
func buildPathsFromBuffers[T pixgrid.Numeric](ctx context.Context, datas [][]T, rows, cols, channels int, alpha float64, block int, opts ...Option) ([][]pixgrid.PixelCoord, Metrics, error) {
	grids := make([]*pixgrid.Grid[T], len(datas))
	for i, data := range datas {
		grid, err := pixgrid.NewGrid(rows, cols, channels, data)
		if err != nil {
			return nil, Metrics{}, translateGridErr(err)
		}
		grids[i] = grid
	}
	if err := checkUniformShape(grids); err != nil {
		return nil, Metrics{}, err
	}

	return BuildPaths(ctx, grids, alpha, block, opts...)
}

func collect[T any](bufs []PixelBuffer, get func(PixelBuffer) T) []T {
	out := make([]T, len(bufs))
	for i, b := range bufs {
		out[i] = get(b)
	}

	return out
}

func translateGridErr(err error) error {
	switch err {
	case pixgrid.ErrEmptyGrid, pixgrid.ErrOddDimension, pixgrid.ErrDegenerateDimension:
		return ErrInvalidShape
	case pixgrid.ErrDataLength, pixgrid.ErrBadChannelCount:
		return ErrInvalidParameter
	default:
		return err
	}
}
