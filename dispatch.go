package adaptivecurve

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/gabmei/spatio-temporal-data-driven-sfc/align"
	"github.com/gabmei/spatio-temporal-data-driven-sfc/cost"
	"github.com/gabmei/spatio-temporal-data-driven-sfc/curvebuild"
	"github.com/gabmei/spatio-temporal-data-driven-sfc/pixgrid"
)

// Build constructs the data-driven cost over grid and runs
// curvebuild.Build once, returning the resulting pixel cycle.
func Build[T pixgrid.Numeric](grid *pixgrid.Grid[T], alpha float64, block int, opts ...Option) ([]pixgrid.PixelCoord, Metrics, error) {
	if grid == nil {
		return nil, Metrics{}, ErrInvalidParameter
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var start time.Time
	if o.timing {
		start = time.Now()
	}

	d, err := cost.NewDataDriven(grid, alpha, block)
	if err != nil {
		return nil, Metrics{}, translateCostErr(err)
	}

	coreStart := time.Now()
	res, err := curvebuild.Build(grid.R, grid.C, d, buildOptsFrom(o)...)
	coreElapsed := time.Since(coreStart)
	if err != nil {
		return nil, Metrics{}, translateBuildErr(err, -1)
	}

	if o.diagnostics != nil {
		*o.diagnostics = diagnosticsFrom(grid.R, grid.C, res)
	}

	return res.Path, metricsFrom(o.timing, coreElapsed, start), nil
}

// BuildPaths builds a path per frame (optionally across a bounded
// goroutine pool) and then aligns frames 1..end to their predecessor with
// strategy. ctx is checked between frames (sequential mode) or before
// dispatch (parallel mode); there are no suspension points inside a
// single frame's build.
//
// Every grid in grids must share the same rows, columns, and channel
// count; a mismatched frame is rejected with ErrInvalidShape before any
// frame is built.
func BuildPaths[T pixgrid.Numeric](ctx context.Context, grids []*pixgrid.Grid[T], alpha float64, block int, opts ...Option) ([][]pixgrid.PixelCoord, Metrics, error) {
	if len(grids) == 0 {
		return nil, Metrics{}, ErrInvalidParameter
	}
	for _, g := range grids {
		if g == nil {
			return nil, Metrics{}, ErrInvalidParameter
		}
	}
	if err := checkUniformShape(grids); err != nil {
		return nil, Metrics{}, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var start time.Time
	if o.timing {
		start = time.Now()
	}

	paths := make([][]pixgrid.PixelCoord, len(grids))
	diags := make([]Diagnostics, len(grids))

	buildOne := func(i int) error {
		d, err := cost.NewDataDriven(grids[i], alpha, block)
		if err != nil {
			return translateCostErr(err)
		}

		res, err := curvebuild.Build(grids[i].R, grids[i].C, d, buildOptsFrom(o)...)
		if err != nil {
			return translateBuildErr(err, i)
		}

		paths[i] = res.Path
		diags[i] = diagnosticsFrom(grids[i].R, grids[i].C, res)

		return nil
	}

	coreStart := time.Now()
	var buildErr error
	if o.parallel {
		buildErr = runParallel(ctx, len(grids), buildOne)
	} else {
		buildErr = runSequential(ctx, len(grids), buildOne)
	}
	coreElapsed := time.Since(coreStart)

	if buildErr != nil {
		return nil, Metrics{}, buildErr
	}

	if o.alignment != align.None {
		if err := align.Align(grids, paths, o.alignment); err != nil {
			return nil, Metrics{}, err
		}
	}

	if o.diagnosticsAll != nil {
		*o.diagnosticsAll = diags
	}

	return paths, metricsFrom(o.timing, coreElapsed, start), nil
}

// checkUniformShape rejects a frame batch unless every grid shares the
// same rows, columns, and channel count. Alignment and per-frame Prim
// both assume this; catching a mismatch here up front gives a clean
// error instead of a panic or a silently wrong alignment deep in align.
func checkUniformShape[T pixgrid.Numeric](grids []*pixgrid.Grid[T]) error {
	r, c, k := grids[0].R, grids[0].C, grids[0].K
	for _, g := range grids[1:] {
		if g.R != r || g.C != c || g.K != k {
			return ErrInvalidShape
		}
	}

	return nil
}

// runSequential runs fn(0..n-1) in order, checking ctx between frames —
// the granularity that allows canceling a multi-frame batch between
// frames even though a single frame's build has no internal suspension
// point.
func runSequential(ctx context.Context, n int, fn func(i int) error) error {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := fn(i); err != nil {
			return err
		}
	}

	return nil
}

// runParallel runs fn(0..n-1) across a bounded worker pool sized to
// GOMAXPROCS, built from sync.WaitGroup and a buffered channel semaphore,
// no external dependency.
func runParallel(ctx context.Context, n int, fn func(i int) error) error {
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	errs := make(chan error, n)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := fn(i); err != nil {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

func buildOptsFrom(o Options) []curvebuild.Option {
	if o.checkInvariants {
		return nil
	}

	return []curvebuild.Option{curvebuild.WithCheckInvariants(false)}
}

func diagnosticsFrom(rows, cols int, res curvebuild.Result) Diagnostics {
	return Diagnostics{
		Rows:               rows,
		Cols:               cols,
		SelectedSuperNodes: res.SelectedSuperNodes,
		MinDegree:          res.MinDegree,
		MaxDegree:          res.MaxDegree,
		Components:         res.Components,
	}
}

func metricsFrom(timing bool, coreElapsed time.Duration, start time.Time) Metrics {
	if !timing {
		return Metrics{}
	}

	return Metrics{
		CoreMS:  float64(coreElapsed.Microseconds()) / 1000.0,
		TotalMS: float64(time.Since(start).Microseconds()) / 1000.0,
	}
}

func translateCostErr(err error) error {
	if errors.Is(err, cost.ErrNilGrid) {
		return ErrInvalidParameter
	}
	if errors.Is(err, cost.ErrAlphaOutOfRange) || errors.Is(err, cost.ErrBadBlock) {
		return ErrInvalidParameter
	}

	return err
}

func translateBuildErr(err error, frame int) error {
	if errors.Is(err, curvebuild.ErrInvalidDimensions) {
		return ErrInvalidShape
	}
	if errors.Is(err, curvebuild.ErrInvariantViolation) {
		if frame < 0 {
			return fmt.Errorf("%w: %w", ErrInternalInvariantViolation, err)
		}

		return fmt.Errorf("%w: frame %d: %w", ErrInternalInvariantViolation, frame, err)
	}

	return err
}
