package adaptivecurve

import "github.com/gabmei/spatio-temporal-data-driven-sfc/align"

// Options configures a Build or BuildPaths call.
type Options struct {
	checkInvariants bool
	timing          bool
	alignment       align.Strategy
	parallel        bool
	diagnostics     *Diagnostics
	diagnosticsAll  *[]Diagnostics
}

// DefaultOptions returns the recommended defaults: invariant checking on,
// no timing collection, no cross-frame alignment, sequential frame
// processing.
func DefaultOptions() Options {
	return Options{checkInvariants: true, alignment: align.None}
}

// Option mutates an Options value.
type Option func(*Options)

// WithCheckInvariants toggles curvebuild's post-run 2-regular/single-
// component check.
func WithCheckInvariants(enabled bool) Option {
	return func(o *Options) { o.checkInvariants = enabled }
}

// WithTiming enables population of the returned Metrics. Timing is
// omitted by default so a caller that doesn't need it pays nothing but a
// zero-valued struct.
func WithTiming(enabled bool) Option {
	return func(o *Options) { o.timing = enabled }
}

// WithAlignment selects the cross-frame alignment strategy for
// BuildPaths. Ignored by Build, which has no predecessor frame to align
// against.
func WithAlignment(strategy align.Strategy) Option {
	return func(o *Options) { o.alignment = strategy }
}

// WithParallel enables per-frame Prim execution across a bounded
// goroutine pool in BuildPaths. Alignment always runs afterward,
// sequentially, since it is inherently a chain of previous-frame
// dependencies. Ignored by Build.
func WithParallel(enabled bool) Option {
	return func(o *Options) { o.parallel = enabled }
}

// WithDiagnostics arranges for Build to populate *d with the run's
// diagnostics before returning. Passing a nil d is a no-op.
func WithDiagnostics(d *Diagnostics) Option {
	return func(o *Options) { o.diagnostics = d }
}

// WithDiagnosticsAll arranges for BuildPaths to populate *d with one
// Diagnostics value per frame, in input order, before returning. Passing
// a nil d is a no-op.
func WithDiagnosticsAll(d *[]Diagnostics) Option {
	return func(o *Options) { o.diagnosticsAll = d }
}
