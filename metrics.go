package adaptivecurve

// Metrics reports timing for a single Build/BuildPaths call. Both fields
// are zero unless WithTiming is passed; callers that don't ask for timing
// pay nothing but a zero-valued struct.
type Metrics struct {
	// CoreMS is time spent inside curvebuild.Build (and, for BuildPaths,
	// summed or wall-clock across frames depending on parallelism).
	CoreMS float64
	// TotalMS is time spent in the whole dispatcher call, including cost
	// construction and, for BuildPaths, alignment.
	TotalMS float64
}
