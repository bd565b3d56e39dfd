package adaptivecurve

import (
	"fmt"
	"io"
	"log"
)

// Diagnostics is a stderr-like side channel: information a caller may
// want to inspect or log after a build, but that never affects control
// flow. Grid dimensions, super-node count, degree extremes, and component
// count are collected into a value rather than printed unconditionally,
// left to LogTo on request.
type Diagnostics struct {
	Rows, Cols         int
	SelectedSuperNodes int
	MinDegree          int
	MaxDegree          int
	Components         int
}

// LogTo writes a one-line human-readable summary of d to w using the
// standard library log package rather than a third-party logging
// library.
func (d Diagnostics) LogTo(w io.Writer) {
	logger := log.New(w, "adaptivecurve: ", 0)
	logger.Print(d.String())
}

// String renders d as a single line, used by LogTo and available directly
// for callers that want to embed it in their own log lines.
func (d Diagnostics) String() string {
	return fmt.Sprintf(
		"grid=%dx%d super_nodes=%d degree=[%d,%d] components=%d",
		d.Rows, d.Cols, d.SelectedSuperNodes, d.MinDegree, d.MaxDegree, d.Components,
	)
}
