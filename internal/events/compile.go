package events

import (
	"time"

	"github.com/hanpama/trailgen/internal/ir"
)

// CompileStart is emitted before the first pass of a compilation.
type CompileStart struct {
	Package string
	Sources []string
}

// CompileFinish is emitted after the last pass, or after a fatal error.
type CompileFinish struct {
	Package     string
	Diagnostics int
	Bytes       int
	Err         error
	Duration    time.Duration
}

// PassStart is emitted before a generator pass runs.
type PassStart struct {
	Pass string
}

// PassFinish is emitted after a generator pass. Diagnostics counts the
// findings the pass added.
type PassFinish struct {
	Pass        string
	Diagnostics int
	Duration    time.Duration
}

// DiagnosticRecorded is emitted once for each distinct diagnostic.
type DiagnosticRecorded struct {
	Pass       string
	Diagnostic ir.Diagnostic
}
