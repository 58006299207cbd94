// Package report renders a finished diagnostic run for people and machines.
// The canonical text report is what gets saved next to the crashed run;
// pretty and JSON are terminal and tooling views of the same bag.
package report

import (
	"time"

	"complabdoctor/internal/exitcode"
)

// Header carries the run-level facts every format prints before the findings.
type Header struct {
	ExitCode   int
	Diagnosis  exitcode.Diagnosis
	ConfigPath string

	// GeneratedAt stamps the report; zero means time.Now at render.
	GeneratedAt time.Time
}

func (h Header) generatedAt() time.Time {
	if h.GeneratedAt.IsZero() {
		return time.Now()
	}
	return h.GeneratedAt
}

// TextOpts configures the canonical text report.
type TextOpts struct {
	Max int // обрезка вывода, не Bag
}

// JSONOpts configures JSON output.
type JSONOpts struct {
	Max          int
	IncludeNotes bool
}

// PrettyOpts configures terminal output.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	Max       int
}
