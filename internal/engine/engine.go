// Package engine orchestrates one diagnostic pass: exit-code classification,
// document ingest, the check battery, and the facts the report formats need.
package engine

import (
	"fmt"
	"path/filepath"
	"time"

	"complabdoctor/internal/checks"
	"complabdoctor/internal/diag"
	"complabdoctor/internal/exitcode"
	"complabdoctor/internal/kinscan"
	"complabdoctor/internal/observ"
	"complabdoctor/internal/report"
	"complabdoctor/internal/xmlcfg"
)

// DefaultMaxDiagnostics bounds the bag when the caller does not say.
const DefaultMaxDiagnostics = 100

// Options configures one diagnostic run.
type Options struct {
	// ConfigPath is the CompLaB.xml fed to the crashed solver.
	ConfigPath string

	// ExitCode is the solver's signed process exit code.
	ExitCode int

	// KineticsDir holds defineKinetics.hh / defineAbioticKinetics.hh.
	// Empty means one level above the config's directory.
	KineticsDir string

	// Scanner analyses header sources; nil means a plain regex scan.
	Scanner kinscan.IndexScanner

	// MaxDiagnostics caps collected findings (0 → DefaultMaxDiagnostics).
	MaxDiagnostics int

	// Timer, when set, records the run's phase durations.
	Timer *observ.Timer
}

// Result is the complete outcome of one run.
type Result struct {
	ConfigPath  string
	ExitCode    int
	Diagnosis   exitcode.Diagnosis
	Params      checks.Params
	Bag         *diag.Bag
	GeneratedAt time.Time
}

// Header returns the report header for this result.
func (r *Result) Header() report.Header {
	return report.Header{
		ExitCode:    r.ExitCode,
		Diagnosis:   r.Diagnosis,
		ConfigPath:  r.ConfigPath,
		GeneratedAt: r.GeneratedAt,
	}
}

// Diagnose runs the full battery over one configuration. It never returns
// an error and never panics: any filesystem or document problem becomes a
// finding in the result's bag.
func Diagnose(opts Options) *Result {
	tm := opts.Timer
	if tm == nil {
		tm = observ.NewTimer()
	}
	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = DefaultMaxDiagnostics
	}

	bag := diag.NewBag(maxDiags)
	rep := diag.BagReporter{Bag: bag}
	res := &Result{
		ConfigPath:  opts.ConfigPath,
		ExitCode:    opts.ExitCode,
		Diagnosis:   exitcode.Classify(opts.ExitCode),
		Bag:         bag,
		GeneratedAt: time.Now(),
	}

	endParse := tm.Begin("parse")
	doc, lerr := xmlcfg.Load(opts.ConfigPath)
	if lerr != nil {
		endParse("failed")
		rep.Report(loadFinding(lerr, opts.ConfigPath))
		return res
	}
	diag.Info(rep, diag.XMLParsedOK, "XML parsed successfully: "+opts.ConfigPath)

	res.Params = checks.ExtractParams(doc.Root)
	endParse(filepath.Base(opts.ConfigPath))

	kineticsDir := opts.KineticsDir
	if kineticsDir == "" {
		kineticsDir = filepath.Dir(filepath.Dir(opts.ConfigPath))
	}
	ctx := &checks.Context{
		Root:        doc.Root,
		ConfigPath:  opts.ConfigPath,
		KineticsDir: kineticsDir,
		Params:      res.Params,
		Rep:         rep,
		Scanner:     opts.Scanner,
	}

	checks.Summary(ctx)

	end := tm.Begin("geometry")
	checks.Geometry(ctx)
	end("")

	end = tm.Begin("declarations")
	checks.Declarations(ctx)
	checks.Mode(ctx)
	end("")

	end = tm.Begin("kinetics")
	checks.Headers(ctx)
	end("")

	checks.Domain(ctx)
	checks.Numerics(ctx)
	checks.Structure(ctx)
	checks.Boundary(ctx)

	return res
}

// loadFinding converts an ingest failure into the run's single finding.
func loadFinding(lerr *xmlcfg.LoadError, path string) diag.Diagnostic {
	switch lerr.Kind {
	case xmlcfg.NotFound:
		return diag.NewError(diag.XMLFileNotFound,
			fmt.Sprintf("File not found: %s", path))
	case xmlcfg.ParseFailure:
		return diag.NewError(diag.XMLParseError,
			fmt.Sprintf("Malformed XML — parser error: %v", lerr.Err))
	default:
		return diag.NewError(diag.XMLReadError,
			fmt.Sprintf("Cannot read file: %v", lerr.Err))
	}
}
