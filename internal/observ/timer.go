// Package observ collects timing data for the phases of a diagnostic run
// (classify, parse, checks, header scan, render).
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase records one timed span of the run.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks the execution time of the run's phases. Not safe for
// concurrent use; batch runs keep one Timer per file.
type Timer struct {
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 8)} }

// Begin starts a phase and returns the func that ends it. The note is
// attached to the finished phase ("" for none).
func (t *Timer) Begin(name string) func(note string) {
	idx := len(t.phases)
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return func(note string) {
		p := &t.phases[idx]
		p.Dur = time.Since(p.Start)
		p.Note = note
	}
}

// Summary returns a human-readable table of all tracked phases.
func (t *Timer) Summary() string {
	report := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&b, "  %-16s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "  %-16s %7.2f ms\n", "total", report.TotalMS)
	return b.String()
}

// PhaseReport представляет сжатую информацию о фазе таймера для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report формирует срез фаз и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: float64(phase.Dur) / float64(time.Millisecond),
			Note:       phase.Note,
		}
	}
	report.TotalMS = float64(total) / float64(time.Millisecond)
	return report
}
