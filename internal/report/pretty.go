package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"complabdoctor/internal/diag"
)

// Pretty renders the run for a terminal: a one-line header, then one line
// per finding with the severity coloured, notes and fixes indented below.
func Pretty(w io.Writer, h Header, bag *diag.Bag, opts PrettyOpts) {
	sevColor := map[diag.Severity]*color.Color{
		diag.SevError:   color.New(color.FgRed, color.Bold),
		diag.SevWarning: color.New(color.FgYellow),
		diag.SevInfo:    color.New(color.FgCyan),
	}
	dim := color.New(color.Faint)
	fix := color.New(color.FgGreen)
	if !opts.Color {
		for _, c := range sevColor {
			c.DisableColor()
		}
		dim.DisableColor()
		fix.DisableColor()
	}

	fmt.Fprintf(w, "%s: exit code %d (%s)\n", h.ConfigPath, h.ExitCode, h.Diagnosis.Name)

	items := bag.Items()
	shown := len(items)
	if opts.Max > 0 && opts.Max < shown {
		shown = opts.Max
	}
	for i := 0; i < shown; i++ {
		d := items[i]
		fmt.Fprintf(w, "%s %s %s %s\n",
			sevColor[d.Severity].Sprint(d.Severity.String()),
			d.Code.ID(), dim.Sprint(d.Code.Category()), d.Message)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				fmt.Fprintf(w, "  %s %s\n", dim.Sprint("note:"), note)
			}
			if d.Fix != "" {
				fmt.Fprintf(w, "  %s %s\n", fix.Sprint("fix:"), d.Fix)
			}
		}
	}
	if hidden := len(items) - shown; hidden > 0 {
		fmt.Fprintf(w, "%s\n", dim.Sprintf("... and %d more", hidden))
	}

	fmt.Fprintf(w, "%d error(s), %d warning(s), %d info\n",
		len(bag.Errors()), len(bag.Warnings()), len(bag.Infos()))
}
