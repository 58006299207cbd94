package report

import (
	"fmt"
	"io"
	"strings"

	"complabdoctor/internal/diag"
)

const bannerWidth = 72

var (
	heavyRule = strings.Repeat("=", bannerWidth)
	lightRule = strings.Repeat("-", bannerWidth)
)

// Text renders the canonical crash-diagnostic report. The layout is stable:
// saved reports from different runs of the same configuration differ only in
// the Generated timestamp.
func Text(w io.Writer, h Header, bag *diag.Bag, opts TextOpts) error {
	var b strings.Builder

	b.WriteString(heavyRule + "\n")
	b.WriteString("  CompLaB CRASH DIAGNOSTIC REPORT\n")
	fmt.Fprintf(&b, "  Generated: %s\n", h.generatedAt().Format("2006-01-02 15:04:05"))
	b.WriteString(heavyRule + "\n\n")

	fmt.Fprintf(&b, "Exit code : %d\n", h.ExitCode)
	fmt.Fprintf(&b, "Error type: %s\n", h.Diagnosis.Name)
	fmt.Fprintf(&b, "Reason    : %s\n", h.Diagnosis.Description)
	fmt.Fprintf(&b, "XML file  : %s\n\n", h.ConfigPath)

	errs := clip(bag.Errors(), opts.Max)
	warns := clip(bag.Warnings(), opts.Max)
	infos := clip(bag.Infos(), opts.Max)

	if len(errs) > 0 {
		b.WriteString(lightRule + "\n")
		fmt.Fprintf(&b, "  ERRORS DETECTED: %d\n", len(errs))
		b.WriteString(lightRule + "\n")
		for i, d := range errs {
			writeFinding(&b, i+1, d)
		}
	} else {
		b.WriteString(lightRule + "\n")
		b.WriteString("  No configuration errors detected.\n")
		b.WriteString("  The crash may be caused by:\n")
		b.WriteString("    - A bug in the C++ solver\n")
		b.WriteString("    - Numerical instability during iteration\n")
		b.WriteString("    - Insufficient memory for the domain size\n")
		b.WriteString(lightRule + "\n\n")
	}

	if len(warns) > 0 {
		b.WriteString(lightRule + "\n")
		fmt.Fprintf(&b, "  WARNINGS: %d\n", len(warns))
		b.WriteString(lightRule + "\n")
		for i, d := range warns {
			writeFinding(&b, i+1, d)
		}
	}

	if len(infos) > 0 {
		b.WriteString(lightRule + "\n")
		b.WriteString("  DIAGNOSTIC INFO\n")
		b.WriteString(lightRule + "\n")
		for _, d := range infos {
			fmt.Fprintf(&b, "  - %s\n", d.Message)
		}
		b.WriteString("\n")
	}

	b.WriteString(lightRule + "\n")
	b.WriteString("  HOW TO FIX\n")
	b.WriteString(lightRule + "\n")
	if len(errs) > 0 {
		b.WriteString("  Fix the errors above, then:\n")
	}
	b.WriteString("  1. Run 'complab-doctor diagnose' again on the corrected file\n")
	b.WriteString("  2. Verify geometry file has exactly nx * ny * nz bytes\n")
	b.WriteString("  3. Check that defineKinetics.hh array indices match substrate count\n")
	b.WriteString("  4. Check half_saturation_constants / maximum_uptake_flux counts\n")
	b.WriteString("  5. Re-export CompLaB.xml and run again\n\n")
	b.WriteString(heavyRule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// writeFinding prints one numbered finding with its category tag and the
// ">>"-indented notes and fix, blank-line terminated.
func writeFinding(b *strings.Builder, n int, d diag.Diagnostic) {
	fmt.Fprintf(b, "  %d. %s %s\n", n, d.Code.Category(), d.Message)
	for _, note := range d.Notes {
		fmt.Fprintf(b, "     >> %s\n", note)
	}
	if d.Fix != "" {
		fmt.Fprintf(b, "     >> Fix: %s\n", d.Fix)
	}
	b.WriteString("\n")
}

func clip(diags []diag.Diagnostic, max int) []diag.Diagnostic {
	if max > 0 && max < len(diags) {
		return diags[:max]
	}
	return diags
}
