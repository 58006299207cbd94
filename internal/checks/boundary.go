package checks

import (
	"fmt"

	"complabdoctor/internal/diag"
	"complabdoctor/internal/xmlcfg"
)

// Boundary warns when no substrate source exists anywhere in the domain:
// every substrate has non-Dirichlet boundaries on both sides and a zero
// initial concentration. Degenerate but legal, so a warning only.
func Boundary(ctx *Context) {
	p := ctx.Params
	chem := ctx.Root.Find("chemistry")
	if chem == nil || p.NSubs == 0 {
		return
	}

	allNeumannZero := true
	for i := 0; i < p.NSubs; i++ {
		s := chem.Find(fmt.Sprintf("substrate%d", i))
		if s == nil {
			continue
		}
		lbt := xmlcfg.Text(s, "left_boundary_type", "")
		rbt := xmlcfg.Text(s, "right_boundary_type", "")
		ic := xmlcfg.Float(s, "initial_concentration", 0)
		if lbt == "Dirichlet" || rbt == "Dirichlet" || ic != 0 {
			allNeumannZero = false
		}
	}

	if allNeumannZero {
		ctx.Rep.Report(diag.NewWarning(diag.BoundaryNoSource,
			"All substrates have Neumann BCs and zero initial concentration — no substrate source exists.").
			WithNote("The simulation will have zero concentrations everywhere."))
	}
}

