package checks

import (
	"fmt"

	"complabdoctor/internal/diag"
)

// requiredSections are the top-level sections the solver refuses to start
// without.
var requiredSections = []string{"path", "simulation_mode", "LB_numerics", "IO"}

// Structure verifies the required top-level sections and the sections
// implied by the declared counts and flags.
func Structure(ctx *Context) {
	p := ctx.Params

	for _, sect := range requiredSections {
		if ctx.Root.Find(sect) == nil {
			diag.Error(ctx.Rep, diag.XMLMissingSection,
				fmt.Sprintf("Required section <%s> is missing from CompLaB.xml.", sect))
		}
	}

	if p.NSubs > 0 && ctx.Root.Find("chemistry") == nil {
		diag.Error(ctx.Rep, diag.XMLMissingChemistry,
			"Substrates referenced but <chemistry> section missing.")
	}
	if p.Biotic && ctx.Root.Find("microbiology") == nil {
		diag.Error(ctx.Rep, diag.XMLMissingMicrobiology,
			"Biotic mode but <microbiology> section missing.")
	}
}

// Numerics checks the LBM relaxation time. The BGK collision operator is
// only stable for tau > 0.5; a declared value in (0, 0.5] diverges.
func Numerics(ctx *Context) {
	tau := ctx.Params.Tau
	if tau > 0 && tau <= 0.5 {
		ctx.Rep.Report(diag.NewError(diag.SolverTauUnstable,
			fmt.Sprintf("tau=%v is <= 0.5 → LBM is unstable.", tau)).
			WithFix("Set tau > 0.5 (typical range 0.51 – 1.5)."))
	}
}
