package checks

import (
	"fmt"
	"strings"

	"complabdoctor/internal/diag"
	"complabdoctor/internal/xmlcfg"
)

// Declarations verifies that every declared substrate and microbe has its
// indexed element, and that per-microbe parameter lists are sized by the
// substrate count. The solver allocates fixed-size arrays from the counts;
// a list with the wrong length is an out-of-bounds write.
func Declarations(ctx *Context) {
	p := ctx.Params

	if chem := ctx.Root.Find("chemistry"); chem != nil {
		for i := 0; i < p.NSubs; i++ {
			if chem.Find(fmt.Sprintf("substrate%d", i)) == nil {
				diag.Error(ctx.Rep, diag.XMLMissingSubstrate,
					fmt.Sprintf("<substrate%d> element is missing but number_of_substrates=%d.", i, p.NSubs))
			}
		}
	}

	mb := ctx.Root.Find("microbiology")
	if mb == nil || !p.Biotic {
		return
	}

	for i := 0; i < p.NMics; i++ {
		m := mb.Find(fmt.Sprintf("microbe%d", i))
		if m == nil {
			diag.Error(ctx.Rep, diag.XMLMissingMicrobe,
				fmt.Sprintf("<microbe%d> element is missing but number_of_microbes=%d.", i, p.NMics))
			continue
		}
		checkMicrobe(ctx, m, i)
	}
}

func checkMicrobe(ctx *Context, m *xmlcfg.Node, idx int) {
	p := ctx.Params
	name := xmlcfg.Text(m, "name_of_microbes", fmt.Sprintf("microbe%d", idx))

	if ks := xmlcfg.Fields(m, "half_saturation_constants"); len(ks) > 0 && len(ks) != p.NSubs {
		ctx.Rep.Report(diag.NewError(diag.KinKsCountMismatch,
			fmt.Sprintf("Microbe '%s': half_saturation_constants has %d value(s) but there are %d substrate(s).",
				name, len(ks), p.NSubs)).
			WithNote(fmt.Sprintf("The solver allocates arrays of size %d. Reading %d values causes heap corruption.",
				p.NSubs, len(ks))).
			WithFix(fmt.Sprintf("Provide exactly %d space-separated Ks values.", p.NSubs)))
	}

	if vmax := xmlcfg.Fields(m, "maximum_uptake_flux"); len(vmax) > 0 && len(vmax) != p.NSubs {
		ctx.Rep.Report(diag.NewError(diag.KinVmaxCountMismatch,
			fmt.Sprintf("Microbe '%s': maximum_uptake_flux has %d value(s) but there are %d substrate(s).",
				name, len(vmax), p.NSubs)).
			WithFix(fmt.Sprintf("Provide exactly %d space-separated Vmax values.", p.NSubs)))
	}

	// CA-solver microbes additionally map material numbers to initial
	// densities; the two lists must pair up one to one.
	solver := strings.ToUpper(xmlcfg.Text(m, "solver_type", ""))
	if solver != "CA" && solver != "CELLULAR AUTOMATA" {
		return
	}
	matEl := ctx.Root.Find("domain/material_numbers")
	if matEl == nil {
		return
	}
	mats := xmlcfg.Fields(matEl, fmt.Sprintf("microbe%d", idx))
	dens := xmlcfg.Fields(m, "initial_densities")
	if len(mats) > 0 && len(dens) > 0 && len(mats) != len(dens) {
		ctx.Rep.Report(diag.NewError(diag.KinMaterialDensityMismatch,
			fmt.Sprintf("Microbe '%s': material_number has %d value(s) but initial_densities has %d.",
				name, len(mats), len(dens))).
			WithFix("These must match. Use the same count for both."))
	}
}
