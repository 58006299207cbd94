package checks

import (
	"complabdoctor/internal/kinscan"
)

// Headers scans both kinetics headers for array-index safety. The biotic
// header is gated by enable_kinetics, the abiotic one by
// enable_abiotic_kinetics.
func Headers(ctx *Context) {
	p := ctx.Params
	for _, h := range []struct {
		filename string
		enabled  bool
	}{
		{kinscan.BioticHeader, p.Kinetics},
		{kinscan.AbioticHeader, p.AbioticKinetics},
	} {
		kinscan.CheckHeader(kinscan.HeaderCheck{
			Dir:      ctx.KineticsDir,
			Filename: h.filename,
			NSubs:    p.NSubs,
			NMics:    p.NMics,
			Enabled:  h.enabled,
			Scanner:  ctx.Scanner,
		}, ctx.Rep)
	}
}
