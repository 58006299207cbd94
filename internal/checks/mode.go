package checks

import (
	"complabdoctor/internal/diag"
)

// Mode verifies the four mutually-implied flag/count conditions. Each rule
// is checked independently; none short-circuits the others.
func Mode(ctx *Context) {
	p := ctx.Params

	if p.Kinetics && p.NSubs == 0 {
		ctx.Rep.Report(diag.NewError(diag.KinZeroSubstrates,
			"enable_kinetics=true but number_of_substrates=0.").
			WithNote("The solver will create zero-size substrate arrays and kinetics will access C[0] → crash.").
			WithFix("Add at least one substrate, or set enable_kinetics=false."))
	}

	if p.Kinetics && !p.Biotic {
		ctx.Rep.Report(diag.NewError(diag.KinNotBiotic,
			"enable_kinetics=true but biotic_mode=false.").
			WithNote("Biotic kinetics (defineKinetics.hh) requires microbes.").
			WithFix("Set biotic_mode=true, or use enable_abiotic_kinetics instead."))
	}

	if p.Kinetics && p.Biotic && p.NMics == 0 {
		ctx.Rep.Report(diag.NewError(diag.KinZeroMicrobes,
			"enable_kinetics=true and biotic_mode=true but number_of_microbes=0.").
			WithNote("The kinetics function reads B[0] from an empty vector → crash.").
			WithFix("Add at least one microbe, or disable kinetics."))
	}

	if p.AbioticKinetics && p.NSubs == 0 {
		ctx.Rep.Report(diag.NewError(diag.KinAbioticZeroSubstrates,
			"enable_abiotic_kinetics=true but number_of_substrates=0.").
			WithNote("defineAbioticRxnKinetics reads C[i] from an empty vector → crash.").
			WithFix("Add substrates or disable abiotic kinetics."))
	}
}
