// Package checks implements the consistency validators run over one parsed
// configuration document. Each check is independent, appends its findings
// through the shared reporter, and never fails the run: every per-check
// problem degrades to a finding.
package checks

import (
	"fmt"
	"path/filepath"

	"complabdoctor/internal/diag"
	"complabdoctor/internal/kinscan"
	"complabdoctor/internal/xmlcfg"
)

// Params are the key values extracted once from the document and shared by
// all checks.
type Params struct {
	NX, NY, NZ   int
	NSubs, NMics int

	Biotic          bool
	Kinetics        bool
	AbioticKinetics bool

	Tau float64

	GeometryFile string
	InputPath    string
}

// Cells returns the declared voxel count nx*ny*nz.
func (p Params) Cells() int64 {
	return int64(p.NX) * int64(p.NY) * int64(p.NZ)
}

// ExtractParams pulls the shared values out of the document root, applying
// the lenient defaults of xmlcfg throughout.
func ExtractParams(root *xmlcfg.Node) Params {
	p := Params{
		NX:              xmlcfg.Int(root, "domain/nx", 0),
		NY:              xmlcfg.Int(root, "domain/ny", 0),
		NZ:              xmlcfg.Int(root, "domain/nz", 0),
		NSubs:           xmlcfg.Int(root, "chemistry/number_of_substrates", 0),
		NMics:           xmlcfg.Int(root, "microbiology/number_of_microbes", 0),
		Biotic:          xmlcfg.BioticMode(root, "simulation_mode/biotic_mode"),
		Kinetics:        xmlcfg.Bool(root, "simulation_mode/enable_kinetics"),
		AbioticKinetics: xmlcfg.Bool(root, "simulation_mode/enable_abiotic_kinetics"),
		GeometryFile:    xmlcfg.Text(root, "domain/filename", "geometry.dat"),
		InputPath:       xmlcfg.Text(root, "path/input_path", "input"),
	}
	// tau lives under LB_numerics but older documents nest it differently,
	// so take the first <tau> anywhere in the tree.
	if tau := root.FindDeep("tau"); tau != nil {
		p.Tau = xmlcfg.Float(tau, "", 0)
	}
	return p
}

// Context carries everything one check needs.
type Context struct {
	Root        *xmlcfg.Node
	ConfigPath  string
	KineticsDir string
	Params      Params
	Rep         diag.Reporter
	Scanner     kinscan.IndexScanner
}

// ConfigDir returns the directory holding the configuration document.
func (c *Context) ConfigDir() string {
	return filepath.Dir(c.ConfigPath)
}

// Summary emits the informational overview of the extracted parameters.
func Summary(ctx *Context) {
	p := ctx.Params
	diag.Info(ctx.Rep, diag.RunDomainSummary,
		fmt.Sprintf("Domain: nx=%d, ny=%d, nz=%d  (total=%d)", p.NX, p.NY, p.NZ, p.Cells()))
	diag.Info(ctx.Rep, diag.RunSubstrates, fmt.Sprintf("Substrates: %d", p.NSubs))
	diag.Info(ctx.Rep, diag.RunMicrobes, fmt.Sprintf("Microbes: %d", p.NMics))
	diag.Info(ctx.Rep, diag.RunModeSummary,
		fmt.Sprintf("Biotic mode: %t, kinetics: %t, abiotic kinetics: %t",
			p.Biotic, p.Kinetics, p.AbioticKinetics))
}
