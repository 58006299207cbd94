package diag

import (
	"fmt"
)

// Code identifies one finding rule. Codes are grouped in ranges by the
// configuration area they inspect; the range also decides the category tag
// embedded in rendered reports.
type Code uint16

const (
	UnknownCode Code = 0

	// Документ: разбор и структура XML
	XMLInfo                Code = 1000
	XMLParseError          Code = 1001
	XMLFileNotFound        Code = 1002
	XMLReadError           Code = 1003
	XMLMissingSection      Code = 1004
	XMLMissingSubstrate    Code = 1005
	XMLMissingMicrobe      Code = 1006
	XMLMissingChemistry    Code = 1007
	XMLMissingMicrobiology Code = 1008
	XMLParsedOK            Code = 1009

	// Geometry file vs declared extent
	GeomInfo         Code = 2000
	GeomSizeMismatch Code = 2001
	GeomFileNotFound Code = 2002
	GeomSizeOK       Code = 2003

	// Kinetics mode/data consistency and per-microbe parameter lists
	KinInfo                    Code = 3000
	KinZeroSubstrates          Code = 3001
	KinNotBiotic               Code = 3002
	KinZeroMicrobes            Code = 3003
	KinAbioticZeroSubstrates   Code = 3004
	KinKsCountMismatch         Code = 3005
	KinVmaxCountMismatch       Code = 3006
	KinMaterialDensityMismatch Code = 3007
	KinHeaderNotFound          Code = 3008
	KinHeaderUnreadable        Code = 3009

	// Kinetics header scan (defineKinetics.hh / defineAbioticKinetics.hh)
	HdrInfo             Code = 4000
	HdrSubstrateIdxOOB  Code = 4001
	HdrBiomassIdxOOB    Code = 4002
	HdrSubstrateIdxOK   Code = 4003
	HdrBiomassIdxOK     Code = 4004
	HdrSizeGuard        Code = 4005
	HdrNoSizeGuard      Code = 4006
	HdrAnalysing        Code = 4007

	// Domain extent sanity
	DomInfo        Code = 5000
	DomNXTooSmall  Code = 5001
	DomNYNZInvalid Code = 5002

	// Solver numerics
	SolverInfo        Code = 6000
	SolverTauUnstable Code = 6001

	// Boundary conditions
	BoundaryInfo     Code = 7000
	BoundaryNoSource Code = 7001

	// Run-level informational notes
	RunInfo          Code = 8000
	RunDomainSummary Code = 8001
	RunSubstrates    Code = 8002
	RunMicrobes      Code = 8003
	RunModeSummary   Code = 8004
)

var codeDescription = map[Code]string{
	UnknownCode:                "Unknown finding",
	XMLInfo:                    "Document information",
	XMLParseError:              "Malformed XML",
	XMLFileNotFound:            "Configuration document not found",
	XMLReadError:               "Configuration document unreadable",
	XMLMissingSection:          "Required section missing",
	XMLMissingSubstrate:        "Declared substrate element missing",
	XMLMissingMicrobe:          "Declared microbe element missing",
	XMLMissingChemistry:        "Substrates referenced without chemistry section",
	XMLMissingMicrobiology:     "Biotic mode without microbiology section",
	XMLParsedOK:                "Document parsed successfully",
	GeomInfo:                   "Geometry information",
	GeomSizeMismatch:           "Geometry size mismatch",
	GeomFileNotFound:           "Geometry file not found",
	GeomSizeOK:                 "Geometry size matches domain",
	KinInfo:                    "Kinetics information",
	KinZeroSubstrates:          "Kinetics enabled with zero substrates",
	KinNotBiotic:               "Kinetics enabled without biotic mode",
	KinZeroMicrobes:            "Biotic kinetics with zero microbes",
	KinAbioticZeroSubstrates:   "Abiotic kinetics with zero substrates",
	KinKsCountMismatch:         "Half-saturation constant count mismatch",
	KinVmaxCountMismatch:       "Maximum uptake flux count mismatch",
	KinMaterialDensityMismatch: "Material number / initial density count mismatch",
	KinHeaderNotFound:          "Kinetics header not found",
	KinHeaderUnreadable:        "Kinetics header unreadable",
	HdrInfo:                    "Kinetics header information",
	HdrSubstrateIdxOOB:         "Substrate array index out of bounds",
	HdrBiomassIdxOOB:           "Biomass array index out of bounds",
	HdrSubstrateIdxOK:          "Substrate array indices in range",
	HdrBiomassIdxOK:            "Biomass array indices in range",
	HdrSizeGuard:               "Bounds guards present",
	HdrNoSizeGuard:             "Hard-coded indices without bounds guards",
	HdrAnalysing:               "Analysing kinetics header",
	DomInfo:                    "Domain information",
	DomNXTooSmall:              "Domain nx too small",
	DomNYNZInvalid:             "Domain ny/nz invalid",
	SolverInfo:                 "Solver information",
	SolverTauUnstable:          "Relaxation time in unstable range",
	BoundaryInfo:               "Boundary information",
	BoundaryNoSource:           "No substrate source in domain",
	RunInfo:                    "Run information",
	RunDomainSummary:           "Domain extent summary",
	RunSubstrates:              "Substrate count",
	RunMicrobes:                "Microbe count",
	RunModeSummary:             "Simulation mode summary",
}

// ID renders a short stable identifier, e.g. "GEO2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("XML%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("GEO%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("KIN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("HDR%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("DOM%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("SOL%04d", ic)
	case ic >= 7000 && ic < 8000:
		return fmt.Sprintf("BND%04d", ic)
	case ic >= 8000 && ic < 9000:
		return fmt.Sprintf("RUN%04d", ic)
	}
	return "E0000"
}

// Category renders the bracket tag findings carry in the text report,
// e.g. "[Geometry]". The tag follows the code range, not the severity.
func (c Code) Category() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return "[XML]"
	case ic >= 2000 && ic < 3000:
		return "[Geometry]"
	case ic >= 3000 && ic < 4000:
		return "[Kinetics]"
	case ic >= 4000 && ic < 5000:
		return "[defineKinetics]"
	case ic >= 5000 && ic < 6000:
		return "[Domain]"
	case ic >= 6000 && ic < 7000:
		return "[Solver]"
	case ic >= 7000 && ic < 8000:
		return "[Boundary]"
	case ic >= 8000 && ic < 9000:
		return "[Run]"
	}
	return "[?]"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
