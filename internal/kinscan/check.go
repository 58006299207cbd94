package kinscan

import (
	"fmt"
	"os"
	"path/filepath"

	"complabdoctor/internal/diag"
)

// Known header filenames. BioticHeader holds the Monod/CA reaction rates,
// AbioticHeader the purely chemical ones.
const (
	BioticHeader  = "defineKinetics.hh"
	AbioticHeader = "defineAbioticKinetics.hh"
)

// HeaderCheck describes one header scan request.
type HeaderCheck struct {
	Dir      string // directory expected to hold the header
	Filename string // BioticHeader or AbioticHeader
	NSubs    int    // declared number_of_substrates
	NMics    int    // declared number_of_microbes
	Enabled  bool   // the matching enable_* flag from the document
	Scanner  IndexScanner
}

// CheckHeader locates and scans one kinetics header, reporting index-safety
// findings. The file is looked up at Dir, then one level up; when still
// absent the check warns only if the matching feature flag is enabled.
func CheckHeader(hc HeaderCheck, rep diag.Reporter) {
	headerPath := filepath.Join(hc.Dir, hc.Filename)
	if !isFile(headerPath) {
		alt := filepath.Join(hc.Dir, "..", hc.Filename)
		if isFile(alt) {
			headerPath = alt
		} else {
			if hc.Enabled {
				rep.Report(diag.NewWarning(diag.KinHeaderNotFound,
					fmt.Sprintf("%s not found at %s.", hc.Filename, hc.Dir)).
					WithNote("Cannot verify array-index safety."))
			}
			return
		}
	}

	data, err := os.ReadFile(headerPath)
	if err != nil {
		rep.Report(diag.NewWarning(diag.KinHeaderUnreadable,
			fmt.Sprintf("Cannot read %s: %v", hc.Filename, err)))
		return
	}
	source := string(data)

	rep.Report(diag.NewInfo(diag.HdrAnalysing,
		fmt.Sprintf("Analysing %s (%d bytes)", hc.Filename, len(source))))

	scanner := hc.Scanner
	if scanner == nil {
		scanner = RegexScanner{}
	}
	res := scanner.Scan(source)

	checkIndexRange(rep, indexRangeCheck{
		Filename: hc.Filename, Arr: "C", RateArr: "subsR",
		Family: "substrate", Entity: "substrate",
		Indices: res.SubstrateIndices, Count: hc.NSubs,
		OOBCode: diag.HdrSubstrateIdxOOB, OKCode: diag.HdrSubstrateIdxOK,
	})
	checkIndexRange(rep, indexRangeCheck{
		Filename: hc.Filename, Arr: "B", RateArr: "bioR",
		Family: "biomass", Entity: "microbe",
		Indices: res.BiomassIndices, Count: hc.NMics,
		OOBCode: diag.HdrBiomassIdxOOB, OKCode: diag.HdrBiomassIdxOK,
	})

	anyIndices := len(res.SubstrateIndices) > 0 || len(res.BiomassIndices) > 0
	if res.HasSizeGuard {
		rep.Report(diag.NewInfo(diag.HdrSizeGuard,
			fmt.Sprintf("%s: uses .size() bounds checks (good)", hc.Filename)))
	} else if anyIndices {
		rep.Report(diag.NewWarning(diag.HdrNoSizeGuard,
			fmt.Sprintf("%s accesses arrays by hard-coded index without .size() guards.", hc.Filename)).
			WithNote("If the XML substrate/microbe count is less than expected, it will crash.").
			WithFix("Suggestion: add  if (C.size() > idx)  checks."))
	}
}

// indexRangeCheck compares the harvested indices of one array family
// against the declared count. Family names the arrays in info lines
// (substrate/biomass); Entity names the countable XML element
// (substrate/microbe).
type indexRangeCheck struct {
	Filename string
	Arr      string
	RateArr  string
	Family   string
	Entity   string
	Indices  []int
	Count    int
	OOBCode  diag.Code
	OKCode   diag.Code
}

// Both inputs must be known for a verdict: no harvested indices or a zero
// declared count yields no finding at all.
func checkIndexRange(rep diag.Reporter, c indexRangeCheck) {
	if len(c.Indices) == 0 || c.Count <= 0 {
		return
	}
	maxIdx := c.Indices[len(c.Indices)-1]
	if maxIdx >= c.Count {
		rep.Report(diag.NewError(c.OOBCode,
			fmt.Sprintf("%s accesses %s[%d] / %s[%d] but XML has only %d %s(s) (valid indices: 0..%d).",
				c.Filename, c.Arr, maxIdx, c.RateArr, maxIdx, c.Count, c.Entity, c.Count-1)).
			WithNote("This out-of-bounds access causes heap corruption!").
			WithNote(fmt.Sprintf("Indices found in code: %v", c.Indices)).
			WithFix(fmt.Sprintf("Add more %ss in the XML, or edit %s to only access %s[0]..%s[%d].",
				c.Entity, c.Filename, c.Arr, c.Arr, c.Count-1)))
		return
	}
	rep.Report(diag.NewInfo(c.OKCode,
		fmt.Sprintf("%s: %s indices %v — all within 0..%d OK", c.Filename, c.Family, c.Indices, c.Count-1)))
}

func isFile(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
