// Package kinscan inspects the solver's kinetics headers
// (defineKinetics.hh, defineAbioticKinetics.hh) for array accesses that
// would overrun the substrate or biomass vectors sized by the XML counts.
//
// The scan is textual pattern matching, not semantic analysis: it strips
// comments and harvests literal integer indices on the recognized array
// names. Findings are phrased as likely causes, never as certainties.
package kinscan

import (
	"regexp"
	"sort"
	"strconv"
)

// Array names the solver passes into the user-editable kinetics functions.
// C/subsR carry substrate concentrations and rates, B/bioR biomass.
var (
	substrateAccess = regexp.MustCompile(`\b(?:C|subsR)\s*\[\s*(\d+)\s*\]`)
	biomassAccess   = regexp.MustCompile(`\b(?:B|bioR)\s*\[\s*(\d+)\s*\]`)
	sizeGuard       = regexp.MustCompile(`(?:C|subsR|B|bioR)\s*\.\s*size\s*\(\s*\)`)

	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`//.*`)
)

// Result is the harvested index sets of one header.
type Result struct {
	// SubstrateIndices and BiomassIndices are the distinct literal indices
	// referenced, sorted ascending. Empty means none were found.
	SubstrateIndices []int
	BiomassIndices   []int
	// HasSizeGuard is true when any .size() bounds check appears on one of
	// the four recognized array names.
	HasSizeGuard bool
}

// MaxSubstrateIndex returns the largest substrate index, or -1 when none.
func (r Result) MaxSubstrateIndex() int { return maxIndex(r.SubstrateIndices) }

// MaxBiomassIndex returns the largest biomass index, or -1 when none.
func (r Result) MaxBiomassIndex() int { return maxIndex(r.BiomassIndices) }

func maxIndex(indices []int) int {
	if len(indices) == 0 {
		return -1
	}
	return indices[len(indices)-1]
}

// IndexScanner harvests array-index usage from kinetics source text. It is
// an interface so the regex heuristic can later be replaced with a real
// lexer without touching the checks built on top of it.
type IndexScanner interface {
	Scan(src string) Result
}

// RegexScanner is the default heuristic scanner.
type RegexScanner struct{}

func (RegexScanner) Scan(src string) Result {
	clean := StripComments(src)
	return Result{
		SubstrateIndices: harvest(substrateAccess, clean),
		BiomassIndices:   harvest(biomassAccess, clean),
		HasSizeGuard:     sizeGuard.MatchString(clean),
	}
}

// StripComments removes /* */ block comments and // line comments.
// Best-effort textual strip: the scan is advisory, so a string literal that
// happens to contain comment markers is an acceptable miss.
func StripComments(src string) string {
	src = blockComment.ReplaceAllString(src, "")
	return lineComment.ReplaceAllString(src, "")
}

func harvest(re *regexp.Regexp, src string) []int {
	seen := map[int]bool{}
	for _, m := range re.FindAllStringSubmatch(src, -1) {
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		seen[idx] = true
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]int, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}
