package report

import (
	"strings"
	"testing"
	"time"

	"complabdoctor/internal/diag"
	"complabdoctor/internal/exitcode"
)

func testHeader() Header {
	return Header{
		ExitCode:    -1073740940,
		Diagnosis:   exitcode.Classify(-1073740940),
		ConfigPath:  "/run/CompLaB.xml",
		GeneratedAt: time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
	}
}

func testBag() *diag.Bag {
	bag := diag.NewBag(16)
	bag.Add(diag.NewError(diag.GeomSizeMismatch,
		"Size MISMATCH: file has 9 bytes but nx*ny*nz = 10*1*1 = 10.").
		WithNote("This is the most common cause of heap corruption!").
		WithFix("Change nx/ny/nz in XML to match the geometry file, or regenerate the geometry with the correct dimensions."))
	bag.Add(diag.NewWarning(diag.GeomFileNotFound, "File not found: geometry.dat"))
	bag.Add(diag.NewInfo(diag.RunSubstrates, "Substrates: 2"))
	return bag
}

func TestTextLayout(t *testing.T) {
	var sb strings.Builder
	if err := Text(&sb, testHeader(), testBag(), TextOpts{}); err != nil {
		t.Fatalf("Text: %v", err)
	}
	got := sb.String()

	for _, want := range []string{
		strings.Repeat("=", 72) + "\n  CompLaB CRASH DIAGNOSTIC REPORT\n  Generated: 2026-03-14 15:09:26",
		"Exit code : -1073740940",
		"Error type: Heap Corruption",
		"XML file  : /run/CompLaB.xml",
		"  ERRORS DETECTED: 1",
		"  1. [Geometry] Size MISMATCH: file has 9 bytes but nx*ny*nz = 10*1*1 = 10.",
		"     >> This is the most common cause of heap corruption!",
		"     >> Fix: Change nx/ny/nz in XML",
		"  WARNINGS: 1",
		"  1. [Geometry] File not found: geometry.dat",
		"  DIAGNOSTIC INFO",
		"  - Substrates: 2",
		"  HOW TO FIX",
		"  Fix the errors above, then:",
		"  2. Verify geometry file has exactly nx * ny * nz bytes",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q\n---\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, strings.Repeat("=", 72)+"\n") {
		t.Errorf("report does not end with the closing banner")
	}
}

func TestTextNoErrorsBlock(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(diag.NewInfo(diag.GeomSizeOK, "Geometry file OK: 10 bytes = nx*ny*nz (10*1*1=10)"))

	var sb strings.Builder
	if err := Text(&sb, testHeader(), bag, TextOpts{}); err != nil {
		t.Fatalf("Text: %v", err)
	}
	got := sb.String()

	if strings.Contains(got, "ERRORS DETECTED") {
		t.Errorf("unexpected errors section:\n%s", got)
	}
	for _, want := range []string{
		"  No configuration errors detected.",
		"  The crash may be caused by:",
		"    - A bug in the C++ solver",
		"    - Numerical instability during iteration",
		"    - Insufficient memory for the domain size",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(got, "Fix the errors above") {
		t.Errorf("fix preamble should only appear with errors")
	}
}

// Two renders of the same bag differ only in the Generated line.
func TestTextStableExceptTimestamp(t *testing.T) {
	h1, h2 := testHeader(), testHeader()
	h2.GeneratedAt = h2.GeneratedAt.Add(time.Hour)

	var a, b strings.Builder
	if err := Text(&a, h1, testBag(), TextOpts{}); err != nil {
		t.Fatal(err)
	}
	if err := Text(&b, h2, testBag(), TextOpts{}); err != nil {
		t.Fatal(err)
	}

	la := strings.Split(a.String(), "\n")
	lb := strings.Split(b.String(), "\n")
	if len(la) != len(lb) {
		t.Fatalf("line counts differ: %d vs %d", len(la), len(lb))
	}
	for i := range la {
		if la[i] == lb[i] {
			continue
		}
		if !strings.HasPrefix(la[i], "  Generated: ") {
			t.Errorf("line %d differs beyond the timestamp: %q vs %q", i, la[i], lb[i])
		}
	}
}

func TestTextMaxClipsFindings(t *testing.T) {
	bag := diag.NewBag(16)
	for n := 0; n < 5; n++ {
		bag.Add(diag.NewError(diag.XMLMissingSection, "Required section <IO> is missing from CompLaB.xml."))
	}

	var sb strings.Builder
	if err := Text(&sb, testHeader(), bag, TextOpts{Max: 2}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "ERRORS DETECTED: 2") {
		t.Errorf("expected clipped error count, got:\n%s", sb.String())
	}
}
