package diag

import "testing"

func TestCodeIDsAndCategories(t *testing.T) {
	cases := []struct {
		code     Code
		id       string
		category string
	}{
		{XMLParseError, "XML1001", "[XML]"},
		{GeomSizeMismatch, "GEO2001", "[Geometry]"},
		{KinZeroSubstrates, "KIN3001", "[Kinetics]"},
		{HdrSubstrateIdxOOB, "HDR4001", "[defineKinetics]"},
		{DomNXTooSmall, "DOM5001", "[Domain]"},
		{SolverTauUnstable, "SOL6001", "[Solver]"},
		{BoundaryNoSource, "BND7001", "[Boundary]"},
		{RunDomainSummary, "RUN8001", "[Run]"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.id {
			t.Errorf("ID(%d) = %q, want %q", tc.code, got, tc.id)
		}
		if got := tc.code.Category(); got != tc.category {
			t.Errorf("Category(%d) = %q, want %q", tc.code, got, tc.category)
		}
	}
}

func TestUnknownCodeFallsBack(t *testing.T) {
	c := Code(42)
	if got := c.ID(); got != "E0000" {
		t.Fatalf("unexpected ID for unknown code: %q", got)
	}
	if got := c.Title(); got != "Unknown finding" {
		t.Fatalf("unexpected title for unknown code: %q", got)
	}
}

func TestFormatShortDiagnostics(t *testing.T) {
	diags := []Diagnostic{
		NewError(GeomSizeMismatch, "file has 9 bytes\nbut expected 10").WithFix("regenerate geometry"),
		NewInfo(RunSubstrates, "Substrates: 2"),
	}
	got := FormatShortDiagnostics(diags, false)
	want := "error GEO2001 [Geometry] file has 9 bytes but expected 10\ninfo RUN8002 [Run] Substrates: 2"
	if got != want {
		t.Fatalf("short format mismatch:\n got: %q\nwant: %q", got, want)
	}

	withNotes := FormatShortDiagnostics(diags[:1], true)
	want = "error GEO2001 [Geometry] file has 9 bytes but expected 10\nfix GEO2001 [Geometry] regenerate geometry"
	if withNotes != want {
		t.Fatalf("short format with notes mismatch:\n got: %q\nwant: %q", withNotes, want)
	}
}
