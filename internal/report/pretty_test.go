package report

import (
	"strings"
	"testing"
)

func TestPrettyPlain(t *testing.T) {
	var sb strings.Builder
	Pretty(&sb, testHeader(), testBag(), PrettyOpts{Color: false, ShowNotes: true})
	got := sb.String()

	for _, want := range []string{
		"/run/CompLaB.xml: exit code -1073740940 (Heap Corruption (0xC0000374))",
		"ERROR GEO2001 [Geometry] Size MISMATCH",
		"note: This is the most common cause of heap corruption!",
		"fix: Change nx/ny/nz in XML",
		"WARNING GEO2002 [Geometry] File not found: geometry.dat",
		"INFO RUN8002 [Run] Substrates: 2",
		"1 error(s), 1 warning(s), 1 info",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("pretty output missing %q\n---\n%s", want, got)
		}
	}
}

func TestPrettyMaxShowsHiddenCount(t *testing.T) {
	var sb strings.Builder
	Pretty(&sb, testHeader(), testBag(), PrettyOpts{Max: 1})

	if !strings.Contains(sb.String(), "... and 2 more") {
		t.Errorf("expected hidden-count line, got:\n%s", sb.String())
	}
}
