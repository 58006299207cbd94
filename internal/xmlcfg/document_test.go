package xmlcfg

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleDoc = `<?xml version="1.0"?>
<CompLaB>
  <domain>
    <nx>10</nx>
    <ny>1</ny>
    <nz>1</nz>
    <filename>geometry.dat</filename>
  </domain>
  <chemistry>
    <number_of_substrates>2</number_of_substrates>
    <substrate0><name>O2</name></substrate0>
    <substrate1><name>DOC</name></substrate1>
  </chemistry>
  <simulation_mode>
    <biotic_mode>true</biotic_mode>
    <enable_kinetics>yes</enable_kinetics>
  </simulation_mode>
</CompLaB>
`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "CompLaB.xml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}
	return path
}

func TestLoadWellFormedDocument(t *testing.T) {
	path := writeDoc(t, sampleDoc)
	doc, lerr := Load(path)
	if lerr != nil {
		t.Fatalf("Load returned error: %v", lerr)
	}
	if doc.Root.XMLName.Local != "CompLaB" {
		t.Fatalf("unexpected root element: %q", doc.Root.XMLName.Local)
	}
	if got := Text(doc.Root, "domain/filename", ""); got != "geometry.dat" {
		t.Fatalf("Find path lookup failed: %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, lerr := Load(filepath.Join(t.TempDir(), "absent.xml"))
	if lerr == nil {
		t.Fatal("expected LoadError for missing file")
	}
	if lerr.Kind != NotFound {
		t.Fatalf("expected NotFound, got %v", lerr.Kind)
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	path := writeDoc(t, "<CompLaB><domain></CompLaB>")
	_, lerr := Load(path)
	if lerr == nil {
		t.Fatal("expected LoadError for malformed XML")
	}
	if lerr.Kind != ParseFailure {
		t.Fatalf("expected ParseFailure, got %v", lerr.Kind)
	}
	if lerr.Err == nil {
		t.Fatal("ParseFailure must carry the parser error")
	}
}

func TestFindFirstMatchWins(t *testing.T) {
	path := writeDoc(t, "<root><a><v>1</v></a><a><v>2</v></a></root>")
	doc, lerr := Load(path)
	if lerr != nil {
		t.Fatalf("Load returned error: %v", lerr)
	}
	if got := Text(doc.Root, "a/v", ""); got != "1" {
		t.Fatalf("expected first match, got %q", got)
	}
}
