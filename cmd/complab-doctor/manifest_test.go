package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "doctor.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindDoctorTomlUpwardSearch(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "runs", "case42")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeManifest(t, root, "[project]\nname = \"biofilm\"\n")

	got, ok, err := findDoctorToml(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != want {
		t.Errorf("findDoctorToml = %q, %v; want %q, true", got, ok, want)
	}
}

func TestLoadDoctorManifestAbsent(t *testing.T) {
	_, ok, err := loadDoctorManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected no manifest")
	}
}

func TestLoadDoctorConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid", "[project]\nname = \"biofilm\"\n\n[diagnose]\nformat = \"json\"\n", false},
		{"missing project", "[diagnose]\nformat = \"json\"\n", true},
		{"empty name", "[project]\nname = \"\"\n", true},
		{"bad format", "[project]\nname = \"x\"\n\n[diagnose]\nformat = \"yaml\"\n", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tc.content)
			_, err := loadDoctorConfig(path)
			if (err != nil) != tc.wantErr {
				t.Errorf("err = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

func TestManifestRelativeDirs(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir,
		"[project]\nname = \"biofilm\"\n\n[diagnose]\nkinetics_dir = \"src\"\noutput_dir = \"out\"\n")

	m, ok, err := loadDoctorManifest(dir)
	if err != nil || !ok {
		t.Fatalf("load: %v, %v", ok, err)
	}
	if got, want := m.kineticsDir(), filepath.Join(dir, "src"); got != want {
		t.Errorf("kineticsDir = %q, want %q", got, want)
	}
	if got, want := m.outputDir(), filepath.Join(dir, "out"); got != want {
		t.Errorf("outputDir = %q, want %q", got, want)
	}
}
