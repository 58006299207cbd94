package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// doctor.toml supplies per-project defaults for the diagnose command.
// Flags always win over manifest values.

type doctorManifest struct {
	Path   string
	Root   string
	Config doctorConfig
}

type doctorConfig struct {
	Project  projectSection  `toml:"project"`
	Diagnose diagnoseSection `toml:"diagnose"`
}

type projectSection struct {
	Name string `toml:"name"`
}

type diagnoseSection struct {
	KineticsDir string `toml:"kinetics_dir"`
	OutputDir   string `toml:"output_dir"`
	Format      string `toml:"format"`
}

func findDoctorToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "doctor.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadDoctorManifest(startDir string) (*doctorManifest, bool, error) {
	manifestPath, ok, err := findDoctorToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadDoctorConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &doctorManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadDoctorConfig(path string) (doctorConfig, error) {
	var cfg doctorConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return doctorConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("project") {
		return doctorConfig{}, fmt.Errorf("%s: missing [project]", path)
	}
	if !meta.IsDefined("project", "name") || strings.TrimSpace(cfg.Project.Name) == "" {
		return doctorConfig{}, fmt.Errorf("%s: missing [project].name", path)
	}
	if meta.IsDefined("diagnose", "format") {
		switch cfg.Diagnose.Format {
		case "text", "pretty", "json", "short":
		default:
			return doctorConfig{}, fmt.Errorf("%s: invalid [diagnose].format %q", path, cfg.Diagnose.Format)
		}
	}
	return cfg, nil
}

// kineticsDir resolves a manifest-relative kinetics_dir to an absolute path.
func (m *doctorManifest) kineticsDir() string {
	d := strings.TrimSpace(m.Config.Diagnose.KineticsDir)
	if d == "" {
		return ""
	}
	if filepath.IsAbs(d) {
		return d
	}
	return filepath.Join(m.Root, filepath.FromSlash(d))
}

func (m *doctorManifest) outputDir() string {
	d := strings.TrimSpace(m.Config.Diagnose.OutputDir)
	if d == "" {
		return ""
	}
	if filepath.IsAbs(d) {
		return d
	}
	return filepath.Join(m.Root, filepath.FromSlash(d))
}
