package report

import (
	"os"
	"path/filepath"
	"time"
)

// Save writes the rendered report into outputDir as
// crash_diagnostic_<timestamp>.txt, creating the directory if needed.
// Returns the written path, or "" when anything fails: saving the report
// must never abort a diagnosis that already finished.
func Save(rendered string, outputDir string) string {
	return saveAt(rendered, outputDir, time.Now())
}

func saveAt(rendered string, outputDir string, now time.Time) string {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return ""
	}
	path := filepath.Join(outputDir, "crash_diagnostic_"+now.Format("20060102_150405")+".txt")
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return ""
	}
	return path
}
