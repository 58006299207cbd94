package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"complabdoctor/internal/diag"
	"complabdoctor/internal/engine"
	"complabdoctor/internal/kinscan"
	"complabdoctor/internal/observ"
	"complabdoctor/internal/report"
	"complabdoctor/internal/ui"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose [flags] <CompLaB.xml|directory>",
	Short: "Diagnose a crashed solver run from its configuration",
	Long:  `Diagnose inspects a CompLaB.xml (or every *.xml in a directory), the geometry file it references and the kinetics headers, and reports the most likely cause of the crash`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDiagnose,
}

func init() {
	diagnoseCmd.Flags().Int("exit-code", 0, "signed process exit code of the crashed solver")
	diagnoseCmd.Flags().String("kinetics-dir", "", "directory with defineKinetics.hh (default: one level above the XML)")
	diagnoseCmd.Flags().String("format", "text", "output format (text|pretty|json|short)")
	diagnoseCmd.Flags().Bool("with-notes", false, "include notes and fixes in pretty/short/json output")
	diagnoseCmd.Flags().Bool("save", false, "save the text report into the output directory")
	diagnoseCmd.Flags().String("output-dir", "output", "directory for saved reports")
	diagnoseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	diagnoseCmd.Flags().String("ui", "auto", "progress UI for directory runs (auto|on|off)")
	diagnoseCmd.Flags().Bool("scan-cache", false, "enable persistent disk cache for kinetics header scans")
}

type diagnoseSettings struct {
	exitCode    int
	kineticsDir string
	format      string
	withNotes   bool
	save        bool
	outputDir   string
	jobs        int
	uiMode      uiMode
	useColor    bool
	quiet       bool
	timings     bool
	maxDiags    int
	scanner     kinscan.IndexScanner
}

// readDiagnoseSettings merges flags with doctor.toml defaults; flags win.
func readDiagnoseSettings(cmd *cobra.Command, startDir string) (diagnoseSettings, error) {
	var s diagnoseSettings
	var err error

	if s.exitCode, err = cmd.Flags().GetInt("exit-code"); err != nil {
		return s, fmt.Errorf("failed to get exit-code flag: %w", err)
	}
	if s.kineticsDir, err = cmd.Flags().GetString("kinetics-dir"); err != nil {
		return s, fmt.Errorf("failed to get kinetics-dir flag: %w", err)
	}
	if s.format, err = cmd.Flags().GetString("format"); err != nil {
		return s, fmt.Errorf("failed to get format flag: %w", err)
	}
	if s.withNotes, err = cmd.Flags().GetBool("with-notes"); err != nil {
		return s, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if s.save, err = cmd.Flags().GetBool("save"); err != nil {
		return s, fmt.Errorf("failed to get save flag: %w", err)
	}
	if s.outputDir, err = cmd.Flags().GetString("output-dir"); err != nil {
		return s, fmt.Errorf("failed to get output-dir flag: %w", err)
	}
	if s.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return s, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return s, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if s.uiMode, err = readUIMode(uiFlag); err != nil {
		return s, err
	}
	scanCache, err := cmd.Flags().GetBool("scan-cache")
	if err != nil {
		return s, fmt.Errorf("failed to get scan-cache flag: %w", err)
	}

	if s.quiet, err = cmd.Root().PersistentFlags().GetBool("quiet"); err != nil {
		return s, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = cmd.Root().PersistentFlags().GetBool("timings"); err != nil {
		return s, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.maxDiags, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics"); err != nil {
		return s, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return s, fmt.Errorf("failed to get color flag: %w", err)
	}
	s.useColor = colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	// Значения из doctor.toml применяются только там, где флаг не задан
	manifest, found, err := loadDoctorManifest(startDir)
	if err != nil {
		return s, err
	}
	if found {
		if !cmd.Flags().Changed("kinetics-dir") && manifest.kineticsDir() != "" {
			s.kineticsDir = manifest.kineticsDir()
		}
		if !cmd.Flags().Changed("output-dir") && manifest.outputDir() != "" {
			s.outputDir = manifest.outputDir()
		}
		if !cmd.Flags().Changed("format") && manifest.Config.Diagnose.Format != "" {
			s.format = manifest.Config.Diagnose.Format
		}
	}

	switch s.format {
	case "text", "pretty", "json", "short":
	default:
		return s, fmt.Errorf("unsupported format %q (must be text, pretty, json or short)", s.format)
	}

	if scanCache {
		cache, err := kinscan.OpenCache("complab-doctor")
		if err != nil {
			// кеш опционален: при недоступности сканируем напрямую
			fmt.Fprintf(os.Stderr, "warning: scan cache unavailable: %v\n", err)
		}
		s.scanner = kinscan.CachedScanner{Inner: kinscan.RegexScanner{}, Cache: cache}
	}

	return s, nil
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	path := args[0]

	st, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	startDir := filepath.Dir(path)
	if err == nil && st.IsDir() {
		startDir = path
	}
	s, err := readDiagnoseSettings(cmd, startDir)
	if err != nil {
		return err
	}

	var hasErrors bool
	if st != nil && st.IsDir() {
		hasErrors, err = runDiagnoseDir(cmd, path, s)
	} else {
		// Несуществующий путь диагностируется как отдельный файл:
		// результатом будет finding "File not found", не отказ CLI.
		hasErrors, err = runDiagnoseFile(cmd, path, s)
	}
	if err != nil {
		return err
	}
	if hasErrors {
		// Suppress cobra usage output on diagnostic errors
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

func runDiagnoseFile(cmd *cobra.Command, path string, s diagnoseSettings) (bool, error) {
	tm := observ.NewTimer()
	res := engine.Diagnose(engine.Options{
		ConfigPath:     path,
		ExitCode:       s.exitCode,
		KineticsDir:    s.kineticsDir,
		Scanner:        s.scanner,
		MaxDiagnostics: s.maxDiags,
		Timer:          tm,
	})

	endReport := tm.Begin("report")
	if err := renderResult(cmd, res, s); err != nil {
		return false, err
	}
	if s.save {
		saveResult(cmd, res, s)
	}
	endReport("")

	if s.timings {
		fmt.Fprint(cmd.ErrOrStderr(), tm.Summary())
	}
	return res.Bag.HasErrors(), nil
}

func renderResult(cmd *cobra.Command, res *engine.Result, s diagnoseSettings) error {
	out := cmd.OutOrStdout()
	switch s.format {
	case "text":
		return report.Text(out, res.Header(), res.Bag, report.TextOpts{Max: s.maxDiags})
	case "pretty":
		report.Pretty(out, res.Header(), res.Bag, report.PrettyOpts{
			Color:     s.useColor,
			ShowNotes: s.withNotes,
			Max:       s.maxDiags,
		})
		return nil
	case "short":
		if output := diag.FormatShortDiagnostics(res.Bag.Items(), s.withNotes); output != "" {
			fmt.Fprintln(out, output)
		}
		return nil
	default:
		return report.JSON(out, res.Header(), res.Bag, report.JSONOpts{
			Max:          s.maxDiags,
			IncludeNotes: s.withNotes,
		})
	}
}

// saveResult writes the canonical text report next to the run. A failed
// save is reported but never fails the diagnosis.
func saveResult(cmd *cobra.Command, res *engine.Result, s diagnoseSettings) {
	var b strings.Builder
	if err := report.Text(&b, res.Header(), res.Bag, report.TextOpts{}); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not render report: %v\n", err)
		return
	}
	saved := report.Save(b.String(), s.outputDir)
	if saved == "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not save report to %s\n", s.outputDir)
		return
	}
	if !s.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "report saved: %s\n", saved)
	}
}

func runDiagnoseDir(cmd *cobra.Command, dir string, s diagnoseSettings) (bool, error) {
	opts := engine.Options{
		ExitCode:       s.exitCode,
		KineticsDir:    s.kineticsDir,
		Scanner:        s.scanner,
		MaxDiagnostics: s.maxDiags,
	}

	var results []*engine.Result
	var err error
	if shouldUseTUI(s.uiMode) {
		results, err = runDiagnoseDirTUI(cmd, dir, opts, s)
	} else {
		results, err = engine.DiagnoseDir(cmd.Context(), dir, opts, s.jobs, nil)
	}
	if err != nil {
		return false, err
	}

	hasErrors := false
	for _, res := range results {
		if res.Bag.HasErrors() {
			hasErrors = true
		}
		if err := renderBatchEntry(cmd, res, s); err != nil {
			return false, err
		}
		if s.save {
			saveResult(cmd, res, s)
		}
	}
	if !s.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "diagnosed %d configuration(s)\n", len(results))
	}
	return hasErrors, nil
}

// renderBatchEntry prints one file's outcome. The full text report is too
// loud for a batch, so text mode degrades to the short form per file.
func renderBatchEntry(cmd *cobra.Command, res *engine.Result, s diagnoseSettings) error {
	out := cmd.OutOrStdout()
	switch s.format {
	case "json":
		return report.JSON(out, res.Header(), res.Bag, report.JSONOpts{
			Max:          s.maxDiags,
			IncludeNotes: s.withNotes,
		})
	case "pretty":
		report.Pretty(out, res.Header(), res.Bag, report.PrettyOpts{
			Color:     s.useColor,
			ShowNotes: s.withNotes,
			Max:       s.maxDiags,
		})
		return nil
	default:
		fmt.Fprintf(out, "== %s\n", res.ConfigPath)
		if output := diag.FormatShortDiagnostics(res.Bag.Items(), s.withNotes); output != "" {
			fmt.Fprintln(out, output)
		}
		return nil
	}
}

func runDiagnoseDirTUI(cmd *cobra.Command, dir string, opts engine.Options, s diagnoseSettings) ([]*engine.Result, error) {
	files, err := engine.FindConfigs(dir)
	if err != nil {
		return nil, err
	}

	events := make(chan engine.Event, len(files)*2+4)
	model := ui.NewBatchModel(fmt.Sprintf("diagnosing %s", dir), files, events)
	prog := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout()))

	var results []*engine.Result
	var runErr error
	go func() {
		defer close(events)
		results, runErr = engine.DiagnoseDir(cmd.Context(), dir, opts, s.jobs,
			engine.ChannelSink{Ch: events})
	}()

	if _, err := prog.Run(); err != nil {
		return nil, fmt.Errorf("progress UI failed: %w", err)
	}
	if runErr != nil {
		return nil, runErr
	}
	return results, nil
}
