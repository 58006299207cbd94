package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"complabdoctor/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "complab-doctor",
	Short: "Crash diagnostics for CompLaB solver configurations",
	Long:  `complab-doctor inspects a CompLaB.xml, its geometry file and the kinetics headers to explain why a solver run crashed`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to collect")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
