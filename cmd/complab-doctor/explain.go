package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"complabdoctor/internal/exitcode"
)

var explainCmd = &cobra.Command{
	Use:   "explain <exit-code>",
	Short: "Explain a solver exit code",
	Long:  `Explain translates a raw process exit code (signed, e.g. -1073740940) into the failure class and its usual cause`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid exit code %q: %w", args[0], err)
		}

		d := exitcode.Classify(code)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Exit code : %d\n", code)
		fmt.Fprintf(out, "Error type: %s\n", d.Name)
		fmt.Fprintf(out, "Reason    : %s\n", d.Description)
		if !exitcode.Known(code) {
			fmt.Fprintln(out, "\nThis code is not in the known table; run 'complab-doctor diagnose' on the configuration for a full analysis.")
		}
		return nil
	},
}
