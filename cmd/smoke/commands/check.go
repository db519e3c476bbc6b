package commands

import (
	"fmt"

	"github.com/okian/fisa/internal/smoke"
	"github.com/spf13/cobra"
)

// check: run every property against --url.
func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run every endpoint property and report pass/fail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := smoke.Check(cmd.Context(), opts.config())
			if report != nil {
				printChecks(cmd, report)
			}
			return err
		},
	}
}

func printChecks(cmd *cobra.Command, report *smoke.Report) {
	out := cmd.OutOrStdout()
	for _, c := range report.Checks {
		if c.Passed {
			fmt.Fprintf(out, "PASS  %s\n", c.Name)
			continue
		}
		fmt.Fprintf(out, "FAIL  %s: %v\n", c.Name, c.Err)
	}
	fmt.Fprintf(out, "%d/%d passed\n", len(report.Checks)-len(report.Failed()), len(report.Checks))
}
