package commands

import (
	"fmt"

	"github.com/okian/fisa/internal/smoke"
	"github.com/spf13/cobra"
)

// score --value N: post one score and print the reply.
func scoreCmd(opts *options) *cobra.Command {
	var value string
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Submit one score and print the reply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := smoke.SubmitScore(cmd.Context(), opts.config(), value)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), body)
			return nil
		},
	}
	cmd.Flags().StringVar(&value, "value", "", "score value to submit")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}
