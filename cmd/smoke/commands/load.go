package commands

import (
	"fmt"
	"runtime"

	"github.com/okian/fisa/internal/smoke"
	"github.com/spf13/cobra"
)

// Default load parameters.
const (
	defaultRequests       = 1000
	defaultWorkersPerCore = 2
)

// load --requests N --workers W: post N scores concurrently.
func loadCmd(opts *options) *cobra.Command {
	var requests, workers int
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Submit many scores concurrently and report throughput",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.config()
			cfg.Requests = requests
			cfg.Workers = workers

			stats, err := smoke.Load(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "submitted=%d successful=%d failed=%d duration=%s rate=%.1f/s\n",
				stats.Submitted, stats.Successful, stats.Failed, stats.Duration, stats.Throughput())
			if stats.Failed > 0 {
				return fmt.Errorf("%w: %d scores failed", smoke.ErrCheckFailed, stats.Failed)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&requests, "requests", defaultRequests, "number of scores to submit")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU()*defaultWorkersPerCore, "number of concurrent workers")
	return cmd
}
