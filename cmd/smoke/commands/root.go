// Package commands defines the smoke CLI.
package commands

import (
	"time"

	"github.com/okian/fisa/internal/smoke"
	"github.com/okian/fisa/pkg/logger"
	"github.com/spf13/cobra"
)

// options shared by every subcommand.
type options struct {
	baseURL string
	timeout time.Duration
	verbose bool
}

// config builds a smoke.Config from the shared flags.
func (o *options) config() *smoke.Config {
	cfg := &smoke.Config{BaseURL: o.baseURL, Timeout: o.timeout}
	if o.verbose {
		cfg.Log = logger.Named("smoke")
	}
	return cfg
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "smoke",
		Short:         "Exercise a running fisa instance over HTTP",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !opts.verbose {
				return nil
			}
			if err := logger.Init(logger.WithOutput(cmd.ErrOrStderr())); err != nil {
				return err
			}
			return logger.SetLevelString("debug")
		},
	}

	root.PersistentFlags().StringVar(&opts.baseURL, "url", smoke.DefaultBaseURL, "base URL of the service")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", smoke.DefaultTimeout, "per-request timeout")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(checkCmd(opts), scoreCmd(opts), loadCmd(opts))
	return root
}
