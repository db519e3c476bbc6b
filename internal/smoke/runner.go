// Package smoke exercises a running instance over HTTP: property checks,
// single score submissions and a concurrent load phase.
package smoke

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okian/fisa/pkg/logger"
)

// Run executes the property checks and, when cfg.Requests is positive, a
// load phase. The report is returned even when a phase fails.
func Run(ctx context.Context, cfg *Config) (*Report, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	start := time.Now()

	cfg.Log.Info(ctx, "starting smoke run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("requests", cfg.Requests),
		logger.Int("workers", cfg.Workers),
		logger.Duration("timeout", cfg.Timeout))

	report, checkErr := Check(ctx, cfg)
	report.StartTime = start

	var loadErr error
	if cfg.Requests > 0 {
		report.Load, loadErr = Load(ctx, cfg)
		if loadErr == nil && report.Load.Failed > 0 {
			loadErr = fmt.Errorf("%w: %d of %d scores failed", ErrCheckFailed, report.Load.Failed, report.Load.Submitted)
		}
	}

	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(start)

	cfg.Log.Info(ctx, "smoke run finished",
		logger.Int("checks", len(report.Checks)),
		logger.Int("failed", len(report.Failed())),
		logger.Duration("duration", report.Duration))

	return report, errors.Join(checkErr, loadErr)
}
