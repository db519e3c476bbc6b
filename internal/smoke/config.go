package smoke

import (
	"fmt"
	"net/url"
	"runtime"
	"strings"
	"time"

	"github.com/okian/fisa/pkg/logger"
)

// Defaults used when a Config field is left zero.
const (
	DefaultBaseURL  = "http://localhost:8080"
	DefaultTimeout  = 10 * time.Second
	workerMultiplier = 2
)

// Config holds settings for a smoke run.
type Config struct {
	BaseURL  string        // Base URL of the service
	Timeout  time.Duration // Per-request timeout
	Requests int           // Score submissions for the load phase; 0 skips it
	Workers  int           // Concurrent load workers
	Log      logger.Logger // Progress logger; discarded when nil
}

// normalize fills defaults and validates the result.
func (c *Config) normalize() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q must be absolute", ErrInvalidConfig, c.BaseURL)
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU() * workerMultiplier
	}
	if c.Requests < 0 {
		return fmt.Errorf("%w: requests must not be negative", ErrInvalidConfig)
	}
	if c.Log == nil {
		c.Log = logger.Discard()
	}
	return nil
}

// CheckResult is the outcome of one property check.
type CheckResult struct {
	Name   string
	Passed bool
	Err    error
}

// LoadStats summarizes a load phase.
type LoadStats struct {
	Submitted  int
	Successful int
	Failed     int
	Duration   time.Duration
}

// Throughput returns submissions per second.
func (s LoadStats) Throughput() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Submitted) / s.Duration.Seconds()
}

// Report collects the results of a smoke run.
type Report struct {
	Checks    []CheckResult
	Load      *LoadStats
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Failed returns the checks that did not pass.
func (r *Report) Failed() []CheckResult {
	var out []CheckResult
	for _, c := range r.Checks {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}

// Passed reports whether every check passed and no load request failed.
func (r *Report) Passed() bool {
	if len(r.Failed()) > 0 {
		return false
	}
	return r.Load == nil || r.Load.Failed == 0
}
