package smoke

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/fisa/pkg/logger"
)

// workerChannelMultiplier sizes the job buffer relative to the worker count.
const workerChannelMultiplier = 2

// Load posts cfg.Requests scores through a pool of cfg.Workers goroutines.
// Score i is submitted as the value i. Cancelling ctx stops the run early.
func Load(ctx context.Context, cfg *Config) (*LoadStats, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	cfg.Log.Info(ctx, "submitting scores",
		logger.Int("requests", cfg.Requests),
		logger.Int("workers", cfg.Workers))

	client := NewHTTPClient(cfg.BaseURL, cfg.Timeout)
	start := time.Now()

	var successful, failed atomic.Int64
	jobs := make(chan int, cfg.Workers*workerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := range jobs {
				want := "received:" + strconv.Itoa(v)
				body, err := submit(ctx, client, strconv.Itoa(v))
				if err != nil || body != want {
					failed.Add(1)
					continue
				}
				successful.Add(1)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < cfg.Requests; i++ {
			select {
			case <-ctx.Done():
				return
			case jobs <- i:
			}
		}
	}()

	wg.Wait()

	stats := &LoadStats{
		Successful: int(successful.Load()),
		Failed:     int(failed.Load()),
		Duration:   time.Since(start),
	}
	stats.Submitted = stats.Successful + stats.Failed

	cfg.Log.Info(ctx, "score submission completed",
		logger.Int("submitted", stats.Submitted),
		logger.Int("successful", stats.Successful),
		logger.Int("failed", stats.Failed),
		logger.Duration("duration", stats.Duration),
		logger.Float64("scoresPerSecond", stats.Throughput()))

	return stats, ctx.Err()
}
