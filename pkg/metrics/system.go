package metrics

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const nanosecondsPerMillisecond = 1e6

// SampleSystem refreshes the process and host gauges. Runtime figures are
// always recorded; host figures come from gopsutil and their failures are
// returned wrapped in ErrSampleFailed.
func (m *Manager) SampleSystem(ctx context.Context) error {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	m.UpdateSystemMemoryUsage(ms.Alloc)
	m.UpdateSystemGoroutineCount(runtime.NumGoroutine())
	if ms.NumGC > 0 {
		avgPauseMs := float64(ms.PauseTotalNs) / float64(ms.NumGC) / nanosecondsPerMillisecond
		m.RecordSystemGCPauseTime(avgPauseMs)
	}

	// interval 0 compares against the previous call instead of blocking
	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return fmt.Errorf("%w: cpu: %w", ErrSampleFailed, err)
	}
	if len(percents) > 0 {
		m.UpdateHostCPUPercent(percents[0])
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: memory: %w", ErrSampleFailed, err)
	}
	m.UpdateHostMemoryPercent(vm.UsedPercent)
	return nil
}

// SampleSystem refreshes system gauges on the global manager.
func SampleSystem(ctx context.Context) error {
	return globalManager.SampleSystem(ctx)
}
