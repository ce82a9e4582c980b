// Package sysstat samples host CPU and memory utilization for the metrics
// exporter.
package sysstat

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

var (
	errNoCores  = errors.New("host reported zero logical cores")
	errNoMemory = errors.New("host reported zero total memory")
)

// Host reads raw system values.
type Host interface {
	LoadAverage(ctx context.Context) (float64, error)
	LogicalCores(ctx context.Context) (int, error)
	Memory(ctx context.Context) (total, free uint64, err error)
}

type Sample struct {
	CPUPercent    float64
	MemoryPercent float64
}

// Sampler converts host readings into percentages. When a reading fails the
// last good value is reused, so a sample is always returned.
type Sampler struct {
	host   Host
	logger *slog.Logger

	mu   sync.Mutex
	last Sample
}

func NewSampler(host Host, logger *slog.Logger) *Sampler {
	if host == nil {
		host = gopsutilHost{}
	}
	return &Sampler{host: host, logger: logger}
}

func (s *Sampler) Sample(ctx context.Context) Sample {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, err := s.cpuPercent(ctx); err != nil {
		s.logger.Warn("failed to sample cpu usage, reusing previous value",
			slog.String("error", err.Error()),
			slog.Float64("previous", s.last.CPUPercent))
	} else {
		s.last.CPUPercent = v
	}

	if v, err := s.memoryPercent(ctx); err != nil {
		s.logger.Warn("failed to sample memory usage, reusing previous value",
			slog.String("error", err.Error()),
			slog.Float64("previous", s.last.MemoryPercent))
	} else {
		s.last.MemoryPercent = v
	}

	return s.last
}

// cpuPercent is the one minute load average per logical core.
func (s *Sampler) cpuPercent(ctx context.Context) (float64, error) {
	avg, err := s.host.LoadAverage(ctx)
	if err != nil {
		return 0, err
	}
	cores, err := s.host.LogicalCores(ctx)
	if err != nil {
		return 0, err
	}
	if cores <= 0 {
		return 0, errNoCores
	}
	pct := round2(avg / float64(cores) * 100)
	return min(max(pct, 0), 100), nil
}

func (s *Sampler) memoryPercent(ctx context.Context) (float64, error) {
	total, free, err := s.host.Memory(ctx)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, errNoMemory
	}
	free = min(free, total)
	return round2(float64(total-free) / float64(total) * 100), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type gopsutilHost struct{}

func (gopsutilHost) LoadAverage(ctx context.Context) (float64, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return avg.Load1, nil
}

func (gopsutilHost) LogicalCores(ctx context.Context) (int, error) {
	return cpu.CountsWithContext(ctx, true)
}

func (gopsutilHost) Memory(ctx context.Context) (uint64, uint64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, 0, err
	}
	return vm.Total, vm.Free, nil
}
