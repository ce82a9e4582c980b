package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cs329-classwork/jwt-pizza-service/internal/config"
	"github.com/cs329-classwork/jwt-pizza-service/internal/otlp"
	"github.com/cs329-classwork/jwt-pizza-service/internal/sysstat"
)

// Exporter periodically pushes a snapshot of the registry plus a host sample
// to the metrics collector. Delivery is best effort: a failed batch is logged
// and dropped.
type Exporter struct {
	snapshots Snapshotter
	sampler   SystemSampler
	pusher    Pusher
	logger    *slog.Logger
	cfg       *config.MetricsConfig

	dropped      atomic.Uint64
	wg           sync.WaitGroup
	startOnce    sync.Once
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewExporter(
	snapshots Snapshotter,
	sampler SystemSampler,
	pusher Pusher,
	cfg *config.MetricsConfig,
	logger *slog.Logger,
) *Exporter {
	return &Exporter{
		snapshots:  snapshots,
		sampler:    sampler,
		pusher:     pusher,
		logger:     logger,
		cfg:        cfg,
		shutdownCh: make(chan struct{}),
	}
}

func (e *Exporter) Start(ctx context.Context) {
	if !e.cfg.Enabled {
		e.logger.Info("metrics export disabled")
		return
	}
	if e.cfg.URL == "" {
		e.logger.Info("metrics export disabled, METRICS_URL not set")
		return
	}
	if e.cfg.Interval <= 0 {
		e.logger.Warn("metrics export interval must be positive, export disabled",
			slog.Duration("interval", e.cfg.Interval))
		return
	}

	e.startOnce.Do(func() {
		e.wg.Add(1)
		go e.run(ctx)

		e.logger.Info("metrics exporter started",
			slog.Duration("interval", e.cfg.Interval),
			slog.Duration("timeout", e.cfg.Timeout),
			slog.Uint64("max_retries", uint64(e.cfg.MaxRetries)))
	})
}

// Close stops the loop and waits for an in-flight cycle to finish.
func (e *Exporter) Close() {
	e.shutdownOnce.Do(func() {
		close(e.shutdownCh)
		e.wg.Wait()
	})
}

// Dropped reports how many batches failed to deliver.
func (e *Exporter) Dropped() uint64 {
	return e.dropped.Load()
}

// run re-arms the timer after each cycle so consecutive cycle starts are at
// least one interval apart, even when a push is slow.
func (e *Exporter) run(ctx context.Context) {
	defer e.wg.Done()
	timer := time.NewTimer(e.cfg.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.shutdownCh:
			return
		case <-timer.C:
			started := time.Now()
			e.cycle(ctx)
			timer.Reset(max(e.cfg.Interval-time.Since(started), 0))
		}
	}
}

func (e *Exporter) cycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			e.dropped.Add(1)
			e.logger.Error("metrics export cycle panicked", slog.Any("panic", r))
		}
	}()

	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	if err := e.ExportOnce(ctx); err != nil {
		e.dropped.Add(1)
		e.logger.Error("failed to push metrics",
			slog.String("error", err.Error()),
			slog.Uint64("dropped_batches", e.dropped.Load()))
		return
	}
	e.logger.Debug("pushed metrics")
}

// ExportOnce runs a single snapshot, encode and push.
func (e *Exporter) ExportOnce(ctx context.Context) error {
	batch := BuildBatch(e.snapshots.Snapshot(), e.sampler.Sample(ctx))

	body, err := json.Marshal(otlp.NewExportRequest(batch))
	if err != nil {
		return fmt.Errorf("failed to encode metrics batch: %w", err)
	}

	if err := e.pusher.Push(ctx, body); err != nil {
		e.logger.Debug("dropping metrics batch", slog.Int("metrics", len(batch)))
		return err
	}
	return nil
}

// BuildBatch encodes every metric. Counts, latencies and percentages are
// rounded integers; revenue is an unrounded double.
func BuildBatch(s Snapshot, sys sysstat.Sample) []otlp.Metric {
	batch := make([]otlp.Metric, 0, int(numCounters)+int(numGauges)+3)

	for _, c := range []Counter{RequestsTotal, RequestsGet, RequestsPut, RequestsPost, RequestsDelete} {
		batch = append(batch, otlp.EncodeSum(c.String(), "1", s.Counter(c)))
	}
	batch = append(batch, otlp.EncodeGauge(RequestLatency.String(), "ms", s.Gauge(RequestLatency), otlp.AsInt, true))

	batch = append(batch,
		otlp.EncodeGauge("cpuUsage", "%", sys.CPUPercent, otlp.AsInt, true),
		otlp.EncodeGauge("memoryUsage", "%", sys.MemoryPercent, otlp.AsInt, true),
	)

	for _, c := range []Counter{LoginAttempts, LoginSuccess, LoginFailure} {
		batch = append(batch, otlp.EncodeSum(c.String(), "1", s.Counter(c)))
	}

	batch = append(batch, otlp.EncodeGauge(ActiveUsers.String(), "1", s.Gauge(ActiveUsers), otlp.AsInt, true))

	for _, c := range []Counter{PizzasSold, PizzasFailed} {
		batch = append(batch, otlp.EncodeSum(c.String(), "1", s.Counter(c)))
	}
	batch = append(batch,
		otlp.EncodeGauge(RevenueName, "1", s.Revenue, otlp.AsDouble, false),
		otlp.EncodeGauge(OrderLatency.String(), "ms", s.Gauge(OrderLatency), otlp.AsInt, true),
	)

	return batch
}
