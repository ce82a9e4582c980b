package metrics_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cs329-classwork/jwt-pizza-service/internal/config"
	"github.com/cs329-classwork/jwt-pizza-service/internal/metrics"
	"github.com/cs329-classwork/jwt-pizza-service/internal/metrics/mocks"
	"github.com/cs329-classwork/jwt-pizza-service/internal/otlp"
	"github.com/cs329-classwork/jwt-pizza-service/internal/sysstat"
)

const testURL = "https://otlp.example.com/otlp/v1/metrics"

var batchOrder = []string{
	"requests.total", "requests.get", "requests.put", "requests.post", "requests.delete",
	"requests.latency", "cpuUsage", "memoryUsage",
	"auth.login_attempts", "auth.login_success", "auth.login_failure",
	"user.count", "purchase.success", "purchase.fail", "purchase.revenue", "pizza.latency",
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func names(batch []otlp.Metric) []string {
	out := make([]string, 0, len(batch))
	for _, m := range batch {
		out = append(out, m.Name)
	}
	return out
}

func TestBuildBatch_ZeroTraffic(t *testing.T) {
	batch := metrics.BuildBatch(metrics.Snapshot{}, sysstat.Sample{CPUPercent: 12.4, MemoryPercent: 55.5})

	require.Len(t, batch, 16)
	assert.Equal(t, batchOrder, names(batch))

	cpu := batch[6]
	require.NotNil(t, cpu.Gauge)
	assert.Equal(t, "%", cpu.Unit)
	assert.Equal(t, int64(12), *cpu.Gauge.DataPoints[0].AsInt)

	mem := batch[7]
	require.NotNil(t, mem.Gauge)
	assert.Equal(t, int64(56), *mem.Gauge.DataPoints[0].AsInt)

	total := batch[0]
	require.NotNil(t, total.Sum)
	assert.Equal(t, int64(0), *total.Sum.DataPoints[0].AsInt)
}

func TestBuildBatch_ValueKinds(t *testing.T) {
	r := metrics.NewRegistry()
	r.Add(metrics.PizzasSold, 3)
	r.AddRevenue(0.0125)
	r.Set(metrics.RequestLatency, 7.6)
	r.Set(metrics.OrderLatency, 250.2)

	batch := metrics.BuildBatch(r.Snapshot(), sysstat.Sample{})
	byName := make(map[string]otlp.Metric, len(batch))
	for _, m := range batch {
		byName[m.Name] = m
	}

	sold := byName["purchase.success"]
	require.NotNil(t, sold.Sum)
	assert.True(t, sold.Sum.IsMonotonic)
	assert.Equal(t, otlp.AggregationCumulative, sold.Sum.AggregationTemporality)
	assert.Equal(t, int64(3), *sold.Sum.DataPoints[0].AsInt)

	revenue := byName["purchase.revenue"]
	require.NotNil(t, revenue.Gauge)
	assert.Nil(t, revenue.Gauge.DataPoints[0].AsInt)
	assert.Equal(t, 0.0125, *revenue.Gauge.DataPoints[0].AsDouble)

	assert.Equal(t, "ms", byName["requests.latency"].Unit)
	assert.Equal(t, int64(8), *byName["requests.latency"].Gauge.DataPoints[0].AsInt)
	assert.Equal(t, int64(250), *byName["pizza.latency"].Gauge.DataPoints[0].AsInt)
}

func TestExportOnce_PushesEnvelope(t *testing.T) {
	reg := metrics.NewRegistry()
	reg.Inc(metrics.RequestsTotal)
	reg.Inc(metrics.RequestsPost)

	sampler := mocks.NewMockSystemSampler(t)
	sampler.EXPECT().Sample(mock.Anything).Return(sysstat.Sample{CPUPercent: 5, MemoryPercent: 40}).Once()

	var body []byte
	pusher := mocks.NewMockPusher(t)
	pusher.EXPECT().Push(mock.Anything, mock.Anything).
		Run(func(_ context.Context, b []byte) { body = b }).
		Return(nil).Once()

	exp := metrics.NewExporter(reg, sampler, pusher, &config.MetricsConfig{Enabled: true, Interval: time.Second}, discardLogger())
	require.NoError(t, exp.ExportOnce(context.Background()))

	var req otlp.ExportRequest
	require.NoError(t, json.Unmarshal(body, &req))
	require.Len(t, req.ResourceMetrics, 1)
	require.Len(t, req.ResourceMetrics[0].ScopeMetrics, 1)

	got := req.ResourceMetrics[0].ScopeMetrics[0].Metrics
	assert.Equal(t, batchOrder, names(got))
	assert.Equal(t, int64(1), *got[0].Sum.DataPoints[0].AsInt)
	assert.Equal(t, int64(1), *got[3].Sum.DataPoints[0].AsInt)
}

func TestExportOnce_UsesSnapshotter(t *testing.T) {
	r := metrics.NewRegistry()
	r.Inc(metrics.LoginFailure)

	snaps := mocks.NewMockSnapshotter(t)
	snaps.EXPECT().Snapshot().Return(r.Snapshot()).Once()

	sampler := mocks.NewMockSystemSampler(t)
	sampler.EXPECT().Sample(mock.Anything).Return(sysstat.Sample{}).Once()

	pushErr := errors.New("collector down")
	pusher := mocks.NewMockPusher(t)
	pusher.EXPECT().Push(mock.Anything, mock.Anything).Return(pushErr).Once()

	exp := metrics.NewExporter(snaps, sampler, pusher, &config.MetricsConfig{Enabled: true, Interval: time.Second}, discardLogger())
	assert.ErrorIs(t, exp.ExportOnce(context.Background()), pushErr)
}

func TestExporter_FailureIsNotFatal(t *testing.T) {
	sampler := mocks.NewMockSystemSampler(t)
	sampler.EXPECT().Sample(mock.Anything).Return(sysstat.Sample{})

	var (
		mu    sync.Mutex
		calls int
	)
	pusher := mocks.NewMockPusher(t)
	pusher.EXPECT().Push(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, []byte) error {
			mu.Lock()
			defer mu.Unlock()
			calls++
			if calls == 1 {
				return errors.New("connection refused")
			}
			return nil
		})

	cfg := &config.MetricsConfig{Enabled: true, URL: testURL, Interval: 10 * time.Millisecond, Timeout: time.Second}
	exp := metrics.NewExporter(metrics.NewRegistry(), sampler, pusher, cfg, discardLogger())
	exp.Start(context.Background())
	defer exp.Close()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 3
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, uint64(1), exp.Dropped())
}

func TestExporter_CycleStartsAreSpaced(t *testing.T) {
	const interval = 30 * time.Millisecond

	sampler := mocks.NewMockSystemSampler(t)
	sampler.EXPECT().Sample(mock.Anything).Return(sysstat.Sample{})

	var (
		mu     sync.Mutex
		starts []time.Time
	)
	pusher := mocks.NewMockPusher(t)
	pusher.EXPECT().Push(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, []byte) error {
			mu.Lock()
			starts = append(starts, time.Now())
			n := len(starts)
			mu.Unlock()
			if n == 1 {
				// slower than the interval
				time.Sleep(2 * interval)
			}
			return nil
		})

	cfg := &config.MetricsConfig{Enabled: true, URL: testURL, Interval: interval, Timeout: time.Second}
	exp := metrics.NewExporter(metrics.NewRegistry(), sampler, pusher, cfg, discardLogger())
	exp.Start(context.Background())

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(starts) >= 4
	}, 3*time.Second, 5*time.Millisecond)
	exp.Close()

	mu.Lock()
	defer mu.Unlock()
	for i := 1; i < len(starts); i++ {
		assert.GreaterOrEqual(t, starts[i].Sub(starts[i-1]), interval-2*time.Millisecond)
	}
}

func TestExporter_Disabled(t *testing.T) {
	sampler := mocks.NewMockSystemSampler(t)
	pusher := mocks.NewMockPusher(t)

	for _, cfg := range []*config.MetricsConfig{
		{Enabled: false, URL: testURL, Interval: time.Millisecond},
		{Enabled: true, URL: testURL, Interval: 0},
		{Enabled: true, Interval: time.Millisecond},
	} {
		exp := metrics.NewExporter(metrics.NewRegistry(), sampler, pusher, cfg, discardLogger())
		exp.Start(context.Background())
		time.Sleep(20 * time.Millisecond)
		exp.Close()
	}

	pusher.AssertNotCalled(t, "Push", mock.Anything, mock.Anything)
}

func TestExporter_StopsOnContextCancel(t *testing.T) {
	sampler := mocks.NewMockSystemSampler(t)
	sampler.EXPECT().Sample(mock.Anything).Return(sysstat.Sample{}).Maybe()
	pusher := mocks.NewMockPusher(t)
	pusher.EXPECT().Push(mock.Anything, mock.Anything).Return(nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	exp := metrics.NewExporter(metrics.NewRegistry(), sampler, pusher,
		&config.MetricsConfig{Enabled: true, URL: testURL, Interval: 5 * time.Millisecond}, discardLogger())
	exp.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		exp.Close()
		exp.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close did not return after context cancel")
	}
}
