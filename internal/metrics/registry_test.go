package metrics_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cs329-classwork/jwt-pizza-service/internal/metrics"
)

func TestRegistry_ConcurrentIncrementsAreExact(t *testing.T) {
	r := metrics.NewRegistry()

	const workers, perWorker = 16, 1000
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				r.Inc(metrics.RequestsTotal)
				r.Add(metrics.PizzasSold, 2)
				r.AddRevenue(0.5)
			}
		}()
	}
	wg.Wait()

	s := r.Snapshot()
	assert.Equal(t, uint64(workers*perWorker), s.Counter(metrics.RequestsTotal))
	assert.Equal(t, uint64(2*workers*perWorker), s.Counter(metrics.PizzasSold))
	assert.InDelta(t, 0.5*workers*perWorker, s.Revenue, 1e-6)
}

func TestRegistry_ActiveUsersNeverNegative(t *testing.T) {
	r := metrics.NewRegistry()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 500 {
				r.DecGauge(metrics.ActiveUsers)
			}
		}()
		go func() {
			defer wg.Done()
			for range 100 {
				r.IncGauge(metrics.ActiveUsers)
			}
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, r.Snapshot().Gauge(metrics.ActiveUsers), 0.0)

	r.DecGauge(metrics.ActiveUsers)
	assert.Equal(t, 0.0, r.Snapshot().Gauge(metrics.ActiveUsers))
}

func TestRegistry_IgnoredUpdates(t *testing.T) {
	r := metrics.NewRegistry()
	r.AddRevenue(10)

	r.AddRevenue(-3)
	r.AddRevenue(0)
	r.AddRevenue(math.NaN())
	r.AddRevenue(math.Inf(1))
	r.Add(metrics.PizzasFailed, 0)
	r.Add(metrics.Counter(99), 1)
	r.Set(metrics.RequestLatency, math.NaN())
	r.Set(metrics.Gauge(-1), 5)

	s := r.Snapshot()
	assert.Equal(t, 10.0, s.Revenue)
	assert.Zero(t, s.Counter(metrics.PizzasFailed))
	assert.Zero(t, s.Counter(metrics.Counter(99)))
	assert.Zero(t, s.Gauge(metrics.RequestLatency))
	assert.Zero(t, s.Gauge(metrics.Gauge(-1)))
}

func TestRegistry_SnapshotIsIndependent(t *testing.T) {
	r := metrics.NewRegistry()
	r.Inc(metrics.RequestsGet)
	r.Set(metrics.RequestLatency, 12.5)

	before := r.Snapshot()
	r.Inc(metrics.RequestsGet)
	r.Set(metrics.RequestLatency, 40)

	assert.Equal(t, uint64(1), before.Counter(metrics.RequestsGet))
	assert.Equal(t, 12.5, before.Gauge(metrics.RequestLatency))
	assert.Equal(t, uint64(2), r.Snapshot().Counter(metrics.RequestsGet))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "requests.total", metrics.RequestsTotal.String())
	assert.Equal(t, "purchase.fail", metrics.PizzasFailed.String())
	assert.Equal(t, "user.count", metrics.ActiveUsers.String())
	assert.Equal(t, "unknown", metrics.Counter(42).String())
	assert.Equal(t, "unknown", metrics.Gauge(42).String())
}
