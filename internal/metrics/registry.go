package metrics

import (
	"math"
	"sync/atomic"
)

type Counter int

const (
	RequestsTotal Counter = iota
	RequestsGet
	RequestsPut
	RequestsPost
	RequestsDelete
	LoginAttempts
	LoginSuccess
	LoginFailure
	PizzasSold
	PizzasFailed
	numCounters
)

var counterNames = [numCounters]string{
	RequestsTotal:  "requests.total",
	RequestsGet:    "requests.get",
	RequestsPut:    "requests.put",
	RequestsPost:   "requests.post",
	RequestsDelete: "requests.delete",
	LoginAttempts:  "auth.login_attempts",
	LoginSuccess:   "auth.login_success",
	LoginFailure:   "auth.login_failure",
	PizzasSold:     "purchase.success",
	PizzasFailed:   "purchase.fail",
}

func (c Counter) String() string {
	if c < 0 || c >= numCounters {
		return "unknown"
	}
	return counterNames[c]
}

type Gauge int

const (
	RequestLatency Gauge = iota
	OrderLatency
	ActiveUsers
	numGauges
)

var gaugeNames = [numGauges]string{
	RequestLatency: "requests.latency",
	OrderLatency:   "pizza.latency",
	ActiveUsers:    "user.count",
}

func (g Gauge) String() string {
	if g < 0 || g >= numGauges {
		return "unknown"
	}
	return gaugeNames[g]
}

const RevenueName = "purchase.revenue"

// Registry holds the process counters and gauges. Every key is updated
// independently with atomic operations; there is no cross-key consistency.
// Gauges and revenue are float64 values stored as their IEEE-754 bits.
type Registry struct {
	counters [numCounters]atomic.Uint64
	gauges   [numGauges]atomic.Uint64
	revenue  atomic.Uint64
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Inc(c Counter) {
	r.Add(c, 1)
}

func (r *Registry) Add(c Counter, n uint64) {
	if c < 0 || c >= numCounters || n == 0 {
		return
	}
	r.counters[c].Add(n)
}

func (r *Registry) Set(g Gauge, v float64) {
	if g < 0 || g >= numGauges || math.IsNaN(v) {
		return
	}
	r.gauges[g].Store(math.Float64bits(v))
}

func (r *Registry) IncGauge(g Gauge) {
	r.updateGauge(g, func(v float64) float64 { return v + 1 })
}

// DecGauge decrements g, never going below zero.
func (r *Registry) DecGauge(g Gauge) {
	r.updateGauge(g, func(v float64) float64 { return max(v-1, 0) })
}

func (r *Registry) updateGauge(g Gauge, fn func(float64) float64) {
	if g < 0 || g >= numGauges {
		return
	}
	casFloat(&r.gauges[g], fn)
}

// AddRevenue accumulates v. Negative and NaN amounts are ignored so revenue
// stays monotonic.
func (r *Registry) AddRevenue(v float64) {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	casFloat(&r.revenue, func(old float64) float64 { return old + v })
}

func casFloat(bits *atomic.Uint64, fn func(float64) float64) {
	for {
		old := bits.Load()
		next := math.Float64bits(fn(math.Float64frombits(old)))
		if bits.CompareAndSwap(old, next) {
			return
		}
	}
}

// Snapshot copies every value. Writers are never blocked; increments racing
// with the copy land either in this snapshot or the next one.
func (r *Registry) Snapshot() Snapshot {
	var s Snapshot
	for i := range r.counters {
		s.counters[i] = r.counters[i].Load()
	}
	for i := range r.gauges {
		s.gauges[i] = math.Float64frombits(r.gauges[i].Load())
	}
	s.Revenue = math.Float64frombits(r.revenue.Load())
	return s
}

// Snapshot is an immutable copy of the registry.
type Snapshot struct {
	counters [numCounters]uint64
	gauges   [numGauges]float64
	Revenue  float64
}

func (s Snapshot) Counter(c Counter) uint64 {
	if c < 0 || c >= numCounters {
		return 0
	}
	return s.counters[c]
}

func (s Snapshot) Gauge(g Gauge) float64 {
	if g < 0 || g >= numGauges {
		return 0
	}
	return s.gauges[g]
}
