package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

const promNamespace = "pizza"

var (
	counterDescs [numCounters]*prometheus.Desc
	gaugeDescs   [numGauges]*prometheus.Desc
	revenueDesc  = newDesc(RevenueName, "Cumulative revenue of successful orders.")
)

func init() {
	for c := range numCounters {
		counterDescs[c] = newDesc(c.String(), "Cumulative count of "+c.String()+".")
	}
	for g := range numGauges {
		gaugeDescs[g] = newDesc(g.String(), "Last observed value of "+g.String()+".")
	}
}

func newDesc(wireName, help string) *prometheus.Desc {
	name := promNamespace + "_" + strings.NewReplacer(".", "_").Replace(wireName)
	return prometheus.NewDesc(name, help, nil, nil)
}

// Describe implements prometheus.Collector.
func (r *Registry) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range counterDescs {
		ch <- d
	}
	for _, d := range gaugeDescs {
		ch <- d
	}
	ch <- revenueDesc
}

// Collect implements prometheus.Collector from a single snapshot.
func (r *Registry) Collect(ch chan<- prometheus.Metric) {
	s := r.Snapshot()
	for c := range numCounters {
		ch <- prometheus.MustNewConstMetric(counterDescs[c], prometheus.CounterValue, float64(s.Counter(c)))
	}
	for g := range numGauges {
		ch <- prometheus.MustNewConstMetric(gaugeDescs[g], prometheus.GaugeValue, s.Gauge(g))
	}
	ch <- prometheus.MustNewConstMetric(revenueDesc, prometheus.CounterValue, s.Revenue)
}
