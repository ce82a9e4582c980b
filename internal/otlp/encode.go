// Package otlp builds metric data points in the OTLP/JSON shape accepted by
// hosted collectors.
package otlp

import (
	"math"
	"time"
)

const AggregationCumulative = "AGGREGATION_TEMPORALITY_CUMULATIVE"

// ValueKind selects the data point field a value is written to.
type ValueKind int

const (
	AsInt ValueKind = iota
	AsDouble
)

type Metric struct {
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Sum   *Sum   `json:"sum,omitempty"`
	Gauge *Gauge `json:"gauge,omitempty"`
}

type Sum struct {
	AggregationTemporality string            `json:"aggregationTemporality"`
	IsMonotonic            bool              `json:"isMonotonic"`
	DataPoints             []NumberDataPoint `json:"dataPoints"`
}

type Gauge struct {
	DataPoints []NumberDataPoint `json:"dataPoints"`
}

// NumberDataPoint carries exactly one of AsInt or AsDouble.
type NumberDataPoint struct {
	TimeUnixNano int64    `json:"timeUnixNano"`
	AsInt        *int64   `json:"asInt,omitempty"`
	AsDouble     *float64 `json:"asDouble,omitempty"`
}

type ExportRequest struct {
	ResourceMetrics []ResourceMetrics `json:"resourceMetrics"`
}

type ResourceMetrics struct {
	ScopeMetrics []ScopeMetrics `json:"scopeMetrics"`
}

type ScopeMetrics struct {
	Metrics []Metric `json:"metrics"`
}

// EncodeSum returns a monotonic cumulative sum with a single integer point.
func EncodeSum(name, unit string, value uint64) Metric {
	v := int64(min(value, math.MaxInt64))
	return Metric{
		Name: name,
		Unit: unit,
		Sum: &Sum{
			AggregationTemporality: AggregationCumulative,
			IsMonotonic:            true,
			DataPoints: []NumberDataPoint{
				{TimeUnixNano: time.Now().UnixNano(), AsInt: &v},
			},
		},
	}
}

// EncodeGauge returns a gauge with a single point. Integer points are
// truncated unless round is set; double points keep full precision unless
// round is set.
func EncodeGauge(name, unit string, value float64, kind ValueKind, round bool) Metric {
	if round {
		value = math.Round(value)
	}

	point := NumberDataPoint{TimeUnixNano: time.Now().UnixNano()}
	switch kind {
	case AsDouble:
		point.AsDouble = &value
	default:
		v := int64(value)
		point.AsInt = &v
	}

	return Metric{
		Name:  name,
		Unit:  unit,
		Gauge: &Gauge{DataPoints: []NumberDataPoint{point}},
	}
}

func NewExportRequest(metrics []Metric) ExportRequest {
	if metrics == nil {
		metrics = []Metric{}
	}
	return ExportRequest{
		ResourceMetrics: []ResourceMetrics{
			{ScopeMetrics: []ScopeMetrics{{Metrics: metrics}}},
		},
	}
}
