package middleware

//go:generate go tool mockery

import (
	"github.com/cs329-classwork/jwt-pizza-service/internal/logging"
	"github.com/cs329-classwork/jwt-pizza-service/internal/metrics"
)

type MetricsRecorder interface {
	Inc(c metrics.Counter)
	Add(c metrics.Counter, n uint64)
	Set(g metrics.Gauge, v float64)
	IncGauge(g metrics.Gauge)
	DecGauge(g metrics.Gauge)
	AddRevenue(v float64)
}

type HTTPLogger interface {
	LogHTTP(e logging.HTTPEntry)
}

type IDGenerator interface {
	Next() string
}
