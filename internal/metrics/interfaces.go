package metrics

//go:generate go tool mockery

import (
	"context"

	"github.com/cs329-classwork/jwt-pizza-service/internal/sysstat"
)

type Snapshotter interface {
	Snapshot() Snapshot
}

type SystemSampler interface {
	Sample(ctx context.Context) sysstat.Sample
}

type Pusher interface {
	Push(ctx context.Context, body []byte) error
}
