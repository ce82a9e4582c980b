package logging

//go:generate go tool mockery

import "context"

type Pusher interface {
	Push(ctx context.Context, body []byte) error
}
