package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cs329-classwork/jwt-pizza-service/internal/traffic"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := traffic.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return traffic.Run(ctx, cfg, os.Stdout)
}
