// Package traffic generates synthetic pizza service traffic so the metrics
// and logging pipelines have something to report.
package traffic

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var errNoFixture = errors.New("attack requires seeded diners and a menu")

func Run(ctx context.Context, cfg *Config, out io.Writer) error {
	var fx *Fixture
	if cfg.Mode != "menu" {
		var err error
		fx, err = Seed(ctx, cfg)
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	targeter, err := NewTargeter(cfg, fx)
	if err != nil {
		return err
	}

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	attacker := vegeta.NewAttacker(
		vegeta.Redirects(-1),
		vegeta.KeepAlive(true),
		vegeta.Timeout(5*time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}),
	)

	fmt.Fprintf(out, "Starting %s traffic: rate=%d/s duration=%s\n", cfg.Mode, cfg.Rate, cfg.Duration)

	var metrics vegeta.Metrics
	results := attacker.Attack(targeter, rate, cfg.Duration, cfg.Mode)
	done := ctx.Done()
loop:
	for {
		select {
		case <-done:
			attacker.Stop()
			done = nil
		case res, ok := <-results:
			if !ok {
				break loop
			}
			metrics.Add(res)
		}
	}
	metrics.Close()

	return vegeta.NewTextReporter(&metrics).Report(out)
}

func NewTargeter(cfg *Config, fx *Fixture) (vegeta.Targeter, error) {
	if cfg.Mode == "menu" {
		return MenuTargeter(cfg.BaseURL, cfg.RateLimitBypass), nil
	}
	if fx == nil || len(fx.Diners) == 0 || len(fx.Menu) == 0 {
		return nil, errNoFixture
	}

	switch cfg.Mode {
	case "order":
		return OrderTargeter(cfg.BaseURL, fx, cfg.RateLimitBypass), nil
	case "auth":
		return LoginTargeter(cfg.BaseURL, fx, cfg.BadLoginRatio, cfg.RateLimitBypass), nil
	case "mixed":
		return MixedTargeter(cfg.BaseURL, fx, cfg), nil
	default:
		return nil, fmt.Errorf("unknown traffic mode: %s", cfg.Mode)
	}
}
