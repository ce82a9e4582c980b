package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/netutil"

	"github.com/cs329-classwork/jwt-pizza-service/internal/cache"
	"github.com/cs329-classwork/jwt-pizza-service/internal/config"
	"github.com/cs329-classwork/jwt-pizza-service/internal/handler"
	"github.com/cs329-classwork/jwt-pizza-service/internal/idgen"
	"github.com/cs329-classwork/jwt-pizza-service/internal/logging"
	"github.com/cs329-classwork/jwt-pizza-service/internal/metrics"
	custommiddleware "github.com/cs329-classwork/jwt-pizza-service/internal/middleware"
	"github.com/cs329-classwork/jwt-pizza-service/internal/push"
	"github.com/cs329-classwork/jwt-pizza-service/internal/repository"
	"github.com/cs329-classwork/jwt-pizza-service/internal/service"
	"github.com/cs329-classwork/jwt-pizza-service/internal/sysstat"
	"github.com/cs329-classwork/jwt-pizza-service/internal/validation"
)

type store interface {
	service.UserStore
	service.OrderStore
	Close()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logPusher := push.NewClient(cfg.Logging.URL, cfg.Logging.APIKey)
	remote := logging.New(logPusher, &cfg.Logging, logger)
	remote.Start(ctx)
	defer remote.Close()

	registry := metrics.NewRegistry()
	metricPusher := push.NewClient(cfg.Metrics.URL, cfg.Metrics.APIKey, push.WithMaxRetries(cfg.Metrics.MaxRetries))
	exporter := metrics.NewExporter(registry, sysstat.NewSampler(nil, logger), metricPusher, &cfg.Metrics, logger)
	exporter.Start(ctx)
	defer exporter.Close()

	db, err := openStore(ctx, &cfg.Database, remote, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := cache.New(cfg.Auth.SessionCacheSizePow2, cfg.Auth.SessionTTL)
	if err != nil {
		return fmt.Errorf("failed to create session cache: %w", err)
	}
	defer func() {
		hits, misses, ratio := sessions.Stats()
		logger.Info("session cache stats",
			slog.Uint64("hits", hits),
			slog.Uint64("misses", misses),
			slog.Float64("hit_ratio", ratio))
		sessions.Close()
	}()

	ids, err := idgen.New()
	if err != nil {
		return fmt.Errorf("failed to create request id generator: %w", err)
	}

	authService := service.NewAuthService(db, sessions, &cfg.Auth)
	orderService := service.NewOrderService(db)
	validator := validation.NewRequestValidator(cfg.Validation.MaxOrderItems, cfg.Validation.MinPasswordLength)
	h := handler.New(authService, orderService, validator, logger)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler(remote, logger)
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.RequestID(ids))
	e.Use(custommiddleware.Instrument(registry, remote))
	e.Use(middleware.Recover())
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger))

	h.Register(e)

	if cfg.Metrics.Prometheus {
		promRegistry := prometheus.NewRegistry()
		promRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			registry,
		)
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})))
		logger.Info("prometheus endpoint enabled", slog.String("path", "/metrics"))
	}

	if cfg.Pprof.Enabled {
		pprofGroup := e.Group("/debug/pprof", custommiddleware.PprofAuth(cfg.Pprof.Secret))
		custommiddleware.RegisterPprof(pprofGroup)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	httpListener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		httpListener = netutil.LimitListener(httpListener, cfg.Server.MaxConnections)
	}

	httpServer := newServer(e)

	go func() {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	}()

	var httpsServer *http.Server
	if cfg.TLS.Enabled {
		httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
		logger.Info("starting HTTPS server",
			slog.String("addr", httpsAddr),
			slog.Int("max_connections", cfg.Server.MaxConnections))

		httpsListener, err := net.Listen("tcp", httpsAddr)
		if err != nil {
			return fmt.Errorf("failed to create HTTPS listener: %w", err)
		}
		if cfg.Server.MaxConnections > 0 {
			httpsListener = netutil.LimitListener(httpsListener, cfg.Server.MaxConnections)
		}

		cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			return fmt.Errorf("failed to load TLS certificate: %w", err)
		}

		tlsListener := tls.NewListener(httpsListener, &tls.Config{
			MinVersion:       tls.VersionTLS13,
			Certificates:     []tls.Certificate{cert},
			CurvePreferences: []tls.CurveID{tls.X25519},
		})

		httpsServer = newServer(e)

		go func() {
			if err := httpsServer.Serve(tlsListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("https server error", slog.String("error", err.Error()))
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	if httpsServer != nil {
		if err := httpsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("https server shutdown failed: %w", err)
		}
	}

	return nil
}

func newServer(h http.Handler) *http.Server {
	return &http.Server{
		Handler:        h,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}
}

// openStore connects to Postgres when a URL is configured and falls back to
// the in-memory store otherwise.
func openStore(ctx context.Context, cfg *config.DatabaseConfig, remote *logging.Logger, logger *slog.Logger) (store, error) {
	if cfg.URL == "" {
		logger.Warn("DATABASE_URL not set, using in-memory store")
		return repository.NewMemoryStore(), nil
	}

	pg, err := repository.NewPostgresStore(ctx, cfg, logging.NewQueryTracer(remote))
	if err != nil {
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}
	logger.Info("connected to database", slog.Int("max_conns", int(pg.Pool().Config().MaxConns)))
	return pg, nil
}
