// Package logging ships structured request, database and error records to a
// remote log sink.
package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cs329-classwork/jwt-pizza-service/internal/config"
)

const (
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	TypeHTTP  = "http"
	TypeDB    = "db"
	TypeError = "unhandledError"
)

// LevelFor derives a record level from an HTTP status code.
func LevelFor(status int) string {
	switch {
	case status >= 500:
		return LevelError
	case status >= 400:
		return LevelWarn
	default:
		return LevelInfo
	}
}

type Labels struct {
	Component string `json:"component"`
	Level     string `json:"level"`
	Type      string `json:"type"`
}

type Stream struct {
	Stream Labels      `json:"stream"`
	Values [][2]string `json:"values"`
}

// PushRequest is the body accepted by the log sink. Every record is sent in
// its own request with a single stream and a single value.
type PushRequest struct {
	Streams []Stream `json:"streams"`
}

type HTTPEntry struct {
	Authorized bool
	Path       string
	Method     string
	StatusCode int
	IP         string
	RequestID  string
	ReqBody    []byte
	ResBody    []byte
}

type httpPayload struct {
	Authorized bool   `json:"authorized"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	StatusCode int    `json:"statusCode"`
	IP         string `json:"ip"`
	RequestID  string `json:"reqId"`
	Req        string `json:"req"`
	Res        string `json:"res"`
}

type dbPayload struct {
	Query string `json:"query"`
}

type errorPayload struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// Logger builds one redacted record per event. Once started, records are
// handed to a bounded queue drained by background workers and the caller
// never waits on the sink. Before Start and after Close records are shipped
// inline.
type Logger struct {
	pusher Pusher
	cfg    *config.LoggingConfig
	logger *slog.Logger

	mu      sync.RWMutex
	running bool
	queue   chan []byte

	dropped   atomic.Uint64
	failed    atomic.Uint64
	wg        sync.WaitGroup
	startOnce sync.Once
	closeOnce sync.Once
}

func New(pusher Pusher, cfg *config.LoggingConfig, logger *slog.Logger) *Logger {
	return &Logger{
		pusher: pusher,
		cfg:    cfg,
		logger: logger,
	}
}

func (l *Logger) Start(ctx context.Context) {
	if !l.cfg.Enabled {
		l.logger.Info("remote logging disabled")
		return
	}
	if l.cfg.URL == "" {
		l.logger.Info("remote logging disabled, LOGGING_URL not set")
		return
	}

	l.startOnce.Do(func() {
		workers := max(l.cfg.Workers, 1)
		l.queue = make(chan []byte, max(l.cfg.BufferSize, 0))

		// shipping outlives ctx so Close can drain what is queued
		base := context.WithoutCancel(ctx)
		for range workers {
			l.wg.Add(1)
			go l.worker(base)
		}

		l.mu.Lock()
		l.running = true
		l.mu.Unlock()

		l.logger.Info("remote logger started",
			slog.Int("workers", workers),
			slog.Int("buffer_size", cap(l.queue)))
	})
}

// Close stops accepting queued records and waits for the queue to drain.
func (l *Logger) Close() {
	l.closeOnce.Do(func() {
		l.mu.Lock()
		wasRunning := l.running
		l.running = false
		if wasRunning {
			close(l.queue)
		}
		l.mu.Unlock()

		l.wg.Wait()
		if wasRunning {
			l.logger.Info("remote logger stopped",
				slog.Uint64("dropped", l.dropped.Load()),
				slog.Uint64("failed", l.failed.Load()))
		}
	})
}

// Dropped reports records discarded because the queue was full.
func (l *Logger) Dropped() uint64 {
	return l.dropped.Load()
}

// Failed reports records the sink did not accept.
func (l *Logger) Failed() uint64 {
	return l.failed.Load()
}

func (l *Logger) LogHTTP(e HTTPEntry) {
	l.log(LevelFor(e.StatusCode), TypeHTTP, httpPayload{
		Authorized: e.Authorized,
		Path:       e.Path,
		Method:     e.Method,
		StatusCode: e.StatusCode,
		IP:         e.IP,
		RequestID:  e.RequestID,
		Req:        string(e.ReqBody),
		Res:        string(e.ResBody),
	})
}

func (l *Logger) LogDB(query string) {
	l.log(LevelInfo, TypeDB, dbPayload{Query: query})
}

func (l *Logger) LogError(message string) {
	l.log(LevelError, TypeError, errorPayload{Message: message, StatusCode: 500})
}

func (l *Logger) log(level, typ string, payload any) {
	if !l.cfg.Enabled || l.cfg.URL == "" {
		return
	}

	body, err := l.build(level, typ, payload)
	if err != nil {
		l.logger.Error("failed to encode log record",
			slog.String("type", typ),
			slog.String("error", err.Error()))
		return
	}

	l.mu.RLock()
	if l.running {
		select {
		case l.queue <- body:
		default:
			l.dropped.Add(1)
			l.logger.Warn("log queue full, dropping record",
				slog.String("type", typ),
				slog.Uint64("dropped", l.dropped.Load()))
		}
		l.mu.RUnlock()
		return
	}
	l.mu.RUnlock()

	l.ship(context.Background(), body)
}

func (l *Logger) build(level, typ string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(PushRequest{Streams: []Stream{{
		Stream: Labels{Component: l.cfg.Source, Level: level, Type: typ},
		Values: [][2]string{{
			strconv.FormatInt(time.Now().UnixNano(), 10),
			Redact(string(data)),
		}},
	}}})
}

func (l *Logger) worker(ctx context.Context) {
	defer l.wg.Done()
	for body := range l.queue {
		l.ship(ctx, body)
	}
}

func (l *Logger) ship(ctx context.Context, body []byte) {
	if l.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.cfg.Timeout)
		defer cancel()
	}

	if err := l.pusher.Push(ctx, body); err != nil {
		l.failed.Add(1)
		l.logger.Warn("failed to ship log record", slog.String("error", err.Error()))
	}
}
