package logging_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cs329-classwork/jwt-pizza-service/internal/config"
	"github.com/cs329-classwork/jwt-pizza-service/internal/logging"
	"github.com/cs329-classwork/jwt-pizza-service/internal/logging/mocks"
)

func testConfig() *config.LoggingConfig {
	return &config.LoggingConfig{
		Enabled:    true,
		URL:        "https://logs.example.com/loki/api/v1/push",
		Source:     "jwt-pizza-service-test",
		Timeout:    time.Second,
		Workers:    2,
		BufferSize: 16,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type record struct {
	labels  logging.Labels
	ts      string
	payload map[string]any
	raw     string
}

func decode(t *testing.T, body []byte) record {
	t.Helper()

	var req logging.PushRequest
	require.NoError(t, json.Unmarshal(body, &req))
	require.Len(t, req.Streams, 1)
	require.Len(t, req.Streams[0].Values, 1)

	v := req.Streams[0].Values[0]
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(v[1]), &payload))

	return record{labels: req.Streams[0].Stream, ts: v[0], payload: payload, raw: v[1]}
}

func capture(t *testing.T) (*mocks.MockPusher, func() [][]byte) {
	t.Helper()

	var (
		mu     sync.Mutex
		bodies [][]byte
	)
	p := mocks.NewMockPusher(t)
	p.EXPECT().Push(mock.Anything, mock.Anything).
		Run(func(_ context.Context, b []byte) {
			mu.Lock()
			bodies = append(bodies, b)
			mu.Unlock()
		}).Return(nil).Maybe()

	return p, func() [][]byte {
		mu.Lock()
		defer mu.Unlock()
		return append([][]byte(nil), bodies...)
	}
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, "error", logging.LevelFor(503))
	assert.Equal(t, "error", logging.LevelFor(500))
	assert.Equal(t, "warn", logging.LevelFor(404))
	assert.Equal(t, "warn", logging.LevelFor(400))
	assert.Equal(t, "info", logging.LevelFor(200))
	assert.Equal(t, "info", logging.LevelFor(302))
}

func TestLogHTTP_InlineRecord(t *testing.T) {
	p, bodies := capture(t)
	l := logging.New(p, testConfig(), discardLogger())

	before := time.Now().UnixNano()
	l.LogHTTP(logging.HTTPEntry{
		Authorized: true,
		Path:       "/api/auth",
		Method:     "PUT",
		StatusCode: 404,
		IP:         "10.0.0.7",
		RequestID:  "Uk3a",
		ReqBody:    []byte(`{"email":"d@jwt.com","password":"secret123"}`),
		ResBody:    []byte(`{"message":"unknown user"}`),
	})

	got := bodies()
	require.Len(t, got, 1)
	assert.NotContains(t, string(got[0]), "secret123")

	rec := decode(t, got[0])
	assert.Equal(t, logging.Labels{Component: "jwt-pizza-service-test", Level: "warn", Type: "http"}, rec.labels)

	ts, err := strconv.ParseInt(rec.ts, 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ts, before)

	assert.Equal(t, true, rec.payload["authorized"])
	assert.Equal(t, "/api/auth", rec.payload["path"])
	assert.Equal(t, "PUT", rec.payload["method"])
	assert.Equal(t, 404.0, rec.payload["statusCode"])
	assert.Equal(t, "10.0.0.7", rec.payload["ip"])
	assert.Equal(t, "Uk3a", rec.payload["reqId"])
	assert.Equal(t, `{"email":"d@jwt.com","password":"*****"}`, rec.payload["req"])
	assert.Equal(t, `{"message":"unknown user"}`, rec.payload["res"])
	assert.Contains(t, rec.raw, logging.Mask)
}

func TestLogHTTP_FormBodyRedacted(t *testing.T) {
	p, bodies := capture(t)
	l := logging.New(p, testConfig(), discardLogger())

	l.LogHTTP(logging.HTTPEntry{Method: "POST", Path: "/api/auth", StatusCode: 200, ReqBody: []byte("password=secret123")})

	got := bodies()
	require.Len(t, got, 1)
	assert.NotContains(t, string(got[0]), "secret123")

	rec := decode(t, got[0])
	assert.Equal(t, "info", rec.labels.Level)
	assert.Equal(t, "password="+logging.Mask, rec.payload["req"])
}

func TestLogDB(t *testing.T) {
	p, bodies := capture(t)
	l := logging.New(p, testConfig(), discardLogger())

	l.LogDB("SELECT id, name FROM menu")

	got := bodies()
	require.Len(t, got, 1)
	rec := decode(t, got[0])
	assert.Equal(t, "db", rec.labels.Type)
	assert.Equal(t, "info", rec.labels.Level)
	assert.Equal(t, map[string]any{"query": "SELECT id, name FROM menu"}, rec.payload)
}

func TestLogError(t *testing.T) {
	p, bodies := capture(t)
	l := logging.New(p, testConfig(), discardLogger())

	l.LogError("factory unavailable")

	got := bodies()
	require.Len(t, got, 1)
	rec := decode(t, got[0])
	assert.Equal(t, "unhandledError", rec.labels.Type)
	assert.Equal(t, "error", rec.labels.Level)
	assert.Equal(t, map[string]any{"message": "factory unavailable", "statusCode": 500.0}, rec.payload)
}

func TestLogger_Disabled(t *testing.T) {
	disabled := testConfig()
	disabled.Enabled = false
	noURL := testConfig()
	noURL.URL = ""

	for _, cfg := range []*config.LoggingConfig{disabled, noURL} {
		p := mocks.NewMockPusher(t)

		l := logging.New(p, cfg, discardLogger())
		l.Start(context.Background())
		l.LogDB("SELECT 1")
		l.LogError("boom")
		l.Close()

		p.AssertNotCalled(t, "Push", mock.Anything, mock.Anything)
	}
}

func TestLogger_NoURLSkipsInlineShipping(t *testing.T) {
	p := mocks.NewMockPusher(t)
	cfg := testConfig()
	cfg.URL = ""

	l := logging.New(p, cfg, discardLogger())
	l.LogHTTP(logging.HTTPEntry{Path: "/api/order", Method: "POST", StatusCode: 200})

	p.AssertNotCalled(t, "Push", mock.Anything, mock.Anything)
	assert.Zero(t, l.Failed())
}

func TestLogger_PushFailureIsSwallowed(t *testing.T) {
	p := mocks.NewMockPusher(t)
	p.EXPECT().Push(mock.Anything, mock.Anything).Return(errors.New("sink unreachable")).Twice()

	l := logging.New(p, testConfig(), discardLogger())

	assert.NotPanics(t, func() {
		l.LogDB("SELECT 1")
		l.LogError("boom")
	})
	assert.Equal(t, uint64(2), l.Failed())
}

func TestLogger_AsyncDrainsOnClose(t *testing.T) {
	p, bodies := capture(t)
	l := logging.New(p, testConfig(), discardLogger())
	l.Start(context.Background())

	for i := range 10 {
		l.LogDB("SELECT " + strconv.Itoa(i))
	}
	l.Close()
	l.Close()

	assert.Len(t, bodies(), 10)
	assert.Zero(t, l.Dropped())
}

func TestLogger_AsyncDoesNotBlockCaller(t *testing.T) {
	release := make(chan struct{})
	p := mocks.NewMockPusher(t)
	p.EXPECT().Push(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, []byte) error {
			<-release
			return nil
		})

	cfg := testConfig()
	cfg.Workers = 1
	cfg.BufferSize = 1

	l := logging.New(p, cfg, discardLogger())
	l.Start(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for l.Dropped() == 0 {
			l.LogDB("SELECT 1")
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("logging blocked on a stalled sink")
	}

	close(release)
	l.Close()
	assert.Positive(t, l.Dropped())
}

func TestLogger_ShipsAfterCancelledStartContext(t *testing.T) {
	var ctxErr error
	p := mocks.NewMockPusher(t)
	p.EXPECT().Push(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ []byte) { ctxErr = ctx.Err() }).
		Return(nil).Once()

	l := logging.New(p, testConfig(), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	l.Start(ctx)
	cancel()

	l.LogError("late failure")
	l.Close()

	assert.NoError(t, ctxErr)
}
