package middleware

import (
	"cmp"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/cs329-classwork/jwt-pizza-service/internal/logging"
	"github.com/cs329-classwork/jwt-pizza-service/internal/metrics"
)

const (
	authPath  = "/api/auth"
	orderPath = "/api/order"

	startKey = "instrument.start"
)

// Operational endpoints are served without instrumentation so scrapes and
// profile downloads are neither counted nor shipped to the log sink.
var uninstrumentedPaths = []string{"/metrics", "/debug/pprof"}

var methodCounters = map[string]metrics.Counter{
	http.MethodGet:    metrics.RequestsGet,
	http.MethodPut:    metrics.RequestsPut,
	http.MethodPost:   metrics.RequestsPost,
	http.MethodDelete: metrics.RequestsDelete,
}

// Instrument counts every request on receipt and, once the response is
// final, records latency plus auth and order outcomes and emits one log
// entry. Completion runs inside echo's body dump, after any handler error
// has been rendered, so it sees the status and body sent to the client.
// Register it outside Recover.
func Instrument(recorder MetricsRecorder, logger HTTPLogger) echo.MiddlewareFunc {
	dump := middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
		Handler: func(c echo.Context, reqBody, resBody []byte) {
			complete(recorder, logger, c, reqBody, resBody)
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		dumped := dump(next)
		return func(c echo.Context) error {
			if uninstrumented(c.Request().URL.Path) {
				return next(c)
			}
			c.Set(startKey, time.Now())

			recorder.Inc(metrics.RequestsTotal)
			if counter, ok := methodCounters[c.Request().Method]; ok {
				recorder.Inc(counter)
			}

			return dumped(c)
		}
	}
}

func uninstrumented(path string) bool {
	for _, p := range uninstrumentedPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

func complete(recorder MetricsRecorder, logger HTTPLogger, c echo.Context, reqBody, resBody []byte) {
	var latency float64
	if start, ok := c.Get(startKey).(time.Time); ok {
		latency = float64(time.Since(start)) / float64(time.Millisecond)
	}

	req := c.Request()
	status := c.Response().Status
	recorder.Set(metrics.RequestLatency, latency)

	switch cmp.Or(strings.TrimSuffix(req.URL.Path, "/"), "/") {
	case authPath:
		recordAuth(recorder, req.Method, status)
	case orderPath:
		if req.Method == http.MethodPost {
			recordOrder(recorder, reqBody, status, latency)
		}
	}

	logger.LogHTTP(logging.HTTPEntry{
		Authorized: req.Header.Get(echo.HeaderAuthorization) != "",
		Path:       req.URL.Path,
		Method:     req.Method,
		StatusCode: status,
		IP:         c.RealIP(),
		RequestID:  c.Response().Header().Get(echo.HeaderXRequestID),
		ReqBody:    reqBody,
		ResBody:    resBody,
	})
}

func success(status int) bool {
	return status >= 200 && status < 300
}

// PUT is a login, POST a registration, DELETE a logout.
func recordAuth(recorder MetricsRecorder, method string, status int) {
	switch method {
	case http.MethodPut:
		recorder.Inc(metrics.LoginAttempts)
		if success(status) {
			recorder.Inc(metrics.LoginSuccess)
			recorder.IncGauge(metrics.ActiveUsers)
		} else {
			recorder.Inc(metrics.LoginFailure)
		}
	case http.MethodPost:
		if success(status) {
			recorder.IncGauge(metrics.ActiveUsers)
		}
	case http.MethodDelete:
		if success(status) {
			recorder.DecGauge(metrics.ActiveUsers)
		}
	}
}

func recordOrder(recorder MetricsRecorder, reqBody []byte, status int, latency float64) {
	recorder.Set(metrics.OrderLatency, latency)

	count, total := orderItems(reqBody)
	if success(status) {
		recorder.Add(metrics.PizzasSold, count)
		recorder.AddRevenue(total)
		return
	}
	recorder.Add(metrics.PizzasFailed, count)
}

type orderBody struct {
	Items []struct {
		Price float64 `json:"price"`
	} `json:"items"`
}

// orderItems reports zero items for a body that does not parse.
func orderItems(body []byte) (uint64, float64) {
	var o orderBody
	if err := json.Unmarshal(body, &o); err != nil {
		return 0, 0
	}

	var total float64
	for _, item := range o.Items {
		total += item.Price
	}
	return uint64(len(o.Items)), total
}
