package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/cs329-classwork/jwt-pizza-service/internal/config"
)

const (
	bypassHeader      = "X-Rate-Limit-Bypass"
	retryAfterSeconds = 1
)

type tooManyRequests struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after"`
}

// RateLimit applies a per client IP token bucket. Health checks and callers
// presenting the bypass secret are never limited.
func RateLimit(cfg *config.RateLimitConfig, logger *slog.Logger) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     cfg.Burst,
			ExpiresIn: time.Duration(cfg.ExpireMinutes) * time.Minute,
		},
	)

	secret := []byte(cfg.BypassSecret)
	bypass := func(c echo.Context) bool {
		if c.Request().URL.Path == "/api/health" {
			return true
		}
		if len(secret) == 0 {
			return false
		}
		provided := c.Request().Header.Get(bypassHeader)
		return subtle.ConstantTimeCompare([]byte(provided), secret) == 1
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store:   store,
		Skipper: bypass,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, _ error) error {
			logger.Warn("rate limit exceeded",
				slog.String("ip", identifier),
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path))
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
			return c.JSON(http.StatusTooManyRequests, tooManyRequests{
				Error:      "too many requests",
				RetryAfter: retryAfterSeconds,
			})
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Error("failed to identify client for rate limiting", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		},
	})
}
