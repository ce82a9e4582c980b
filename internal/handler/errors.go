package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// statusError is a failure the client sees as code and message. It is
// reported to the remote log like any other error that reaches ErrorHandler.
func statusError(code int, message string, err error) error {
	return echo.NewHTTPError(code, message).SetInternal(err)
}

func internalError(message string, err error) error {
	return statusError(http.StatusInternalServerError, message, err)
}

// ErrorHandler renders returned errors as {"error": ...} and reports them
// through remote. Router misses (unknown path or method) are rendered but not
// reported. A response that is already committed is left alone, so an error
// handled once is never logged twice.
func ErrorHandler(remote ErrorLogger, logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		report := err.Error()

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
			report = message
			if he.Internal != nil {
				report = fmt.Sprintf("%s: %v", message, he.Internal)
			}
		}

		if !errors.Is(err, echo.ErrNotFound) && !errors.Is(err, echo.ErrMethodNotAllowed) {
			remote.LogError(report)

			level := slog.LevelWarn
			if code >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(c.Request().Context(), level, "request failed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", code),
				slog.String("error", report))
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(code)
		} else {
			werr = c.JSON(code, map[string]string{"error": message})
		}
		if werr != nil {
			logger.Error("failed to write error response", slog.String("error", werr.Error()))
		}
	}
}
