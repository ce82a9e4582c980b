package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestID tags each request with an id from gen, unless the client already
// sent an X-Request-Id header. The id is echoed on the response.
func RequestID(gen IDGenerator) echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: gen.Next,
	})
}
