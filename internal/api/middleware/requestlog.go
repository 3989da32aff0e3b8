package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// RequestLog returns Echo middleware that logs requests with structured
// fields. It generates a request ID if none is provided and propagates it
// through the response header and echo context.
//
// Health probe paths are special-cased: consecutive successful probes are
// logged once and then suppressed so scrapers don't flood the log, while
// probe failures are always logged at warn level.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var mu sync.Mutex
	probeOK := make(map[string]bool)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status
			fields := []any{
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}

			if isProbePath(path) {
				failed := status >= 400

				mu.Lock()
				wasOK := probeOK[path]
				probeOK[path] = !failed
				mu.Unlock()

				switch {
				case failed:
					log.Warn("request", fields...)
				case !wasOK:
					log.Info("request", fields...)
				}
				return err
			}

			log.Info("request", fields...)
			return err
		}
	}
}

func isProbePath(path string) bool {
	return path == "/healthz" || path == "/readyz"
}
