package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Logger returns middleware that emits one structured log line per request,
// tagged with the request id and the authenticated subject. Probe endpoints
// are logged at debug level so health checks and metric scrapes do not
// drown out patient traffic.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)

			rid, _ := c.Get("request_id").(string)
			subject, _ := c.Get("auth_subject").(string)

			var evt *zerolog.Event
			switch {
			case err != nil:
				evt = logger.Error().Err(err)
			case req.URL.Path == "/health" || req.URL.Path == "/metrics":
				evt = logger.Debug()
			default:
				evt = logger.Info()
			}

			evt.
				Str("request_id", rid).
				Str("subject", subject).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Msg("request")

			return err
		}
	}
}
