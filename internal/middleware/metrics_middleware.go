package middleware

import (
	"strconv"
	"time"

	"backoffice/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records request count and latency per route. Uses the route
// pattern (c.Path), not the raw URL, to keep label cardinality bounded.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			metrics.RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			metrics.RequestsTotal.WithLabelValues(method, path, status).Inc()

			return err
		}
	}
}
