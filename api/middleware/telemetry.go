package api_middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of http requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests.",
		},
		[]string{"method", "path"},
	)
)

// Telemetry records request counts and latencies per route. The path
// label is the route template, not the raw URL, to keep cardinality
// bounded.
func Telemetry() echo.MiddlewareFunc {
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

			httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			httpRequestsTotal.WithLabelValues(method, path, status).Inc()

			return err
		}
	}
}
