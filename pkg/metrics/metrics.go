package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SubmissionsTotal counts pipeline outcomes: accepted, bot, rate_limited,
	// error.
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vivwell_submissions_total",
		Help: "Lead submissions by pipeline outcome",
	}, []string{"outcome"})

	// WebhookEventsTotal counts inbound provider webhook events.
	WebhookEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vivwell_webhook_events_total",
		Help: "Inbound webhook events by provider and type",
	}, []string{"provider", "event"})

	// NotificationFailuresTotal counts failed outbound notification deliveries.
	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vivwell_notification_failures_total",
		Help: "Failed outbound notification deliveries",
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vivwell_http_requests_total",
		Help: "HTTP requests by method, path and status",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vivwell_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// Middleware records request counts and latency per route.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			httpRequestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
