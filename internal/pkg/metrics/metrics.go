package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "faregate",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "faregate",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "path"})

	// Fare metrics
	TicketsSold = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "faregate",
		Subsystem: "fare",
		Name:      "tickets_sold_total",
		Help:      "Tickets sold, by destination and ticket type",
	}, []string{"station", "type"})

	TakingsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "faregate",
		Subsystem: "fare",
		Name:      "takings_total",
		Help:      "Cumulative revenue of completed purchases",
	})

	RefundsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "faregate",
		Subsystem: "fare",
		Name:      "refunds_total",
		Help:      "Refunds issued (zero-credit refunds excluded)",
	})

	InsufficientFunds = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "faregate",
		Subsystem: "fare",
		Name:      "insufficient_funds_total",
		Help:      "Purchases rejected because the credit did not cover the price",
	})

	OffersConfigured = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "faregate",
		Subsystem: "fare",
		Name:      "offers_configured",
		Help:      "Special offers currently in the registry, active or not",
	})
)

// Middleware records request metrics.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		method := c.Method()

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(duration)

		return err
	}
}

// Handler returns a Fiber handler serving the Prometheus /metrics endpoint.
func Handler() fiber.Handler {
	handler := promhttp.Handler()
	return func(c *fiber.Ctx) error {
		fasthttpadaptor.NewFastHTTPHandler(handler)(c.Context())
		return nil
	}
}
