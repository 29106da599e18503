package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pobuilder/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// HTTPMetricsConfig holds configuration for HTTP metrics middleware.
type HTTPMetricsConfig struct {
	// MeterProvider is the OpenTelemetry meter provider.
	MeterProvider *telemetry.MeterProvider
	// Enabled controls whether metrics collection is active.
	Enabled bool
	// Logger reports instrument setup failures. Optional.
	Logger *zap.Logger
}

var (
	requestTotalInstrument = telemetry.Instrument{
		Name:        "http_server_request_total",
		Description: "Total number of HTTP requests",
		Unit:        "{request}",
	}
	requestDurationInstrument = telemetry.Instrument{
		Name:        "http_server_request_duration_seconds",
		Description: "HTTP request latency distribution in seconds",
		Unit:        "s",
		Buckets:     telemetry.HTTPDurationBuckets,
	}
	requestSizeInstrument = telemetry.Instrument{
		Name:        "http_server_request_size_bytes",
		Description: "HTTP request body size distribution in bytes",
		Unit:        "By",
		// edit payloads are small; the body limit caps the top
		Buckets: []float64{64, 128, 256, 512, 1024, 4096, 16384, 65536, 1 << 20},
	}
	activeRequestsInstrument = telemetry.Instrument{
		Name:        "http_server_active_requests",
		Description: "Number of currently active HTTP requests",
		Unit:        "{request}",
	}
)

type httpMetrics struct {
	requestTotal    metric.Int64Counter
	requestDuration metric.Float64Histogram
	requestSize     metric.Float64Histogram
	activeRequests  metric.Int64UpDownCounter
}

func newHTTPMetrics(meter metric.Meter) (*httpMetrics, error) {
	in := telemetry.NewInstruments(meter)
	m := &httpMetrics{
		requestTotal:    in.Counter(requestTotalInstrument),
		requestDuration: in.Histogram(requestDurationInstrument),
		requestSize:     in.Histogram(requestSizeInstrument),
		activeRequests:  in.UpDownCounter(activeRequestsInstrument),
	}
	if err := in.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// HTTPMetrics returns a Gin middleware that collects HTTP metrics:
// request count by method, route and status, latency and request size by
// method and route, and the number of requests in flight.
func HTTPMetrics(cfg HTTPMetricsConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.MeterProvider == nil || !cfg.MeterProvider.Enabled() {
		return passThrough
	}
	return HTTPMetricsWithMeter(cfg.MeterProvider.Meter("http.server"), cfg.Logger)
}

// HTTPMetricsWithMeter returns HTTP metrics middleware recording on meter.
func HTTPMetricsWithMeter(meter metric.Meter, logger *zap.Logger) gin.HandlerFunc {
	metrics, err := newHTTPMetrics(meter)
	if err != nil {
		if logger != nil {
			logger.Warn("HTTP metrics disabled", zap.Error(err))
		}
		return passThrough
	}
	return httpMetricsMiddleware(metrics)
}

func passThrough(c *gin.Context) {
	c.Next()
}

// httpMetricsMiddleware is the core middleware logic.
func httpMetricsMiddleware(metrics *httpMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		start := time.Now()
		requestSize := c.Request.ContentLength

		metrics.activeRequests.Add(ctx, 1)
		c.Next()
		metrics.activeRequests.Add(ctx, -1)

		recordHTTPMetrics(ctx, metrics, c.Request.Method, getRoutePattern(c), c.Writer.Status(), time.Since(start), requestSize)
	}
}

// getRoutePattern returns the matched route (e.g. "/api/v1/orders/:session_id")
// so that session and item ids do not become label values.
func getRoutePattern(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unknown"
}

// recordHTTPMetrics records all HTTP metrics for a request.
func recordHTTPMetrics(
	ctx context.Context,
	metrics *httpMetrics,
	method, route string,
	statusCode int,
	duration time.Duration,
	requestSize int64,
) {
	methodAttr := telemetry.AttrHTTPMethod.String(method)
	routeAttr := telemetry.AttrHTTPRoute.String(route)
	routeAttrs := metric.WithAttributes(methodAttr, routeAttr)

	metrics.requestTotal.Add(ctx, 1, metric.WithAttributes(
		methodAttr, routeAttr, telemetry.AttrHTTPStatusCode.Int(statusCode),
	))
	metrics.requestDuration.Record(ctx, duration.Seconds(), routeAttrs)

	if requestSize > 0 {
		metrics.requestSize.Record(ctx, float64(requestSize), routeAttrs)
	}
}
