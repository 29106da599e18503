// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

const (
	// DefaultExportInterval is used when MetricsConfig.ExportInterval is zero
	DefaultExportInterval = time.Minute

	meterShutdownTimeout = 10 * time.Second
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled           bool
	CollectorEndpoint string
	ExportInterval    time.Duration
	ServiceName       string
	Insecure          bool
}

func (c MetricsConfig) exportInterval() time.Duration {
	if c.ExportInterval > 0 {
		return c.ExportInterval
	}
	return DefaultExportInterval
}

// MeterProvider owns the SDK meter provider while metrics export is on.
// With export off, meters come from the global provider, which is a no-op
// unless something else installed one.
type MeterProvider struct {
	sdk    *sdkmetric.MeterProvider
	logger *zap.Logger
}

// NewMeterProvider starts periodic OTLP export of every instrument created
// through the returned provider.
func NewMeterProvider(ctx context.Context, cfg MetricsConfig, logger *zap.Logger) (*MeterProvider, error) {
	mp := &MeterProvider{logger: logger}
	if !cfg.Enabled {
		logger.Info("Metrics export disabled")
		return mp, nil
	}

	reader, err := newPeriodicReader(ctx, cfg)
	if err != nil {
		return nil, err
	}
	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	mp.sdk = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)
	otel.SetMeterProvider(mp.sdk)

	logger.Info("Metrics export enabled",
		zap.String("collector_endpoint", cfg.CollectorEndpoint),
		zap.Duration("export_interval", cfg.exportInterval()),
		zap.String("service_name", cfg.ServiceName),
	)
	return mp, nil
}

func newPeriodicReader(ctx context.Context, cfg MetricsConfig) (sdkmetric.Reader, error) {
	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.CollectorEndpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create OTLP metric exporter: %w", err)
	}
	return sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.exportInterval())), nil
}

// Shutdown flushes pending data points and stops the exporter.
func (mp *MeterProvider) Shutdown(ctx context.Context) error {
	if mp.sdk == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, meterShutdownTimeout)
	defer cancel()

	if err := mp.sdk.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown meter provider: %w", err)
	}
	mp.logger.Info("Metrics export stopped")
	return nil
}

// Meter returns a named meter.
func (mp *MeterProvider) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	if mp.sdk == nil {
		return otel.GetMeterProvider().Meter(name, opts...)
	}
	return mp.sdk.Meter(name, opts...)
}

// Enabled reports whether data points are exported.
func (mp *MeterProvider) Enabled() bool {
	return mp.sdk != nil
}

// Instrument describes one instrument. Buckets only apply to histograms.
type Instrument struct {
	Name        string
	Description string
	Unit        string
	Buckets     []float64
}

// Instruments creates instruments on a single meter. After the first
// failure it hands out no-op instruments, so a group can be declared in a
// row and checked once with Err.
type Instruments struct {
	meter metric.Meter
	err   error
}

// NewInstruments returns an instrument factory for meter.
func NewInstruments(meter metric.Meter) *Instruments {
	return &Instruments{meter: meter}
}

// Err returns the first instrument creation error.
func (in *Instruments) Err() error {
	return in.err
}

// Counter creates a monotonic int64 counter.
func (in *Instruments) Counter(i Instrument) metric.Int64Counter {
	if in.err == nil {
		c, err := in.meter.Int64Counter(i.Name, metric.WithDescription(i.Description), metric.WithUnit(i.Unit))
		if err == nil {
			return c
		}
		in.fail(i, err)
	}
	return noop.Int64Counter{}
}

// UpDownCounter creates an int64 counter that may decrease.
func (in *Instruments) UpDownCounter(i Instrument) metric.Int64UpDownCounter {
	if in.err == nil {
		c, err := in.meter.Int64UpDownCounter(i.Name, metric.WithDescription(i.Description), metric.WithUnit(i.Unit))
		if err == nil {
			return c
		}
		in.fail(i, err)
	}
	return noop.Int64UpDownCounter{}
}

// Histogram creates a float64 histogram with the instrument's buckets.
func (in *Instruments) Histogram(i Instrument) metric.Float64Histogram {
	if in.err == nil {
		opts := []metric.Float64HistogramOption{
			metric.WithDescription(i.Description),
			metric.WithUnit(i.Unit),
		}
		if len(i.Buckets) > 0 {
			opts = append(opts, metric.WithExplicitBucketBoundaries(i.Buckets...))
		}
		h, err := in.meter.Float64Histogram(i.Name, opts...)
		if err == nil {
			return h
		}
		in.fail(i, err)
	}
	return noop.Float64Histogram{}
}

func (in *Instruments) fail(i Instrument, err error) {
	in.err = fmt.Errorf("create instrument %s: %w", i.Name, err)
}

// Metric attribute keys
var (
	AttrEvent    = attribute.Key("event")
	AttrAction   = attribute.Key("action")
	AttrCurrency = attribute.Key("currency")
	AttrOutcome  = attribute.Key("outcome")

	AttrHTTPMethod     = attribute.Key("http_method")
	AttrHTTPRoute      = attribute.Key("http_route")
	AttrHTTPStatusCode = attribute.Key("http_status_code")
)

// HTTPDurationBuckets are bucket boundaries in seconds for request latency.
var HTTPDurationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// LineCountBuckets are bucket boundaries for the number of line items on an order.
var LineCountBuckets = []float64{0, 1, 2, 5, 10, 20, 50, 100}
