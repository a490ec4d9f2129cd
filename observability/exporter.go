package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"context"
	"time"

	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/multierr"

	"github.com/benz9527/xsortedlist/lib/infra"
)

func noopShutdown(context.Context) error { return nil }

// InitMetricsExporter installs the configured exporter as the global meter
// provider. The returned callback flushes and shuts it down.
func InitMetricsExporter(cfg *MetricsConfig) (func(ctx context.Context) error, error) {
	if cfg == nil {
		return nil, infra.NewErrorStack("[observability] nil metrics config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var (
		mp  *metric.MeterProvider
		err error
	)
	switch cfg.exporterType() {
	case ConsoleExporter:
		mp, err = newConsoleMetricsExporter(cfg.Interval, cfg.Timeout)
	case PrometheusExporter:
		mp, err = newPrometheusMetricsExporter()
	default:
		return noopShutdown, nil
	}
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[observability] init metrics exporter")
	}
	otel.SetMeterProvider(mp)

	if cfg.Runtime {
		if err = otelruntime.Start(otelruntime.WithMeterProvider(mp)); err != nil {
			return nil, multierr.Combine(
				infra.WrapErrorStackWithMessage(err, "[observability] start runtime metrics"),
				mp.Shutdown(context.Background()),
			)
		}
	}
	return func(ctx context.Context) error {
		return multierr.Combine(mp.ForceFlush(ctx), mp.Shutdown(ctx))
	}, nil
}

// Serves for test/dev environment.
func newConsoleMetricsExporter(interval, timeout time.Duration, opts ...stdoutmetric.Option) (*metric.MeterProvider, error) {
	exporter, err := stdoutmetric.New(opts...)
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(
		exporter,
		metric.WithInterval(interval),
		metric.WithTimeout(timeout),
	)))
	return mp, nil
}

// Serves for the product environment and fetch stats metrics by HTTP.
func newPrometheusMetricsExporter() (*metric.MeterProvider, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(exporter))
	return mp, nil
}
