package observability

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/benz9527/xsortedlist/lib/infra"
)

const envMetricsPrefix = "XSORTEDLIST_METRICS"

type metricsExporterType string

const (
	NoneExporter       metricsExporterType = "none"
	ConsoleExporter    metricsExporterType = "console"
	PrometheusExporter metricsExporterType = "prometheus"
)

// MetricsConfig is loaded from the XSORTEDLIST_METRICS_* environment variables.
type MetricsConfig struct {
	Exporter string        `envconfig:"EXPORTER" default:"none"`
	Interval time.Duration `envconfig:"INTERVAL" default:"10s"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"5s"`
	Runtime  bool          `envconfig:"RUNTIME" default:"false"`
}

func LoadMetricsConfig() (*MetricsConfig, error) {
	cfg := &MetricsConfig{}
	if err := envconfig.Process(envMetricsPrefix, cfg); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[observability] load metrics config from env")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *MetricsConfig) exporterType() metricsExporterType {
	typ := metricsExporterType(strings.ToLower(strings.TrimSpace(cfg.Exporter)))
	if typ == "" {
		return NoneExporter
	}
	return typ
}

func (cfg *MetricsConfig) validate() error {
	switch cfg.exporterType() {
	case NoneExporter, PrometheusExporter:
	case ConsoleExporter:
		if cfg.Interval <= 0 || cfg.Timeout <= 0 {
			return infra.NewErrorStack("[observability] console exporter requires positive interval and timeout")
		}
	default:
		return infra.NewErrorStack("[observability] unknown metrics exporter " + cfg.Exporter)
	}
	return nil
}
