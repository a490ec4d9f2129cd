package observability

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/benz9527/xsortedlist/xlog"
)

// Module installs the metrics exporter described by the environment and
// shuts it down when the application stops. It requires an xlog.XLogger.
var Module = fx.Module("observability",
	fx.Provide(LoadMetricsConfig),
	fx.Invoke(registerMetricsExporter),
)

func registerMetricsExporter(lc fx.Lifecycle, cfg *MetricsConfig, logger xlog.XLogger) error {
	shutdown, err := InitMetricsExporter(cfg)
	if err != nil {
		logger.ErrorStack(err, "metrics exporter init failed", zap.String("exporter", cfg.Exporter))
		return err
	}
	logger.Info("metrics exporter installed",
		zap.String("exporter", string(cfg.exporterType())),
		zap.Bool("runtime", cfg.Runtime),
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := shutdown(ctx); err != nil {
				logger.ErrorStack(err, "metrics exporter shutdown failed")
				return err
			}
			return nil
		},
	})
	return nil
}
