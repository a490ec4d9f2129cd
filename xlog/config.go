package xlog

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/benz9527/xsortedlist/lib/infra"
)

const envLogLevel = "XLOG_LVL"

// Config is loaded from the environment.
type Config struct {
	Level   string `envconfig:"XLOG_LVL" default:"DEBUG"`
	Encoder string `envconfig:"XLOG_ENCODER" default:"json"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[XLogger] load config from env")
	}
	return cfg, nil
}

// Options converts the config into logger options.
func (cfg *Config) Options() ([]XLoggerOption, error) {
	if cfg == nil {
		return nil, infra.NewErrorStack("[XLogger] nil config")
	}
	enc := parseLogEncoder(cfg.Encoder)
	if enc == _encMax {
		return nil, infra.NewErrorStack("[XLogger] unknown encoder " + cfg.Encoder)
	}
	return []XLoggerOption{
		WithXLoggerLevel(parseLogLevel(cfg.Level)),
		WithXLoggerEncoder(enc),
	}, nil
}

// NewXLoggerFromEnv builds a stdout logger configured by XLOG_LVL and XLOG_ENCODER.
func NewXLoggerFromEnv(extra ...XLoggerOption) (XLogger, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return NewXLogger(append(opts, extra...)...), nil
}
