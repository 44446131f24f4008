package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig ...
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

func (c LogConfig) zapConfig() zap.Config {
	var conf zap.Config
	if c.Format == "console" {
		conf = zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		conf = zap.NewProductionConfig()
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	conf.Level = zap.NewAtomicLevelAt(level)
	return conf
}

// NewLogger ...
func NewLogger(c LogConfig) *zap.Logger {
	logger, err := c.zapConfig().Build()
	if err != nil {
		panic(err)
	}
	return logger
}
