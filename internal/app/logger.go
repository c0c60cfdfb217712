package app

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zapio"
)

func NewLogger(env string) *zap.Logger {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.OutputPaths = []string{"stdout"}

	logger, err := config.Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}

	return logger
}

// AccessLogWriter пишет построчный access log HTTP сервера в zap
func AccessLogWriter(logger *zap.Logger) io.WriteCloser {
	return &zapio.Writer{
		Log:   logger.Named("http.access"),
		Level: zapcore.InfoLevel,
	}
}
