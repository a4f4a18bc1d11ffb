package logger

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/huynhanx03/go-linear/pkg/settings"
)

// New builds a console logger at the configured level. When FileLogName is
// set, output goes to a rotating file instead of stderr.
func New(conf settings.Logger) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(conf.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "parse log level %q", conf.LogLevel)
	}

	encConf := zap.NewProductionEncoderConfig()
	encConf.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encConf)

	core := zapcore.NewCore(encoder, sink(conf), level)
	return zap.New(core), nil
}

func sink(conf settings.Logger) zapcore.WriteSyncer {
	if conf.FileLogName == "" {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   conf.FileLogName,
		MaxSize:    conf.MaxSize,
		MaxBackups: conf.MaxBackups,
		MaxAge:     conf.MaxAge,
		Compress:   conf.Compress,
	})
}
