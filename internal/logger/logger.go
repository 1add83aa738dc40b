package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"address-book/internal/config"
)

// Stderr - значение logger.file для вывода в stderr
const Stderr = "-"

// New собирает zap логгер по настройкам. Логи пишутся в файл, чтобы не смешиваться с диалогом в консоли.
// os.DevNull отключает логирование.
func New(cfg *config.ConfigLogger) (*zap.Logger, error) {
	if cfg == nil || cfg.File == os.DevNull {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logger level: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Sampling = nil

	switch cfg.Format {
	case "", "json":
		zc.Encoding = "json"
	case "console":
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	default:
		return nil, fmt.Errorf("logger format %q: expected json or console", cfg.Format)
	}

	output := cfg.File
	if output == "" || output == Stderr {
		output = "stderr"
	}
	zc.OutputPaths = []string{output}
	zc.ErrorOutputPaths = []string{"stderr"}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("zc.Build: %w", err)
	}

	return l, nil
}
