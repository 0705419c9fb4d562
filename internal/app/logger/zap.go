package logger

import (
	"fmt"

	"github.com/kisaanstar/console/internal/app/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Initialize installs the global logger. The binary is a report driver run
// from a terminal, so logs use a human-readable console encoding on stderr
// and stay out of the way of anything piped from stdout.
func Initialize(config config.Config) error {
	level, err := zap.ParseAtomicLevel(config.LogLevel)
	if err != nil {
		return fmt.Errorf("error while setting atomic level to zap logger")
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = level
	zapConfig.Encoding = "console"
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	log, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("error while building zap logger")
	}

	zap.ReplaceGlobals(log)

	return nil
}
