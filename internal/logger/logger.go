// Package logger builds the zap logger used for svgstats diagnostics.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Name is attached to every entry.
const Name = "svgstats"

// New returns a console logger writing to w. Entries carry level, name,
// message and fields; timestamps are omitted since every run is a single
// short batch. Debug entries are dropped unless debug is set.
func New(w io.Writer, debug bool) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core).Named(Name)
}
