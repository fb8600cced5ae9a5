// Package logging builds the zap loggers used by the command line tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls log level and sinks.
type Config struct {
	Level         string // debug, info, warn, error
	File          string // Rotated log file prefix; empty disables the file sink
	Console       bool   // Also write to the console writer
	RotationHours int    // Hours between file rotations
	MaxAgeDays    int    // Days to keep rotated files
	ShowLine      bool   // Annotate entries with file:line
}

// DefaultConfig logs info and above to the console only.
func DefaultConfig() Config {
	return Config{
		Level:         "info",
		Console:       true,
		RotationHours: 24,
		MaxAgeDays:    7,
	}
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zap.DebugLevel, nil
	case "", "info":
		return zap.InfoLevel, nil
	case "warn", "warning":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       "time",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "line",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + level.CapitalString() + "]")
		},
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
		},
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

// New builds a named sugared logger writing console output to console.
//
// A nil console writer means os.Stderr.
func New(name string, cfg Config, console io.Writer) (*zap.SugaredLogger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var syncers []zapcore.WriteSyncer
	if cfg.Console {
		if console == nil {
			console = os.Stderr
		}
		syncers = append(syncers, zapcore.AddSync(console))
	}
	if cfg.File != "" {
		rotation := time.Duration(max(cfg.RotationHours, 1)) * time.Hour
		w, err := rotatelogs.New(
			cfg.File+".%Y%m%d%H",
			rotatelogs.WithLinkName(cfg.File),
			rotatelogs.WithRotationTime(rotation),
			rotatelogs.WithMaxAge(time.Duration(max(cfg.MaxAgeDays, 1))*24*time.Hour),
		)
		if err != nil {
			return nil, fmt.Errorf("open rotating log %s: %w", cfg.File, err)
		}
		syncers = append(syncers, zapcore.AddSync(w))
	}
	if len(syncers) == 0 {
		return zap.NewNop().Sugar(), nil
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.NewMultiWriteSyncer(syncers...),
		zap.NewAtomicLevelAt(level),
	)

	var opts []zap.Option
	if cfg.ShowLine {
		opts = append(opts, zap.AddCaller())
	}
	return zap.New(core, opts...).Named(name).Sugar(), nil
}
