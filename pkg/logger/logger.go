package logger

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// Logger is the logging interface used across the tool. It is satisfied by go.uber.org/zap.SugaredLogger.
//
// Loggers should be injected through command configs rather than created ad hoc.
//
// Levels
//   - Error: the fetch failed and the invocation will exit non-zero.
//   - Warn: something looks off in the API response but the artifacts can still be written.
//   - Info: high level progress. Example: fetching proposal, wrote artifact.
//   - Debug: request and response details useful when the API misbehaves.
//
// Tests should use a [Test] logger, with [NewWithLevel] reserved for the runtime.
type Logger interface {
	// Name returns the fully qualified name of the logger.
	Name() string

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)

	Debugf(format string, values ...any)
	Infof(format string, values ...any)
	Warnf(format string, values ...any)
	Errorf(format string, values ...any)

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	// Named returns a child logger with name appended to the logger name.
	Named(name string) Logger

	// Sync flushes any buffered log entries.
	Sync() error
}

// Config configures a runtime Logger.
type Config struct {
	Level zapcore.Level
}

// NewWithLevel parses a textual level ("debug", "info", ...) and returns a runtime Logger for it.
func NewWithLevel(level string) (Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := Config{Level: lvl}

	return cfg.New()
}

// New returns a new Logger for Config. Output goes to stderr so stdout only carries command output.
func (c *Config) New() (Logger, error) {
	return NewWith(func(cfg *zap.Config) {
		cfg.Level.SetLevel(c.Level)
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	})
}

// NewWith returns a new Logger from a modified [zap.Config].
func NewWith(cfgFn func(*zap.Config)) (Logger, error) {
	cfg := zap.NewProductionConfig()
	cfgFn(&cfg)
	core, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &logger{core.Sugar()}, nil
}

// Test returns a new test Logger for tb.
func Test(tb testing.TB) Logger {
	tb.Helper()
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000000")
	lggr := zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(cfg),
			zaptest.NewTestingWriter(tb),
			zapcore.DebugLevel,
		),
	)

	return &logger{lggr.Sugar()}
}

// TestObserved returns a new test Logger for tb and ObservedLogs at the given Level.
func TestObserved(tb testing.TB, lvl zapcore.Level) (Logger, *observer.ObservedLogs) {
	tb.Helper()
	oCore, logs := observer.New(lvl)
	observe := zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, oCore)
	})
	sl := zaptest.NewLogger(tb, zaptest.WrapOptions(observe, zap.AddCaller())).Sugar()

	return &logger{sl}, logs
}

// Nop returns a no-op Logger.
func Nop() Logger {
	return &logger{zap.New(zapcore.NewNopCore()).Sugar()}
}

type logger struct {
	*zap.SugaredLogger
}

func (l *logger) Name() string {
	return l.Desugar().Name()
}

func (l *logger) Named(name string) Logger {
	return &logger{l.SugaredLogger.Named(name)}
}
