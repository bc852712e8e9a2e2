// Package log wraps a zap SugaredLogger behind package-level helpers so the
// rest of the code base never touches zap directly.
package log

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugarLogger = zap.NewNop().Sugar()
var zapLogger = zap.NewNop()

// Init builds the process logger. Output goes to stderr so it never interleaves
// with the tables written to stdout; outputPath, when set, names a directory
// that also receives app.log.
func Init(level, format, outputPath string) error {
	var zapConfig zap.Config

	logLevel := zap.NewAtomicLevel()
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encoding := "json"
	if format == "console" {
		encoding = "console"
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	zapConfig.Level = logLevel
	zapConfig.Encoding = encoding
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	if outputPath != "" {
		if err := os.MkdirAll(outputPath, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		zapConfig.OutputPaths = append(zapConfig.OutputPaths, filepath.Join(outputPath, "app.log"))
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	zapLogger = logger
	sugarLogger = logger.Sugar()
	return nil
}

// Replace swaps the process logger, mainly for tests that want to observe output.
func Replace(logger *zap.Logger) {
	zapLogger = logger
	sugarLogger = logger.Sugar()
}

// Info logs a message at info level.
func Info(msg string) {
	sugarLogger.Info(msg)
}

// Infof logs a formatted message at info level.
func Infof(format string, args ...interface{}) {
	sugarLogger.Infof(format, args...)
}

// Infow logs a message with key/value pairs at info level.
func Infow(msg string, keysAndValues ...interface{}) {
	sugarLogger.Infow(msg, keysAndValues...)
}

func Warnf(template string, args ...interface{}) {
	sugarLogger.Warnf(template, args...)
}

// Error logs msg at error level with err attached under the "error" key.
func Error(msg string, err error) {
	sugarLogger.Errorw(msg, "error", err)
}

// Errorw logs a message with key/value pairs at error level.
func Errorw(msg string, keysAndValues ...interface{}) {
	sugarLogger.Errorw(msg, keysAndValues...)
}

func Errorf(template string, args ...interface{}) {
	sugarLogger.Errorf(template, args...)
}

// Fatal logs msg with err and exits the process.
func Fatal(msg string, err error) {
	sugarLogger.Fatalw(msg, "error", err)
}

// Sync flushes buffered entries. Call it before the process exits.
func Sync() {
	_ = sugarLogger.Sync()
	_ = zapLogger.Sync()
}

func GetLogger() *zap.Logger {
	return zapLogger
}
