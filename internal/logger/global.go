package logger

import (
	"os"
	"strings"
)

var (
	// Global logger instance
	globalLogger *Logger
)

func init() {
	globalLogger = NewDefault()
	Configure(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// Configure applies level and format strings to the global logger; unknown values are ignored
func Configure(levelStr, formatStr string) {
	if level := ParseLogLevel(levelStr); level != -1 {
		globalLogger.SetLevel(level)
	}
	if format := ParseLogFormat(formatStr); format != -1 {
		globalLogger.SetFormat(format)
	}
}

// ParseLogLevel parses a log level string, returning -1 when unknown
func ParseLogLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return -1
	}
}

// ParseLogFormat parses a log format string, returning -1 when unknown.
// "auto" picks text on a terminal and JSON otherwise.
func ParseLogFormat(format string) LogFormat {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return JSONFormat
	case "text":
		return TextFormat
	case "auto":
		if isTerminal(os.Stdout) {
			return TextFormat
		}
		return JSONFormat
	default:
		return -1
	}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *Logger {
	return globalLogger
}

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *Logger) {
	globalLogger = logger
}

// WithComponent returns a component logger derived from the global logger
func WithComponent(component string) *Logger {
	return globalLogger.WithComponent(component)
}

// Debug logs a debug message using the global logger
func Debug(message string, fields ...map[string]interface{}) {
	globalLogger.Debug(message, fields...)
}

// Info logs an info message using the global logger
func Info(message string, fields ...map[string]interface{}) {
	globalLogger.Info(message, fields...)
}

// Warn logs a warning message using the global logger
func Warn(message string, fields ...map[string]interface{}) {
	globalLogger.Warn(message, fields...)
}

// Error logs an error message using the global logger
func Error(message string, err error, fields ...map[string]interface{}) {
	globalLogger.Error(message, err, fields...)
}

// Fatal logs a fatal message using the global logger and exits
func Fatal(message string, err error, fields ...map[string]interface{}) {
	globalLogger.Fatal(message, err, fields...)
}

// Infof logs a formatted info message using the global logger
func Infof(format string, args ...interface{}) {
	globalLogger.Infof(format, args...)
}

// Warnf logs a formatted warning message using the global logger
func Warnf(format string, args ...interface{}) {
	globalLogger.Warnf(format, args...)
}
