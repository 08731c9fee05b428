package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) logrusLevel() logrus.Level {
	switch l {
	case DEBUG:
		return logrus.DebugLevel
	case WARN:
		return logrus.WarnLevel
	case ERROR:
		return logrus.ErrorLevel
	case FATAL:
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

// LogFormat represents the output format for logs
type LogFormat int

const (
	JSONFormat LogFormat = iota
	TextFormat
)

// Config holds logger configuration
type Config struct {
	Level     LogLevel
	Format    LogFormat
	Output    io.Writer
	Component string
}

// Logger is a component-scoped structured logger
type Logger struct {
	base      *logrus.Logger
	component string
}

// New creates a new logger with the given configuration
func New(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	base := logrus.New()
	base.SetOutput(config.Output)
	base.SetLevel(config.Level.logrusLevel())
	base.SetFormatter(formatter(config.Format))

	return &Logger{
		base:      base,
		component: config.Component,
	}
}

// NewDefault creates a logger with default configuration
func NewDefault() *Logger {
	return New(Config{
		Level:  INFO,
		Format: JSONFormat,
		Output: os.Stdout,
	})
}

func formatter(format LogFormat) logrus.Formatter {
	if format == TextFormat {
		return &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		}
	}
	return &logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	}
}

// WithComponent returns a logger sharing the same output and level, tagged with component
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		base:      l.base,
		component: component,
	}
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level LogLevel) {
	l.base.SetLevel(level.logrusLevel())
}

// SetFormat sets the log output format
func (l *Logger) SetFormat(format LogFormat) {
	l.base.SetFormatter(formatter(format))
}

// SetOutput redirects log output
func (l *Logger) SetOutput(w io.Writer) {
	l.base.SetOutput(w)
}

func (l *Logger) entry(fields []map[string]interface{}) *logrus.Entry {
	e := logrus.NewEntry(l.base)
	if l.component != "" {
		e = e.WithField("component", l.component)
	}
	if len(fields) > 0 && fields[0] != nil {
		e = e.WithFields(logrus.Fields(fields[0]))
	}
	return e
}

// Debug logs a debug message
func (l *Logger) Debug(message string, fields ...map[string]interface{}) {
	l.entry(fields).Debug(message)
}

// Info logs an info message
func (l *Logger) Info(message string, fields ...map[string]interface{}) {
	l.entry(fields).Info(message)
}

// Warn logs a warning message
func (l *Logger) Warn(message string, fields ...map[string]interface{}) {
	l.entry(fields).Warn(message)
}

// Error logs an error message
func (l *Logger) Error(message string, err error, fields ...map[string]interface{}) {
	e := l.entry(fields)
	if err != nil {
		e = e.WithError(err)
	}
	e.Error(message)
}

// Fatal logs a fatal message and exits the program
func (l *Logger) Fatal(message string, err error, fields ...map[string]interface{}) {
	e := l.entry(fields)
	if err != nil {
		e = e.WithError(err)
	}
	e.Fatal(message)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Debug(fmt.Sprintf(format, args...))
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...), nil)
}
