package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var defaultLogger = &logrus.Logger{
	Out:       os.Stdout,
	Formatter: new(logrus.JSONFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.InfoLevel,
}

// Fields is an alias for logrus fields.
type Fields = logrus.Fields

// SetLevel parses the level name and applies it to the default logger.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	defaultLogger.SetLevel(lvl)
	return nil
}

// WithFields returns an entry carrying the given fields.
func WithFields(fields Fields) *logrus.Entry {
	return defaultLogger.WithFields(fields)
}

// Info logs message at Info level.
func Info(msg string) {
	defaultLogger.Infoln(msg)
}

// Infof logs formatted message at Info level.
func Infof(format string, args ...interface{}) {
	defaultLogger.Infof(format, args...)
}

// Warn logs message at Warn level.
func Warn(msg string) {
	defaultLogger.Warnln(msg)
}

// Error logs errors at Error level.
func Error(err error) {
	defaultLogger.Errorln(err)
}

// Fatal logs errors at Fatal level.
func Fatal(err error) {
	defaultLogger.Fatalln(err)
}
