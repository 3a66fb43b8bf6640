// Package log provides structured logging with filesystem-based persistence.
//
// Logging is off by default. When logs.write is disabled every call is a no-op.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	enabled bool
	discard = &logrus.Logger{Out: io.Discard, Formatter: new(logrus.TextFormatter), Hooks: make(logrus.LevelHooks), Level: logrus.PanicLevel}
)

// Setup opens the dated log file and configures format and level from the global configuration.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, time.Now().Format(time.DateOnly)+".log")
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

// Enabled reports whether log records are being written.
func Enabled() bool {
	return enabled
}

func entry() *logrus.Entry {
	if !enabled {
		return logrus.NewEntry(discard)
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

// WithField returns an entry carrying the given field. The entry discards everything when logging is disabled.
func WithField(name string, value any) *logrus.Entry {
	return entry().WithField(name, value)
}

// WithFields is the multi-field variant of WithField.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return entry().WithFields(fields)
}

func Error(args ...any) {
	entry().Error(args...)
}

func Warnf(format string, args ...any) {
	entry().Warnf(format, args...)
}

func Infof(format string, args ...any) {
	entry().Infof(format, args...)
}

func Debugf(format string, args ...any) {
	entry().Debugf(format, args...)
}
