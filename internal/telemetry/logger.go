// Package telemetry provides an opt-in operational logger for the repair
// pipeline; Repair uses it to log when a call starts and how it finished
// (individual transforms and passes are not logged). It is distinct from the diagnostic
// trail Repair returns: the trail is data a caller inspects per call,
// telemetry is for an operator tailing a process across many calls.
package telemetry

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus.Logger with the level-parsing and formatter
// defaults the rest of this module's ambient stack uses.
type Logger struct {
	logger *logrus.Logger
}

// Config selects the logger's verbosity and output shape.
type Config struct {
	Level string // parsed with logrus.ParseLevel; defaults to Info on a bad value
	JSON  bool   // JSONFormatter when true, TextFormatter otherwise
}

// New builds a Logger from Config. It never fails: an unparsable Level
// falls back to Info rather than returning an error, since a bad log
// level should not prevent a repair pipeline from running.
func New(cfg Config) *Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.JSON {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &Logger{logger: l}
}

// Debugf narrates pipeline activity at debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Debugf(format, args...)
}

// Errorf narrates an irrecoverable condition at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Errorf(format, args...)
}
