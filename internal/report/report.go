// Package report provides Reporter implementations for the engine's
// message sink.
package report

import "github.com/sirupsen/logrus"

// Logger adapts a logrus logger to the Reporter port so engine
// messages land in the application log with matching severities.
type Logger struct {
	log *logrus.Logger
}

func NewLogger(l *logrus.Logger) *Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Logger{log: l}
}

func (r *Logger) Infof(format string, args ...any)  { r.log.Infof(format, args...) }
func (r *Logger) Warnf(format string, args ...any)  { r.log.Warnf(format, args...) }
func (r *Logger) Errorf(format string, args ...any) { r.log.Errorf(format, args...) }

// Silent discards all messages. Used by tests and batch runs.
type Silent struct{}

func (Silent) Infof(string, ...any)  {}
func (Silent) Warnf(string, ...any)  {}
func (Silent) Errorf(string, ...any) {}
