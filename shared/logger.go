// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package shared

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Logger is an abstract logging interface that contains the subset of
// logrus functionality used by page objects, waits and listeners.
type Logger interface {
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
}

// TitleField is the logrus field that carries an explicit report title for
// a log entry. See report.Hook.
const TitleField = "title"

// LoggerCtxKey is a key for attaching a Logger to a context.Context.
type LoggerCtxKey struct{}

var lck = LoggerCtxKey{}

// DefaultLoggerCtxKey returns the default key where a logger instance should be
// stored in a context.Context object.
func DefaultLoggerCtxKey() LoggerCtxKey {
	return lck
}

// WithLogger is a strongly-typed setter for the logger value on the context.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, DefaultLoggerCtxKey(), logger)
}

type nilLogger struct{}

var nl = nilLogger{}

func (l nilLogger) Debugf(format string, args ...interface{}) {}

func (l nilLogger) Errorf(format string, args ...interface{}) {}

func (l nilLogger) Infof(format string, args ...interface{}) {}

func (l nilLogger) Warningf(format string, args ...interface{}) {}

// NewNilLogger returns a new logger that silently ignores all Logger calls.
func NewNilLogger() Logger {
	return nl
}

type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger returns a Logger that writes to the given logrus logger,
// decorating every entry with fields. A nil logger means the logrus standard
// logger.
func NewLogrusLogger(l *logrus.Logger, fields logrus.Fields) Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &logrusLogger{entry: l.WithFields(fields)}
}

func (l *logrusLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *logrusLogger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *logrusLogger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logrusLogger) Warningf(format string, args ...interface{}) {
	l.entry.Warningf(format, args...)
}

// TitledLogger is implemented by loggers that can attach an explicit report
// title to an entry.
type TitledLogger interface {
	Logger
	WithTitle(title string) Logger
}

func (l *logrusLogger) WithTitle(title string) Logger {
	return &logrusLogger{entry: l.entry.WithField(TitleField, title)}
}

// LogTitled logs msg at Info level under the given report title. Loggers
// that do not support titles get the title folded into the message.
func LogTitled(l Logger, title, format string, args ...interface{}) {
	if tl, ok := l.(TitledLogger); ok {
		tl.WithTitle(title).Infof(format, args...)
		return
	}
	l.Infof("[%s] %s", title, fmt.Sprintf(format, args...))
}

// GetLogger retrieves a non-nil Logger that is appropriate for use in ctx. If
// ctx does not provide a logger, then a nil-logger is returned.
func GetLogger(ctx context.Context) Logger {
	logger, ok := ctx.Value(DefaultLoggerCtxKey()).(Logger)
	if !ok || logger == nil {
		logrus.Warningf("Context without logger: %v; logs will be dropped", ctx)
		return NewNilLogger()
	}

	return logger
}
