package db

import (
	"context" // Request context carried into log entries
	"errors"  // Error inspection
	"time"    // Query timing

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/logger"        // GORM logger interface
)

// SlowQueryThreshold is the duration above which a query is logged as slow
const SlowQueryThreshold = 200 * time.Millisecond

// Logger sends GORM's query log through logrus so a process has one log format
type Logger struct {
	level logger.LogLevel
}

// NewLogger returns a Logger that reports failed and slow queries
func NewLogger() *Logger {
	return &Logger{level: logger.Warn}
}

// LogMode returns a copy of the logger at the given level
func (l *Logger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Info {
		logrus.WithContext(ctx).Infof(msg, args...)
	}
}

func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Warn {
		logrus.WithContext(ctx).Warnf(msg, args...)
	}
}

func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Error {
		logrus.WithContext(ctx).Errorf(msg, args...)
	}
}

// Trace logs one executed statement. A missing row is an answer, not a failure.
func (l *Logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	slow := elapsed > SlowQueryThreshold
	if !failed && !slow && l.level < logger.Info {
		return // Nothing worth the fc call
	}

	sql, rows := fc()
	entry := logrus.WithContext(ctx).WithFields(logrus.Fields{
		"sql":     sql,
		"rows":    rows,
		"elapsed": elapsed,
	})
	switch {
	case failed && l.level >= logger.Error:
		entry.WithError(err).Warn("Query failed")
	case slow && l.level >= logger.Warn:
		entry.Warn("Slow query")
	case l.level >= logger.Info:
		entry.Debug("Query")
	}
}
