// File: timer.go
// Title: Performance Timer
// Description: Measures operation durations and logs them on completion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial timer implementation
// - 2026-10-18 v0.2.0: Simplified to Stop, StopWithError and Checkpoint,
//   configurable failure level

package log

import (
	"time"
)

// Timer measures the duration of an operation
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	level     Level
	errLevel  Level
	fields    Fields
	stopped   bool
}

// NewTimer creates and starts a timer
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		level:     LevelDebug,
		errLevel:  LevelWarn,
		fields:    Fields{"operation": operation},
	}
}

// WithLevel sets the level used when the timer stops successfully
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithErrorLevel sets the level used by StopWithError
func (t *Timer) WithErrorLevel(level Level) *Timer {
	t.errLevel = level
	return t
}

// WithField adds a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs the completion of the operation and returns its duration
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, nil)
}

// StopWithError logs the operation as failed when err is non-nil
func (t *Timer) StopWithError(err error) time.Duration {
	if err == nil {
		return t.Stop()
	}
	return t.finish(t.errLevel, err)
}

// Checkpoint logs an intermediate duration without stopping the timer
func (t *Timer) Checkpoint(name string, fields ...Fields) {
	merged := t.fields.Merge(Fields{"checkpoint": name})
	for _, f := range fields {
		merged = merged.Merge(f)
	}
	t.emit(LevelTrace, t.operation+" checkpoint", nil, t.Elapsed(), merged)
}

// IsRunning reports whether the timer has not been stopped yet
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (t *Timer) finish(level Level, err error) time.Duration {
	d := t.Elapsed()
	if t.stopped {
		return d
	}
	t.stopped = true

	message := t.operation + " completed"
	if err != nil {
		message = t.operation + " failed"
	}
	t.emit(level, message, err, d, t.fields)
	return d
}

func (t *Timer) emit(level Level, message string, err error, d time.Duration, fields Fields) {
	l := t.logger
	l.mutex.RLock()
	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}
	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.RequestID = l.requestID
	entry.Error = err
	entry.Duration = d
	entry.Fields = Fields(l.contextFields).Merge(fields)
	formatter, output := l.formatter, l.output
	l.mutex.RUnlock()

	l.write(formatter, output, entry)
}
