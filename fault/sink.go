// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

// Package fault is the reporting side of recoverable per-line decode
// failures.
package fault // import "github.com/nagyist/arduleader/fault"

import "go.uber.org/zap"

// Sink receives every recoverable per-line failure together with the
// offending line. Implementations must not assume the stream stops
// afterwards; a report means the line was skipped, nothing more.
type Sink interface {
	Report(line string, cause error)
}

// LogSink reports failures to a zap logger.
type LogSink struct {
	logger *zap.SugaredLogger
}

// NewLogSink creates a sink that logs each failure at error level.
func NewLogSink(logger *zap.SugaredLogger) *LogSink {
	return &LogSink{logger: logger}
}

// Report will log the failed line and its cause.
func (s *LogSink) Report(line string, cause error) {
	s.logger.Errorw("Failed to decode line", "error", cause, "line", line)
}

// Nop returns a sink that discards all reports.
func Nop() Sink {
	return nopSink{}
}

type nopSink struct{}

func (nopSink) Report(string, error) {}
