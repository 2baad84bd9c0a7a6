// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

package testutil // import "github.com/nagyist/arduleader/testutil"

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Logger will return a new test logger
func Logger(t testing.TB) *zap.SugaredLogger {
	return zaptest.NewLogger(t, zaptest.Level(zapcore.ErrorLevel)).Sugar()
}

// Source returns an in-memory line source over the given lines.
func Source(lines ...string) *SliceSource {
	return &SliceSource{lines: lines}
}

// SliceSource is a line source backed by a string slice.
type SliceSource struct {
	lines []string
	next  int
	cur   string
}

// Scan advances to the next line.
func (s *SliceSource) Scan() bool {
	if s.next >= len(s.lines) {
		return false
	}
	s.cur = s.lines[s.next]
	s.next++
	return true
}

// Text returns the current line.
func (s *SliceSource) Text() string {
	return s.cur
}

// Err always returns nil; a slice never fails to read.
func (s *SliceSource) Err() error {
	return nil
}
