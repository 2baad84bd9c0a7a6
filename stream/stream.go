// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

// Package stream drives per-line parsing over a line source and yields a
// lazy sequence of decoded messages.
package stream // import "github.com/nagyist/arduleader/stream"

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/nagyist/arduleader/decode"
	"github.com/nagyist/arduleader/fault"
	"github.com/nagyist/arduleader/filter"
	"github.com/nagyist/arduleader/format"
	"github.com/nagyist/arduleader/lines"
	"github.com/nagyist/arduleader/message"
	"github.com/nagyist/arduleader/parser"
)

// SniffWindow is the number of leading lines within which a log must declare
// at least one format to be treated as a valid log.
const SniffWindow = 100

// ErrNoFormats is the fatal condition raised when the sniff window passes
// without a successfully decoded control record. The input is not a log of
// this format and the stream stops.
var ErrNoFormats = errors.New("no format definitions found: input does not look like a valid log")

// Stream lazily decodes messages from a line source. It is forward-only and
// single pass; decoding the same input again requires a new Stream over a
// fresh source. Each Stream owns an independent format registry, so streams
// over different sources never share mutable state.
type Stream struct {
	source lines.Source
	reg    *format.Registry
	parser *parser.Parser
	sink   fault.Sink
	filter *filter.Filter
	window int

	pulled     int
	sawControl bool
	err        error
}

type options struct {
	logger     *zap.SugaredLogger
	sink       fault.Sink
	filter     *filter.Filter
	window     int
	decodeOpts []decode.Option
}

// Option configures a Stream.
type Option func(*options)

// WithLogger sets the logger backing the default fault sink.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSink routes recoverable per-line failures to sink instead of the
// logger-backed default.
func WithSink(sink fault.Sink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithFilter drops decoded messages the filter does not match. Filtered
// messages still count toward the sniff heuristic.
func WithFilter(f *filter.Filter) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithSniffWindow overrides the SniffWindow constant.
func WithSniffWindow(n int) Option {
	return func(o *options) {
		o.window = n
	}
}

// WithScaleApplied sets whether decoded float fields are multiplied by their
// type code's nominal scale factor.
func WithScaleApplied(apply bool) Option {
	return func(o *options) {
		o.decodeOpts = append(o.decodeOpts, decode.WithScaleApplied(apply))
	}
}

// New creates a stream over source. The stream does not own the source;
// releasing it stays with the caller.
func New(source lines.Source, opts ...Option) *Stream {
	o := options{logger: zap.NewNop().Sugar(), window: SniffWindow}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sink == nil {
		o.sink = fault.NewLogSink(o.logger)
	}

	reg := format.NewRegistry()
	return &Stream{
		source: source,
		reg:    reg,
		parser: parser.New(reg, decode.New(o.decodeOpts...)),
		sink:   o.sink,
		filter: o.filter,
		window: o.window,
	}
}

// Registry exposes the formats collected so far. The registry belongs to the
// stream and must not be mutated by callers.
func (s *Stream) Registry() *format.Registry {
	return s.reg
}

// Next returns the next decoded message in input order. It returns io.EOF
// when the source is exhausted and ErrNoFormats (wrapped) when the sniff
// window passes without a control record. Errors are sticky: once Next has
// failed it keeps failing the same way.
func (s *Stream) Next() (*message.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	for {
		if !s.source.Scan() {
			if err := s.source.Err(); err != nil {
				s.err = fmt.Errorf("failed to read line: %w", err)
			} else {
				s.err = io.EOF
			}
			return nil, s.err
		}
		s.pulled++
		if s.pulled > s.window && !s.sawControl {
			s.err = fmt.Errorf("%w (no control record in the first %d lines)", ErrNoFormats, s.window)
			return nil, s.err
		}

		line := s.source.Text()
		msg, err := s.parser.Parse(line)
		if err != nil {
			s.sink.Report(line, err)
			continue
		}
		if msg == nil {
			continue
		}
		if msg.Name() == format.ControlName {
			s.sawControl = true
		}
		if s.filter != nil {
			matched, err := s.filter.Match(msg)
			if err != nil {
				s.sink.Report(line, err)
				continue
			}
			if !matched {
				continue
			}
		}
		return msg, nil
	}
}

// Each invokes fn for every remaining message and returns the terminal
// error, or nil on clean end of input.
func (s *Stream) Each(fn func(*message.Message) error) error {
	for {
		msg, err := s.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(msg); err != nil {
			return err
		}
	}
}
