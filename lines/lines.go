// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

// Package lines provides the line sources a log stream pulls from.
package lines // import "github.com/nagyist/arduleader/lines"

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Source yields text lines on demand and signals end of input through Scan.
// *bufio.Scanner satisfies it.
type Source interface {
	Scan() bool
	Text() string
	Err() error
}

const defaultMaxLineSize = 1024 * 1024

type fileConfig struct {
	encoding    encoding.Encoding
	maxLineSize int
}

// FileOption configures Open.
type FileOption func(*fileConfig)

// WithEncoding sets the text encoding of the file. The default passes bytes
// through unchanged.
func WithEncoding(enc encoding.Encoding) FileOption {
	return func(c *fileConfig) {
		c.encoding = enc
	}
}

// WithMaxLineSize caps the length of a single line.
func WithMaxLineSize(size int) FileOption {
	return func(c *fileConfig) {
		c.maxLineSize = size
	}
}

// File is a line source over a log file, with transparent decompression for
// .gz paths. Close releases the file and is safe to call however far the
// stream was consumed.
type File struct {
	scanner *bufio.Scanner
	closers []io.Closer
}

// Open opens a log file as a line source.
func Open(path string, opts ...FileOption) (*File, error) {
	cfg := fileConfig{encoding: encoding.Nop, maxLineSize: defaultMaxLineSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	closers := []io.Closer{f}

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to open gzip log: %w", err)
		}
		// Close the decompressor before the file it reads from.
		closers = append([]io.Closer{zr}, closers...)
		r = zr
	}
	if cfg.encoding != nil && cfg.encoding != encoding.Nop {
		r = transform.NewReader(r, cfg.encoding.NewDecoder())
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), cfg.maxLineSize)
	return &File{scanner: scanner, closers: closers}, nil
}

// Scan advances to the next line.
func (f *File) Scan() bool {
	return f.scanner.Scan()
}

// Text returns the current line.
func (f *File) Text() string {
	return f.scanner.Text()
}

// Err returns the first non-EOF error encountered while reading.
func (f *File) Err() error {
	return f.scanner.Err()
}

// Close releases the underlying file.
func (f *File) Close() error {
	var errs []error
	for _, c := range f.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
