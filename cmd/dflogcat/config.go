// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/nagyist/arduleader/fault"
	"github.com/nagyist/arduleader/filter"
	"github.com/nagyist/arduleader/lines"
	"github.com/nagyist/arduleader/stream"
)

var cfg *Config

// rootCmd is the root command on which will be run children commands
var rootCmd = &cobra.Command{
	Use:     "dflogcat",
	Short:   "Dflogcat decodes self-describing telemetry text logs",
	Example: "dflogcat print flight.log\ndflogcat formats flight.log.gz",
}

// printCmd is the command responsible for decoding and printing messages
var printCmd = &cobra.Command{
	Use:     "print <log file>",
	Short:   "Decode a log and print each message",
	Example: "dflogcat print --filter 'name == \"PARM\"' flight.log",
	Args:    cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runPrint(cfg, args[0])
	},
}

// formatsCmd is the command responsible for dumping collected formats
var formatsCmd = &cobra.Command{
	Use:     "formats <log file>",
	Short:   "Print the format definitions a log declares, as YAML",
	Example: "dflogcat formats flight.log",
	Args:    cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runFormats(cfg, args[0])
	},
}

func init() {
	rootCmd.AddCommand(printCmd, formatsCmd)

	cfg = NewConfig()
	cfg.Flags(rootCmd.PersistentFlags())

	// Disabling completion command for end user
	// https://github.com/spf13/cobra/blob/master/shell_completions.md
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Execute tries to run the input command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Config holds the flags shared by all subcommands.
type Config struct {
	Filter     string
	Encoding   string
	ApplyScale bool
	Quiet      bool
}

// NewConfig creates a config with default values.
func NewConfig() *Config {
	return &Config{Encoding: "utf-8"}
}

// Flags registers the command line flags.
func (c *Config) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Filter, "filter", c.Filter, "boolean expression selecting messages, e.g. 'name == \"PARM\"'")
	fs.StringVar(&c.Encoding, "encoding", c.Encoding, "text encoding of the log file")
	fs.BoolVar(&c.ApplyScale, "apply-scale", c.ApplyScale, "multiply float fields by their type code's nominal scale factor")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "suppress per-line decode failure reports")
}

// openStream builds the line source and stream for one log file.
func openStream(c *Config, path string, logger *zap.SugaredLogger) (*lines.File, *stream.Stream, error) {
	enc, err := lines.LookupEncoding(c.Encoding)
	if err != nil {
		return nil, nil, err
	}

	opts := []stream.Option{stream.WithLogger(logger)}
	if c.ApplyScale {
		opts = append(opts, stream.WithScaleApplied(true))
	}
	if c.Quiet {
		opts = append(opts, stream.WithSink(fault.Nop()))
	}
	if c.Filter != "" {
		f, err := filter.Compile(c.Filter)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, stream.WithFilter(f))
	}

	src, err := lines.Open(path, lines.WithEncoding(enc))
	if err != nil {
		return nil, nil, err
	}
	return src, stream.New(src, opts...), nil
}

func newLogger() *zap.SugaredLogger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
