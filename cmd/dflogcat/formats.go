// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nagyist/arduleader/message"
)

func runFormats(c *Config, path string) error {
	logger := newLogger()
	defer logger.Sync()

	src, st, err := openStream(c, path, logger)
	if err != nil {
		return err
	}
	defer src.Close()

	// Drain the stream so every control record has been observed.
	if err := st.Each(func(*message.Message) error { return nil }); err != nil {
		return err
	}

	out, err := yaml.Marshal(st.Registry().Definitions())
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(os.Stdout, string(out))
	return err
}
