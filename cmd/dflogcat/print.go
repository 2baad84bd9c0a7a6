// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/nagyist/arduleader/message"
)

func runPrint(c *Config, path string) error {
	logger := newLogger()
	defer logger.Sync()

	src, st, err := openStream(c, path, logger)
	if err != nil {
		return err
	}
	defer src.Close()

	return st.Each(func(msg *message.Message) error {
		_, err := fmt.Println(msg)
		return err
	})
}
