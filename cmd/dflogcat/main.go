// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

// Dflogcat decodes self-describing telemetry text logs.
package main

func main() {
	Execute()
}
