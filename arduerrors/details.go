// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

package arduerrors // import "github.com/nagyist/arduleader/arduerrors"

import "go.uber.org/zap/zapcore"

// ErrorDetails holds the key/value details of an error.
type ErrorDetails map[string]string

// MarshalLogObject will define the representation of details when logging.
func (d ErrorDetails) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	for key, value := range d {
		encoder.AddString(key, value)
	}
	return nil
}

// createDetails builds details from a flat list of key/value pairs. A
// trailing key without a value is dropped.
func createDetails(keyValues []string) ErrorDetails {
	details := make(ErrorDetails)
	for i := 0; i+1 < len(keyValues); i += 2 {
		details[keyValues[i]] = keyValues[i+1]
	}
	return details
}
