// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

package element // import "github.com/nagyist/arduleader/element"

//go:generate go tool stringer -type=Kind -linecomment

// Kind discriminates the value stored in an Element.
type Kind int

const (
	// KindInt is a 64-bit signed integer value.
	KindInt Kind = iota // int

	// KindFloat is a 64-bit floating point value.
	KindFloat // float

	// KindText is a free-form string value.
	KindText // text
)
