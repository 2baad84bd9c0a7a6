// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

package decode // import "github.com/nagyist/arduleader/decode"

import (
	"fmt"

	"go.opentelemetry.io/collector/featuregate"

	"github.com/nagyist/arduleader/element"
	"github.com/nagyist/arduleader/format"
	"github.com/nagyist/arduleader/message"
	"github.com/nagyist/arduleader/typecode"
)

// applyTypeScaleGate opts decoding into multiplying float fields by their
// type code's nominal scale factor. The producers of these logs write
// pre-scaled values, so the compatible default is the raw parsed number.
var applyTypeScaleGate = featuregate.GlobalRegistry().MustRegister(
	"arduleader.decoder.applyTypeScale",
	featuregate.StageAlpha,
	featuregate.WithRegisterDescription("When enabled, decoded float fields are multiplied by their type code's nominal scale factor."),
)

// Decoder converts the raw argument fields of one line into a Message.
type Decoder struct {
	applyScale bool
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithScaleApplied overrides the applyTypeScale feature gate for one decoder.
func WithScaleApplied(apply bool) Option {
	return func(d *Decoder) {
		d.applyScale = apply
	}
}

// New creates a decoder. Scale application defaults to the applyTypeScale
// feature gate.
func New(opts ...Option) *Decoder {
	d := &Decoder{applyScale: applyTypeScaleGate.IsEnabled()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode converts fields under def. An unknown type code or an unparseable
// token fails the whole line; a partial message is never returned. Fields
// beyond the type-code string are decoded as free text, and fields are not
// required to cover every declared column.
func (d *Decoder) Decode(def *format.Definition, fields []string) (*message.Message, error) {
	elements := make([]element.Element, 0, len(fields))
	for i, field := range fields {
		rule := typecode.Text
		if i < len(def.Codes) {
			var err error
			rule, err = typecode.Resolve(def.Codes[i])
			if err != nil {
				return nil, fmt.Errorf("format %s field %d: %w", def.Name, i, err)
			}
		}
		el, err := rule.Convert(field)
		if err != nil {
			return nil, fmt.Errorf("format %s field %d: %w", def.Name, i, err)
		}
		if d.applyScale {
			el = rule.Rescale(el)
		}
		elements = append(elements, el)
	}
	return message.New(def, elements), nil
}
