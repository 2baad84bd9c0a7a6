// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

// Package typecode maps the one-character field type codes of the log format
// to conversion rules.
package typecode // import "github.com/nagyist/arduleader/typecode"

import (
	"fmt"
	"strconv"

	"github.com/nagyist/arduleader/element"
)

// Rule describes how one type code converts a raw token. Scale is carried
// for float codes but is never multiplied in by Convert; the producers of
// these logs write pre-scaled values, so the raw parse is the compatible
// result. Callers that want the nominal scale opt in through Rescale.
type Rule struct {
	Kind  element.Kind
	Scale float64
}

// Text is the fallback rule applied to tokens beyond a format's type-code
// string. Excess arguments are treated as free text.
var Text = Rule{Kind: element.KindText, Scale: 1}

var rules = map[byte]Rule{
	'b': {element.KindInt, 1},
	'B': {element.KindInt, 1},
	'h': {element.KindInt, 1},
	'H': {element.KindInt, 1},
	'i': {element.KindInt, 1},
	'I': {element.KindInt, 1},
	'q': {element.KindInt, 1},
	'Q': {element.KindInt, 1},
	'f': {element.KindFloat, 1},
	'c': {element.KindFloat, 0.01},
	'C': {element.KindFloat, 0.01},
	'e': {element.KindFloat, 0.01},
	'E': {element.KindFloat, 0.01},
	'L': {element.KindFloat, 1e-7},
	'n': {element.KindText, 1},
	'N': {element.KindText, 1},
	'Z': {element.KindText, 1},
	'M': {element.KindText, 1},
}

// Resolve returns the conversion rule for a type code. Its error is an
// *UnknownCodeError when the code is not part of the alphabet.
func Resolve(code byte) (Rule, error) {
	r, ok := rules[code]
	if !ok {
		return Rule{}, &UnknownCodeError{Code: code}
	}
	return r, nil
}

// Convert parses one raw token according to the rule. Integer tokens are
// parsed as base-10 signed 64-bit values, float tokens as 64-bit decimals,
// and text tokens are returned unchanged.
func (r Rule) Convert(token string) (element.Element, error) {
	switch r.Kind {
	case element.KindInt:
		v, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return element.Element{}, fmt.Errorf("parse integer %q: %w", token, err)
		}
		return element.NewInt(v), nil
	case element.KindFloat:
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return element.Element{}, fmt.Errorf("parse float %q: %w", token, err)
		}
		return element.NewFloat(v), nil
	default:
		return element.NewText(token), nil
	}
}

// Rescale multiplies a float element by the rule's nominal scale factor.
// Conversion never does this on its own.
func (r Rule) Rescale(el element.Element) element.Element {
	if r.Kind != element.KindFloat || r.Scale == 1 {
		return el
	}
	v, err := el.Float()
	if err != nil {
		return el
	}
	return element.NewFloat(v * r.Scale)
}

// UnknownCodeError reports a type code with no conversion rule.
type UnknownCodeError struct {
	Code byte
}

// Error will return the error message.
func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown type code %q", string(e.Code))
}
