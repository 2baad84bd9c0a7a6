// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

package element // import "github.com/nagyist/arduleader/element"

import (
	"fmt"
	"strconv"
)

// Element is one decoded, typed field value within a message. It is an
// exhaustive tagged union over the three kinds a type code can produce.
// Typed access with the wrong kind fails explicitly rather than converting.
type Element struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// NewInt returns an integer element.
func NewInt(v int64) Element {
	return Element{kind: KindInt, i: v}
}

// NewFloat returns a float element.
func NewFloat(v float64) Element {
	return Element{kind: KindFloat, f: v}
}

// NewText returns a text element.
func NewText(v string) Element {
	return Element{kind: KindText, s: v}
}

// Kind returns the kind of the stored value.
func (e Element) Kind() Kind {
	return e.kind
}

// Int returns the stored integer, failing if the element holds another kind.
func (e Element) Int() (int64, error) {
	if e.kind != KindInt {
		return 0, &KindError{Want: KindInt, Got: e.kind}
	}
	return e.i, nil
}

// Float returns the stored float, failing if the element holds another kind.
func (e Element) Float() (float64, error) {
	if e.kind != KindFloat {
		return 0, &KindError{Want: KindFloat, Got: e.kind}
	}
	return e.f, nil
}

// Text returns the stored string, failing if the element holds another kind.
func (e Element) Text() (string, error) {
	if e.kind != KindText {
		return "", &KindError{Want: KindText, Got: e.kind}
	}
	return e.s, nil
}

// Any returns the stored value as an untyped interface.
func (e Element) Any() any {
	switch e.kind {
	case KindInt:
		return e.i
	case KindFloat:
		return e.f
	default:
		return e.s
	}
}

// String renders the stored value.
func (e Element) String() string {
	switch e.kind {
	case KindInt:
		return strconv.FormatInt(e.i, 10)
	case KindFloat:
		return strconv.FormatFloat(e.f, 'g', -1, 64)
	default:
		return e.s
	}
}

// KindError reports a typed access against an element of another kind.
type KindError struct {
	Want Kind
	Got  Kind
}

// Error will return the error message.
func (e *KindError) Error() string {
	return fmt.Sprintf("element holds %s, not %s", e.Got, e.Want)
}
