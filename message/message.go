// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

package message // import "github.com/nagyist/arduleader/message"

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/nagyist/arduleader/element"
	"github.com/nagyist/arduleader/format"
)

// Message is one fully decoded log line: a shared reference to the format
// definition that was current at decode time plus its ordered element
// values. A Message never changes after construction; it does not observe
// later registry updates to its format name. The number of elements equals
// the number of tokens present on the source line, which may be shorter or
// longer than the format's column list.
type Message struct {
	def      *format.Definition
	elements []element.Element
}

// New creates a message over def and its decoded elements. The message takes
// ownership of the element slice.
func New(def *format.Definition, elements []element.Element) *Message {
	return &Message{def: def, elements: elements}
}

// Format returns the definition the message was decoded under.
func (m *Message) Format() *format.Definition {
	return m.def
}

// Name returns the format name of the message.
func (m *Message) Name() string {
	return m.def.Name
}

// Len returns the number of decoded elements.
func (m *Message) Len() int {
	return len(m.elements)
}

// Element returns the decoded element at index i.
func (m *Message) Element(i int) (element.Element, error) {
	if i < 0 || i >= len(m.elements) {
		return element.Element{}, &FieldError{Format: m.def.Name, Index: i, Count: len(m.elements)}
	}
	return m.elements[i], nil
}

// Value returns the element of a named column. Lookup fails explicitly when
// the name is not a column of the format, or when the column's index is
// beyond the elements actually decoded from the line; it never returns a
// default in either case.
func (m *Message) Value(name string) (element.Element, error) {
	i, ok := m.def.ColumnIndex(name)
	if !ok {
		return element.Element{}, &FieldError{Format: m.def.Name, Name: name, Index: -1}
	}
	if i >= len(m.elements) {
		return element.Element{}, &FieldError{Format: m.def.Name, Name: name, Index: i, Count: len(m.elements)}
	}
	return m.elements[i], nil
}

// Int returns the named column as an integer.
func (m *Message) Int(name string) (int64, error) {
	el, err := m.Value(name)
	if err != nil {
		return 0, err
	}
	return el.Int()
}

// Float returns the named column as a float.
func (m *Message) Float(name string) (float64, error) {
	el, err := m.Value(name)
	if err != nil {
		return 0, err
	}
	return el.Float()
}

// Text returns the named column as text.
func (m *Message) Text(name string) (string, error) {
	el, err := m.Value(name)
	if err != nil {
		return "", err
	}
	return el.Text()
}

// Map returns the named values as an untyped map. Columns beyond the decoded
// element count are omitted, as are elements beyond the column list.
func (m *Message) Map() map[string]any {
	out := make(map[string]any, len(m.def.Columns))
	for i, col := range m.def.Columns {
		if i >= len(m.elements) {
			break
		}
		out[col] = m.elements[i].Any()
	}
	return out
}

// String renders the message as "<name>: col1=v1, col2=v2, ...". Elements
// beyond the column list are labeled by index.
func (m *Message) String() string {
	var b strings.Builder
	b.WriteString(m.def.Name)
	b.WriteString(": ")
	for i, el := range m.elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.column(i))
		b.WriteByte('=')
		b.WriteString(el.String())
	}
	return b.String()
}

// MarshalLogObject will define the representation of this message when
// logging.
func (m *Message) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("format", m.def.Name)
	for i, el := range m.elements {
		switch el.Kind() {
		case element.KindInt:
			v, _ := el.Int()
			encoder.AddInt64(m.column(i), v)
		case element.KindFloat:
			v, _ := el.Float()
			encoder.AddFloat64(m.column(i), v)
		default:
			v, _ := el.Text()
			encoder.AddString(m.column(i), v)
		}
	}
	return nil
}

func (m *Message) column(i int) string {
	if i < len(m.def.Columns) {
		return m.def.Columns[i]
	}
	return strconv.Itoa(i)
}

// FieldError reports a failed field lookup on a message. Name is empty for
// lookups by index. Index is -1 when the format has no column of the given
// name; otherwise the column exists but only Count elements were decoded
// from the line.
type FieldError struct {
	Format string
	Name   string
	Index  int
	Count  int
}

// Error will return the error message.
func (e *FieldError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("format %s has no column %q", e.Format, e.Name)
	}
	if e.Name == "" {
		return fmt.Sprintf("format %s: element index %d out of range, %d decoded", e.Format, e.Index, e.Count)
	}
	return fmt.Sprintf("format %s: column %q is element %d but only %d were decoded", e.Format, e.Name, e.Index, e.Count)
}
