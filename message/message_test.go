// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nagyist/arduleader/element"
	"github.com/nagyist/arduleader/format"
)

func parmMessage() *Message {
	def := format.NewDefinition(129, 23, "PARM", "Nf", []string{"Name", "Value"})
	return New(def, []element.Element{
		element.NewText("Voltage"),
		element.NewFloat(12.6),
	})
}

func TestValue(t *testing.T) {
	msg := parmMessage()

	el, err := msg.Value("Name")
	require.NoError(t, err)
	name, err := el.Text()
	require.NoError(t, err)
	require.Equal(t, "Voltage", name)

	v, err := msg.Float("Value")
	require.NoError(t, err)
	require.Equal(t, 12.6, v)
}

func TestValueUnknownColumn(t *testing.T) {
	msg := parmMessage()
	_, err := msg.Value("Default")
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	require.Equal(t, "PARM", fieldErr.Format)
	require.Equal(t, "Default", fieldErr.Name)
	require.Equal(t, -1, fieldErr.Index)
}

// A line shorter than its declared columns decodes to fewer elements; a
// lookup for one of the missing columns fails out-of-range, never defaults.
func TestValueBeyondDecodedElements(t *testing.T) {
	def := format.NewDefinition(129, 23, "PARM", "Nf", []string{"Name", "Value"})
	msg := New(def, []element.Element{element.NewText("Voltage")})

	_, err := msg.Value("Value")
	require.Error(t, err)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	require.Equal(t, "Value", fieldErr.Name)
	require.Equal(t, 1, fieldErr.Index)
	require.Equal(t, 1, fieldErr.Count)
}

func TestElementBounds(t *testing.T) {
	msg := parmMessage()

	el, err := msg.Element(1)
	require.NoError(t, err)
	require.Equal(t, element.KindFloat, el.Kind())

	_, err = msg.Element(2)
	require.Error(t, err)
	_, err = msg.Element(-1)
	require.Error(t, err)
}

func TestTypedLookupMismatch(t *testing.T) {
	msg := parmMessage()
	_, err := msg.Int("Name")
	require.Error(t, err)
	var kindErr *element.KindError
	require.ErrorAs(t, err, &kindErr)
}

func TestString(t *testing.T) {
	msg := parmMessage()
	require.Equal(t, "PARM: Name=Voltage, Value=12.6", msg.String())
}

// Elements beyond the column list are rendered with their index as the label.
func TestStringExcessElements(t *testing.T) {
	def := format.NewDefinition(129, 23, "PARM", "Nf", []string{"Name", "Value"})
	msg := New(def, []element.Element{
		element.NewText("Voltage"),
		element.NewFloat(12.6),
		element.NewText("extra"),
	})
	require.Equal(t, "PARM: Name=Voltage, Value=12.6, 2=extra", msg.String())
}

func TestMap(t *testing.T) {
	msg := parmMessage()
	require.Equal(t, map[string]any{"Name": "Voltage", "Value": 12.6}, msg.Map())
}

func TestMapShortLine(t *testing.T) {
	def := format.NewDefinition(129, 23, "PARM", "Nf", []string{"Name", "Value"})
	msg := New(def, []element.Element{element.NewText("Voltage")})
	require.Equal(t, map[string]any{"Name": "Voltage"}, msg.Map())
}
