// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nagyist/arduleader/decode"
	"github.com/nagyist/arduleader/format"
)

func newParser() (*Parser, *format.Registry) {
	reg := format.NewRegistry()
	return New(reg, decode.New()), reg
}

func TestParseNoise(t *testing.T) {
	p, _ := newParser()

	for _, line := range []string{"", "   ", "PARM", "no commas here"} {
		msg, err := p.Parse(line)
		require.NoError(t, err, "line %q", line)
		require.Nil(t, msg, "line %q", line)
	}
}

func TestParseUnknownFormat(t *testing.T) {
	p, _ := newParser()

	msg, err := p.Parse("GPS, 3, 473566201")
	require.Nil(t, msg)
	var unknownErr *UnknownFormatError
	require.ErrorAs(t, err, &unknownErr)
	require.Equal(t, "GPS", unknownErr.Name)
}

func TestParseControlRegistersFormat(t *testing.T) {
	p, reg := newParser()

	msg, err := p.Parse("FMT, 129, 23, PARM, Nf, Name, Value")
	require.NoError(t, err)
	require.NotNil(t, msg)

	def, ok := reg.Lookup("PARM")
	require.True(t, ok)
	require.Equal(t, 129, def.TypeID)
	require.Equal(t, 23, def.Length)
	require.Equal(t, "Nf", def.Codes)
	require.Equal(t, []string{"Name", "Value"}, def.Columns)

	msg, err = p.Parse("PARM, Voltage, 12.6")
	require.NoError(t, err)
	name, err := msg.Text("Name")
	require.NoError(t, err)
	require.Equal(t, "Voltage", name)
	v, err := msg.Float("Value")
	require.NoError(t, err)
	require.Equal(t, 12.6, v)
}

// A control record is decoded as an instance of the control format, not of
// the format it declares.
func TestParseControlDecodedAsControl(t *testing.T) {
	p, _ := newParser()

	msg, err := p.Parse("FMT, 129, 23, PARM, Nf, Name, Value")
	require.NoError(t, err)
	require.Equal(t, format.ControlName, msg.Name())

	typ, err := msg.Int("Type")
	require.NoError(t, err)
	require.Equal(t, int64(129), typ)

	name, err := msg.Text("Name")
	require.NoError(t, err)
	require.Equal(t, "PARM", name)
}

// Redeclaring the control format decodes the line under the definition that
// was registered before the line's own side effect, and leaves subsequent
// control lines decodable.
func TestParseControlSelfDeclaration(t *testing.T) {
	p, reg := newParser()

	msg, err := p.Parse("FMT,128,89,FMT,BBnNZ,Type,Length,Name,Format,Columns")
	require.NoError(t, err)
	require.Equal(t, format.ControlName, msg.Name())

	typ, err := msg.Int("Type")
	require.NoError(t, err)
	require.Equal(t, int64(128), typ)
	length, err := msg.Int("Length")
	require.NoError(t, err)
	require.Equal(t, int64(89), length)
	name, err := msg.Text("Name")
	require.NoError(t, err)
	require.Equal(t, "FMT", name)
	codes, err := msg.Text("Format")
	require.NoError(t, err)
	require.Equal(t, "BBnNZ", codes)

	def, ok := reg.Lookup(format.ControlName)
	require.True(t, ok)
	require.Equal(t, []string{"Type", "Length", "Name", "Format", "Columns"}, def.Columns)

	// The registry entry still decodes further control lines.
	_, err = p.Parse("FMT, 129, 23, PARM, Nf, Name, Value")
	require.NoError(t, err)
	_, ok = reg.Lookup("PARM")
	require.True(t, ok)
}

func TestParseControlOverwrites(t *testing.T) {
	p, reg := newParser()

	_, err := p.Parse("FMT, 129, 23, PARM, Nf, Name, Value")
	require.NoError(t, err)
	_, err = p.Parse("FMT, 129, 24, PARM, NfB, Name, Value, Default")
	require.NoError(t, err)

	def, ok := reg.Lookup("PARM")
	require.True(t, ok)
	require.Equal(t, []string{"Name", "Value", "Default"}, def.Columns)
}

func TestParseMalformedControl(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{name: "TooFewFields", line: "FMT, 129, 23"},
		{name: "BadTypeID", line: "FMT, abc, 23, PARM, Nf, Name, Value"},
		{name: "BadLength", line: "FMT, 129, abc, PARM, Nf, Name, Value"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, reg := newParser()
			msg, err := p.Parse(tc.line)
			require.Error(t, err)
			require.Nil(t, msg)
			_, ok := reg.Lookup("PARM")
			require.False(t, ok)
		})
	}
}

func TestParseTrimsTokens(t *testing.T) {
	p, _ := newParser()

	_, err := p.Parse("FMT , 129 , 23 , PARM , Nf , Name , Value")
	require.NoError(t, err)
	msg, err := p.Parse("  PARM ,  Voltage  ,  12.6  ")
	require.NoError(t, err)
	name, err := msg.Text("Name")
	require.NoError(t, err)
	require.Equal(t, "Voltage", name)
}

// An unknown type code inside a declared format fails the line that uses it,
// never producing a partially converted message.
func TestParseUnknownCodeSkipsWholeLine(t *testing.T) {
	p, _ := newParser()

	_, err := p.Parse("FMT, 140, 12, ODD, BXB, A, B, C")
	// The control line itself decodes fine; 'X' only matters when an ODD
	// line is decoded.
	require.NoError(t, err)

	msg, err := p.Parse("ODD, 1, 2, 3")
	require.Error(t, err)
	require.Nil(t, msg)
}
