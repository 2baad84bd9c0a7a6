// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

package element

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypedAccess(t *testing.T) {
	el := NewInt(42)
	v, err := el.Int()
	require.NoError(t, err)
	require.Equal(t, int64(42), v)

	f := NewFloat(12.6)
	fv, err := f.Float()
	require.NoError(t, err)
	require.Equal(t, 12.6, fv)

	s := NewText("Voltage")
	sv, err := s.Text()
	require.NoError(t, err)
	require.Equal(t, "Voltage", sv)
}

func TestKindMismatch(t *testing.T) {
	cases := []struct {
		name   string
		access func(Element) error
		el     Element
		want   Kind
		got    Kind
	}{
		{
			name:   "IntOnText",
			access: func(e Element) error { _, err := e.Int(); return err },
			el:     NewText("12"),
			want:   KindInt,
			got:    KindText,
		},
		{
			name:   "FloatOnInt",
			access: func(e Element) error { _, err := e.Float(); return err },
			el:     NewInt(12),
			want:   KindFloat,
			got:    KindInt,
		},
		{
			name:   "TextOnFloat",
			access: func(e Element) error { _, err := e.Text(); return err },
			el:     NewFloat(1.5),
			want:   KindText,
			got:    KindFloat,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.access(tc.el)
			require.Error(t, err)
			var kindErr *KindError
			require.ErrorAs(t, err, &kindErr)
			require.Equal(t, tc.want, kindErr.Want)
			require.Equal(t, tc.got, kindErr.Got)
		})
	}
}

func TestAny(t *testing.T) {
	require.Equal(t, int64(7), NewInt(7).Any())
	require.Equal(t, 0.5, NewFloat(0.5).Any())
	require.Equal(t, "x", NewText("x").Any())
}

func TestString(t *testing.T) {
	require.Equal(t, "-3", NewInt(-3).String())
	require.Equal(t, "12.6", NewFloat(12.6).String())
	require.Equal(t, "4.71234567e+08", NewFloat(471234567).String())
	require.Equal(t, "FMT", NewText("FMT").String())
}

func TestKindString(t *testing.T) {
	require.Equal(t, "int", KindInt.String())
	require.Equal(t, "float", KindFloat.String())
	require.Equal(t, "text", KindText.String())
	require.Equal(t, "Kind(9)", Kind(9).String())
}
