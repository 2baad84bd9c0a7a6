// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

package lines // import "github.com/nagyist/arduleader/lines"

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/nagyist/arduleader/arduerrors"
)

var encodingOverrides = map[string]encoding.Encoding{
	"utf-16":   unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf16":    unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf8":     unicode.UTF8,
	"utf-8":    unicode.UTF8,
	"ascii":    encoding.Nop,
	"us-ascii": encoding.Nop,
	"nop":      encoding.Nop,
	"":         encoding.Nop,
}

// LookupEncoding resolves an encoding name, falling back to the IANA index
// for names without an override.
func LookupEncoding(enc string) (encoding.Encoding, error) {
	if e, ok := encodingOverrides[strings.ToLower(enc)]; ok {
		return e, nil
	}
	e, err := ianaindex.IANA.Encoding(enc)
	if err != nil {
		return nil, arduerrors.NewError(
			"unsupported encoding",
			"use an IANA charset name or one of utf-8, utf-16le, utf-16be, ascii, nop",
			"encoding", enc,
		)
	}
	if e == nil {
		return nil, arduerrors.NewError(
			"no charmap defined for encoding",
			"use an IANA charset name or one of utf-8, utf-16le, utf-16be, ascii, nop",
			"encoding", enc,
		)
	}
	return e, nil
}

// IsNop returns true when the encoding performs no transformation.
func IsNop(enc string) bool {
	e, err := LookupEncoding(enc)
	if err != nil {
		return false
	}
	return e == encoding.Nop
}
