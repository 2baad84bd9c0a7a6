// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

// Package format holds the self-describing schema of a log: named format
// definitions and the per-stream registry they are collected in.
package format // import "github.com/nagyist/arduleader/format"

// ControlName is the format name of a control record, the line kind that
// declares or redeclares a format.
const ControlName = "FMT"

// Bootstrap values of the control record's own definition. A fresh registry
// carries this definition so the first control line of a log can be decoded.
const (
	controlTypeID = 0x80
	controlLength = 89
	controlCodes  = "BBnNZ"
)

// Definition is the named, ordered type-code-and-column description for one
// message kind. Length is the producer-declared byte length of the binary
// form and is informational only; nothing cross-checks it against the codes
// or columns.
type Definition struct {
	TypeID  int      `json:"type_id" yaml:"type_id"`
	Name    string   `json:"name"    yaml:"name"`
	Length  int      `json:"length"  yaml:"length"`
	Codes   string   `json:"codes"   yaml:"codes"`
	Columns []string `json:"columns" yaml:"columns"`

	index map[string]int
}

// NewDefinition builds a definition and its column name index. A repeated
// column name keeps the last index.
func NewDefinition(typeID, length int, name, codes string, columns []string) *Definition {
	d := &Definition{
		TypeID:  typeID,
		Name:    name,
		Length:  length,
		Codes:   codes,
		Columns: columns,
		index:   make(map[string]int, len(columns)),
	}
	for i, col := range columns {
		d.index[col] = i
	}
	return d
}

// ColumnIndex returns the element index of a named column. Its second return
// value will be false if the definition has no such column.
func (d *Definition) ColumnIndex(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// Control returns a fresh bootstrap definition of the control record format.
func Control() *Definition {
	return NewDefinition(controlTypeID, controlLength, ControlName, controlCodes,
		[]string{"Type", "Length", "Name", "Format", "Columns"})
}
