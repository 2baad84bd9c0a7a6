// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

package parser // import "github.com/nagyist/arduleader/parser"

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nagyist/arduleader/decode"
	"github.com/nagyist/arduleader/format"
	"github.com/nagyist/arduleader/message"
)

// A line splitting into fewer comma-separated tokens than this is blank or
// noise and yields neither a message nor an error.
const minTokens = 2

// Parser decodes one raw log line at a time against a format registry,
// registering new formats as control records are observed.
type Parser struct {
	registry *format.Registry
	decoder  *decode.Decoder
}

// New creates a parser over the given registry and decoder.
func New(registry *format.Registry, decoder *decode.Decoder) *Parser {
	return &Parser{registry: registry, decoder: decoder}
}

// Parse decodes one line. The first token names the format, the rest are its
// argument fields; every token is trimmed of surrounding whitespace. A
// control record registers the format it declares before the line itself is
// decoded, so the control line is decoded under the control format that was
// already registered, not under the format it declares. A nil message with a
// nil error means the line was blank or noise.
func (p *Parser) Parse(line string) (*message.Message, error) {
	tokens := strings.Split(line, ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}
	if len(tokens) < minTokens {
		return nil, nil
	}

	name, args := tokens[0], tokens[1:]
	def, ok := p.registry.Lookup(name)
	if !ok {
		return nil, &UnknownFormatError{Name: name}
	}
	if def.Name == format.ControlName {
		if err := p.registerFormat(args); err != nil {
			return nil, err
		}
	}
	return p.decoder.Decode(def, args)
}

// registerFormat interprets the argument fields of a control record as a
// format declaration and registers it, replacing any prior definition of the
// same name.
func (p *Parser) registerFormat(args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("control record declares %d of 4 required fields", len(args))
	}
	typeID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("control record type id: %w", err)
	}
	length, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("control record length: %w", err)
	}
	p.registry.Register(format.NewDefinition(typeID, length, args[2], args[3], args[4:]))
	return nil
}

// UnknownFormatError reports a line naming a format the registry has not
// seen. The line is dropped; there is no retry when the format appears
// later.
type UnknownFormatError struct {
	Name string
}

// Error will return the error message.
func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unrecognized format %q", e.Name)
}
