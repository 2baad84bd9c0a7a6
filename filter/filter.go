// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

// Package filter selects messages with compiled boolean expressions.
package filter // import "github.com/nagyist/arduleader/filter"

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/nagyist/arduleader/message"
)

// Filter is a compiled boolean expression evaluated once per message. The
// expression environment exposes `name`, the format name, and `fields`, the
// message's named values.
type Filter struct {
	program *vm.Program
}

// Compile compiles a boolean expression into a filter.
func Compile(code string) (*Filter, error) {
	program, err := expr.Compile(code, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("failed to compile expression '%s': %w", code, err)
	}
	return &Filter{program: program}, nil
}

// Match evaluates the filter against one message.
func (f *Filter) Match(msg *message.Message) (bool, error) {
	env := map[string]any{
		"name":   msg.Name(),
		"fields": msg.Map(),
	}
	out, err := vm.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("running filter expr: %w", err)
	}
	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter expr returned %T, expected bool", out)
	}
	return matched, nil
}
