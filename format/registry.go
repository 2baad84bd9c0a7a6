// Copyright The arduleader Authors
// SPDX-License-Identifier: Apache-2.0

package format // import "github.com/nagyist/arduleader/format"

import "sort"

// Registry maps format names to their current definitions. It grows as
// control records are observed; entries are only ever replaced, never
// removed. A Registry is not safe for concurrent use: each stream owns an
// independent instance.
type Registry struct {
	defs map[string]*Definition
}

// NewRegistry creates a registry seeded with the control record's own
// definition.
func NewRegistry() *Registry {
	r := &Registry{defs: make(map[string]*Definition)}
	r.Register(Control())
	return r
}

// Register inserts or replaces the definition keyed by its name.
func (r *Registry) Register(def *Definition) {
	r.defs[def.Name] = def
}

// Lookup looks up a definition by format name. Its second return value will
// be false if no definition is registered under that name.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Definitions returns a name-ordered snapshot of the registered definitions.
func (r *Registry) Definitions() []*Definition {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]*Definition, 0, len(names))
	for _, name := range names {
		defs = append(defs, r.defs[name])
	}
	return defs
}
