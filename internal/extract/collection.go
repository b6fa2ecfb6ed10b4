// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"sort"

	"github.com/pdiddy/ekl-completions/pkg/types"
)

// Collection aggregates entries from many files. Callables are deduplicated
// by name and arity with the first occurrence kept; type names form a set.
type Collection struct {
	functions []types.Signature
	seen      map[types.SignatureKey]struct{}
	types     map[string]struct{}
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{
		seen:  make(map[types.SignatureKey]struct{}),
		types: make(map[string]struct{}),
	}
}

// AddFunctions appends callables not already present. It returns the number
// of signatures that were new.
func (c *Collection) AddFunctions(sigs []types.Signature) int {
	added := 0
	for _, s := range sigs {
		key := s.Key()
		if _, dup := c.seen[key]; dup {
			continue
		}
		c.seen[key] = struct{}{}
		c.functions = append(c.functions, s)
		added++
	}
	return added
}

// AddTypes merges type names into the set.
func (c *Collection) AddTypes(names []string) {
	for _, n := range names {
		c.types[n] = struct{}{}
	}
}

// AddText extracts text and merges the result.
func (c *Collection) AddText(text string) {
	functions, typeNames := ExtractText(text)
	c.AddFunctions(functions)
	c.AddTypes(typeNames)
}

// Functions returns the deduplicated callables in first-seen order.
func (c *Collection) Functions() []types.Signature {
	out := make([]types.Signature, len(c.functions))
	copy(out, c.functions)
	return out
}

// Types returns the type names in sorted order.
func (c *Collection) Types() []string {
	out := make([]string, 0, len(c.types))
	for n := range c.types {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of callables and types held.
func (c *Collection) Len() (functions, typeNames int) {
	return len(c.functions), len(c.types)
}
