// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns parsed signatures and type names into Sublime Text
// completions and reads and writes the .sublime-completions document.
package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/ekl-completions/internal/aliases"
	"github.com/pdiddy/ekl-completions/pkg/types"
)

// typeHint is shown next to type completions in the popup.
const typeHint = "Type"

// Placeholder returns the numbered snippet field for a parameter of
// paramType at position idx (1-based).
func Placeholder(paramType string, idx int, table aliases.Table) string {
	key := strings.TrimSpace(paramType)
	label, ok := table.Lookup(key)
	if !ok {
		label = strings.ToLower(key)
		if key == "" {
			label = fmt.Sprintf("arg%d", idx)
		}
	}
	return fmt.Sprintf("${%d:%s}", idx, label)
}

// FunctionCompletion renders a callable as "Name\tP1,P2" / "Name(${1:p1}, ${2:p2})".
func FunctionCompletion(sig types.Signature, table aliases.Table) types.Completion {
	if len(sig.Params) == 0 {
		return types.Completion{
			Trigger:  sig.Name + "\t()",
			Contents: sig.Name + "()",
		}
	}

	fields := make([]string, len(sig.Params))
	for i, p := range sig.Params {
		fields[i] = Placeholder(p, i+1, table)
	}
	return types.Completion{
		Trigger:  sig.Name + "\t" + strings.Join(sig.Params, ","),
		Contents: sig.Name + "(" + strings.Join(fields, ", ") + ")",
	}
}

// TypeCompletion renders a type name as "Name\tType" / "Name".
func TypeCompletion(name string) types.Completion {
	return types.Completion{
		Trigger:  name + "\t" + typeHint,
		Contents: name,
	}
}

// Build assembles the completion document: callables first in the given
// order, then type names in the given order.
func Build(functions []types.Signature, typeNames []string, scope string, table aliases.Table) types.CompletionDocument {
	if scope == "" {
		scope = types.DefaultScope
	}
	if table == nil {
		table = aliases.Default()
	}

	completions := make([]types.Completion, 0, len(functions)+len(typeNames))
	for _, f := range functions {
		completions = append(completions, FunctionCompletion(f, table))
	}
	for _, t := range typeNames {
		completions = append(completions, TypeCompletion(t))
	}

	return types.CompletionDocument{
		Scope:       scope,
		Completions: completions,
	}
}
