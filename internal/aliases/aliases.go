// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aliases maps parameter type names to the short labels used inside
// snippet placeholders, e.g. "Feature" becomes ${1:feat}.
//
// The built-in table can be extended or overridden by a YAML file holding a
// flat mapping of type name to label:
//
//	Feature: f
//	Curve: crv
package aliases

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.yaml.in/yaml/v3"
)

// Table maps a parameter type name to its placeholder label.
type Table map[string]string

var defaults = Table{
	"String":    "name",
	"Real":      "real",
	"Integer":   "int",
	"Boolean":   "bool",
	"Feature":   "feat",
	"List":      "list",
	"Angle":     "angle",
	"LENGTH":    "len",
	"TIME":      "time",
	"Magnitude": "mag",
}

// Default returns a fresh copy of the built-in table.
func Default() Table {
	t := make(Table, len(defaults))
	for k, v := range defaults {
		t[k] = v
	}
	return t
}

// Lookup returns the label for typeName, if any.
func (t Table) Lookup(typeName string) (string, bool) {
	v, ok := t[typeName]
	return v, ok
}

// Load returns the built-in table merged with the overrides in path.
// An empty path or a missing file yields the built-in table. Entries with a
// blank key or label are skipped.
func Load(path string) (Table, error) {
	table := Default()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return table, nil
		}
		return nil, errors.Wrapf(err, "reading alias file %s", path)
	}

	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "parsing alias file %s", path),
			"the alias file must be a flat YAML mapping of type name to label",
		)
	}

	for k, v := range overrides {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		table[k] = v
	}
	return table, nil
}
