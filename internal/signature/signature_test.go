// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/ekl-completions/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		sig  string
		want types.Signature
		ok   bool
	}{
		{
			name: "params and return type",
			sig:  "Access@Feature@String@@UndefinedType",
			want: types.Signature{Name: "Access", Params: []string{"Feature", "String"}, Return: "UndefinedType"},
			ok:   true,
		},
		{
			name: "bare name",
			sig:  "2DArc",
			want: types.Signature{Name: "2DArc", Params: []string{}},
			ok:   true,
		},
		{
			name: "no return type",
			sig:  "Refresh@Feature@@",
			want: types.Signature{Name: "Refresh", Params: []string{"Feature"}},
			ok:   true,
		},
		{
			name: "no double separator",
			sig:  "Sqrt@Real",
			want: types.Signature{Name: "Sqrt", Params: []string{"Real"}},
			ok:   true,
		},
		{
			name: "return type without params",
			sig:  "Now@@TIME",
			want: types.Signature{Name: "Now", Params: []string{}, Return: "TIME"},
			ok:   true,
		},
		{
			name: "empty params dropped",
			sig:  "Point@@Real@@Real@@Point",
			want: types.Signature{Name: "Point", Params: []string{"Real", "Real"}, Return: "Point"},
			ok:   true,
		},
		{
			name: "empty name kept for caller to reject",
			sig:  "@Real@@Real",
			want: types.Signature{Name: "", Params: []string{"Real"}, Return: "Real"},
			ok:   true,
		},
		{name: "empty", sig: "", ok: false},
		{name: "plus operator", sig: "+@Real@Real@@Real", ok: false},
		{name: "minus operator", sig: "-@Integer@@Integer", ok: false},
		{name: "comparison operator", sig: "<=@Real@Real@@Boolean", ok: false},
		{name: "equals operator", sig: "=", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.sig)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Key(t *testing.T) {
	a, ok := Parse("Access@Feature@@X")
	assert.True(t, ok)
	b, ok := Parse("Access@Feature@@Y")
	assert.True(t, ok)
	assert.Equal(t, a.Key(), b.Key())

	c, ok := Parse("Access@Feature@String@@X")
	assert.True(t, ok)
	assert.NotEqual(t, a.Key(), c.Key())
}
