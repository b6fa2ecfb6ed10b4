// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/ekl-completions/pkg/types"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Entry
		wantOK bool
	}{
		{
			name: "callable with params and return",
			line: "Idx:Access@Feature@String@@UndefinedType;Type:2;",
			want: Entry{
				Kind:      KindFunction,
				Signature: types.Signature{Name: "Access", Params: []string{"Feature", "String"}, Return: "UndefinedType"},
			},
			wantOK: true,
		},
		{
			name:   "type entry",
			line:   "Idx:Line;Type:1;",
			want:   Entry{Kind: KindType, Signature: types.Signature{Name: "Line", Params: []string{}}},
			wantOK: true,
		},
		{
			name:   "surrounding whitespace trimmed",
			line:   "  \tIdx:Plane;Type:1;Extra:stuff  ",
			want:   Entry{Kind: KindType, Signature: types.Signature{Name: "Plane", Params: []string{}}},
			wantOK: true,
		},
		{
			name:   "non-ASCII letter accepted",
			line:   "Idx:Équerre;Type:1;",
			want:   Entry{Kind: KindType, Signature: types.Signature{Name: "Équerre", Params: []string{}}},
			wantOK: true,
		},
		{name: "digit-leading type dropped", line: "Idx:2DArc;Type:1;"},
		{name: "digit-leading callable dropped", line: "Idx:3DPoint@Real@@Point;Type:2;"},
		{name: "operator rejected", line: "Idx:+@Real@Real@@Real;Type:2;"},
		{name: "empty name rejected", line: "Idx:@Real@@Real;Type:2;"},
		{name: "unknown tag ignored", line: "Idx:Length;Type:3;"},
		{name: "multi-digit tag ignored", line: "Idx:Length;Type:12;"},
		{name: "missing trailing semicolon", line: "Idx:Length;Type:1"},
		{name: "not an index line", line: "Doc:Length;Type:1;"},
		{name: "blank", line: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractText(t *testing.T) {
	text := "Idx:Access@Feature@String@@UndefinedType;Type:2;\r\n" +
		"Idx:Point;Type:1;\n" +
		"garbage line\n" +
		"Idx:Line;Type:1;\r" +
		"Idx:Point;Type:1;\n" +
		"Idx:Sqrt@Real@@Real;Type:2;\n" +
		"Idx:Access@Feature@String@@UndefinedType;Type:2;\n"

	functions, typeNames := ExtractText(text)

	require.Len(t, functions, 3, "duplicates within one text are kept until aggregation")
	assert.Equal(t, "Access", functions[0].Name)
	assert.Equal(t, "Sqrt", functions[1].Name)
	assert.Equal(t, []string{"Real"}, functions[1].Params)
	assert.Equal(t, "Real", functions[1].Return)
	assert.Equal(t, []string{"Line", "Point"}, typeNames)
}

func TestExtractText_Empty(t *testing.T) {
	functions, typeNames := ExtractText("")
	assert.Empty(t, functions)
	assert.Empty(t, typeNames)
}

func TestExtractText_UnicodeLineSeparators(t *testing.T) {
	text := "Idx:Point;Type:1;\u2028Idx:Line;Type:1;\u0085Idx:Curve;Type:1;"
	_, typeNames := ExtractText(text)
	assert.Equal(t, []string{"Curve", "Line", "Point"}, typeNames)
}
