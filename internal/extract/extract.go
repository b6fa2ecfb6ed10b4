// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract classifies knowledge-index lines into callable and type
// entries and aggregates them across files.
package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/ekl-completions/internal/signature"
	"github.com/pdiddy/ekl-completions/pkg/types"
)

// EntryKind categorizes a classified index line.
type EntryKind string

const (
	KindType     EntryKind = "type"
	KindFunction EntryKind = "function"
)

// Type tags written by the knowledge dictionary compiler.
const (
	tagType     = "1"
	tagFunction = "2"
)

// idxLine captures the signature and numeric type tag of an index line,
// e.g. "Idx:Access@Feature@String@@UndefinedType;Type:2;".
var idxLine = regexp.MustCompile(`^Idx:([^;]+);Type:(\d+);`)

// Entry is a line that classified as a type or a callable.
type Entry struct {
	Kind      EntryKind
	Signature types.Signature
}

// ClassifyLine matches a single index line. It reports false for lines that
// do not match the index pattern, carry an unknown tag, or whose name does
// not start with a letter.
func ClassifyLine(line string) (Entry, bool) {
	m := idxLine.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Entry{}, false
	}
	sig, tag := m[1], m[2]

	parsed, ok := signature.Parse(sig)
	if !ok || parsed.Name == "" {
		return Entry{}, false
	}

	// Names such as "2DArc" are dropped on purpose.
	first, _ := utf8.DecodeRuneInString(parsed.Name)
	if !unicode.IsLetter(first) {
		return Entry{}, false
	}

	switch tag {
	case tagType:
		return Entry{Kind: KindType, Signature: parsed}, true
	case tagFunction:
		return Entry{Kind: KindFunction, Signature: parsed}, true
	}
	return Entry{}, false
}

// ExtractText classifies every line of text. Callables are returned in
// encounter order; type names are unique and sorted.
func ExtractText(text string) ([]types.Signature, []string) {
	var functions []types.Signature
	seen := make(map[string]struct{})

	for _, line := range splitLines(text) {
		entry, ok := ClassifyLine(line)
		if !ok {
			continue
		}
		switch entry.Kind {
		case KindType:
			seen[entry.Signature.Name] = struct{}{}
		case KindFunction:
			functions = append(functions, entry.Signature)
		}
	}

	typeNames := make([]string, 0, len(seen))
	for name := range seen {
		typeNames = append(typeNames, name)
	}
	sort.Strings(typeNames)
	return functions, typeNames
}

// splitLines breaks text on every Unicode line boundary. Blank lines never
// match the index pattern, so they are dropped.
func splitLines(text string) []string {
	return strings.FieldsFunc(text, isLineBreak)
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
