// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package signature parses the '@'-delimited symbol signatures stored in
// knowledge-index files.
//
// A signature has the form Name@Param1@Param2@@ReturnType. A bare name
// without any separator denotes a type or a parameterless symbol.
package signature

import (
	"strings"

	"github.com/pdiddy/ekl-completions/pkg/types"
)

const (
	sep       = "@"
	returnSep = "@@"
)

// operatorPrefixes are the leading characters of operator signatures, which
// never become completions.
const operatorPrefixes = "+-/*=<>"

// Parse splits sig into name, parameter types and return type. The boolean
// is false when the signature is empty or names an operator.
func Parse(sig string) (types.Signature, bool) {
	if sig == "" || strings.ContainsAny(sig[:1], operatorPrefixes) {
		return types.Signature{}, false
	}

	if !strings.Contains(sig, sep) {
		return types.Signature{Name: sig, Params: []string{}}, true
	}

	head, ret := sig, ""
	if i := strings.LastIndex(sig, returnSep); i >= 0 {
		head, ret = sig[:i], sig[i+len(returnSep):]
	}

	parts := strings.Split(head, sep)
	params := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		if p != "" {
			params = append(params, p)
		}
	}

	return types.Signature{Name: parts[0], Params: params, Return: ret}, true
}
