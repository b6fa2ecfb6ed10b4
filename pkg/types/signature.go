// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Signature is a callable entry parsed from a knowledge-index line such as
// "Access@Feature@String@@UndefinedType".
type Signature struct {
	// Name is the callable name (e.g. "Access").
	Name string `json:"name" yaml:"name"`

	// Params lists the parameter type names in declaration order.
	Params []string `json:"params" yaml:"params"`

	// Return is the return type name. Empty means the signature declares none.
	Return string `json:"return,omitempty" yaml:"return,omitempty"`
}

// Arity returns the number of parameters.
func (s Signature) Arity() int {
	return len(s.Params)
}

// Key returns the deduplication identity of the signature: two signatures
// with the same name and arity are the same completion.
func (s Signature) Key() SignatureKey {
	return SignatureKey{Name: s.Name, Arity: len(s.Params)}
}

// SignatureKey identifies a callable by name and parameter count.
type SignatureKey struct {
	Name  string
	Arity int
}
