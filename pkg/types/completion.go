// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultScope is the editor scope selector the completions apply to.
const DefaultScope = "source.ekl"

// Completion is one editor suggestion: the text typed to invoke it and the
// snippet inserted when it is accepted.
type Completion struct {
	// Trigger is the display text, "name\thint".
	Trigger string `json:"trigger" yaml:"trigger"`

	// Contents is the inserted snippet with ${n:label} placeholders.
	Contents string `json:"contents" yaml:"contents"`
}

// CompletionDocument is the on-disk .sublime-completions structure.
type CompletionDocument struct {
	Scope       string       `json:"scope" yaml:"scope"`
	Completions []Completion `json:"completions" yaml:"completions"`
}

// Triggers returns the trigger strings in document order.
func (d CompletionDocument) Triggers() []string {
	out := make([]string, len(d.Completions))
	for i, c := range d.Completions {
		out[i] = c.Trigger
	}
	return out
}
