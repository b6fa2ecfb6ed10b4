// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/pdiddy/ekl-completions/pkg/types"
)

// Write encodes doc as two-space indented JSON. Non-ASCII text and HTML
// characters are written verbatim.
func Write(w io.Writer, doc types.CompletionDocument) error {
	if doc.Completions == nil {
		doc.Completions = []types.Completion{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encoding completions")
	}
	return nil
}

// WriteFile writes doc to path, creating parent directories as needed.
func WriteFile(path string, doc types.CompletionDocument) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating output directory %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := Write(f, doc); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}

// ReadFile loads a completions document previously written by WriteFile.
func ReadFile(path string) (types.CompletionDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.CompletionDocument{}, errors.Wrapf(err, "reading %s", path)
	}
	var doc types.CompletionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.CompletionDocument{}, errors.Wrapf(err, "parsing %s", path)
	}
	return doc, nil
}
