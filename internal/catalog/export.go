// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.yaml.in/yaml/v3"
)

const exportLimit = 1000000

// ExportYAML writes the matching records to <dir>/export.yaml and returns the path.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) (string, error) {
	records, err := s.exportRecords(ctx, opts)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, "export.yaml")
	data, err := yaml.Marshal(records)
	if err != nil {
		return "", errors.Wrap(err, "marshaling YAML")
	}
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the matching records to <dir>/export.json and returns the path.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) (string, error) {
	records, err := s.exportRecords(ctx, opts)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, "export.json")
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "marshaling JSON")
	}
	return path, os.WriteFile(path, data, 0o644)
}

func (s *Store) exportRecords(ctx context.Context, opts QueryOptions) ([]Record, error) {
	if opts.MaxResults <= 0 {
		opts.MaxResults = exportLimit
	}
	records, err := s.Lookup(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "querying for export")
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}
