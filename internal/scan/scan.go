// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan discovers knowledge-index files in a directory and feeds their
// contents through the extractor.
package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gobwas/glob"

	"github.com/pdiddy/ekl-completions/internal/extract"
	"github.com/pdiddy/ekl-completions/internal/logger"
	"github.com/pdiddy/ekl-completions/pkg/types"
)

// Summary holds counts from a scan run.
type Summary struct {
	Read   int
	Failed int
}

// Total returns the number of files visited.
func (s Summary) Total() int {
	return s.Read + s.Failed
}

// HasFailures reports whether any file could not be read.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Sources lists the files directly inside cfg.SourceDir whose names match any
// of cfg.Patterns. Files are ordered by pattern, then by name; a file matched
// by several patterns is listed once. A missing source directory is the only
// error besides an invalid pattern.
func Sources(cfg types.ScanConfig) ([]string, error) {
	info, err := os.Stat(cfg.SourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithHint(
				errors.Newf("source directory %s does not exist", cfg.SourceDir),
				"set --source-dir or scan.source_dir to the folder holding the index files",
			)
		}
		return nil, errors.Wrapf(err, "inspecting source directory %s", cfg.SourceDir)
	}
	if !info.IsDir() {
		return nil, errors.Newf("source path %s is not a directory", cfg.SourceDir)
	}

	patterns := cfg.Patterns
	if len(patterns) == 0 {
		patterns = []string{types.DefaultPattern}
	}
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, errors.Wrapf(err, "compiling pattern %q", p)
		}
		globs = append(globs, g)
	}

	entries, err := os.ReadDir(cfg.SourceDir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading source directory %s", cfg.SourceDir)
	}

	var paths []string
	listed := make(map[string]bool)
	for _, g := range globs {
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || listed[name] || !g.Match(name) {
				continue
			}
			listed[name] = true
			paths = append(paths, filepath.Join(cfg.SourceDir, name))
		}
	}
	return paths, nil
}

// Scan reads every source file and aggregates its entries. Unreadable files
// are logged and skipped. Only a missing source directory, an invalid
// pattern, or cancellation produce an error.
func Scan(ctx context.Context, cfg types.ScanConfig, progress Reporter) (*extract.Collection, Summary, error) {
	if progress == nil {
		progress = NoOpReporter{}
	}

	paths, err := Sources(cfg)
	if err != nil {
		return nil, Summary{}, err
	}

	coll := extract.NewCollection()
	var summary Summary
	progress.OnStart(len(paths))

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return coll, summary, ctx.Err()
		default:
		}

		logger.Logger.Infow("reading", "path", path)
		text, err := readText(path)
		if err != nil {
			logger.Logger.Warnw("skipping unreadable file", "path", path, "error", err)
			summary.Failed++
			progress.OnFile(path)
			continue
		}

		functions, typeNames := extract.ExtractText(text)
		added := coll.AddFunctions(functions)
		coll.AddTypes(typeNames)
		logger.Logger.Debugw("extracted",
			"path", path,
			"functions", len(functions),
			"new_functions", added,
			"types", len(typeNames))

		summary.Read++
		progress.OnFile(path)
	}

	progress.OnComplete()
	return coll, summary, nil
}

// readText loads path as UTF-8, dropping any invalid byte sequences.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
