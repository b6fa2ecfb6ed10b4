// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/ekl-completions/internal/catalog"
	"github.com/pdiddy/ekl-completions/internal/extract"
	"github.com/pdiddy/ekl-completions/internal/render"
	"github.com/pdiddy/ekl-completions/internal/scan"
	"github.com/pdiddy/ekl-completions/pkg/types"
)

const sampleIndex = `Idx:Access@Feature@String@@UndefinedType;Type:2;
Idx:Access@Feature@String@@Other;Type:2;
Idx:2DArc;Type:1;
Idx:Point;Type:1;
Idx:+@Real@Real@@Real;Type:2;
Idx:Now@@TIME;Type:2;
Idx:Line;Type:1;
`

// testConfig writes sampleIndex into a fresh source directory and returns a
// configuration pointing at it.
func testConfig(t *testing.T) types.Config {
	t.Helper()
	root := t.TempDir()
	src := filepath.Join(root, "src")
	require.NoError(t, os.Mkdir(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "Knowledge.CATKweIdx"), []byte(sampleIndex), 0o644))

	cfg := types.DefaultConfig()
	cfg.Scan.SourceDir = src
	cfg.Output.File = filepath.Join(root, "out", types.DefaultOutputFile)
	cfg.Catalog.Dir = filepath.Join(root, "catalog")
	return cfg
}

func TestCommandsRegistered(t *testing.T) {
	for _, path := range [][]string{
		{"generate"},
		{"parse"},
		{"version"},
		{"catalog", "store"},
		{"catalog", "lookup"},
		{"catalog", "export"},
	} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, strings.Join(path, " "))
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestConfigDefaultsAndEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("EKL_COMPLETIONS_OUTPUT_SCOPE", "source.catia")
	t.Setenv("EKL_COMPLETIONS_SCAN_SOURCE_DIR", "/opt/knowledge")

	initConfig()
	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "source.catia", cfg.Output.Scope)
	assert.Equal(t, "/opt/knowledge", cfg.Scan.SourceDir)
	assert.Equal(t, []string{types.DefaultPattern}, cfg.Scan.Patterns)
	assert.Equal(t, types.DefaultOutputFile, cfg.Output.File)
	assert.Equal(t, 20, cfg.Catalog.MaxResults)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestRunGenerate(t *testing.T) {
	cfg := testConfig(t)

	var out bytes.Buffer
	require.NoError(t, runGenerate(context.Background(), cfg, scan.NoOpReporter{}, &out))

	assert.Contains(t, out.String(), "functions: 2 | types: 2")
	assert.Contains(t, out.String(), "wrote completions to "+cfg.Output.File)

	doc, err := render.ReadFile(cfg.Output.File)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultScope, doc.Scope)
	assert.Equal(t, []string{
		"Access\tFeature,String",
		"Now\t()",
		"Line\tType",
		"Point\tType",
	}, doc.Triggers())
	assert.Equal(t, "Access(${1:feat}, ${2:name})", doc.Completions[0].Contents)
}

func TestRunGenerate_Stdout(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.File = stdoutPath
	cfg.Output.Scope = "source.custom"

	var out bytes.Buffer
	require.NoError(t, runGenerate(context.Background(), cfg, nil, &out))

	var doc types.CompletionDocument
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc), "stdout must hold only the document")
	assert.Equal(t, "source.custom", doc.Scope)
	assert.Len(t, doc.Completions, 4)
}

func TestRunGenerate_CustomAliases(t *testing.T) {
	cfg := testConfig(t)
	aliasFile := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(aliasFile, []byte("Feature: f\n"), 0o644))
	cfg.Output.Aliases = aliasFile

	require.NoError(t, runGenerate(context.Background(), cfg, nil, &bytes.Buffer{}))

	doc, err := render.ReadFile(cfg.Output.File)
	require.NoError(t, err)
	assert.Equal(t, "Access(${1:f}, ${2:name})", doc.Completions[0].Contents)
}

func TestRunGenerate_EmptySourceStillWritesDocument(t *testing.T) {
	cfg := testConfig(t)
	cfg.Scan.Patterns = []string{"*.none"}

	var out bytes.Buffer
	require.NoError(t, runGenerate(context.Background(), cfg, nil, &out))
	assert.Contains(t, out.String(), "functions: 0 | types: 0")

	doc, err := render.ReadFile(cfg.Output.File)
	require.NoError(t, err)
	assert.Empty(t, doc.Completions)
}

func TestRunGenerate_MissingSourceDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.Scan.SourceDir = filepath.Join(t.TempDir(), "missing")

	err := runGenerate(context.Background(), cfg, nil, &bytes.Buffer{})
	require.Error(t, err)
	_, statErr := os.Stat(cfg.Output.File)
	assert.True(t, os.IsNotExist(statErr), "no document is written when the source directory is missing")
}

func TestRunParse(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runParse([]string{"Access@Feature@String@@UndefinedType", "+@Real@@Real", "2DArc"}, false, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Access@Feature@String@@UndefinedType: name=Access params=[Feature String] return=UndefinedType contents=Access(${1:feat}, ${2:name})", lines[0])
	assert.Equal(t, "+@Real@@Real: rejected", lines[1])
	assert.Equal(t, "2DArc: name=2DArc params=[] return=- contents=2DArc()", lines[2])
}

func TestRunParse_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runParse([]string{"Now@@TIME", "<"}, true, &out))

	var results []parseResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 2)
	assert.False(t, results[0].Rejected)
	assert.Equal(t, "TIME", results[0].Signature.Return)
	assert.Equal(t, "Now\t()", results[0].Completion.Trigger)
	assert.True(t, results[1].Rejected)
	assert.Nil(t, results[1].Signature)
}

func TestCatalogCommands(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, runCatalogStore(ctx, cfg, nil, &out))
	assert.Contains(t, out.String(), "catalog: 2 functions, 2 types")

	out.Reset()
	require.NoError(t, runCatalogLookup(ctx, cfg.Catalog, catalog.QueryOptions{Prefix: "Acc"}, false, &out))
	assert.Contains(t, out.String(), "Access")
	assert.Contains(t, out.String(), "1 symbols")

	out.Reset()
	require.NoError(t, runCatalogLookup(ctx, cfg.Catalog, catalog.QueryOptions{Prefix: "Zz"}, false, &out))
	assert.Contains(t, out.String(), "No symbols found.")

	out.Reset()
	require.NoError(t, runCatalogLookup(ctx, cfg.Catalog, catalog.QueryOptions{Kind: extract.KindType}, true, &out))
	var records []catalog.Record
	require.NoError(t, json.Unmarshal(out.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "Line", records[0].Name)

	out.Reset()
	require.NoError(t, runCatalogExport(ctx, cfg.Catalog, catalog.QueryOptions{}, "json", &out))
	assert.Contains(t, out.String(), filepath.Join(cfg.Catalog.Dir, "export.json"))

	err := runCatalogExport(ctx, cfg.Catalog, catalog.QueryOptions{}, "xml", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
