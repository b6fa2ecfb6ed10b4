// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ekl-completions/internal/aliases"
	"github.com/pdiddy/ekl-completions/internal/catalog"
	"github.com/pdiddy/ekl-completions/internal/extract"
	"github.com/pdiddy/ekl-completions/internal/scan"
	"github.com/pdiddy/ekl-completions/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the symbol catalog (store, lookup, export)",
	Long: `Catalog keeps the scanned symbols in a local SQLite database. Use
subcommands to rebuild it from the index files, look symbols up by name,
or export it.`,
}

var catalogFlagKeys = map[string]string{
	"catalog.dir":         "catalog-dir",
	"catalog.max_results": "max-results",
}

// --- store subcommand ---

var catalogStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Scan the index files and replace the catalog contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd.Flags(), scanFlagKeys); err != nil {
			return err
		}
		if err := bindFlags(cmd.Flags(), map[string]string{"output.aliases": "aliases"}); err != nil {
			return err
		}
		cfg, err := catalogConfig(cmd)
		if err != nil {
			return err
		}
		showProgress, _ := cmd.Flags().GetBool("progress")
		return runCatalogStore(cmd.Context(), cfg, progressReporter(showProgress), cmd.OutOrStdout())
	},
}

func runCatalogStore(ctx context.Context, cfg types.Config, progress scan.Reporter, w io.Writer) error {
	table, err := aliases.Load(cfg.Output.Aliases)
	if err != nil {
		return err
	}

	coll, summary, err := scan.Scan(ctx, cfg.Scan, progress)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		fmt.Fprintf(w, "skipped %d unreadable file(s)\n", summary.Failed)
	}

	store, err := catalog.NewStore(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Ingest(ctx, coll, table, w)
	return err
}

// --- lookup subcommand ---

var catalogLookupCmd = &cobra.Command{
	Use:   "lookup [prefix]",
	Short: "Find catalog symbols by name prefix",
	Long: `Lookup lists catalog symbols whose name starts with the given prefix
(case-sensitive). Without a prefix every symbol is listed, up to the limit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := catalogConfig(cmd)
		if err != nil {
			return err
		}
		opts, err := queryOptsFromFlags(cmd, args)
		if err != nil {
			return err
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return runCatalogLookup(cmd.Context(), cfg.Catalog, opts, jsonOutput, cmd.OutOrStdout())
	},
}

func runCatalogLookup(ctx context.Context, cfg types.CatalogConfig, opts catalog.QueryOptions, jsonOutput bool, w io.Writer) error {
	store, err := catalog.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Lookup(ctx, opts)
	if err != nil {
		return err
	}
	return formatLookupOutput(records, jsonOutput, w)
}

func formatLookupOutput(records []catalog.Record, jsonOutput bool, w io.Writer) error {
	if jsonOutput {
		if records == nil {
			records = []catalog.Record{}
		}
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No symbols found.")
		return nil
	}

	fmt.Fprintf(w, "%-8s  %-30s  %-5s  %-30s  %s\n", "Kind", "Name", "Arity", "Params", "Return")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, r := range records {
		name := r.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		params := strings.Join(r.Params, ",")
		if len(params) > 30 {
			params = params[:27] + "..."
		}
		fmt.Fprintf(w, "%-8s  %-30s  %-5d  %-30s  %s\n", r.Kind, name, r.Arity, params, r.Return)
	}

	fmt.Fprintf(w, "\n%d symbols\n", len(records))
	return nil
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export [prefix]",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes the catalog (or the subset matching the filters) to
export.yaml or export.json inside the catalog directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := catalogConfig(cmd)
		if err != nil {
			return err
		}
		opts, err := queryOptsFromFlags(cmd, args)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return runCatalogExport(cmd.Context(), cfg.Catalog, opts, format, cmd.OutOrStdout())
	},
}

func runCatalogExport(ctx context.Context, cfg types.CatalogConfig, opts catalog.QueryOptions, format string, w io.Writer) error {
	store, err := catalog.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(ctx, opts)
	case "json":
		path, err = store.ExportJSON(ctx, opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Exported to %s\n", path)
	return nil
}

// --- shared helpers ---

func catalogConfig(cmd *cobra.Command) (types.Config, error) {
	if err := bindFlags(cmd.Flags(), catalogFlagKeys); err != nil {
		return types.Config{}, err
	}
	return loadConfig()
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) (catalog.QueryOptions, error) {
	var opts catalog.QueryOptions
	if len(args) > 0 {
		opts.Prefix = args[0]
	}

	kind, _ := cmd.Flags().GetString("kind")
	switch extract.EntryKind(kind) {
	case "", extract.KindFunction, extract.KindType:
		opts.Kind = extract.EntryKind(kind)
	default:
		return opts, fmt.Errorf("unsupported kind %q: use function or type", kind)
	}

	if cmd.Flags().Changed("arity") {
		arity, _ := cmd.Flags().GetInt("arity")
		if arity < 0 {
			return opts, fmt.Errorf("arity must not be negative, got %d", arity)
		}
		opts.Arity = &arity
	}

	opts.MaxResults, _ = cmd.Flags().GetInt("limit")
	return opts, nil
}

func init() {
	d := types.DefaultConfig()

	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("catalog-dir", d.Catalog.Dir, "directory holding symbols.db and exports")
	catalogCmd.PersistentFlags().Int("max-results", d.Catalog.MaxResults, "default maximum number of lookup results")

	// Store flags.
	addScanFlags(catalogStoreCmd)
	catalogStoreCmd.Flags().String("aliases", "", "YAML file overriding placeholder labels")

	// Lookup and export filters.
	for _, c := range []*cobra.Command{catalogLookupCmd, catalogExportCmd} {
		c.Flags().String("kind", "", "filter by kind: function or type")
		c.Flags().Int("arity", 0, "filter functions by parameter count")
		c.Flags().Int("limit", 0, "maximum results (0 = default for lookup, all for export)")
	}
	catalogLookupCmd.Flags().Bool("json", false, "output results as JSON")
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	// Wire subcommands.
	catalogCmd.AddCommand(catalogStoreCmd)
	catalogCmd.AddCommand(catalogLookupCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
