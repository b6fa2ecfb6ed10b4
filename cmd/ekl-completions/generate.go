// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ekl-completions/internal/aliases"
	"github.com/pdiddy/ekl-completions/internal/render"
	"github.com/pdiddy/ekl-completions/internal/scan"
	"github.com/pdiddy/ekl-completions/pkg/types"
)

// stdoutPath as --output writes the document to stdout.
const stdoutPath = "-"

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the .sublime-completions file from the index files",
	Long: `Generate reads every file in the source directory matching the glob
patterns, extracts callable signatures (Type:2) and type names (Type:1),
deduplicates callables by name and arity, and writes the completions
document. Unreadable files are reported and skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd.Flags(), scanFlagKeys); err != nil {
			return err
		}
		if err := bindFlags(cmd.Flags(), outputFlagKeys); err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		showProgress, _ := cmd.Flags().GetBool("progress")
		return runGenerate(cmd.Context(), cfg, progressReporter(showProgress), cmd.OutOrStdout())
	},
}

// scanFlagKeys maps config keys to the scan flags shared by generate and catalog store.
var scanFlagKeys = map[string]string{
	"scan.source_dir": "source-dir",
	"scan.patterns":   "glob",
}

var outputFlagKeys = map[string]string{
	"output.file":    "output",
	"output.scope":   "scope",
	"output.aliases": "aliases",
}

func runGenerate(ctx context.Context, cfg types.Config, progress scan.Reporter, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	table, err := aliases.Load(cfg.Output.Aliases)
	if err != nil {
		return err
	}

	coll, summary, err := scan.Scan(ctx, cfg.Scan, progress)
	if err != nil {
		return err
	}

	functions, typeNames := coll.Functions(), coll.Types()
	doc := render.Build(functions, typeNames, cfg.Output.Scope, table)

	// Keep stdout pure JSON when the document goes there.
	status := w
	if cfg.Output.File == stdoutPath {
		status = os.Stderr
		if err := render.Write(w, doc); err != nil {
			return err
		}
	} else if err := render.WriteFile(cfg.Output.File, doc); err != nil {
		return err
	}

	if summary.HasFailures() {
		fmt.Fprintf(status, "skipped %d unreadable file(s)\n", summary.Failed)
	}
	fmt.Fprintf(status, "functions: %d | types: %d\n", len(functions), len(typeNames))
	if cfg.Output.File != stdoutPath {
		fmt.Fprintf(status, "wrote completions to %s\n", cfg.Output.File)
	}
	return nil
}

func progressReporter(show bool) scan.Reporter {
	if !show {
		return scan.NoOpReporter{}
	}
	return scan.NewBarReporter(os.Stderr)
}

// addScanFlags registers the flags that select the index files.
func addScanFlags(cmd *cobra.Command) {
	d := types.DefaultConfig()
	cmd.Flags().String("source-dir", d.Scan.SourceDir, "directory holding the index files (not searched recursively)")
	cmd.Flags().StringSlice("glob", d.Scan.Patterns, "file name pattern; repeat for several")
	cmd.Flags().Bool("progress", false, "show a progress bar while scanning")
}

func init() {
	d := types.DefaultConfig()
	addScanFlags(generateCmd)
	generateCmd.Flags().String("output", d.Output.File, `completions file to write ("-" for stdout)`)
	generateCmd.Flags().String("scope", d.Output.Scope, "editor scope selector written into the document")
	generateCmd.Flags().String("aliases", "", "YAML file overriding placeholder labels")

	rootCmd.AddCommand(generateCmd)
}
