// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ekl-completions/internal/aliases"
	"github.com/pdiddy/ekl-completions/internal/render"
	"github.com/pdiddy/ekl-completions/internal/signature"
	"github.com/pdiddy/ekl-completions/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <signature>...",
	Short: "Show how index signatures are parsed and rendered",
	Long: `Parse splits each signature (e.g. Access@Feature@String@@UndefinedType)
into name, parameter types and return type, and shows the completion it
would produce. Operator signatures are reported as rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return runParse(args, jsonOutput, cmd.OutOrStdout())
	},
}

// parseResult is the JSON form of one parsed signature.
type parseResult struct {
	Input      string            `json:"input"`
	Rejected   bool              `json:"rejected"`
	Signature  *types.Signature  `json:"signature,omitempty"`
	Completion *types.Completion `json:"completion,omitempty"`
}

func runParse(sigs []string, jsonOutput bool, w io.Writer) error {
	table := aliases.Default()
	results := make([]parseResult, len(sigs))
	for i, s := range sigs {
		results[i] = parseResult{Input: s, Rejected: true}
		parsed, ok := signature.Parse(s)
		if !ok {
			continue
		}
		c := render.FunctionCompletion(parsed, table)
		results[i] = parseResult{Input: s, Signature: &parsed, Completion: &c}
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		if r.Rejected {
			fmt.Fprintf(w, "%s: rejected\n", r.Input)
			continue
		}
		ret := r.Signature.Return
		if ret == "" {
			ret = "-"
		}
		fmt.Fprintf(w, "%s: name=%s params=%v return=%s contents=%s\n",
			r.Input, r.Signature.Name, r.Signature.Params, ret, r.Completion.Contents)
	}
	return nil
}

func init() {
	parseCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(parseCmd)
}
