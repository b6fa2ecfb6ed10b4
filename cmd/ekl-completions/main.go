// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ekl-completions CLI, which turns
// knowledge-index files into Sublime Text completions.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/ekl-completions/internal/logger"
	"github.com/pdiddy/ekl-completions/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the ekl-completions CLI.
var rootCmd = &cobra.Command{
	Use:   "ekl-completions",
	Short: "Generate editor completions from knowledge-index files",
	Long: `ekl-completions scans knowledge-index files (*.CATKweIdx), parses the
symbol signature on each index line, and writes a Sublime Text
.sublime-completions file listing the callable functions and known types.

The catalog subcommands keep the same symbols in a local SQLite database
for lookups and YAML/JSON exports.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd.Root().PersistentFlags(), map[string]string{
			"log.level": "log-level",
			"log.json":  "log-json",
		}); err != nil {
			return err
		}
		return logger.Initialize(viper.GetString("log.level"), viper.GetBool("log.json"))
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ekl-completions.yaml or ~/.config/ekl-completions/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-json", false, "emit logs as JSON")
}

func initConfig() {
	setDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ekl-completions")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ekl-completions"))
		}
	}

	viper.SetEnvPrefix("EKL_COMPLETIONS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every configuration key so that environment
// variables and Unmarshal see them even without a config file.
func setDefaults(v *viper.Viper) {
	d := types.DefaultConfig()

	v.SetDefault("scan.source_dir", d.Scan.SourceDir)
	v.SetDefault("scan.patterns", d.Scan.Patterns)

	v.SetDefault("output.file", d.Output.File)
	v.SetDefault("output.scope", d.Output.Scope)
	v.SetDefault("output.aliases", d.Output.Aliases)

	v.SetDefault("catalog.dir", d.Catalog.Dir)
	v.SetDefault("catalog.max_results", d.Catalog.MaxResults)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.json", d.Log.JSON)
}

// bindFlags binds config keys to flags of the running command. Binding at
// run time keeps commands that share a key from overriding each other.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

// loadConfig returns the effective configuration: flags, then environment,
// then config file, then defaults.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
