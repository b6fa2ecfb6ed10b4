// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultPattern matches the knowledge-index files shipped with the
// modeler's knowledge dictionaries.
const DefaultPattern = "*.CATKweIdx"

// DefaultOutputFile is the completions file written when none is configured.
const DefaultOutputFile = "EKL.CATKnowledge.sublime-completions"

// ScanConfig holds settings for the directory scan stage.
type ScanConfig struct {
	// SourceDir is the directory holding the index files. It is not searched recursively.
	SourceDir string `json:"source_dir" yaml:"source_dir" mapstructure:"source_dir"`

	// Patterns are glob patterns matched against file names in SourceDir.
	Patterns []string `json:"patterns" yaml:"patterns" mapstructure:"patterns"`
}

// OutputConfig holds settings for the rendering stage.
type OutputConfig struct {
	// File is the path of the completions document.
	File string `json:"file" yaml:"file" mapstructure:"file"`

	// Scope is the editor scope selector written into the document.
	Scope string `json:"scope" yaml:"scope" mapstructure:"scope"`

	// Aliases is an optional YAML file overriding placeholder labels.
	Aliases string `json:"aliases,omitempty" yaml:"aliases,omitempty" mapstructure:"aliases"`
}

// CatalogConfig holds settings for the symbol catalog.
type CatalogConfig struct {
	// Dir contains symbols.db and its exports.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxResults is the default maximum number of lookup results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// LogConfig selects the log level and encoding.
type LogConfig struct {
	Level string `json:"level" yaml:"level" mapstructure:"level"`
	JSON  bool   `json:"json" yaml:"json" mapstructure:"json"`
}

// Config groups all stage configurations.
type Config struct {
	Scan    ScanConfig    `json:"scan" yaml:"scan" mapstructure:"scan"`
	Output  OutputConfig  `json:"output" yaml:"output" mapstructure:"output"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns the configuration used when no file or flag overrides it.
func DefaultConfig() Config {
	return Config{
		Scan: ScanConfig{
			SourceDir: ".",
			Patterns:  []string{DefaultPattern},
		},
		Output: OutputConfig{
			File:  DefaultOutputFile,
			Scope: DefaultScope,
		},
		Catalog: CatalogConfig{
			Dir:        ".ekl-catalog",
			MaxResults: 20,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
