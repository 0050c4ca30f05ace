// Package config loads runtime configuration for solgen from .solgen.yaml,
// SOLGEN_* environment variables, and CLI flags, in that precedence order
// (flags win).
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a solgen invocation.
type Config struct {
	// OutputDir is where generated example projects go.
	OutputDir string `mapstructure:"output_dir"`

	// RegistryFile optionally points at a TOML overlay merged on top of the
	// built-in catalog.
	RegistryFile string `mapstructure:"registry_file"`

	// DocsInput is the directory scanned for annotated test sources.
	DocsInput string `mapstructure:"docs_input"`

	// DocsOutput is where the rendered document set goes.
	DocsOutput string `mapstructure:"docs_output"`

	// TestPatterns are doublestar globs selecting which files to scan.
	TestPatterns []string `mapstructure:"test_patterns"`

	// HardhatPath is the launcher binary for compile/test phases.
	HardhatPath string `mapstructure:"hardhat_path"`

	// RequireDeployScript makes scripts/deploy.ts a required artifact.
	RequireDeployScript bool `mapstructure:"require_deploy_script"`

	// HistoryDB is the path of the verification history database.
	HistoryDB string `mapstructure:"history_db"`

	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("output_dir", "examples")
	viper.SetDefault("registry_file", "")
	viper.SetDefault("docs_input", "test")
	viper.SetDefault("docs_output", "docs")
	viper.SetDefault("test_patterns", []string{"**/*.test.ts", "**/*.spec.ts"})
	viper.SetDefault("hardhat_path", "npx")
	viper.SetDefault("require_deploy_script", false)
	viper.SetDefault("history_db", ".solgen/history.db")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
