// Package cmd wires the solgen CLI. Subcommands are thin wrappers over the
// registry, scaffold, docs, and verify packages and carry no logic of their
// own beyond flag plumbing and exit codes.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cinderworks/solgen/internal/config"
	"github.com/cinderworks/solgen/internal/registry"
)

var rootCmd = &cobra.Command{
	Use:   "solgen",
	Short: "Scaffold, document, and verify FHE Solidity example projects",
	Long: "Solgen materializes runnable hardhat example projects from a built-in catalog,\n" +
		"extracts chapter-organized documentation from annotated tests, and verifies\n" +
		"that generated projects are complete.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .solgen.yaml)")
	rootCmd.PersistentFlags().String("output-dir", "", "directory for generated projects")
	rootCmd.PersistentFlags().String("registry-file", "", "TOML overlay merged into the example catalog")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	// Bindings live here, not in init, so they are re-established on every
	// Execute even after a viper reset.
	_ = viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	_ = viper.BindPFlag("registry_file", rootCmd.PersistentFlags().Lookup("registry-file"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".solgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("SOLGEN")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// buildRegistry returns the built-in catalog, merged with the configured
// overlay file when one is set.
func buildRegistry(cfg config.Config) (*registry.Registry, error) {
	reg := registry.Default()
	if cfg.RegistryFile != "" {
		if err := reg.LoadFile(cfg.RegistryFile); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
