package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.OutputDir != "examples" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "examples")
	}
	if cfg.HardhatPath != "npx" {
		t.Errorf("HardhatPath = %q, want %q", cfg.HardhatPath, "npx")
	}
	if cfg.RequireDeployScript {
		t.Error("RequireDeployScript should default to false")
	}
	if len(cfg.TestPatterns) != 2 || cfg.TestPatterns[0] != "**/*.test.ts" {
		t.Errorf("TestPatterns = %v", cfg.TestPatterns)
	}
	if cfg.HistoryDB != ".solgen/history.db" {
		t.Errorf("HistoryDB = %q", cfg.HistoryDB)
	}
}

func TestLoadOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("output_dir", "out")
	viper.Set("require_deploy_script", true)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "out")
	}
	if !cfg.RequireDeployScript {
		t.Error("RequireDeployScript override lost")
	}
}
