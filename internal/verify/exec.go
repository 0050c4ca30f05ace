package verify

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// BuildTool runs the external compile and test phases for one project.
// Implementations only interpret exit status; tool output is opaque.
type BuildTool interface {
	Compile(ctx context.Context, projectDir string) error
	Test(ctx context.Context, projectDir string) error
}

// HardhatTool drives hardhat through a launcher binary, npx by default.
type HardhatTool struct {
	Path    string // launcher binary, e.g. "npx"
	Verbose bool
}

// NewHardhatTool returns a HardhatTool using the given launcher path.
func NewHardhatTool(path string, verbose bool) *HardhatTool {
	if path == "" {
		path = "npx"
	}
	return &HardhatTool{Path: path, Verbose: verbose}
}

func (h *HardhatTool) Compile(ctx context.Context, projectDir string) error {
	return h.run(ctx, projectDir, "compile")
}

func (h *HardhatTool) Test(ctx context.Context, projectDir string) error {
	return h.run(ctx, projectDir, "test")
}

// run executes `<path> hardhat <subcommand>` in projectDir, capturing output.
// Only the exit status decides success; on failure the stderr tail rides
// along in the error for diagnostics.
func (h *HardhatTool) run(ctx context.Context, projectDir, subcommand string) error {
	cmd := exec.CommandContext(ctx, h.Path, "hardhat", subcommand)
	cmd.Dir = projectDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[verify] running: %s hardhat %s (in %s)\n", h.Path, subcommand, projectDir)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("hardhat %s in %s: %w\nstderr: %s", subcommand, projectDir, err, tail(stderr.String(), 2000))
	}
	return nil
}

// Validate checks that the launcher binary is reachable.
func (h *HardhatTool) Validate() error {
	cmd := exec.Command(h.Path, "--version")
	if out, err := cmd.Output(); err != nil {
		return fmt.Errorf("build tool not found at %q: %w", h.Path, err)
	} else if h.Verbose {
		fmt.Fprintf(os.Stderr, "[verify] %s version: %s", h.Path, strings.TrimSpace(string(out))+"\n")
	}
	return nil
}

// tail returns at most n trailing bytes of s.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
