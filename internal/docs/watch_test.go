package docs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.test.ts")
	if err := os.WriteFile(file, []byte("it(\"x\", () => {});\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if !isDirectory(dir) {
		t.Errorf("isDirectory(%q) = false, want true", dir)
	}
	if isDirectory(file) {
		t.Errorf("isDirectory(%q) = true for a plain file", file)
	}
	if isDirectory(filepath.Join(dir, "absent")) {
		t.Error("isDirectory should be false for a missing path")
	}
}
